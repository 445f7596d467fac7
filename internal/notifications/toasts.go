package notifications

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/jathow/careertrack/internal/entities"
	"github.com/jathow/careertrack/internal/metrics"
)

// Queue is the ordered collection of transient user-visible messages. It is
// a pure store: auto-hide timers belong to the dispatcher, which observes
// new toasts through the onShow hook.
type Queue struct {
	mu     sync.Mutex
	toasts []entities.Toast
	onShow func(entities.Toast)
}

func NewQueue() *Queue {
	return &Queue{}
}

// SetOnShow registers the rendering layer's callback, invoked outside the
// queue lock for every shown toast.
func (q *Queue) SetOnShow(fn func(entities.Toast)) {
	q.mu.Lock()
	q.onShow = fn
	q.mu.Unlock()
}

func (q *Queue) Show(message string, severity entities.ToastSeverity) string {
	return q.ShowFor(message, severity, entities.DefaultToastDuration)
}

func (q *Queue) ShowFor(message string, severity entities.ToastSeverity, duration time.Duration) string {

	toast := entities.Toast{
		ID:       newToastID(),
		Message:  message,
		Severity: severity,
		Duration: duration,
	}

	q.mu.Lock()
	q.toasts = append(q.toasts, toast)
	onShow := q.onShow
	q.mu.Unlock()

	metrics.ToastsShownCounter.WithLabelValues(string(severity)).Inc()

	if onShow != nil {
		onShow(toast)
	}
	return toast.ID
}

// Hide removes exactly the matching toast; unknown ids are ignored.
func (q *Queue) Hide(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i := range q.toasts {
		if q.toasts[i].ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return
		}
	}
}

func (q *Queue) Clear() {
	q.mu.Lock()
	q.toasts = nil
	q.mu.Unlock()
}

func (q *Queue) Toasts() []entities.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	toasts := make([]entities.Toast, len(q.toasts))
	copy(toasts, q.toasts)
	return toasts
}

// Collisions are accepted as negligible, this is not a cryptographic id.
func newToastID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + "-" + strconv.FormatInt(int64(rand.Intn(1<<30)), 36)
}
