package notifications

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jathow/careertrack/internal/entities"
	"github.com/jathow/careertrack/internal/logger"
)

// Sink receives every shown toast. Delivery failures are logged, never
// surfaced to the queue.
type Sink interface {
	Deliver(toast entities.Toast) error
}

// Dispatcher owns the auto-hide timers for toasts and fans shown toasts out
// to the configured sinks.
type Dispatcher struct {
	queue *Queue
	sinks []Sink

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewDispatcher(queue *Queue, sinks ...Sink) *Dispatcher {

	d := &Dispatcher{
		queue:  queue,
		sinks:  sinks,
		timers: make(map[string]*time.Timer),
	}
	queue.SetOnShow(d.onShow)
	return d
}

func (d *Dispatcher) onShow(toast entities.Toast) {

	duration := toast.Duration
	if duration <= 0 {
		duration = entities.DefaultToastDuration
	}

	d.mu.Lock()
	d.timers[toast.ID] = time.AfterFunc(duration, func() {
		d.expire(toast.ID)
	})
	d.mu.Unlock()

	for _, sink := range d.sinks {
		if err := sink.Deliver(toast); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).
				Errorf("failed to deliver toast: %v", err)
		}
	}
}

func (d *Dispatcher) expire(id string) {

	d.mu.Lock()
	delete(d.timers, id)
	d.mu.Unlock()

	d.queue.Hide(id)
}

// Stop cancels pending auto-hide timers. Toasts already shown stay in the
// queue until hidden explicitly.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for id, timer := range d.timers {
		timer.Stop()
		delete(d.timers, id)
	}
}
