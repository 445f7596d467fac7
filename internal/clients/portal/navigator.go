package portal

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// PathTracker is the headless Navigator: it remembers the page the user
// would be on so the 401 policy can consult it.
type PathTracker struct {
	mu   sync.Mutex
	path string
}

func NewPathTracker(initial string) *PathTracker {
	return &PathTracker{path: initial}
}

func (t *PathTracker) CurrentPath() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.path
}

func (t *PathTracker) NavigateTo(path string) {
	t.mu.Lock()
	t.path = path
	t.mu.Unlock()
	log.Debugf("navigated to %v", path)
}
