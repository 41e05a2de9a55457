package service

import (
	"sync"

	"github.com/akhmedov/repsync/models"
)

// SessionHolder is the single owner of the active day's session. Edits from
// the UI loop and merges from the flush goroutine both go through the holder,
// so the two writers are serialized and merge ordering stays correct.
type SessionHolder struct {
	mu      sync.RWMutex
	session models.Session
}

// NewSessionHolder returns a holder with an empty session.
func NewSessionHolder() *SessionHolder {
	return &SessionHolder{}
}

// Current returns the held session value.
func (h *SessionHolder) Current() models.Session {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.session
}

// Replace swaps in a new session, discarding the previous one. Used on day
// switch.
func (h *SessionHolder) Replace(session models.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = session
}

// Update applies fn to the held session atomically and returns the result.
func (h *SessionHolder) Update(fn func(models.Session) models.Session) models.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = fn(h.session)
	return h.session
}
