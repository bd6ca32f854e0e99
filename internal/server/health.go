package server

import (
	"sync"
	"time"
)

// ComponentStatus is the health of a single dependency as reported on
// the health endpoints.
type ComponentStatus struct {
	Healthy     bool      `json:"healthy"`
	LastCheck   time.Time `json:"last_check"`
	LastSuccess time.Time `json:"last_success"`
	Message     string    `json:"message,omitempty"`
}

// Health tracks the health of the server's dependencies. It is safe for
// concurrent use by handlers.
type Health struct {
	mu         sync.RWMutex
	components map[string]*ComponentStatus
}

// NewHealth creates an empty health tracker. A tracker with no recorded
// components reports overall healthy.
func NewHealth() *Health {
	return &Health{
		components: make(map[string]*ComponentStatus),
	}
}

// SetHealthy marks a component as healthy.
func (h *Health) SetHealthy(component, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := time.Now()
	status := h.status(component)
	status.Healthy = true
	status.LastCheck = now
	status.LastSuccess = now
	status.Message = message
}

// SetUnhealthy marks a component as unhealthy.
func (h *Health) SetUnhealthy(component string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	status := h.status(component)
	status.Healthy = false
	status.LastCheck = time.Now()
	status.Message = err.Error()
}

// status returns the tracked entry for a component, creating it if
// needed. Callers must hold the lock.
func (h *Health) status(component string) *ComponentStatus {
	if _, exists := h.components[component]; !exists {
		h.components[component] = &ComponentStatus{}
	}
	return h.components[component]
}

// Snapshot returns a copy of all component statuses.
func (h *Health) Snapshot() map[string]ComponentStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	result := make(map[string]ComponentStatus, len(h.components))
	for name, status := range h.components {
		result[name] = *status
	}
	return result
}

// IsOverallHealthy returns true if every tracked component is healthy.
func (h *Health) IsOverallHealthy() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, status := range h.components {
		if !status.Healthy {
			return false
		}
	}
	return true
}
