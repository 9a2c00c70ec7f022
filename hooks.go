package roster

import (
	"sync"

	"github.com/agentstation/roster/pkg/guardian"
	"github.com/agentstation/roster/pkg/records"
	"github.com/agentstation/roster/pkg/tables"
)

// Hook function types for merge events
type (
	// RecordHook is called for every assembled record
	RecordHook func(rec records.Record, rep records.Report)

	// FallbackHook is called when guardian 2 data filled Responsible1
	FallbackHook func(rec records.Record, groups guardian.Fallback)

	// UnmatchedHook is called when a contact has no biographical row
	UnmatchedHook func(contact tables.Contact)
)

// hooks manages event callbacks for a merge
type hooks struct {
	mu          sync.RWMutex
	onRecord    []RecordHook
	onFallback  []FallbackHook
	onUnmatched []UnmatchedHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnRecord registers a callback for every assembled record
func (h *hooks) OnRecord(fn RecordHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRecord = append(h.onRecord, fn)
}

// OnFallback registers a callback for fallback events
func (h *hooks) OnFallback(fn FallbackHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onFallback = append(h.onFallback, fn)
}

// OnUnmatched registers a callback for unmatched contacts
func (h *hooks) OnUnmatched(fn UnmatchedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnmatched = append(h.onUnmatched, fn)
}

func (h *hooks) triggerRecord(rec records.Record, rep records.Report) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onRecord {
		hook(rec, rep)
	}
}

func (h *hooks) triggerFallback(rec records.Record, groups guardian.Fallback) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onFallback {
		hook(rec, groups)
	}
}

func (h *hooks) triggerUnmatched(c tables.Contact) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onUnmatched {
		hook(c)
	}
}
