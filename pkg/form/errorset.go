package form

import (
	"sort"
	"strings"
	"sync"
)

// ErrorSet is the reference ErrorReporter: a mutex-guarded map of field id to
// current error message. Empty-message entries stay tracked (the field is
// known and valid) but never count against validity.
type ErrorSet struct {
	mu     sync.RWMutex
	fields map[string]string
}

var _ ErrorReporter = (*ErrorSet)(nil)

// NewErrorSet constructs an empty aggregator.
func NewErrorSet() *ErrorSet {
	return &ErrorSet{fields: make(map[string]string)}
}

// UpdateErrorState upserts the entry for fieldID. Duplicate ids across
// sibling fields are not detected; the later report overwrites.
func (s *ErrorSet) UpdateErrorState(fieldID, message string) {
	id := strings.TrimSpace(fieldID)
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fields == nil {
		s.fields = make(map[string]string)
	}
	s.fields[id] = message
}

// ClearErrorState removes the entry for fieldID. Absent keys are a no-op.
func (s *ErrorSet) ClearErrorState(fieldID string) {
	id := strings.TrimSpace(fieldID)
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fields, id)
}

// Valid reports whether no tracked field currently carries a message.
func (s *ErrorSet) Valid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, message := range s.fields {
		if strings.TrimSpace(message) != "" {
			return false
		}
	}
	return true
}

// Len counts tracked fields, valid ones included.
func (s *ErrorSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.fields)
}

// Message returns the current message for fieldID and whether the field is
// tracked at all.
func (s *ErrorSet) Message(fieldID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	message, ok := s.fields[strings.TrimSpace(fieldID)]
	return message, ok
}

// Messages returns the non-empty messages keyed by field id.
func (s *ErrorSet) Messages() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string)
	for id, message := range s.fields {
		if strings.TrimSpace(message) == "" {
			continue
		}
		out[id] = message
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FieldIDs returns the tracked ids in sorted order, for deterministic
// iteration in callers and tests.
func (s *ErrorSet) FieldIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.fields) == 0 {
		return nil
	}
	ids := make([]string, 0, len(s.fields))
	for id := range s.fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
