// Package session owns the mutable per-session state around the analysis
// engine: the variable-lock record and the orchestrated full analysis.
//
// A Session composes an *analysis.Engine rather than extending it; the
// engine stays pure while the session carries state. Sessions are not
// safe for concurrent use; callers needing that synchronize externally.
package session

import (
	"github.com/google/uuid"

	"reifscan/internal/analysis"
	"reifscan/internal/logging"
)

// VariableLock pins a term to its functional definition for the rest of
// the session.
type VariableLock struct {
	// Type is the functional (variable) form the term is locked to.
	Type string

	// Range lists the candidate values of the locked variable.
	Range []string

	// ContextDependent is always true for locks derived from the catalog.
	ContextDependent bool

	// DependsOn names the factors the variable depends on.
	DependsOn []string

	// LockedFromReifiedForm records the constant framing the lock replaced.
	LockedFromReifiedForm string
}

// LockedVariable pairs a term with its lock for ordered enumeration.
type LockedVariable struct {
	Term string
	Lock VariableLock
}

// Notification describes one lock event. Informational only.
type Notification struct {
	EventID string // uuid, unique per event
	Term    string
	Lock    VariableLock
}

// Observer receives lock notifications.
type Observer func(Notification)

// Session holds the lock record for one analysis session.
type Session struct {
	// ID identifies the session in logs and notifications.
	ID string

	engine   *analysis.Engine
	order    []string
	locks    map[string]VariableLock
	observer Observer
}

// New creates an empty session over the given engine.
func New(engine *analysis.Engine) *Session {
	return &Session{
		ID:     uuid.NewString(),
		engine: engine,
		locks:  make(map[string]VariableLock),
	}
}

// Engine returns the session's analysis engine.
func (s *Session) Engine() *analysis.Engine { return s.engine }

// SetObserver registers a callback for lock notifications. Pass nil to
// remove it.
func (s *Session) SetObserver(fn Observer) { s.observer = fn }

// Lock inserts or overwrites the lock for term. Re-locking an existing
// term updates its definition but keeps its first-insertion position in
// any later enumeration.
func (s *Session) Lock(term string, def VariableLock) {
	if _, exists := s.locks[term]; !exists {
		s.order = append(s.order, term)
	}
	s.locks[term] = def

	logging.Session("variable locked: %s -> %s", term, def.Type)
	if s.observer != nil {
		s.observer(Notification{
			EventID: uuid.NewString(),
			Term:    term,
			Lock:    def,
		})
	}
}

// Get returns the lock for term.
func (s *Session) Get(term string) (VariableLock, bool) {
	l, ok := s.locks[term]
	return l, ok
}

// Len returns the number of locked terms.
func (s *Session) Len() int { return len(s.order) }

// Snapshot returns the lock record in insertion order.
func (s *Session) Snapshot() []LockedVariable {
	out := make([]LockedVariable, 0, len(s.order))
	for _, term := range s.order {
		out = append(out, LockedVariable{Term: term, Lock: s.locks[term]})
	}
	return out
}

// AutoLockFromStatement detects metaphors in the statement and locks each
// detected term to its functional definition. Returns the matches.
func (s *Session) AutoLockFromStatement(statement string) []analysis.DetectionMatch {
	matches := s.engine.Detect(statement)
	for _, m := range matches {
		s.Lock(m.Term, VariableLock{
			Type:                  m.FunctionalForm,
			Range:                 m.ValueRange,
			ContextDependent:      true,
			DependsOn:             m.DependsOn,
			LockedFromReifiedForm: m.ReifiedAs,
		})
	}
	logging.SessionDebug("auto-lock: %d term(s) locked from statement", len(matches))
	return matches
}
