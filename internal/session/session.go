// Package session holds per-visitor page state: the selected section, the
// render counter and the contact form draft.
package session

import (
	"time"

	"github.com/priyanka7411/portfolio/internal/contact"
)

// VisitCounter counts full page renders for one session. It measures
// renders, not unique visitors, and never resets while the session lives.
type VisitCounter struct {
	count int
}

// Increment adds one render and returns the new total.
func (c *VisitCounter) Increment() int {
	c.count++
	return c.count
}

// Value returns the current total.
func (c VisitCounter) Value() int {
	return c.count
}

// Session is the state of one visiting client.
type Session struct {
	ID        string
	Visits    VisitCounter
	Selected  SectionID
	Contact   contact.FormState
	CreatedAt time.Time
	LastSeen  time.Time
}

// New returns a fresh session with nothing selected.
func New(id string, now time.Time) Session {
	return Session{
		ID:        id,
		Contact:   contact.FormState{Fields: contact.Submission{Subject: contact.DefaultSubject}},
		CreatedAt: now,
		LastSeen:  now,
	}
}

// IdleSince reports whether the session has not been seen since cutoff.
func (s Session) IdleSince(cutoff time.Time) bool {
	return s.LastSeen.Before(cutoff)
}
