package model

import "time"

// SessionState is everything needed to resume a testing session.
// Test is the session's private copy with questions in presentation order.
type SessionState struct {
	ID          string            `json:"id"`
	StudentName string            `json:"studentName"`
	Test        *Test             `json:"test"`
	Cursor      int               `json:"cursor"`
	Answers     map[string]string `json:"answers"`
	StartedAt   time.Time         `json:"startedAt"`
	// Stopped marks a scored session whose removal failed; it is never resumed.
	Stopped     bool              `json:"stopped,omitempty"`
}

func (s *SessionState) Clone() *SessionState {
	c := *s
	if s.Test != nil {
		c.Test = s.Test.Clone()
	}
	c.Answers = make(map[string]string, len(s.Answers))
	for k, v := range s.Answers {
		c.Answers[k] = v
	}
	return &c
}
