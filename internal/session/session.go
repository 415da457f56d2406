// Package session owns durable persistence of assessment state: session
// identity, the response log, resumability, expiration, and cleanup.
package session

import (
	"time"

	"github.com/abhisek/mindprint/internal/catalog"
	"github.com/abhisek/mindprint/internal/scoring"
)

// Response is one captured answer. The reverse-coded flag is copied
// from the question at capture time so replay never needs the catalog
// to rescore.
type Response struct {
	QuestionID   string       `json:"question_id"`
	Axis         catalog.Axis `json:"axis"`
	Value        int          `json:"value"`
	ReverseCoded bool         `json:"reverse_coded"`
	AnsweredAt   time.Time    `json:"answered_at"`
}

// Session is the durable record of one test run. Responses keep
// insertion order; a re-answer after back-navigation replaces the
// matching entry in place rather than appending.
type Session struct {
	ID              string          `json:"id"`
	Length          catalog.Length  `json:"test_length"`
	TotalQuestions  int             `json:"total_questions"`
	StartedAt       time.Time       `json:"started_at"`
	LastUpdated     time.Time       `json:"last_updated"`
	CurrentQuestion int             `json:"current_question"`
	Responses       []Response      `json:"responses"`
	Completed       bool            `json:"completed"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	Result          *scoring.Result `json:"result,omitempty"`

	// State is runtime-only; the persisted record derives it from the
	// completed flag on load.
	State State `json:"-"`
}

// Upsert records a response, replacing any earlier answer to the same
// question. CurrentQuestion stays equal to the count of distinct
// questions answered, independent of overwrite order.
func (s *Session) Upsert(r Response) {
	for i := range s.Responses {
		if s.Responses[i].QuestionID == r.QuestionID {
			s.Responses[i] = r
			return
		}
	}
	s.Responses = append(s.Responses, r)
	s.CurrentQuestion = len(s.Responses)
}

// Values returns the raw answer values in stored order.
func (s *Session) Values() []int {
	values := make([]int, len(s.Responses))
	for i, r := range s.Responses {
		values[i] = r.Value
	}
	return values
}

// Age returns how long ago the session was last touched.
func (s *Session) Age(now time.Time) time.Duration {
	return now.Sub(s.LastUpdated)
}

// Summary is the resumable-session listing entry.
type Summary struct {
	ID          string
	Length      catalog.Length
	Answered    int
	Total       int
	LastUpdated time.Time
}
