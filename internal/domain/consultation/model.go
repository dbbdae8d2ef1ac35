package consultation

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/swaasthmitra/intake/internal/domain/catalog"
	"github.com/swaasthmitra/intake/internal/domain/triage"
)

// State is the lifecycle phase of a consultation session.
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
)

var (
	// ErrSessionState signals an operation invalid in the session's state,
	// such as reading the current question before Start or after completion.
	ErrSessionState = errors.New("operation not valid in current session state")
	// ErrQuestionMismatch signals an answer submitted for a question other
	// than the current one. The answer record is left untouched.
	ErrQuestionMismatch = errors.New("answer does not match current question")
	// ErrNotFound signals an unknown session id.
	ErrNotFound = errors.New("consultation not found")
)

// Session is one patient intake conversation. It is a caller-owned value:
// the state machine methods mutate it in place and the service persists
// snapshots of it. Section and Index locate the cursor while InProgress.
type Session struct {
	ID               uuid.UUID            `db:"id" json:"id"`
	State            State                `db:"state" json:"state"`
	Section          catalog.SectionID    `db:"section" json:"section,omitempty"`
	Index            int                  `db:"question_index" json:"question_index"`
	Category         catalog.Category     `db:"category" json:"category,omitempty"`
	CategoryResolved bool                 `db:"category_resolved" json:"category_resolved"`
	Answers          catalog.AnswerRecord `db:"answers" json:"answers"`
	Assessment       *triage.Assessment   `db:"assessment" json:"assessment,omitempty"`
	CreatedAt        time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time            `db:"updated_at" json:"updated_at"`
}

// Progress is the 1-based "question N of M" position shown to the patient.
// Total uses the estimated symptom section length until the chief complaint
// resolves a category, so it changes at most once per run.
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}
