// Package consultation drives a patient intake conversation: a session state
// machine over the question catalog, triage on completion, persistence of
// session snapshots and the HTTP surface the UI host talks to.
package consultation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/swaasthmitra/intake/internal/domain/catalog"
)

// NewSession returns a fresh, not yet started session.
func NewSession() *Session {
	return &Session{
		ID:      uuid.New(),
		State:   StateNotStarted,
		Answers: catalog.AnswerRecord{},
	}
}

// Start initializes the session at the first demographics question. Calling
// it on a running or completed session discards all answers and restarts
// from the top.
func (s *Session) Start() {
	s.State = StateInProgress
	s.Section = catalog.SectionDemographics
	s.Index = 0
	s.Category = catalog.CategoryNone
	s.CategoryResolved = false
	s.Answers = catalog.AnswerRecord{}
	s.Assessment = nil
}

// sectionSpan is one section of the effective walk with its question count.
type sectionSpan struct {
	id    catalog.SectionID
	count int
}

// walk returns the effective section order for this session. Until the
// symptom category resolves, the symptom slot carries the estimated count.
func (s *Session) walk() []sectionSpan {
	spans := make([]sectionSpan, 0, len(catalog.SectionOrder)+1)
	for _, id := range catalog.SectionOrder {
		qs, _ := catalog.SectionQuestions(id)
		spans = append(spans, sectionSpan{id: id, count: len(qs)})
		if id == catalog.SectionChiefComplaint {
			switch {
			case !s.CategoryResolved:
				spans = append(spans, sectionSpan{catalog.SectionSymptomSpecific, catalog.DefaultSymptomQuestionCount})
			case s.Category != catalog.CategoryNone:
				spans = append(spans, sectionSpan{catalog.SectionSymptomSpecific, len(catalog.SymptomSection(s.Category))})
			}
		}
	}
	return spans
}

func (s *Session) sectionQuestions(id catalog.SectionID) []catalog.Question {
	if id == catalog.SectionSymptomSpecific {
		return catalog.SymptomSection(s.Category)
	}
	qs, _ := catalog.SectionQuestions(id)
	return qs
}

// CurrentQuestion returns the question at the cursor.
func (s *Session) CurrentQuestion() (catalog.Question, error) {
	if s.State != StateInProgress {
		return catalog.Question{}, fmt.Errorf("%w: session is %s", ErrSessionState, s.State)
	}
	qs := s.sectionQuestions(s.Section)
	if s.Index < 0 || s.Index >= len(qs) {
		return catalog.Question{}, fmt.Errorf("%w: cursor out of range in %s", ErrSessionState, s.Section)
	}
	return qs[s.Index], nil
}

// SubmitAnswer records a value for the current question. The submitted
// question id must match the cursor; on mismatch the answer record is left
// unchanged. Multi-choice questions use toggle semantics, all other kinds
// overwrite. Submitting does not advance the cursor.
func (s *Session) SubmitAnswer(questionID, value string) error {
	q, err := s.CurrentQuestion()
	if err != nil {
		return err
	}
	if q.ID != questionID {
		return fmt.Errorf("%w: expected %s, got %s", ErrQuestionMismatch, q.ID, questionID)
	}
	if err := q.CheckAnswer(value); err != nil {
		return err
	}
	if q.Kind == catalog.KindMultiChoice {
		s.Answers.Toggle(q.ID, value)
	} else {
		s.Answers.SetText(q.ID, value)
	}
	return nil
}

// Advance moves the cursor one question forward. Exhausting the chief
// complaint section classifies the recorded complaint and, when a category
// is recognized, enters its symptom-specific section before the history of
// present illness. Exhausting the last section completes the session; the
// returned bool reports that transition.
func (s *Session) Advance() (bool, error) {
	if s.State != StateInProgress {
		return false, fmt.Errorf("%w: session is %s", ErrSessionState, s.State)
	}
	s.Index++
	for s.Index >= len(s.sectionQuestions(s.Section)) {
		next, done := s.nextSection()
		if done {
			s.State = StateComplete
			s.Section = ""
			s.Index = 0
			return true, nil
		}
		s.Section = next
		s.Index = 0
	}
	return false, nil
}

// nextSection decides where the cursor goes after exhausting the current
// section. Classification happens exactly here, once, on leaving the chief
// complaint.
func (s *Session) nextSection() (catalog.SectionID, bool) {
	switch s.Section {
	case catalog.SectionChiefComplaint:
		s.Category = catalog.Classify(s.Answers.Text(catalog.QuestionMainComplaint))
		s.CategoryResolved = true
		if s.Category != catalog.CategoryNone {
			return catalog.SectionSymptomSpecific, false
		}
		return catalog.SectionPresentIllness, false
	case catalog.SectionSymptomSpecific:
		return catalog.SectionPresentIllness, false
	}
	for i, id := range catalog.SectionOrder {
		if id == s.Section {
			if i+1 < len(catalog.SectionOrder) {
				return catalog.SectionOrder[i+1], false
			}
			return "", true
		}
	}
	return "", true
}

// Progress reports the 1-based cursor position over the effective total.
// On a completed session both numbers equal the final total.
func (s *Session) Progress() (Progress, error) {
	if s.State == StateNotStarted {
		return Progress{}, fmt.Errorf("%w: session is %s", ErrSessionState, s.State)
	}
	total := 0
	for _, span := range s.walk() {
		total += span.count
	}
	if s.State == StateComplete {
		return Progress{Current: total, Total: total}, nil
	}
	current := s.Index + 1
	for _, span := range s.walk() {
		if span.id == s.Section {
			break
		}
		current += span.count
	}
	return Progress{Current: current, Total: total}, nil
}
