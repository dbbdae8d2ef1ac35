package consultation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swaasthmitra/intake/internal/domain/catalog"
	"github.com/swaasthmitra/intake/internal/domain/report"
	"github.com/swaasthmitra/intake/internal/domain/triage"
)

// NarrativeGenerator produces the free-text clinical narrative for a
// completed consultation. Implemented by the genai platform client.
type NarrativeGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service orchestrates sessions: it loads snapshots, applies state machine
// transitions, runs triage on completion and persists the result.
type Service struct {
	repo      Repository
	narrative NarrativeGenerator
}

func NewService(repo Repository, narrative NarrativeGenerator) *Service {
	return &Service{repo: repo, narrative: narrative}
}

// QuestionView is the current question with its progress position.
type QuestionView struct {
	Question catalog.Question `json:"question"`
	Progress Progress         `json:"progress"`
}

// AdvanceResult reports where an advance landed: the next question, or the
// assessment when the session just completed.
type AdvanceResult struct {
	Completed  bool               `json:"completed"`
	Question   *catalog.Question  `json:"question,omitempty"`
	Progress   *Progress          `json:"progress,omitempty"`
	Assessment *triage.Assessment `json:"assessment,omitempty"`
}

// StartConsultation creates and starts a new session.
func (s *Service) StartConsultation(ctx context.Context) (*Session, error) {
	sess := NewSession()
	sess.Start()
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create consultation: %w", err)
	}
	return sess, nil
}

// RestartConsultation resets an existing session back to the first question,
// discarding answers and any assessment.
func (s *Service) RestartConsultation(ctx context.Context, id uuid.UUID) (*Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Start()
	if err := s.repo.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("restart consultation: %w", err)
	}
	return sess, nil
}

func (s *Service) GetConsultation(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListConsultations(ctx context.Context, limit, offset int) ([]*Session, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) DeleteConsultation(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// CurrentQuestion returns the question at the session cursor with progress.
func (s *Service) CurrentQuestion(ctx context.Context, id uuid.UUID) (*QuestionView, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	q, err := sess.CurrentQuestion()
	if err != nil {
		return nil, err
	}
	p, err := sess.Progress()
	if err != nil {
		return nil, err
	}
	return &QuestionView{Question: q, Progress: p}, nil
}

// SubmitAnswer records an answer for the current question without advancing.
func (s *Service) SubmitAnswer(ctx context.Context, id uuid.UUID, questionID, value string) (*Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := sess.SubmitAnswer(questionID, value); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("save answer: %w", err)
	}
	return sess, nil
}

// Advance moves the session forward one question. When the walk finishes the
// triage engine runs and the assessment is stored with the snapshot.
func (s *Service) Advance(ctx context.Context, id uuid.UUID) (*AdvanceResult, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	done, err := sess.Advance()
	if err != nil {
		return nil, err
	}

	result := &AdvanceResult{Completed: done}
	if done {
		a := triage.Analyze(sess.Answers)
		sess.Assessment = &a
		result.Assessment = &a
	} else {
		q, err := sess.CurrentQuestion()
		if err != nil {
			return nil, err
		}
		p, err := sess.Progress()
		if err != nil {
			return nil, err
		}
		result.Question = &q
		result.Progress = &p
	}

	if err := s.repo.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return result, nil
}

// Report builds the report payload for a completed session, without the LLM
// narrative.
func (s *Service) Report(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	sess, err := s.completedSession(ctx, id)
	if err != nil {
		return nil, err
	}
	r := report.Build(*sess.Assessment, sess.Summary(), "", time.Now())
	return &r, nil
}

// NarrativeReport builds the report payload including the generated SOAP
// narrative. A generation failure is returned to the caller; the stored
// session and its assessment are unaffected and the plain report stays
// available.
func (s *Service) NarrativeReport(ctx context.Context, id uuid.UUID) (*report.Report, error) {
	sess, err := s.completedSession(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := sess.Summary()
	narrative, err := s.narrative.Generate(ctx, SOAPPrompt(summary))
	if err != nil {
		return nil, fmt.Errorf("generate narrative: %w", err)
	}
	r := report.Build(*sess.Assessment, summary, narrative, time.Now())
	return &r, nil
}

func (s *Service) completedSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.State != StateComplete || sess.Assessment == nil {
		return nil, fmt.Errorf("%w: report requires a completed consultation", ErrSessionState)
	}
	return sess, nil
}
