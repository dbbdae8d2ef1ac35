package consultation

import (
	"errors"
	"testing"

	"github.com/swaasthmitra/intake/internal/domain/catalog"
)

// answerCurrent fills in a plausible answer for the question at the cursor.
// Free-text questions get complaint, choice questions their first option.
func answerCurrent(t *testing.T, s *Session, complaint string) {
	t.Helper()
	q, err := s.CurrentQuestion()
	if err != nil {
		t.Fatalf("current question: %v", err)
	}
	value := complaint
	if q.Kind != catalog.KindFreeText {
		value = q.Options[0]
	}
	if err := s.SubmitAnswer(q.ID, value); err != nil {
		t.Fatalf("submit %s: %v", q.ID, err)
	}
}

func TestSession_StartPositionsAtFirstQuestion(t *testing.T) {
	s := NewSession()
	if _, err := s.CurrentQuestion(); !errors.Is(err, ErrSessionState) {
		t.Errorf("expected ErrSessionState before start, got %v", err)
	}

	s.Start()
	q, err := s.CurrentQuestion()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != "age" {
		t.Errorf("expected first question age, got %s", q.ID)
	}
	p, err := s.Progress()
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.Current != 1 || p.Total != 15 {
		t.Errorf("expected progress 1/15, got %d/%d", p.Current, p.Total)
	}
}

func TestSession_StartResetsInProgressSession(t *testing.T) {
	s := NewSession()
	s.Start()
	answerCurrent(t, s, "")
	if _, err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if len(s.Answers) == 0 {
		t.Fatal("setup: expected a recorded answer")
	}

	s.Start()
	if len(s.Answers) != 0 {
		t.Errorf("restart must clear answers, got %v", s.Answers)
	}
	q, _ := s.CurrentQuestion()
	if q.ID != "age" {
		t.Errorf("restart must return to first question, got %s", q.ID)
	}
	if s.Assessment != nil {
		t.Error("restart must clear the assessment")
	}
}

func TestSession_SubmitAnswerMismatch(t *testing.T) {
	s := NewSession()
	s.Start()
	err := s.SubmitAnswer("gender", "Male")
	if !errors.Is(err, ErrQuestionMismatch) {
		t.Fatalf("expected ErrQuestionMismatch, got %v", err)
	}
	if len(s.Answers) != 0 {
		t.Errorf("mismatched submit must leave answers unchanged, got %v", s.Answers)
	}
}

func TestSession_SubmitAnswerRejectsUnknownOption(t *testing.T) {
	s := NewSession()
	s.Start()
	if err := s.SubmitAnswer("age", "timeless"); err == nil {
		t.Error("expected error for value outside options")
	}
	if len(s.Answers) != 0 {
		t.Errorf("invalid submit must leave answers unchanged, got %v", s.Answers)
	}
}

func TestSession_SubmitDoesNotAdvance(t *testing.T) {
	s := NewSession()
	s.Start()
	if err := s.SubmitAnswer("age", "18-30"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	q, _ := s.CurrentQuestion()
	if q.ID != "age" {
		t.Errorf("submit must not move the cursor, now at %s", q.ID)
	}
	// Re-submitting the same single-choice question overwrites.
	if err := s.SubmitAnswer("age", "31-45"); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if s.Answers.Text("age") != "31-45" {
		t.Errorf("expected overwrite, got %q", s.Answers.Text("age"))
	}
}

func TestSession_ChiefComplaintRoutesToSymptomSection(t *testing.T) {
	s := NewSession()
	s.Start()
	// demographics: age, gender
	answerCurrent(t, s, "")
	s.Advance()
	answerCurrent(t, s, "")
	s.Advance()

	q, _ := s.CurrentQuestion()
	if q.ID != catalog.QuestionMainComplaint {
		t.Fatalf("expected main complaint, got %s", q.ID)
	}
	if err := s.SubmitAnswer(q.ID, "I have had a severe headache since yesterday"); err != nil {
		t.Fatalf("submit complaint: %v", err)
	}
	if _, err := s.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if s.Category != catalog.CategoryHeadache {
		t.Errorf("expected headache category, got %q", s.Category)
	}
	q, _ = s.CurrentQuestion()
	if q.ID != "headache_location" {
		t.Errorf("expected first headache question, got %s", q.ID)
	}
}

func TestSession_NoCategorySkipsSymptomSection(t *testing.T) {
	s := NewSession()
	s.Start()
	answerCurrent(t, s, "")
	s.Advance()
	answerCurrent(t, s, "")
	s.Advance()
	if err := s.SubmitAnswer(catalog.QuestionMainComplaint, "nothing unusual"); err != nil {
		t.Fatalf("submit complaint: %v", err)
	}
	s.Advance()

	if s.Category != catalog.CategoryNone {
		t.Errorf("expected no category, got %q", s.Category)
	}
	q, _ := s.CurrentQuestion()
	if q.ID != "duration" {
		t.Errorf("expected present illness to follow, got %s", q.ID)
	}
	p, _ := s.Progress()
	if p.Total != 12 {
		t.Errorf("expected total 12 with no symptom section, got %d", p.Total)
	}
}

func TestSession_TotalChangesAtMostOnce(t *testing.T) {
	s := NewSession()
	s.Start()

	totals := []int{}
	seen := func() {
		p, err := s.Progress()
		if err != nil {
			t.Fatalf("progress: %v", err)
		}
		if len(totals) == 0 || totals[len(totals)-1] != p.Total {
			totals = append(totals, p.Total)
		}
	}

	seen()
	for s.State == StateInProgress {
		answerCurrent(t, s, "migraine again, left side")
		if _, err := s.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
		if s.State == StateInProgress {
			seen()
		}
	}

	if len(totals) != 2 || totals[0] != 15 || totals[1] != 16 {
		t.Errorf("expected totals to change exactly once 15 -> 16, saw %v", totals)
	}
}

func TestSession_AdvanceCountReachesComplete(t *testing.T) {
	cases := []struct {
		complaint string
		advances  int
	}{
		{"I have had a severe headache since yesterday", 16},
		{"running a fever", 15},
		{"chest pain when climbing stairs", 16},
		{"my belly hurts", 15},
		{"nothing unusual", 12},
	}
	for _, tt := range cases {
		s := NewSession()
		s.Start()
		n := 0
		for s.State == StateInProgress {
			answerCurrent(t, s, tt.complaint)
			done, err := s.Advance()
			if err != nil {
				t.Fatalf("%q advance %d: %v", tt.complaint, n, err)
			}
			n++
			if done && s.State != StateComplete {
				t.Fatalf("%q: done without complete state", tt.complaint)
			}
			if n > 30 {
				t.Fatalf("%q: walk did not terminate", tt.complaint)
			}
		}
		if n != tt.advances {
			t.Errorf("%q: completed after %d advances, want %d", tt.complaint, n, tt.advances)
		}
		p, err := s.Progress()
		if err != nil {
			t.Fatalf("%q progress: %v", tt.complaint, err)
		}
		if p.Current != p.Total {
			t.Errorf("%q: completed progress %d/%d", tt.complaint, p.Current, p.Total)
		}
	}
}

func TestSession_CompleteRejectsFurtherOperations(t *testing.T) {
	s := NewSession()
	s.Start()
	for s.State == StateInProgress {
		answerCurrent(t, s, "nothing unusual")
		if _, err := s.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	if _, err := s.CurrentQuestion(); !errors.Is(err, ErrSessionState) {
		t.Errorf("expected ErrSessionState for question after completion, got %v", err)
	}
	if err := s.SubmitAnswer("age", "18-30"); !errors.Is(err, ErrSessionState) {
		t.Errorf("expected ErrSessionState for submit after completion, got %v", err)
	}
	if _, err := s.Advance(); !errors.Is(err, ErrSessionState) {
		t.Errorf("expected ErrSessionState for advance after completion, got %v", err)
	}
}

func TestSession_MultiChoiceToggle(t *testing.T) {
	s := NewSession()
	s.Start()
	// Walk to review_of_systems (no symptom section).
	for {
		q, err := s.CurrentQuestion()
		if err != nil {
			t.Fatalf("current question: %v", err)
		}
		if q.ID == "associated_symptoms" {
			break
		}
		answerCurrent(t, s, "nothing unusual")
		s.Advance()
	}

	if err := s.SubmitAnswer("associated_symptoms", "Fatigue"); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if err := s.SubmitAnswer("associated_symptoms", "Sleep problems"); err != nil {
		t.Fatalf("toggle second: %v", err)
	}
	if err := s.SubmitAnswer("associated_symptoms", "Fatigue"); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	v, _ := s.Answers.Get("associated_symptoms")
	if len(v.Selected) != 1 || v.Selected[0] != "Sleep problems" {
		t.Errorf("unexpected selection %v", v.Selected)
	}
}
