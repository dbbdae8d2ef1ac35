package consultation

import (
	"fmt"
	"strings"

	"github.com/swaasthmitra/intake/internal/domain/catalog"
)

// Summary renders the answer record as the clinician-style consultation
// summary block used as LLM prompt input and attached to reports.
func (s *Session) Summary() string {
	answers := s.Answers
	text := func(id string) string {
		if v := answers.Text(id); v != "" {
			return v
		}
		return "Not provided"
	}
	list := func(id string) string {
		if v, ok := answers.Get(id); ok && len(v.Selected) > 0 {
			return strings.Join(v.Selected, ", ")
		}
		return "None reported"
	}

	var b strings.Builder
	b.WriteString("PATIENT CONSULTATION SUMMARY:\n\n")

	b.WriteString("DEMOGRAPHICS:\n")
	fmt.Fprintf(&b, "- Age: %s\n", text("age"))
	fmt.Fprintf(&b, "- Gender: %s\n\n", text("gender"))

	b.WriteString("CHIEF COMPLAINT:\n")
	fmt.Fprintf(&b, "%s\n\n", text(catalog.QuestionMainComplaint))

	if s.Category != catalog.CategoryNone {
		b.WriteString("SYMPTOM DETAILS:\n")
		for _, q := range catalog.SymptomSection(s.Category) {
			if v, ok := answers.Get(q.ID); ok {
				fmt.Fprintf(&b, "- %s %s\n", q.Prompt, v.String())
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("HISTORY OF PRESENT ILLNESS:\n")
	fmt.Fprintf(&b, "- Duration: %s\n", text("duration"))
	fmt.Fprintf(&b, "- Severity (1-10): %s\n", text("severity"))
	fmt.Fprintf(&b, "- Progression: %s\n\n", text("progression"))

	b.WriteString("REVIEW OF SYSTEMS:\n")
	fmt.Fprintf(&b, "Associated symptoms: %s\n\n", list("associated_symptoms"))

	b.WriteString("PAST MEDICAL HISTORY:\n")
	fmt.Fprintf(&b, "Medical conditions: %s\n", list("past_conditions"))
	fmt.Fprintf(&b, "Medications: %s\n", text("medications"))
	fmt.Fprintf(&b, "Allergies: %s\n\n", text("allergies"))

	b.WriteString("SOCIAL HISTORY:\n")
	fmt.Fprintf(&b, "- Smoking: %s\n", text("smoking"))
	fmt.Fprintf(&b, "- Alcohol: %s\n", text("alcohol"))

	return b.String()
}
