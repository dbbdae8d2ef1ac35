package consultation

import (
	"strings"
	"testing"

	"github.com/swaasthmitra/intake/internal/domain/catalog"
)

func TestSession_Summary(t *testing.T) {
	s := NewSession()
	s.Start()
	s.Category = catalog.CategoryFever
	s.CategoryResolved = true
	s.Answers = catalog.AnswerRecord{
		"age":            {Text: "31-45"},
		"gender":         {Text: "Female"},
		"main_complaint": {Text: "high fever since last night"},
		"fever_temp":     {Text: "Above 104°F (40°C)"},
		"duration":       {Text: "1-3 days"},
		"past_conditions": {
			Selected: []string{"Diabetes", "Asthma"},
		},
	}

	got := s.Summary()
	for _, want := range []string{
		"PATIENT CONSULTATION SUMMARY:",
		"- Age: 31-45",
		"- Gender: Female",
		"high fever since last night",
		"Above 104°F (40°C)",
		"- Duration: 1-3 days",
		"Medical conditions: Diabetes, Asthma",
		"- Smoking: Not provided",
		"Associated symptoms: None reported",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestSOAPPrompt_EmbedsSummary(t *testing.T) {
	prompt := SOAPPrompt("SUMMARY BLOCK")
	if !strings.Contains(prompt, "SUMMARY BLOCK") {
		t.Error("prompt must embed the patient summary")
	}
	if !strings.Contains(prompt, "SOAP note format") {
		t.Error("prompt must request SOAP format")
	}
	if !strings.Contains(prompt, "No physical examination was performed") {
		t.Error("prompt must state the telemedicine limitation")
	}
}
