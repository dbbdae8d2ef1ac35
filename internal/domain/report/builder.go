// Package report assembles the presentable assessment report handed to the
// UI host once a consultation completes.
package report

import (
	"time"

	"github.com/swaasthmitra/intake/internal/domain/triage"
)

// EmergencyNumber is the emergency services number quoted in reports.
const EmergencyNumber = "108"

// Disclaimer accompanies every report.
const Disclaimer = "This assessment is for informational purposes only and does not " +
	"replace professional medical advice. Always consult healthcare providers " +
	"for accurate diagnosis and treatment."

var timelineByUrgency = map[triage.Urgency]string{
	triage.UrgencyEmergency: "Seek emergency medical care within minutes",
	triage.UrgencyUrgent:    "Seek medical care within 24 hours",
	triage.UrgencyRoutine:   "Schedule a medical appointment within 1-2 weeks if symptoms persist",
}

// Report is the full payload rendered for a completed consultation.
type Report struct {
	GeneratedAt        time.Time        `json:"generated_at"`
	RiskLevel          triage.RiskLevel `json:"risk_level"`
	Urgency            triage.Urgency   `json:"urgency"`
	Timeline           string           `json:"timeline"`
	PrimaryDiagnosis   string           `json:"primary_diagnosis"`
	PossibleConditions []string         `json:"possible_conditions"`
	RedFlags           []string         `json:"red_flags"`
	Recommendations    []string         `json:"recommendations"`
	PatientSummary     string           `json:"patient_summary,omitempty"`
	Narrative          string           `json:"narrative,omitempty"`
	EmergencyNumber    string           `json:"emergency_number"`
	Disclaimer         string           `json:"disclaimer"`
}

// Build assembles a report from an assessment, the rendered patient summary
// and an optional LLM narrative. It is pure; now is injected for testability.
func Build(a triage.Assessment, patientSummary, narrative string, now time.Time) Report {
	return Report{
		GeneratedAt:        now,
		RiskLevel:          a.RiskLevel,
		Urgency:            a.Urgency,
		Timeline:           timelineByUrgency[a.Urgency],
		PrimaryDiagnosis:   a.PrimaryDiagnosis,
		PossibleConditions: a.PossibleConditions,
		RedFlags:           a.RedFlags,
		Recommendations:    a.Recommendations,
		PatientSummary:     patientSummary,
		Narrative:          narrative,
		EmergencyNumber:    EmergencyNumber,
		Disclaimer:         Disclaimer,
	}
}
