package triage

import "github.com/swaasthmitra/intake/internal/domain/catalog"

// redFlagRule raises the assessment risk when the answer to Question
// contains Match (case-insensitive). Flag, when non-empty, is appended to
// the red flag list.
type redFlagRule struct {
	question string
	match    string
	risk     RiskLevel
	flag     string
}

// redFlagRules are evaluated in order; every matching rule applies.
var redFlagRules = []redFlagRule{
	{"chest_symptoms", "Difficulty breathing", RiskCritical, "Difficulty breathing with chest pain"},
	{"chest_severity", "9-10", RiskHigh, ""},
	{"chest_severity", "7-8", RiskHigh, ""},
	{"fever_temp", "Above 104°F", RiskHigh, "Very high fever"},
	{"headache_symptoms", "Neck stiffness", RiskCritical, "Headache with neck stiffness"},
}

// diagnosis holds the category-keyed primary diagnosis and candidate
// condition lists.
type diagnosis struct {
	primary    string
	conditions []string
	risk       RiskLevel // floor contributed by the category itself
}

var diagnoses = map[catalog.Category]diagnosis{
	catalog.CategoryFever: {
		primary:    "Fever of unknown origin",
		conditions: []string{"Viral infection", "Bacterial infection", "Flu"},
		risk:       RiskLow,
	},
	catalog.CategoryHeadache: {
		primary:    "Headache",
		conditions: []string{"Tension headache", "Stress headache", "Dehydration"},
		risk:       RiskLow,
	},
	catalog.CategoryChestPain: {
		primary:    "Chest pain",
		conditions: []string{"Cardiac chest pain", "Muscular pain", "Respiratory cause"},
		risk:       RiskHigh,
	},
	catalog.CategoryStomachPain: {
		primary:    "Abdominal pain",
		conditions: []string{"Gastritis", "Food poisoning", "Indigestion"},
		risk:       RiskLow,
	},
}

// severeHeadacheConditions replaces the default headache condition list when
// the reported severity reaches 9-10.
var severeHeadacheConditions = []string{"Migraine", "Tension headache", "Secondary headache"}

// diagnosisPlaceholder is used when no symptom category applies.
const diagnosisPlaceholder = "Requires further evaluation"

var recommendationsByRisk = map[RiskLevel][]string{
	RiskCritical: {
		"Call emergency services immediately (108)",
		"Go to nearest emergency room",
		"Do not delay medical attention",
	},
	RiskHigh: {
		"Seek medical attention today",
		"Visit nearest healthcare facility",
		"Monitor symptoms closely",
	},
}

var defaultRecommendations = []string{
	"Rest and monitor symptoms",
	"Stay hydrated",
	"Seek medical care if symptoms worsen",
}
