package triage

import "github.com/swaasthmitra/intake/internal/domain/catalog"

// RiskLevel is the overall risk tier of an assessment. Levels are ordered
// low < medium < high < critical and only ever raised during analysis.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

var riskRank = map[RiskLevel]int{
	RiskLow:      0,
	RiskMedium:   1,
	RiskHigh:     2,
	RiskCritical: 3,
}

// AtLeast reports whether r is at or above other in the risk order.
func (r RiskLevel) AtLeast(other RiskLevel) bool {
	return riskRank[r] >= riskRank[other]
}

// Raise returns the higher of r and other.
func (r RiskLevel) Raise(other RiskLevel) RiskLevel {
	if riskRank[other] > riskRank[r] {
		return other
	}
	return r
}

// Urgency is how soon care should be sought.
type Urgency string

const (
	UrgencyRoutine   Urgency = "routine"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

// UrgencyFor maps a risk level to its urgency tier.
func UrgencyFor(risk RiskLevel) Urgency {
	switch risk {
	case RiskCritical:
		return UrgencyEmergency
	case RiskHigh:
		return UrgencyUrgent
	default:
		return UrgencyRoutine
	}
}

// Assessment is the result of analyzing a consultation's answer record.
type Assessment struct {
	RiskLevel          RiskLevel        `json:"risk_level"`
	Urgency            Urgency          `json:"urgency"`
	Category           catalog.Category `json:"category,omitempty"`
	PrimaryDiagnosis   string           `json:"primary_diagnosis"`
	PossibleConditions []string         `json:"possible_conditions"`
	RedFlags           []string         `json:"red_flags"`
	Recommendations    []string         `json:"recommendations"`
}
