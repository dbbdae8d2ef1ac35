// Package triage turns a completed (or partial) intake answer record into a
// risk assessment: red flags, risk level, urgency, likely diagnosis and
// fixed recommendations.
package triage

import "github.com/swaasthmitra/intake/internal/domain/catalog"

// Analyze evaluates an answer record. It is a total function: missing or
// partial answers simply leave their rules unmatched, so an empty record
// yields a low-risk assessment with no flags and a placeholder diagnosis.
func Analyze(answers catalog.AnswerRecord) Assessment {
	a := Assessment{
		RiskLevel:          RiskLow,
		PrimaryDiagnosis:   diagnosisPlaceholder,
		PossibleConditions: []string{},
		RedFlags:           []string{},
	}

	for _, rule := range redFlagRules {
		if !answers.Contains(rule.question, rule.match) {
			continue
		}
		a.RiskLevel = a.RiskLevel.Raise(rule.risk)
		if rule.flag != "" {
			a.RedFlags = append(a.RedFlags, rule.flag)
		}
	}

	a.Category = catalog.Classify(answers.Text(catalog.QuestionMainComplaint))
	if d, ok := diagnoses[a.Category]; ok {
		a.PrimaryDiagnosis = d.primary
		a.PossibleConditions = append([]string{}, d.conditions...)
		a.RiskLevel = a.RiskLevel.Raise(d.risk)

		switch a.Category {
		case catalog.CategoryFever:
			if answers.Contains("fever_pattern", "Getting worse") {
				a.RiskLevel = a.RiskLevel.Raise(RiskMedium)
			}
		case catalog.CategoryHeadache:
			if answers.Contains("headache_severity", "9-10") {
				a.RiskLevel = a.RiskLevel.Raise(RiskHigh)
				a.PossibleConditions = append([]string{}, severeHeadacheConditions...)
			}
		}
	}

	a.Urgency = UrgencyFor(a.RiskLevel)

	if recs, ok := recommendationsByRisk[a.RiskLevel]; ok {
		a.Recommendations = append([]string{}, recs...)
	} else {
		a.Recommendations = append([]string{}, defaultRecommendations...)
	}

	return a
}
