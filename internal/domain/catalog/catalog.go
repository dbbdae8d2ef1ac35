// Package catalog holds the static intake question catalog: the ordered
// generic sections every consultation walks through, the symptom-specific
// sections selected from the chief complaint, and the answer value types
// shared with the triage rules.
package catalog

import (
	"errors"
	"fmt"
)

// SectionID identifies a catalog section.
type SectionID string

const (
	SectionDemographics    SectionID = "demographics"
	SectionChiefComplaint  SectionID = "chief_complaint"
	SectionSymptomSpecific SectionID = "symptom_specific"
	SectionPresentIllness  SectionID = "present_illness"
	SectionReviewOfSystems SectionID = "review_of_systems"
	SectionMedicalHistory  SectionID = "medical_history"
	SectionSocialHistory   SectionID = "social_history"
)

// QuestionMainComplaint is the free-text chief complaint question the
// classifier reads.
const QuestionMainComplaint = "main_complaint"

// DefaultSymptomQuestionCount is the estimated symptom section length used
// for progress totals before the chief complaint resolves a category.
const DefaultSymptomQuestionCount = 3

// ErrUnknownSection is returned for section ids outside the catalog.
var ErrUnknownSection = errors.New("unknown catalog section")

// SectionOrder is the fixed walk order of the generic sections. The symptom
// section, when one applies, is entered between chief complaint and history
// of present illness.
var SectionOrder = []SectionID{
	SectionDemographics,
	SectionChiefComplaint,
	SectionPresentIllness,
	SectionReviewOfSystems,
	SectionMedicalHistory,
	SectionSocialHistory,
}

var severityScale = []string{"1-3 (Mild)", "4-6 (Moderate)", "7-8 (Severe)", "9-10 (Unbearable)"}

var sections = map[SectionID][]Question{
	SectionDemographics: {
		numericChoice("age", "What is your age group?",
			"Under 18", "18-30", "31-45", "46-60", "61-75", "Over 75"),
		singleChoice("gender", "What is your gender?",
			"Male", "Female", "Prefer not to say"),
	},
	SectionChiefComplaint: {
		freeText(QuestionMainComplaint,
			"What is your main health concern today? Please describe your symptoms."),
	},
	SectionPresentIllness: {
		singleChoice("duration", "How long have you been experiencing this?",
			"Less than 24 hours", "1-3 days", "4-7 days", "1-2 weeks", "More than 2 weeks"),
		singleChoice("severity", "On a scale of 1-10, how severe is it?", severityScale...),
		singleChoice("progression", "How have your symptoms changed since they started?",
			"Getting better", "Staying the same", "Getting worse", "Comes and goes"),
	},
	SectionReviewOfSystems: {
		multiChoice("associated_symptoms", "Are you experiencing any of these symptoms as well?",
			"Fatigue", "Loss of appetite", "Sleep problems", "Weight changes", "None of these"),
	},
	SectionMedicalHistory: {
		multiChoice("past_conditions", "Do you have any of these existing conditions?",
			"Diabetes", "High blood pressure", "Heart disease", "Asthma", "None of these"),
		singleChoice("medications", "Are you currently taking any medications?",
			"Yes, regularly", "Yes, occasionally", "No"),
		singleChoice("allergies", "Do you have any known allergies?",
			"Yes", "No", "Not sure"),
	},
	SectionSocialHistory: {
		singleChoice("smoking", "Do you smoke or use tobacco?",
			"Never", "Former smoker", "Current smoker"),
		singleChoice("alcohol", "How often do you consume alcohol?",
			"Never", "Occasionally", "Regularly"),
	},
}

var symptomSections = map[Category][]Question{
	CategoryFever: {
		singleChoice("fever_temp", "What is your current temperature?",
			"Below 100°F (37.8°C)", "100-102°F (37.8-38.9°C)", "102-104°F (38.9-40°C)",
			"Above 104°F (40°C)", "Haven't measured"),
		singleChoice("fever_pattern", "How has your fever been?",
			"Continuous", "Comes and goes", "Getting worse", "Getting better"),
		multiChoice("fever_symptoms", "Do you have any of these symptoms along with fever?",
			"Chills", "Body ache", "Sore throat", "Cough", "Headache", "None of these"),
	},
	CategoryHeadache: {
		singleChoice("headache_location", "Where is your headache located?",
			"Front of head", "Back of head", "One side", "Both sides", "Top of head"),
		singleChoice("headache_severity", "How severe is your headache (1-10)?", severityScale...),
		singleChoice("headache_type", "What does your headache feel like?",
			"Throbbing", "Constant ache", "Sharp pain", "Pressure"),
		multiChoice("headache_symptoms", "Do you have any of these with your headache?",
			"Nausea", "Vomiting", "Light sensitivity", "Neck stiffness", "Vision changes", "None of these"),
	},
	CategoryChestPain: {
		singleChoice("chest_location", "Where exactly is the chest pain?",
			"Center of chest", "Left side", "Right side", "Across whole chest"),
		singleChoice("chest_severity", "How severe is the chest pain (1-10)?", severityScale...),
		singleChoice("chest_nature", "What does the chest pain feel like?",
			"Sharp stabbing", "Dull ache", "Burning", "Pressure/Squeezing"),
		multiChoice("chest_symptoms", "Do you have any of these symptoms?",
			"Difficulty breathing", "Sweating", "Nausea", "Pain spreading to arm/jaw",
			"Dizziness", "None of these"),
	},
	CategoryStomachPain: {
		singleChoice("stomach_location", "Where is your stomach pain?",
			"Upper abdomen", "Lower abdomen", "Around navel", "Entire abdomen"),
		singleChoice("stomach_severity", "How severe is the pain (1-10)?", severityScale...),
		multiChoice("stomach_symptoms", "Do you have any of these symptoms?",
			"Nausea", "Vomiting", "Diarrhea", "Constipation", "Bloating", "None of these"),
	},
}

// SectionQuestions returns the questions of a generic section in order.
func SectionQuestions(id SectionID) ([]Question, error) {
	qs, ok := sections[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, id)
	}
	return qs, nil
}

// SymptomSection returns the symptom-specific questions for a category.
// CategoryNone yields an empty section.
func SymptomSection(cat Category) []Question {
	return symptomSections[cat]
}

// FixedQuestionCount is the number of questions across the generic sections.
func FixedQuestionCount() int {
	n := 0
	for _, id := range SectionOrder {
		n += len(sections[id])
	}
	return n
}

// FindQuestion looks a question up by id anywhere in the catalog.
func FindQuestion(id string) (Question, bool) {
	for _, qs := range sections {
		for _, q := range qs {
			if q.ID == id {
				return q, true
			}
		}
	}
	for _, qs := range symptomSections {
		for _, q := range qs {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}
