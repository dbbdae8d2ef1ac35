package catalog

import "strings"

// Category is a recognized symptom category.
type Category string

const (
	CategoryNone        Category = ""
	CategoryFever       Category = "fever"
	CategoryHeadache    Category = "headache"
	CategoryChestPain   Category = "chest_pain"
	CategoryStomachPain Category = "stomach_pain"
)

// classifierRules map categories to their trigger phrases. Evaluation order
// is fixed and the first matching category wins.
var classifierRules = []struct {
	category Category
	triggers []string
}{
	{CategoryFever, []string{"fever", "temperature", "hot"}},
	{CategoryHeadache, []string{"headache", "head pain", "migraine"}},
	{CategoryChestPain, []string{"chest pain", "heart", "breathing"}},
	{CategoryStomachPain, []string{"stomach", "abdom", "belly", "nausea"}},
}

// Classify maps a free-text chief complaint to a symptom category by
// case-insensitive substring match. Returns CategoryNone when no trigger
// phrase occurs.
func Classify(complaint string) Category {
	text := strings.ToLower(complaint)
	for _, rule := range classifierRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(text, trigger) {
				return rule.category
			}
		}
	}
	return CategoryNone
}
