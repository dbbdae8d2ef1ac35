package catalog

import "fmt"

// Kind identifies how a question is answered.
type Kind string

const (
	// KindSingleChoice takes exactly one of the listed options.
	KindSingleChoice Kind = "single_choice"
	// KindMultiChoice takes a set of the listed options with toggle semantics.
	KindMultiChoice Kind = "multi_choice"
	// KindFreeText takes unconstrained text up to CharLimit runes.
	KindFreeText Kind = "free_text"
	// KindNumericChoice takes one of a list of numeric range options.
	KindNumericChoice Kind = "numeric_choice"
)

// FreeTextLimit is the rune cap applied to free-text answers.
const FreeTextLimit = 1000

// Question is one catalog entry. Only the fields relevant to its Kind are
// populated: Options for the choice kinds, CharLimit for free text.
type Question struct {
	ID        string   `json:"id"`
	Prompt    string   `json:"prompt"`
	Kind      Kind     `json:"kind"`
	Options   []string `json:"options,omitempty"`
	CharLimit int      `json:"char_limit,omitempty"`
}

func singleChoice(id, prompt string, options ...string) Question {
	return Question{ID: id, Prompt: prompt, Kind: KindSingleChoice, Options: options}
}

func multiChoice(id, prompt string, options ...string) Question {
	return Question{ID: id, Prompt: prompt, Kind: KindMultiChoice, Options: options}
}

func numericChoice(id, prompt string, options ...string) Question {
	return Question{ID: id, Prompt: prompt, Kind: KindNumericChoice, Options: options}
}

func freeText(id, prompt string) Question {
	return Question{ID: id, Prompt: prompt, Kind: KindFreeText, CharLimit: FreeTextLimit}
}

// HasOption reports whether v is one of the question's options.
func (q Question) HasOption(v string) bool {
	for _, o := range q.Options {
		if o == v {
			return true
		}
	}
	return false
}

// CheckAnswer validates a raw answer value against the question's kind.
func (q Question) CheckAnswer(v string) error {
	switch q.Kind {
	case KindFreeText:
		if len([]rune(v)) > q.CharLimit {
			return fmt.Errorf("answer to %s exceeds %d characters", q.ID, q.CharLimit)
		}
		return nil
	case KindSingleChoice, KindMultiChoice, KindNumericChoice:
		if !q.HasOption(v) {
			return fmt.Errorf("answer %q is not an option for question %s", v, q.ID)
		}
		return nil
	default:
		return fmt.Errorf("question %s has unknown kind %q", q.ID, q.Kind)
	}
}
