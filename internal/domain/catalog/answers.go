package catalog

import (
	"encoding/json"
	"strings"
)

// Value is one recorded answer. Exactly one representation is used: Text for
// free-text, numeric and single-choice answers, Selected for multi-choice
// answers. It marshals as a bare JSON string or a string array accordingly.
type Value struct {
	Text     string
	Selected []string
}

// IsList reports whether the value carries a multi-choice selection set.
func (v Value) IsList() bool { return v.Selected != nil }

// Has reports whether option is in the selection set.
func (v Value) Has(option string) bool {
	for _, o := range v.Selected {
		if o == option {
			return true
		}
	}
	return false
}

// Contains reports whether sub occurs, case-insensitively, in the text or in
// any selected option.
func (v Value) Contains(sub string) bool {
	sub = strings.ToLower(sub)
	if strings.Contains(strings.ToLower(v.Text), sub) {
		return true
	}
	for _, o := range v.Selected {
		if strings.Contains(strings.ToLower(o), sub) {
			return true
		}
	}
	return false
}

// String renders the value for summaries and reports.
func (v Value) String() string {
	if v.IsList() {
		return strings.Join(v.Selected, ", ")
	}
	return v.Text
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsList() {
		return json.Marshal(v.Selected)
	}
	return json.Marshal(v.Text)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Value{Text: s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	if list == nil {
		list = []string{}
	}
	*v = Value{Selected: list}
	return nil
}

// AnswerRecord maps question ids to recorded answers.
type AnswerRecord map[string]Value

// Get returns the answer for a question id.
func (r AnswerRecord) Get(id string) (Value, bool) {
	v, ok := r[id]
	return v, ok
}

// Text returns the textual answer for id, or "" when unanswered.
func (r AnswerRecord) Text(id string) string { return r[id].Text }

// HasOption reports whether the answer for id includes the exact option.
func (r AnswerRecord) HasOption(id, option string) bool { return r[id].Has(option) }

// Contains reports whether the answer for id contains sub, case-insensitively.
func (r AnswerRecord) Contains(id, sub string) bool {
	v, ok := r[id]
	return ok && v.Contains(sub)
}

// SetText records a text answer, replacing any previous value.
func (r AnswerRecord) SetText(id, text string) { r[id] = Value{Text: text} }

// Toggle flips option in the selection set for id. Selecting an option that is
// already present removes it.
func (r AnswerRecord) Toggle(id, option string) {
	v := r[id]
	for i, o := range v.Selected {
		if o == option {
			v.Selected = append(v.Selected[:i:i], v.Selected[i+1:]...)
			r[id] = v
			return
		}
	}
	v.Selected = append(v.Selected[:len(v.Selected):len(v.Selected)], option)
	r[id] = v
}

// Clone returns a deep copy of the record.
func (r AnswerRecord) Clone() AnswerRecord {
	out := make(AnswerRecord, len(r))
	for id, v := range r {
		if v.Selected != nil {
			sel := make([]string, len(v.Selected))
			copy(sel, v.Selected)
			v.Selected = sel
		}
		out[id] = v
	}
	return out
}
