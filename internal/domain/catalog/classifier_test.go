package catalog

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		complaint string
		want      Category
	}{
		{"I have had a severe headache since yesterday", CategoryHeadache},
		{"nothing unusual", CategoryNone},
		{"Running a FEVER since last night", CategoryFever},
		{"my temperature keeps rising", CategoryFever},
		{"sharp chest pain when I climb stairs", CategoryChestPain},
		{"trouble breathing after walking", CategoryChestPain},
		{"my heart is racing", CategoryChestPain},
		{"bad migraine with light sensitivity", CategoryHeadache},
		{"abdominal cramps after eating", CategoryStomachPain},
		{"my belly hurts", CategoryStomachPain},
		{"constant nausea all morning", CategoryStomachPain},
		{"", CategoryNone},
	}
	for _, tt := range tests {
		if got := Classify(tt.complaint); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.complaint, got, tt.want)
		}
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Mentions both fever and headache; fever is evaluated first.
	if got := Classify("headache and a hot forehead, probably fever"); got != CategoryFever {
		t.Errorf("expected fever to win over headache, got %q", got)
	}
}
