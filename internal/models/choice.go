package models

import "strings"

// Choice is the side a player votes for in a round
type Choice string

const (
	// ChoiceA is the first side
	ChoiceA Choice = "A"

	// ChoiceB is the second side
	ChoiceB Choice = "B"
)

// ParseChoice accepts "A", "a", "B" or "b"
func ParseChoice(s string) (Choice, bool) {
	switch strings.TrimSpace(s) {
	case "A", "a":
		return ChoiceA, true
	case "B", "b":
		return ChoiceB, true
	default:
		return "", false
	}
}

// IsValid reports whether the choice is A or B
func (c Choice) IsValid() bool {
	return c == ChoiceA || c == ChoiceB
}
