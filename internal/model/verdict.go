package model

// Strength is the qualitative label assigned to an evaluated password
type Strength string

const (
	StrengthWeak       Strength = "Weak"
	StrengthModerate   Strength = "Moderate"
	StrengthStrong     Strength = "Strong"
	StrengthVeryStrong Strength = "Very Strong"
)

// Verdict is the complete result of evaluating one password.
// Errors are blocking validation failures; Warnings are advisory only.
// Both lists preserve rule-evaluation order.
type Verdict struct {
	Valid    bool     `json:"valid"`
	Score    int      `json:"score"`
	Strength Strength `json:"strength"`
	Entropy  float64  `json:"entropy"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// CharsetProfile records which character classes appear in a password
// and the resulting guessing-space size
type CharsetProfile struct {
	HasLower   bool
	HasUpper   bool
	HasDigit   bool
	HasSpecial bool
	Size       int
}

// ClassCount returns how many of the four character classes are present
func (p CharsetProfile) ClassCount() int {
	count := 0
	for _, present := range []bool{p.HasLower, p.HasUpper, p.HasDigit, p.HasSpecial} {
		if present {
			count++
		}
	}
	return count
}
