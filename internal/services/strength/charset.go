package strength

import (
	"math"
	"strings"

	"github.com/passgate/passgate/internal/model"
)

// The fixed set of ASCII punctuation recognized as the special class.
// Anything outside the four classes counts toward length but not charset size.
const specialChars = "!@#$%^&*(),.?\":{}|<>_-+=[]\\;'/`~"

// Per-class contributions to the guessing-space size
const (
	lowerSize   = 26
	upperSize   = 26
	digitSize   = 10
	specialSize = 32
)

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpecial(r rune) bool {
	return strings.ContainsRune(specialChars, r)
}

// estimate classifies which character classes appear in password and
// computes the log2 entropy estimate: length × log2(charset size).
// A password with no recognized characters has zero entropy.
func estimate(password []rune) (model.CharsetProfile, float64) {
	var profile model.CharsetProfile

	for _, r := range password {
		switch {
		case isLower(r):
			profile.HasLower = true
		case isUpper(r):
			profile.HasUpper = true
		case isDigit(r):
			profile.HasDigit = true
		case isSpecial(r):
			profile.HasSpecial = true
		}
	}

	if profile.HasLower {
		profile.Size += lowerSize
	}
	if profile.HasUpper {
		profile.Size += upperSize
	}
	if profile.HasDigit {
		profile.Size += digitSize
	}
	if profile.HasSpecial {
		profile.Size += specialSize
	}

	if profile.Size == 0 {
		return profile, 0.0
	}

	return profile, float64(len(password)) * math.Log2(float64(profile.Size))
}
