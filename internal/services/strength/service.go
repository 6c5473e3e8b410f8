package strength

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/passgate/passgate/internal/model"
	"github.com/passgate/passgate/internal/services/denylist"
)

// Policy holds the tunable limits of the evaluator.
// The zero value is replaced with DefaultPolicy by New.
type Policy struct {
	MinLength int
	MaxLength int
}

// DefaultPolicy returns the standard evaluation limits
func DefaultPolicy() Policy {
	return Policy{
		MinLength: 12,
		MaxLength: 128,
	}
}

// Score deltas and thresholds of the rule battery
const (
	longLengthAt    = 16
	lowEntropyBits  = 50
	goodEntropyBits = 60
	highEntropyBits = 80
)

// Validation failure and warning messages
const (
	msgNoUppercase = "Must contain at least one uppercase letter (A-Z)."
	msgNoLowercase = "Must contain at least one lowercase letter (a-z)."
	msgNoDigit     = "Must contain at least one digit (0-9)."
	msgNoSpecial   = "Must contain at least one special character (!@#$%^&* etc.)."
	msgCommon      = "Password is too common. Please choose a more unique password."
	msgRepeated    = "Must not contain 3 or more repeated consecutive characters (e.g. 'aaa', '111')."
	msgSequential  = "Avoid sequential characters (e.g. 'abc', '123', 'cba')."
	msgWalk        = "Avoid keyboard walk patterns (e.g. 'qwerty', 'asdf')."
	msgEdgeDigit   = "Avoid starting or ending with a digit for better strength."
	msgWhitespace  = "Must not contain whitespace characters."
	msgFewClasses  = "Must use at least 3 different character classes."
)

func msgTooShort(minLength int) string {
	return fmt.Sprintf("Must be at least %d characters long.", minLength)
}

func msgTooLong(maxLength int) string {
	return fmt.Sprintf("Must not exceed %d characters.", maxLength)
}

func msgLowEntropy(entropy float64) string {
	return fmt.Sprintf("Password entropy too low (%.1f bits). Add more variety.", entropy)
}

// Service evaluates password strength against a fixed, ordered rule battery
type Service struct {
	denylist *denylist.Service
	policy   Policy
}

// New creates a new strength evaluation service.
// A zero-value policy is replaced with DefaultPolicy.
func New(denylist *denylist.Service, policy Policy) *Service {
	if policy.MinLength == 0 && policy.MaxLength == 0 {
		policy = DefaultPolicy()
	}
	return &Service{
		denylist: denylist,
		policy:   policy,
	}
}

// Policy returns the active evaluation limits
func (s *Service) Policy() Policy {
	return s.policy
}

// Evaluate runs the full rule battery over password and returns the verdict.
// Evaluation is deterministic and touches no shared mutable state, so it is
// safe to call concurrently.
func (s *Service) Evaluate(password string) *model.Verdict {
	runes := []rune(password)
	profile, entropy := estimate(runes)

	verdict := &model.Verdict{
		Strength: model.StrengthWeak,
		Errors:   []string{},
		Warnings: []string{},
	}

	// The empty password short-circuits to a defined failing result:
	// every length, class, diversity and entropy requirement is unmet
	// and no bonus scoring applies.
	if len(runes) == 0 {
		verdict.Errors = append(verdict.Errors,
			msgTooShort(s.policy.MinLength),
			msgNoUppercase,
			msgNoLowercase,
			msgNoDigit,
			msgNoSpecial,
			msgFewClasses,
			msgLowEntropy(0),
		)
		return verdict
	}

	score := 0

	// 1. Minimum length, with a graded bonus above the minimum
	switch {
	case len(runes) < s.policy.MinLength:
		verdict.Errors = append(verdict.Errors, msgTooShort(s.policy.MinLength))
	case len(runes) >= longLengthAt:
		score += 20
	default:
		score += 10
	}

	// 2. Maximum length guard
	if len(runes) > s.policy.MaxLength {
		verdict.Errors = append(verdict.Errors, msgTooLong(s.policy.MaxLength))
	}

	// 3. Uppercase letter
	if !profile.HasUpper {
		verdict.Errors = append(verdict.Errors, msgNoUppercase)
	} else {
		score += 10
	}

	// 4. Lowercase letter
	if !profile.HasLower {
		verdict.Errors = append(verdict.Errors, msgNoLowercase)
	} else {
		score += 10
	}

	// 5. Digit
	if !profile.HasDigit {
		verdict.Errors = append(verdict.Errors, msgNoDigit)
	} else {
		score += 10
	}

	// 6. Special character
	if !profile.HasSpecial {
		verdict.Errors = append(verdict.Errors, msgNoSpecial)
	} else {
		score += 15
	}

	// 7. Multiple special characters bonus
	if countSpecials(runes) >= 2 {
		score += 5
	}

	// 8. Common passwords denylist
	if s.denylist.Contains(password) {
		verdict.Errors = append(verdict.Errors, msgCommon)
	}

	// 9. Repeated consecutive characters (e.g. aaa, 111)
	if hasRepeatedRun(runes) {
		verdict.Errors = append(verdict.Errors, msgRepeated)
	} else {
		score += 5
	}

	// 10. Sequential characters: ascending on the lowercased password,
	// descending on the original. Deduction floors at zero immediately.
	if hasSequentialRun([]rune(strings.ToLower(password)), 1) || hasSequentialRun(runes, -1) {
		verdict.Warnings = append(verdict.Warnings, msgSequential)
		score = max(0, score-5)
	}

	// 11. Keyboard walk patterns, first match only
	if _, ok := s.denylist.MatchWalk(password); ok {
		verdict.Warnings = append(verdict.Warnings, msgWalk)
		score = max(0, score-10)
	}

	// 12. Starts/ends with a digit
	if isDigit(runes[0]) || isDigit(runes[len(runes)-1]) {
		verdict.Warnings = append(verdict.Warnings, msgEdgeDigit)
	}

	// 13. Whitespace not allowed
	if strings.IndexFunc(password, unicode.IsSpace) >= 0 {
		verdict.Errors = append(verdict.Errors, msgWhitespace)
	}

	// 14. Single character class. Redundant with rules 3-6 today, but kept
	// as an independent safeguard per the diversity requirement.
	if profile.ClassCount() == 1 {
		verdict.Errors = append(verdict.Errors, msgFewClasses)
	}

	// 15. Entropy threshold, compared against the unrounded estimate
	switch {
	case entropy < lowEntropyBits:
		verdict.Errors = append(verdict.Errors, msgLowEntropy(entropy))
	case entropy >= highEntropyBits:
		score += 25
	case entropy >= goodEntropyBits:
		score += 15
	default:
		score += 5
	}

	verdict.Score = min(100, max(0, score))
	verdict.Valid = len(verdict.Errors) == 0
	verdict.Strength = strengthLabel(verdict.Valid, verdict.Score)
	verdict.Entropy = math.Round(entropy*100) / 100

	return verdict
}

// strengthLabel maps validity and score to the qualitative label
func strengthLabel(valid bool, score int) model.Strength {
	switch {
	case !valid:
		return model.StrengthWeak
	case score >= 85:
		return model.StrengthVeryStrong
	case score >= 65:
		return model.StrengthStrong
	case score >= 45:
		return model.StrengthModerate
	default:
		return model.StrengthWeak
	}
}

func countSpecials(runes []rune) int {
	count := 0
	for _, r := range runes {
		if isSpecial(r) {
			count++
		}
	}
	return count
}

// hasRepeatedRun reports whether any character appears 3 or more times
// consecutively
func hasRepeatedRun(runes []rune) bool {
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// hasSequentialRun reports whether runes contains 3 consecutive characters
// whose code points differ by exactly step
func hasSequentialRun(runes []rune, step rune) bool {
	for i := 0; i+2 < len(runes); i++ {
		if runes[i+1]-runes[i] == step && runes[i+2]-runes[i+1] == step {
			return true
		}
	}
	return false
}

// Interface for dependency injection
type ServiceInterface interface {
	Evaluate(password string) *model.Verdict
	Policy() Policy
}

var _ ServiceInterface = (*Service)(nil)
