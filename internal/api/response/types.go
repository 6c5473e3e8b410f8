package response

import (
	"github.com/passgate/passgate/internal/model"
)

// Verdict represents an evaluation result in API responses.
// Field order matches the engine's output contract.
type Verdict struct {
	Valid    bool     `json:"valid"`
	Score    int      `json:"score"`
	Strength string   `json:"strength"`
	Entropy  float64  `json:"entropy"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// VerdictFromModel converts a model.Verdict to a response Verdict
func VerdictFromModel(v *model.Verdict) Verdict {
	return Verdict{
		Valid:    v.Valid,
		Score:    v.Score,
		Strength: string(v.Strength),
		Entropy:  v.Entropy,
		Errors:   v.Errors,
		Warnings: v.Warnings,
	}
}

// Policy describes the active evaluation limits and denylist sizes
type Policy struct {
	MinLength       int `json:"min_length"`
	MaxLength       int `json:"max_length"`
	CommonPasswords int `json:"common_passwords"`
	KeyboardWalks   int `json:"keyboard_walks"`
}
