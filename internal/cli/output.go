package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Verdict:
		o.printVerdict(v)
	case Policy:
		o.printPolicy(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Verdict response type (matches API)
type Verdict struct {
	Valid    bool     `json:"valid"`
	Score    int      `json:"score"`
	Strength string   `json:"strength"`
	Entropy  float64  `json:"entropy"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Policy response type
type Policy struct {
	MinLength       int `json:"min_length"`
	MaxLength       int `json:"max_length"`
	CommonPasswords int `json:"common_passwords"`
	KeyboardWalks   int `json:"keyboard_walks"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printVerdict(v Verdict) {
	validStr := "no"
	if v.Valid {
		validStr = "yes"
	}
	fmt.Printf("Valid: %s\n", validStr)
	fmt.Printf("Score: %d/100\n", v.Score)
	fmt.Printf("Strength: %s\n", v.Strength)
	fmt.Printf("Entropy: %.2f bits\n", v.Entropy)

	if len(v.Errors) > 0 {
		fmt.Printf("Errors (%d):\n", len(v.Errors))
		for _, e := range v.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
	if len(v.Warnings) > 0 {
		fmt.Printf("Warnings (%d):\n", len(v.Warnings))
		for _, w := range v.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}

func (o *Output) printPolicy(p Policy) {
	fmt.Printf("Min Length: %d\n", p.MinLength)
	fmt.Printf("Max Length: %d\n", p.MaxLength)
	fmt.Printf("Common Passwords: %d\n", p.CommonPasswords)
	fmt.Printf("Keyboard Walks: %d\n", p.KeyboardWalks)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
