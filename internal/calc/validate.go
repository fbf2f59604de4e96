package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Validation messages shown next to an input field.
const (
	MsgEmpty    = "Please enter a value"
	MsgNotANum  = "Please enter a valid number"
	MsgNotAbove = "Value must be greater than zero"
)

// ValidationResult is the verdict for one input field. Error is empty when
// IsValid is true.
type ValidationResult struct {
	IsValid bool   `json:"is_valid" yaml:"is_valid"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// CalculatorValidation holds the verdicts for both calculator fields.
type CalculatorValidation struct {
	FileSize      ValidationResult `json:"file_size" yaml:"file_size"`
	DownloadSpeed ValidationResult `json:"download_speed" yaml:"download_speed"`
	AllValid      bool             `json:"all_valid" yaml:"all_valid"`
}

// ValidateNumericInput checks raw field text: it must be non-blank, start
// with a number, and that number must be greater than zero. Trailing text
// after the number is ignored, so "5abc" is valid.
func ValidateNumericInput(raw string) ValidationResult {
	if strings.TrimFunc(raw, isSpace) == "" {
		return ValidationResult{Error: MsgEmpty}
	}

	n := ParseLeadingFloat(raw)
	if math.IsNaN(n) {
		return ValidationResult{Error: MsgNotANum}
	}

	if n <= 0 {
		return ValidationResult{Error: MsgNotAbove}
	}

	return ValidationResult{IsValid: true}
}

// ValidateCalculatorInputs validates both fields independently so that both
// messages can be shown at once.
func ValidateCalculatorInputs(fileSizeText, speedText string) CalculatorValidation {
	fileSize := ValidateNumericInput(fileSizeText)
	speed := ValidateNumericInput(speedText)

	return CalculatorValidation{
		FileSize:      fileSize,
		DownloadSpeed: speed,
		AllValid:      fileSize.IsValid && speed.IsValid,
	}
}

// ParseLeadingFloat parses the longest numeric prefix of s after leading
// whitespace. It accepts an optional sign, "Infinity", digits with an
// optional fraction and an optional exponent. When no digits are found it
// returns NaN. Values too large for float64 become ±Inf.
func ParseLeadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, isSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}

	// The exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			i = j
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(r rune) bool { return unicode.IsSpace(r) || r == '\uFEFF' }
