package calc

import (
	"math"
	"testing"
)

func TestValidateNumericInput(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantError string
	}{
		{name: "empty", input: "", wantError: MsgEmpty},
		{name: "blank", input: "   ", wantError: MsgEmpty},
		{name: "tabs and newlines", input: "\t\n", wantError: MsgEmpty},
		{name: "letters", input: "abc", wantError: MsgNotANum},
		{name: "lone dot", input: ".", wantError: MsgNotANum},
		{name: "lone sign", input: "-", wantError: MsgNotANum},
		{name: "lowercase infinity", input: "infinity", wantError: MsgNotANum},
		{name: "negative", input: "-5", wantError: MsgNotAbove},
		{name: "zero", input: "0", wantError: MsgNotAbove},
		{name: "negative zero", input: "-0.0", wantError: MsgNotAbove},
		{name: "hex reads as zero", input: "0x10", wantError: MsgNotAbove},
		{name: "negative infinity", input: "-Infinity", wantError: MsgNotAbove},
		{name: "integer", input: "5", wantValid: true},
		{name: "decimal", input: "0.25", wantValid: true},
		{name: "leading dot", input: ".5", wantValid: true},
		{name: "padded", input: "  42  ", wantValid: true},
		{name: "trailing garbage", input: "5abc", wantValid: true},
		{name: "exponent", input: "1e3", wantValid: true},
		{name: "infinity", input: "Infinity", wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateNumericInput(tt.input)
			if got.IsValid != tt.wantValid {
				t.Errorf("ValidateNumericInput(%q).IsValid = %v, want %v", tt.input, got.IsValid, tt.wantValid)
			}
			if got.Error != tt.wantError {
				t.Errorf("ValidateNumericInput(%q).Error = %q, want %q", tt.input, got.Error, tt.wantError)
			}
		})
	}
}

func TestValidateCalculatorInputs(t *testing.T) {
	t.Run("both valid", func(t *testing.T) {
		v := ValidateCalculatorInputs("10", "100")
		if !v.AllValid || !v.FileSize.IsValid || !v.DownloadSpeed.IsValid {
			t.Fatalf("expected all valid, got %+v", v)
		}
	})

	t.Run("one invalid field", func(t *testing.T) {
		v := ValidateCalculatorInputs("10", "abc")
		if v.AllValid {
			t.Fatal("AllValid should be false")
		}
		if v.FileSize.Error != "" {
			t.Errorf("file size error = %q, want none", v.FileSize.Error)
		}
		if v.DownloadSpeed.Error != MsgNotANum {
			t.Errorf("speed error = %q, want %q", v.DownloadSpeed.Error, MsgNotANum)
		}
	})

	t.Run("both invalid are both reported", func(t *testing.T) {
		v := ValidateCalculatorInputs("", "-1")
		if v.AllValid {
			t.Fatal("AllValid should be false")
		}
		if v.FileSize.Error != MsgEmpty {
			t.Errorf("file size error = %q, want %q", v.FileSize.Error, MsgEmpty)
		}
		if v.DownloadSpeed.Error != MsgNotAbove {
			t.Errorf("speed error = %q, want %q", v.DownloadSpeed.Error, MsgNotAbove)
		}
	})

	t.Run("repeatable", func(t *testing.T) {
		if a, b := ValidateCalculatorInputs("x", "2"), ValidateCalculatorInputs("x", "2"); a != b {
			t.Errorf("results differ: %+v vs %+v", a, b)
		}
	})
}

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{"5abc", 5},
		{"  3.5 ", 3.5},
		{".5", 0.5},
		{"5.", 5},
		{"-2", -2},
		{"+7", 7},
		{"1e3x", 1000},
		{"2E-2", 0.02},
		{"1e", 1},
		{"1e+", 1},
		{"0x10", 0},
		{"12,5", 12},
		{"1_000", 1},
		{"\uFEFF4", 4},
		{"Infinityx", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLeadingFloat(tt.in); got != tt.want {
				t.Errorf("ParseLeadingFloat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for _, in := range []string{"", "abc", ".", "-", "+.", "e5", "infinity", "NaN"} {
		if got := ParseLeadingFloat(in); !math.IsNaN(got) {
			t.Errorf("ParseLeadingFloat(%q) = %v, want NaN", in, got)
		}
	}
}
