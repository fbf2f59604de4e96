package calc

import "math"

// Result messages for inputs that validate but cannot produce a time.
const (
	MsgUnableToCalculate = "Unable to calculate. Please check your inputs"
	MsgZeroSpeed         = "Download speed cannot be zero"
)

// Estimate is everything a front end needs to render one calculator state.
type Estimate struct {
	Validation CalculatorValidation `json:"validation" yaml:"validation"`
	// Seconds is only meaningful when Time is set.
	Seconds float64 `json:"seconds" yaml:"seconds"`
	Time    string  `json:"time,omitempty" yaml:"time,omitempty"`
	Error   string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Ready reports whether the estimate carries a displayable time.
func (e Estimate) Ready() bool { return e.Time != "" }

// Display returns the time, the result error, or Placeholder.
func (e Estimate) Display() string {
	switch {
	case e.Error != "":
		return e.Error
	case e.Time != "":
		return e.Time
	default:
		return Placeholder
	}
}

// EstimateTransfer validates both fields and, only when both pass, derives
// the formatted transfer time.
func EstimateTransfer(fileSizeText string, fileSizeUnit FileSizeUnit, speedText string, speedUnit SpeedUnit) Estimate {
	est := Estimate{Validation: ValidateCalculatorInputs(fileSizeText, speedText)}
	if !est.Validation.AllValid {
		return est
	}

	seconds := DurationSeconds(ParseLeadingFloat(fileSizeText), fileSizeUnit, ParseLeadingFloat(speedText), speedUnit)

	switch {
	case math.IsNaN(seconds) || math.IsInf(seconds, 0):
		est.Error = MsgUnableToCalculate
	case seconds == 0:
		est.Error = MsgZeroSpeed
	default:
		est.Seconds = seconds
		est.Time = FormatDuration(seconds)
	}
	return est
}
