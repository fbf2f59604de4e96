package calc

import (
	"fmt"
	"math"
)

// ZeroDuration is returned for any duration that cannot be displayed.
const ZeroDuration = "00:00:00"

// Placeholder is shown by front ends before there is anything to display.
const Placeholder = "--:--:--"

// FormatDuration renders seconds as HH:MM:SS, truncating fractions.
// Hours grow past two digits ("100:00:00"). NaN, infinities and negative
// values all yield ZeroDuration.
func FormatDuration(seconds float64) string {
	// seconds <= 0 also keeps negative zero from printing as "-0".
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return ZeroDuration
	}

	hours := math.Floor(seconds / 3600)
	minutes := math.Floor(math.Mod(seconds, 3600) / 60)
	secs := math.Floor(math.Mod(seconds, 60))

	return fmt.Sprintf("%02.0f:%02.0f:%02.0f", hours, minutes, secs)
}
