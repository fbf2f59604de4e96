package utils

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatBits renders a bit count as bytes with binary units, e.g. "1.0 TiB".
func FormatBits(bits float64) string {
	if math.IsNaN(bits) || math.IsInf(bits, 0) || bits < 0 {
		return "unknown"
	}
	bytes := bits / 8
	if bytes >= math.MaxUint64 {
		return "unknown"
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatBitRate renders bits per second with SI prefixes, e.g. "100 Mbit/s".
func FormatBitRate(bitsPerSecond float64) string {
	if math.IsNaN(bitsPerSecond) || math.IsInf(bitsPerSecond, 0) || bitsPerSecond < 0 {
		return "unknown"
	}
	return humanize.SIWithDigits(bitsPerSecond, 2, "bit/s")
}

// FormatDuration formats seconds into a human-readable duration string.
// Examples: "5s", "2m 30s", "1h 15m", "3d 4h"
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "unknown"
	}

	if seconds >= math.MaxInt64 {
		return "forever"
	}
	totalSecs := int64(seconds)

	if totalSecs < 60 {
		return fmt.Sprintf("%ds", totalSecs)
	}

	minutes := totalSecs / 60
	secs := totalSecs % 60

	if minutes < 60 {
		if secs == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm %ds", minutes, secs)
	}

	hours := minutes / 60
	mins := minutes % 60

	if hours < 24 {
		if mins == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh %dm", hours, mins)
	}

	days := hours / 24
	hrs := hours % 24
	if hrs == 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dd %dh", days, hrs)
}
