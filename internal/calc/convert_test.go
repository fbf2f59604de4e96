package calc

import (
	"math"
	"regexp"
	"testing"
)

var durationPattern = regexp.MustCompile(`^\d{2,}:\d{2}:\d{2}$`)

func TestSizeToBits(t *testing.T) {
	if got := SizeToBits(1, MB); got != 8388608 {
		t.Errorf("SizeToBits(1, MB) = %v, want 8388608", got)
	}
	if got := SizeToBits(0.5, KB); got != 4096 {
		t.Errorf("SizeToBits(0.5, KB) = %v, want 4096", got)
	}
	// No validation at this level: negatives pass straight through.
	if got := SizeToBits(-2, KB); got != -16384 {
		t.Errorf("SizeToBits(-2, KB) = %v, want -16384", got)
	}
}

func TestSpeedToBitsPerSecond(t *testing.T) {
	if got := SpeedToBitsPerSecond(56, Kbps); got != 56000 {
		t.Errorf("SpeedToBitsPerSecond(56, Kbps) = %v, want 56000", got)
	}
	if got := SpeedToBitsPerSecond(0, Gbps); got != 0 {
		t.Errorf("SpeedToBitsPerSecond(0, Gbps) = %v, want 0", got)
	}
}

func TestDurationSeconds(t *testing.T) {
	tests := []struct {
		name      string
		size      float64
		sizeUnit  FileSizeUnit
		speed     float64
		speedUnit SpeedUnit
		check     func(float64) bool
	}{
		{
			name: "1 TB at 100 Mbps", size: 1, sizeUnit: TB, speed: 100, speedUnit: Mbps,
			check: func(s float64) bool { return math.Abs(s-87960.94) < 0.1 },
		},
		{
			name: "10 TB at 1 Gbps", size: 10, sizeUnit: TB, speed: 1, speedUnit: Gbps,
			check: func(s float64) bool { return math.Abs(s-87960.94) < 0.1 },
		},
		{
			name: "1 MB on dial-up", size: 1, sizeUnit: MB, speed: 56, speedUnit: Kbps,
			check: func(s float64) bool { return math.Abs(s-149.8) < 0.5 },
		},
		{
			name: "1 GB at 10 Gbps is under a second", size: 1, sizeUnit: GB, speed: 10, speedUnit: Gbps,
			check: func(s float64) bool { return s > 0 && s < 1 },
		},
		{
			name: "1 GB at 1 Kbps takes days", size: 1, sizeUnit: GB, speed: 1, speedUnit: Kbps,
			check: func(s float64) bool { return s > 86400 },
		},
		{
			name: "10 TB at 100 Gbps is under 15 minutes", size: 10, sizeUnit: TB, speed: 100, speedUnit: Gbps,
			check: func(s float64) bool { return s > 0 && s < 900 },
		},
		{
			name: "1000 TB at 1 Kbps stays finite", size: 1000, sizeUnit: TB, speed: 1, speedUnit: Kbps,
			check: func(s float64) bool { return !math.IsInf(s, 0) && s > 0 },
		},
		{
			name: "tiny speed stays finite", size: 1, sizeUnit: MB, speed: 0.001, speedUnit: Kbps,
			check: func(s float64) bool { return !math.IsInf(s, 0) && s > 0 },
		},
		{
			name: "zero speed is +Inf", size: 1, sizeUnit: MB, speed: 0, speedUnit: Mbps,
			check: func(s float64) bool { return math.IsInf(s, 1) },
		},
		{
			name: "zero over zero is NaN", size: 0, sizeUnit: MB, speed: 0, speedUnit: Mbps,
			check: math.IsNaN,
		},
		{
			name: "negative size stays negative", size: -1, sizeUnit: MB, speed: 1, speedUnit: Mbps,
			check: func(s float64) bool { return s < 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DurationSeconds(tt.size, tt.sizeUnit, tt.speed, tt.speedUnit)
			if !tt.check(got) {
				t.Errorf("DurationSeconds(%v, %s, %v, %s) = %v", tt.size, tt.sizeUnit, tt.speed, tt.speedUnit, got)
			}
		})
	}
}

func TestDurationsFormatToPattern(t *testing.T) {
	for _, size := range FileSizeUnits {
		for _, speed := range SpeedUnits {
			for _, magnitude := range []float64{0.001, 1, 1.23456789, 500, 1000} {
				secs := DurationSeconds(magnitude, size, 9.87654321, speed)
				if got := FormatDuration(secs); !durationPattern.MatchString(got) {
					t.Errorf("FormatDuration(DurationSeconds(%v, %s, 9.87, %s)) = %q", magnitude, size, speed, got)
				}
			}
		}
	}
}

func TestDurationSecondsIsDeterministic(t *testing.T) {
	a := DurationSeconds(1.5, GB, 3.3, Mbps)
	b := DurationSeconds(1.5, GB, 3.3, Mbps)
	if math.Float64bits(a) != math.Float64bits(b) {
		t.Errorf("repeated calls differ: %v vs %v", a, b)
	}
}
