// Package calc holds the download time arithmetic: unit conversion, the
// HH:MM:SS formatter and the input validation rules that gate them.
package calc

import (
	"errors"
	"fmt"
	"strings"
)

// FileSizeUnit is a binary-prefixed byte unit.
type FileSizeUnit string

// SpeedUnit is a decimal-prefixed bit rate unit.
type SpeedUnit string

const (
	KB FileSizeUnit = "KB"
	MB FileSizeUnit = "MB"
	GB FileSizeUnit = "GB"
	TB FileSizeUnit = "TB"
)

const (
	Kbps SpeedUnit = "Kbps"
	Mbps SpeedUnit = "Mbps"
	Gbps SpeedUnit = "Gbps"
)

const (
	bitsPerByte = 8
	binaryStep  = 1024
	decimalStep = 1000
)

// ErrUnknownUnit is returned when a unit name matches no known unit.
var ErrUnknownUnit = errors.New("unknown unit")

var (
	// FileSizeUnits lists size units in display order.
	FileSizeUnits = []FileSizeUnit{KB, MB, GB, TB}
	// SpeedUnits lists speed units in display order.
	SpeedUnits = []SpeedUnit{Kbps, Mbps, Gbps}

	fileSizeToBits = map[FileSizeUnit]float64{
		KB: bitsPerByte * binaryStep,
		MB: bitsPerByte * binaryStep * binaryStep,
		GB: bitsPerByte * binaryStep * binaryStep * binaryStep,
		TB: bitsPerByte * binaryStep * binaryStep * binaryStep * binaryStep,
	}

	speedToBps = map[SpeedUnit]float64{
		Kbps: decimalStep,
		Mbps: decimalStep * decimalStep,
		Gbps: decimalStep * decimalStep * decimalStep,
	}
)

// Bits returns how many bits one unit holds. Unknown units yield 0.
func (u FileSizeUnit) Bits() float64 { return fileSizeToBits[u] }

// Valid reports whether u is one of FileSizeUnits.
func (u FileSizeUnit) Valid() bool {
	_, ok := fileSizeToBits[u]
	return ok
}

func (u FileSizeUnit) String() string { return string(u) }

// BitsPerSecond returns the bit rate of one unit. Unknown units yield 0.
func (u SpeedUnit) BitsPerSecond() float64 { return speedToBps[u] }

// Valid reports whether u is one of SpeedUnits.
func (u SpeedUnit) Valid() bool {
	_, ok := speedToBps[u]
	return ok
}

func (u SpeedUnit) String() string { return string(u) }

// ParseFileSizeUnit resolves a unit name case-insensitively ("gb", "GB").
func ParseFileSizeUnit(s string) (FileSizeUnit, error) {
	name := strings.TrimSpace(s)
	for _, u := range FileSizeUnits {
		if strings.EqualFold(name, string(u)) {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: file size unit %q (want one of %s)", ErrUnknownUnit, s, joinUnits(FileSizeUnits))
}

// ParseSpeedUnit resolves a unit name case-insensitively ("mbps", "Mbps").
func ParseSpeedUnit(s string) (SpeedUnit, error) {
	name := strings.TrimSpace(s)
	for _, u := range SpeedUnits {
		if strings.EqualFold(name, string(u)) {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: speed unit %q (want one of %s)", ErrUnknownUnit, s, joinUnits(SpeedUnits))
}

func joinUnits[T ~string](units []T) string {
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = string(u)
	}
	return strings.Join(names, ", ")
}
