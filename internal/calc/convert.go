package calc

// SizeToBits converts a file size to bits. The magnitude is not checked;
// callers validate input first.
func SizeToBits(magnitude float64, unit FileSizeUnit) float64 {
	return magnitude * unit.Bits()
}

// SpeedToBitsPerSecond converts a transfer rate to bits per second.
func SpeedToBitsPerSecond(magnitude float64, unit SpeedUnit) float64 {
	return magnitude * unit.BitsPerSecond()
}

// DurationSeconds returns how long transferring fileSize at speed takes.
// A zero speed gives +Inf (or NaN for a zero size); FormatDuration renders
// both as the sentinel.
func DurationSeconds(fileSize float64, fileSizeUnit FileSizeUnit, speed float64, speedUnit SpeedUnit) float64 {
	return SizeToBits(fileSize, fileSizeUnit) / SpeedToBitsPerSecond(speed, speedUnit)
}
