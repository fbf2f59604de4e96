package calc

import "testing"

func TestEstimateTransfer(t *testing.T) {
	tests := []struct {
		name          string
		size          string
		sizeUnit      FileSizeUnit
		speed         string
		speedUnit     SpeedUnit
		wantTime      string
		wantError     string
		wantSizeErr   string
		wantSpeedErr  string
		wantDisplayed string
	}{
		{
			name: "typical", size: "1", sizeUnit: TB, speed: "100", speedUnit: Mbps,
			wantTime: "24:26:00", wantDisplayed: "24:26:00",
		},
		{
			name: "sub-second transfer", size: "1", sizeUnit: KB, speed: "1", speedUnit: Gbps,
			wantTime: "00:00:00", wantDisplayed: "00:00:00",
		},
		{
			name: "lenient field text", size: "10 files", sizeUnit: MB, speed: "8Mbps", speedUnit: Mbps,
			wantTime: "00:00:10", wantDisplayed: "00:00:10",
		},
		{
			name: "empty form", sizeUnit: MB, speedUnit: Mbps,
			wantSizeErr: MsgEmpty, wantSpeedErr: MsgEmpty, wantDisplayed: Placeholder,
		},
		{
			name: "bad speed only", size: "3", sizeUnit: GB, speed: "fast", speedUnit: Mbps,
			wantSpeedErr: MsgNotANum, wantDisplayed: Placeholder,
		},
		{
			name: "infinite size", size: "Infinity", sizeUnit: GB, speed: "5", speedUnit: Mbps,
			wantError: MsgUnableToCalculate, wantDisplayed: MsgUnableToCalculate,
		},
		{
			name: "quotient underflows to zero", size: "1e-320", sizeUnit: KB, speed: "1e308", speedUnit: Gbps,
			wantError: MsgZeroSpeed, wantDisplayed: MsgZeroSpeed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := EstimateTransfer(tt.size, tt.sizeUnit, tt.speed, tt.speedUnit)
			if est.Time != tt.wantTime {
				t.Errorf("Time = %q, want %q", est.Time, tt.wantTime)
			}
			if est.Error != tt.wantError {
				t.Errorf("Error = %q, want %q", est.Error, tt.wantError)
			}
			if est.Validation.FileSize.Error != tt.wantSizeErr {
				t.Errorf("file size error = %q, want %q", est.Validation.FileSize.Error, tt.wantSizeErr)
			}
			if est.Validation.DownloadSpeed.Error != tt.wantSpeedErr {
				t.Errorf("speed error = %q, want %q", est.Validation.DownloadSpeed.Error, tt.wantSpeedErr)
			}
			if got := est.Display(); got != tt.wantDisplayed {
				t.Errorf("Display() = %q, want %q", got, tt.wantDisplayed)
			}
			if est.Ready() != (tt.wantTime != "") {
				t.Errorf("Ready() = %v", est.Ready())
			}
		})
	}
}
