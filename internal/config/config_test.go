package config

import "testing"

func TestSanitizeRepairsOscillatorValues(t *testing.T) {
	tests := []struct {
		name string
		in   OscillatorConfig
		want OscillatorConfig
	}{
		{
			name: "valid values untouched",
			in:   OscillatorConfig{RateHz: 0.5, DepthPercent: 60, CapPercent: 75},
			want: OscillatorConfig{RateHz: 0.5, DepthPercent: 60, CapPercent: 75},
		},
		{
			name: "zero rate restored to default",
			in:   OscillatorConfig{RateHz: 0, DepthPercent: 80, CapPercent: 100},
			want: OscillatorConfig{RateHz: 0.2, DepthPercent: 80, CapPercent: 100},
		},
		{
			name: "negative rate restored to default",
			in:   OscillatorConfig{RateHz: -1, DepthPercent: 80, CapPercent: 100},
			want: OscillatorConfig{RateHz: 0.2, DepthPercent: 80, CapPercent: 100},
		},
		{
			name: "depth and cap clamped",
			in:   OscillatorConfig{RateHz: 0.2, DepthPercent: 140, CapPercent: -20},
			want: OscillatorConfig{RateHz: 0.2, DepthPercent: 100, CapPercent: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Oscillator: tt.in}
			cfg.Sanitize()
			if cfg.Oscillator != tt.want {
				t.Errorf("Sanitize() = %+v, want %+v", cfg.Oscillator, tt.want)
			}
		})
	}
}
