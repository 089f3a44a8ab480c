package pmos

import (
	"errors"
	"testing"
)

func TestPredictValidation(t *testing.T) {
	tests := []struct {
		name   string
		metric Metric
		value  float64
		mutate func(*Setup)
		want   error
	}{
		{
			name: "zero video width", metric: MetricPSNR, value: 40,
			mutate: func(s *Setup) { s.VideoWidth = 0 },
			want:   ErrInvalidResolution,
		},
		{
			name: "oversized video height", metric: MetricPSNR, value: 40,
			mutate: func(s *Setup) { s.VideoHeight = 8193 },
			want:   ErrInvalidResolution,
		},
		{
			name: "zero player width", metric: MetricPSNR, value: 40,
			mutate: func(s *Setup) { s.PlayerWidth = 0 },
			want:   ErrInvalidPlayerSize,
		},
		{
			name: "oversized player height", metric: MetricSSIM, value: 0.9,
			mutate: func(s *Setup) { s.PlayerHeight = 10000 },
			want:   ErrInvalidPlayerSize,
		},
		{
			name: "negative upsampling", metric: MetricPSNR, value: 40,
			mutate: func(s *Setup) { s.Upsampling = -1 },
			want:   ErrInvalidUpsampling,
		},
		{
			name: "unknown upsampling", metric: MetricPSNR, value: 40,
			mutate: func(s *Setup) { s.Upsampling = 3 },
			want:   ErrInvalidUpsampling,
		},
		{
			name: "unknown device", metric: MetricPSNR, value: 40,
			mutate: func(s *Setup) { s.Device = 5 },
			want:   ErrInvalidDevice,
		},
		{
			name: "custom device without profile", metric: MetricVIF, value: 0.5,
			mutate: func(s *Setup) { s.Device = DeviceCustom },
			want:   ErrMissingProfile,
		},
		{
			name: "custom device with bad profile", metric: MetricVIF, value: 0.5,
			mutate: func(s *Setup) {
				s.Device = DeviceCustom
				s.Profile = &DeviceProfile{DisplayWidth: 1, DisplayHeight: 1080, PPIX: 92, PPIY: 92, Distance: 30}
			},
			want: ErrInvalidProfile,
		},
		{
			name: "psnr above domain", metric: MetricPSNR, value: 100.5,
			mutate: func(s *Setup) {},
			want:   ErrInvalidMetricValue,
		},
		{
			name: "negative psnr", metric: MetricPSNR, value: -3,
			mutate: func(s *Setup) {},
			want:   ErrInvalidMetricValue,
		},
		{
			name: "ssim above one", metric: MetricSSIM, value: 1.2,
			mutate: func(s *Setup) {},
			want:   ErrInvalidMetricValue,
		},
		{
			name: "vif above one", metric: MetricVIF, value: 2,
			mutate: func(s *Setup) {},
			want:   ErrInvalidMetricValue,
		},
		{
			name: "vmaf above hundred", metric: MetricVMAF, value: 101,
			mutate: func(s *Setup) {},
			want:   ErrInvalidMetricValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tvSetup()
			tt.mutate(&s)
			_, err := Predict(tt.metric, tt.value, s)
			if !errors.Is(err, tt.want) {
				t.Errorf("Predict err = %v, want %v", err, tt.want)
			}
		})
	}
}

// The profile field is only consulted for DeviceCustom; a stale pointer on a
// built-in class must not change the result.
func TestBuiltinDeviceIgnoresProfile(t *testing.T) {
	s := tvSetup()
	withNil, err := PSNRToMOS(40, s)
	if err != nil {
		t.Fatal(err)
	}
	s.Profile = &DeviceProfile{DisplayWidth: 1, DisplayHeight: 1}
	withJunk, err := PSNRToMOS(40, s)
	if err != nil {
		t.Fatal(err)
	}
	if withNil != withJunk {
		t.Errorf("MOS changed from %v to %v when a profile was attached to a built-in device", withNil, withJunk)
	}
}

func TestWRScoreEntry(t *testing.T) {
	g := ViewingGeometry{Angle: 33.0, Resolution: 28.0}
	got, err := WRScore(g, false, UpsamplingBicubic)
	if err != nil {
		t.Fatal(err)
	}
	if got < 1 || got > 5 {
		t.Errorf("WRScore = %v, want within [1,5]", got)
	}

	if _, err := WRScore(ViewingGeometry{Angle: 0, Resolution: 20}, false, UpsamplingBicubic); !errors.Is(err, ErrGeometryOutOfRange) {
		t.Errorf("err = %v, want ErrGeometryOutOfRange", err)
	}
	if _, err := WRScore(g, false, 9); !errors.Is(err, ErrInvalidUpsampling) {
		t.Errorf("err = %v, want ErrInvalidUpsampling", err)
	}
}

func TestMetricStrings(t *testing.T) {
	wantStrings := map[Metric]string{
		MetricPSNR: "psnr", MetricSSIM: "ssim", MetricVIF: "vif", MetricVMAF: "vmaf",
	}
	for m, want := range wantStrings {
		if got := m.String(); got != want {
			t.Errorf("Metric(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}
