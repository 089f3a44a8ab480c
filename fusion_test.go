package pmos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tvSetup is the reference viewing setup of the published evaluation:
// SDR 1080p content in a full-screen player on a 4K TV, bicubic upsampling.
func tvSetup() Setup {
	return Setup{
		VideoWidth: 1920, VideoHeight: 1080,
		PlayerWidth: 3840, PlayerHeight: 2160,
		Device:     DeviceTV,
		Upsampling: UpsamplingBicubic,
	}
}

func TestPSNRToMOSReferenceScenario(t *testing.T) {
	// Dataset sample s10: PSNR 41.03835 dB, subjective MOS 4.8077.
	mos, err := PSNRToMOS(41.03835, tvSetup())
	require.NoError(t, err)
	assert.InDelta(t, 4.8077, mos, 0.5)
	assert.InDelta(t, 4.438172, mos, 1e-6)
}

func TestSSIMToMOSReferenceScenario(t *testing.T) {
	// Dataset sample s10: SSIM 0.977687, subjective MOS 4.8077.
	mos, err := SSIMToMOS(0.977687, tvSetup())
	require.NoError(t, err)
	assert.InDelta(t, 4.8077, mos, 0.5)
	assert.InDelta(t, 4.454711, mos, 1e-6)
}

func TestVMAFUsesIdentityLink(t *testing.T) {
	mos, err := VMAFToMOS(95, tvSetup())
	require.NoError(t, err)
	assert.InDelta(t, 4.579106, mos, 1e-6)
}

func TestPredictResultsStayOnOpinionScale(t *testing.T) {
	const steps = 40
	for m := MetricPSNR; m < numMetrics; m++ {
		t.Run(m.String(), func(t *testing.T) {
			lo, hi := metricDomain(m)
			for i := 0; i <= steps; i++ {
				v := lo + (hi-lo)*float64(i)/steps
				mos, err := Predict(m, v, tvSetup())
				require.NoError(t, err, "value %v", v)
				require.False(t, math.IsNaN(mos))
				require.GreaterOrEqual(t, mos, 1.0)
				require.LessOrEqual(t, mos, 5.0)
			}
		})
	}
}

// Holding the viewing setup fixed, a better objective score never predicts a
// worse MOS.
func TestPredictMonotonicInMetricValue(t *testing.T) {
	setups := []Setup{tvSetup()}
	for _, device := range []DeviceClass{DeviceMobile, DeviceTablet, DeviceDesktop} {
		s := tvSetup()
		s.Device = device
		s.PlayerWidth, s.PlayerHeight = 1920, 1080
		setups = append(setups, s)
	}

	const steps = 400
	for _, s := range setups {
		for m := MetricPSNR; m < numMetrics; m++ {
			lo, hi := metricDomain(m)
			prev := 0.0
			for i := 0; i <= steps; i++ {
				v := lo + (hi-lo)*float64(i)/steps
				mos, err := Predict(m, v, s)
				require.NoError(t, err)
				require.GreaterOrEqual(t, mos, prev, "metric %s value %v device %s", m, v, s.Device)
				prev = mos
			}
		}
	}
}

func TestPredictDeterministic(t *testing.T) {
	a, err := PSNRToMOS(38.5, tvSetup())
	require.NoError(t, err)
	b, err := PSNRToMOS(38.5, tvSetup())
	require.NoError(t, err)
	// Bit-identical, not merely close.
	assert.Equal(t, math.Float64bits(a), math.Float64bits(b))
}

func TestParseMetric(t *testing.T) {
	for m := MetricPSNR; m < numMetrics; m++ {
		got, ok := ParseMetric(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
	_, ok := ParseMetric("butteraugli")
	assert.False(t, ok)
}
