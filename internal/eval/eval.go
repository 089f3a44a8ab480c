// Package eval runs the parametric MOS models against datasets of subjective
// scores and reports prediction accuracy.
package eval

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/streaminglabs/pmos"
)

// Sample is one dataset row: a test sequence at a given encode resolution
// with measured objective scores and a ground-truth subjective MOS.
type Sample struct {
	Name   string  `json:"name"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	PSNR   float64 `json:"psnr"`
	SSIM   float64 `json:"ssim"`
	MOS    float64 `json:"mos"`
}

// Config fixes the viewing setup shared by every sample in a run.
type Config struct {
	PlayerWidth  int
	PlayerHeight int
	HDR          bool
	Upsampling   pmos.Upsampling
	Device       pmos.DeviceClass
	Profile      *pmos.DeviceProfile
}

// DefaultConfig matches the published evaluation: SDR content played full
// screen on a 4K TV, bicubic upsampling.
func DefaultConfig() Config {
	return Config{
		PlayerWidth:  3840,
		PlayerHeight: 2160,
		Upsampling:   pmos.UpsamplingBicubic,
		Device:       pmos.DeviceTV,
	}
}

func (c Config) setup(s Sample) pmos.Setup {
	return pmos.Setup{
		VideoWidth:   s.Width,
		VideoHeight:  s.Height,
		PlayerWidth:  c.PlayerWidth,
		PlayerHeight: c.PlayerHeight,
		HDR:          c.HDR,
		Upsampling:   c.Upsampling,
		Device:       c.Device,
		Profile:      c.Profile,
	}
}

// SampleResult is one sample's outcome within a run.
type SampleResult struct {
	Sample    Sample  `json:"sample"`
	Value     float64 `json:"value"`     // objective metric value used
	Predicted float64 `json:"predicted"` // model MOS
	Residual  float64 `json:"residual"`  // predicted - subjective
}

// Report summarizes model accuracy over a dataset.
type Report struct {
	Metric  pmos.Metric    `json:"metric"`
	Results []SampleResult `json:"results"`
	RMSE    float64        `json:"rmse"`
	MAE     float64        `json:"mae"`
	Pearson float64        `json:"pearson"`
}

// metricValue picks the objective score for the requested metric. The
// reference dataset carries PSNR and SSIM columns only.
func metricValue(m pmos.Metric, s Sample) (float64, error) {
	switch m {
	case pmos.MetricPSNR:
		return s.PSNR, nil
	case pmos.MetricSSIM:
		return s.SSIM, nil
	}
	return 0, fmt.Errorf("dataset carries no %s scores", m)
}

// Evaluate predicts a MOS for every sample and computes aggregate accuracy
// statistics against the subjective scores.
func Evaluate(m pmos.Metric, samples []Sample, cfg Config) (*Report, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("empty dataset")
	}

	report := &Report{Metric: m, Results: make([]SampleResult, 0, len(samples))}
	predicted := make([]float64, 0, len(samples))
	subjective := make([]float64, 0, len(samples))

	var sumSq, sumAbs float64
	for _, s := range samples {
		value, err := metricValue(m, s)
		if err != nil {
			return nil, err
		}
		mos, err := pmos.Predict(m, value, cfg.setup(s))
		if err != nil {
			return nil, fmt.Errorf("sample %s: %w", s.Name, err)
		}

		r := SampleResult{Sample: s, Value: value, Predicted: mos, Residual: mos - s.MOS}
		report.Results = append(report.Results, r)
		predicted = append(predicted, mos)
		subjective = append(subjective, s.MOS)
		sumSq += r.Residual * r.Residual
		sumAbs += math.Abs(r.Residual)
	}

	n := float64(len(samples))
	report.RMSE = math.Sqrt(sumSq / n)
	report.MAE = sumAbs / n
	report.Pearson = stat.Correlation(predicted, subjective, nil)
	return report, nil
}
