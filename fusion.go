package pmos

import (
	"fmt"
	"math"
)

// Metric identifies a full-reference objective quality metric consumed by the
// fusion models. The library does not compute these metrics; callers supply
// values measured elsewhere.
type Metric int

const (
	MetricPSNR Metric = iota
	MetricSSIM
	MetricVIF
	MetricVMAF

	numMetrics = iota
)

func (m Metric) String() string {
	switch m {
	case MetricPSNR:
		return "psnr"
	case MetricSSIM:
		return "ssim"
	case MetricVIF:
		return "vif"
	case MetricVMAF:
		return "vmaf"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric maps a metric name to its Metric.
func ParseMetric(name string) (Metric, bool) {
	switch name {
	case "psnr":
		return MetricPSNR, true
	case "ssim":
		return MetricSSIM, true
	case "vif":
		return MetricVIF, true
	case "vmaf":
		return MetricVMAF, true
	}
	return 0, false
}

// fusionParams is one fitted coefficient set of the WR+metric fusion models
// (EUVIP'22, Table 4). epsilon/zeta parametrize the logistic link mapping the
// metric onto an opinion-compatible scale; identity marks the VMAF variant,
// which skips the link because VMAF is already opinion-scale-like.
type fusionParams struct {
	alpha, beta, gamma, delta float64
	epsilon, zeta             float64
	identity                  bool
}

var fusionModels = [numMetrics]fusionParams{
	MetricPSNR: {alpha: -6.906, beta: 6.130, gamma: -0.048, delta: 1.476, epsilon: 0.228, zeta: 23.83},
	MetricSSIM: {alpha: -7.181, beta: 7.662, gamma: -0.089, delta: 1.753, epsilon: 7.492, zeta: 0.777},
	MetricVIF:  {alpha: -12.09, beta: 12.117, gamma: -0.137, delta: 2.763, epsilon: 4.846, zeta: 0.416},
	MetricVMAF: {alpha: -7.682, beta: 0.0753, gamma: -0.122, delta: 2.01, identity: true},
}

// metricDomain returns the closed validation bounds for a metric value.
// PSNR and VMAF run 0..100 (dB and VMAF units); SSIM and VIF run 0..1.
func metricDomain(m Metric) (lo, hi float64) {
	switch m {
	case MetricSSIM, MetricVIF:
		return 0, 1
	default:
		return 0, 100
	}
}

// fuse combines the WR perceptual score with an objective metric value into a
// final MOS. The metric's contribution is modulated by the perceptual context
// Qwr through the (1+gamma*Qwr) interaction term: the same objective score
// reads better or worse depending on viewing angle and resolution.
//
// Preconditions (facade-enforced): geometry and metric value in range.
func fuse(m Metric, value, phi, u float64, hdr bool, upsampling Upsampling) float64 {
	p := &fusionModels[m]
	qwr := wrScore(phi, u, hdr, upsampling)

	q := value
	if !p.identity {
		q = 1 / (1 + math.Exp(-p.epsilon*(value-p.zeta)))
	}

	return clampMOS(p.alpha + p.beta*(1+p.gamma*qwr)*q + p.delta*qwr)
}
