package pmos

import (
	"fmt"
	"math"
)

// Upsampling identifies the algorithm assumed to have scaled the video up to
// the player size. HDR content has empirically distinct quality ceilings per
// method (Barman, Vanam, Reznik, QoMEX'22).
type Upsampling int

const (
	UpsamplingBicubic         Upsampling = iota // conventional default
	UpsamplingNearestNeighbor                   // crude, but occurs in practice
	UpsamplingSuperResolution                   // learned upscalers

	numUpsamplingMethods = iota
)

func (u Upsampling) String() string {
	switch u {
	case UpsamplingBicubic:
		return "bicubic"
	case UpsamplingNearestNeighbor:
		return "nearest-neighbor"
	case UpsamplingSuperResolution:
		return "super-resolution"
	}
	return fmt.Sprintf("Upsampling(%d)", int(u))
}

// wrParams is one coefficient set of the generalized Westerink-Roufs model.
type wrParams struct {
	alpha, beta, gamma, delta, k, l, phiS, uS float64
}

// SDR content uses a single coefficient set; HDR selects by upsampling
// method. Fitted offline (QoMEX'22, page 4 and Table III).
var (
	wrSDR = wrParams{2.72, 145.69, 1.55, 2.12, 6.01, 2.11, 35.0, 16.93}

	wrHDR = [numUpsamplingMethods]wrParams{
		UpsamplingBicubic:         {2.72, 106.91, 1.55 * 1.08, 2.12 * 1.08, 6.01, 1.76, 35.0, 13.93},
		UpsamplingNearestNeighbor: {2.72, 106.91, 1.55 * 1.08, 2.12 * 1.08, 6.01, 2.5, 35.0, 23.4},
		UpsamplingSuperResolution: {2.72, 106.91, 1.55 * 1.08, 2.12 * 1.08, 6.01, 2.06, 35.0, 12.24},
	}
)

// wrScore evaluates the generalized Westerink-Roufs model: a two-factor
// saturating quality function of viewing angle phi (degrees) and angular
// resolution u (cycles per degree). Quality rises with both factors,
// saturates logarithmically, and is clamped to the 1..5 opinion scale.
//
// Preconditions (facade-enforced): phi in 1..180, u in 1..200, upsampling in
// range.
func wrScore(phi, u float64, hdr bool, upsampling Upsampling) float64 {
	p := &wrSDR
	if hdr {
		p = &wrHDR[upsampling]
	}

	fPhi := math.Pow(1+math.Pow(phi/p.phiS, -p.k), -p.gamma/p.k)
	fU := math.Pow(1+math.Pow(u/p.uS, -p.l), -p.delta/p.l)
	return clampMOS(math.Log(p.alpha + p.beta*fPhi*fU))
}

// clampMOS bounds a raw model output to the 1..5 opinion scale.
func clampMOS(mos float64) float64 {
	return math.Max(1, math.Min(5, mos))
}
