// Package pmos predicts subjective video quality (Mean Opinion Score, 1..5)
// for a viewer watching encoded video on a specific device at a specific
// distance. It combines the generalized Westerink-Roufs perceptual model with
// a full-reference objective metric (PSNR, SSIM, VIF or VMAF) supplied by the
// caller.
//
// The models implement:
//
//	[1] J. Westerink, J. Roufs, "Subjective Image Quality as a Function of
//	    Viewing Distance, Resolution, and Picture Size", SMPTE Journal 98(2), 1989.
//	[2] N. Barman, R. Vanam, Y. Reznik, "Generalized Westerink-Roufs Model for
//	    Predicting Quality of Scaled Video", QoMEX'22.
//	[3] N. Barman, R. Vanam, Y. Reznik, "Parametric Quality Models for
//	    Multiscreen Video Systems", EUVIP'22.
//
// Every function is pure and safe for concurrent use: all package-level data
// is read-only coefficient and device tables.
package pmos

import "fmt"

// Maximum encoded video or player dimension accepted by the facade.
const maxDimension = 8192

// Setup describes one playback situation: what is being watched, in what
// window, on which device. The zero value is not valid; dimensions must be
// filled in.
type Setup struct {
	VideoWidth   int  `json:"video_width"`   // encoded video width, pixels
	VideoHeight  int  `json:"video_height"`  // encoded video height, pixels
	PlayerWidth  int  `json:"player_width"`  // player window width, pixels
	PlayerHeight int  `json:"player_height"` // player window height, pixels
	HDR          bool `json:"hdr"`

	Upsampling Upsampling  `json:"upsampling"`
	Device     DeviceClass `json:"device"`

	// Profile is required when Device is DeviceCustom and ignored otherwise.
	Profile *DeviceProfile `json:"profile,omitempty"`
}

// validate checks everything except the objective metric value, resolves the
// device profile and returns it.
func (s Setup) validate() (DeviceProfile, error) {
	if s.VideoWidth < 1 || s.VideoWidth > maxDimension ||
		s.VideoHeight < 1 || s.VideoHeight > maxDimension {
		return DeviceProfile{}, fmt.Errorf("%w: %dx%d", ErrInvalidResolution, s.VideoWidth, s.VideoHeight)
	}
	if s.PlayerWidth < 1 || s.PlayerWidth > maxDimension ||
		s.PlayerHeight < 1 || s.PlayerHeight > maxDimension {
		return DeviceProfile{}, fmt.Errorf("%w: %dx%d", ErrInvalidPlayerSize, s.PlayerWidth, s.PlayerHeight)
	}
	if s.Upsampling < 0 || s.Upsampling >= numUpsamplingMethods {
		return DeviceProfile{}, fmt.Errorf("%w: %d", ErrInvalidUpsampling, int(s.Upsampling))
	}
	profile := s.Profile
	if s.Device != DeviceCustom {
		profile = nil
	}
	return resolveProfile(s.Device, profile)
}

// Geometry derives the viewing angle and angular resolution for the setup
// without predicting a MOS, for callers that want the perceptual geometry
// alone.
func (s Setup) Geometry() (ViewingGeometry, error) {
	p, err := s.validate()
	if err != nil {
		return ViewingGeometry{}, err
	}
	return geometryFor(s, p)
}

func geometryFor(s Setup, p DeviceProfile) (ViewingGeometry, error) {
	distance := p.distanceInches()
	g := ViewingGeometry{
		Angle:      viewingAngle(s.PlayerWidth, distance, p.PPIX),
		Resolution: angularResolution(s.VideoWidth, s.PlayerWidth, distance, p.PPIX),
	}
	if g.Angle < minViewingAngle || g.Angle > maxViewingAngle {
		return ViewingGeometry{}, fmt.Errorf("%w: viewing angle %.3f deg", ErrGeometryOutOfRange, g.Angle)
	}
	if g.Resolution < minAngularResolution || g.Resolution > maxAngularResolution {
		return ViewingGeometry{}, fmt.Errorf("%w: angular resolution %.3f cpd", ErrGeometryOutOfRange, g.Resolution)
	}
	return g, nil
}

// Predict maps an objective metric value measured for the video onto a
// predicted MOS for the given viewing setup. The result is in [1,5].
func Predict(m Metric, value float64, s Setup) (float64, error) {
	if m < 0 || m >= numMetrics {
		return 0, fmt.Errorf("unknown metric %d", int(m))
	}
	p, err := s.validate()
	if err != nil {
		return 0, err
	}
	g, err := geometryFor(s, p)
	if err != nil {
		return 0, err
	}
	if lo, hi := metricDomain(m); value < lo || value > hi {
		return 0, fmt.Errorf("%w: %s=%g outside [%g,%g]", ErrInvalidMetricValue, m, value, lo, hi)
	}
	return fuse(m, value, g.Angle, g.Resolution, s.HDR, s.Upsampling), nil
}

// PSNRToMOS predicts a MOS from a PSNR score in dB (0..100).
func PSNRToMOS(psnr float64, s Setup) (float64, error) {
	return Predict(MetricPSNR, psnr, s)
}

// SSIMToMOS predicts a MOS from an SSIM score (0..1).
func SSIMToMOS(ssim float64, s Setup) (float64, error) {
	return Predict(MetricSSIM, ssim, s)
}

// VIFToMOS predicts a MOS from a VIF score (0..1).
func VIFToMOS(vif float64, s Setup) (float64, error) {
	return Predict(MetricVIF, vif, s)
}

// VMAFToMOS predicts a MOS from a VMAF score (0..100).
func VMAFToMOS(vmaf float64, s Setup) (float64, error) {
	return Predict(MetricVMAF, vmaf, s)
}

// WRScore evaluates the Westerink-Roufs perceptual score alone for an
// already-derived geometry. Useful for plotting model behaviour without an
// objective metric.
func WRScore(g ViewingGeometry, hdr bool, upsampling Upsampling) (float64, error) {
	if upsampling < 0 || upsampling >= numUpsamplingMethods {
		return 0, fmt.Errorf("%w: %d", ErrInvalidUpsampling, int(upsampling))
	}
	if g.Angle <= 0 || g.Angle >= 180 {
		return 0, fmt.Errorf("%w: viewing angle %.3f deg", ErrGeometryOutOfRange, g.Angle)
	}
	if g.Resolution <= 0 || g.Resolution >= 1000 {
		return 0, fmt.Errorf("%w: angular resolution %.3f cpd", ErrGeometryOutOfRange, g.Resolution)
	}
	return wrScore(g.Angle, g.Resolution, hdr, upsampling), nil
}
