package pmos

import "math"

// ViewingGeometry holds the two perceptual quantities derived from a viewing
// setup: the horizontal angle the player subtends at the eye, and the spatial
// detail the eye receives from the rendered video.
type ViewingGeometry struct {
	// Angle is the horizontal viewing angle in degrees.
	Angle float64 `json:"viewing_angle"`
	// Resolution is the angular resolution in cycles per degree.
	Resolution float64 `json:"angular_resolution"`
}

// Plausibility bounds for derived geometry. Values outside signal that the
// upstream device/player inputs were jointly implausible.
const (
	minViewingAngle      = 1
	maxViewingAngle      = 180
	minAngularResolution = 1
	maxAngularResolution = 200
)

// viewingAngle computes the horizontal viewing angle in degrees for a player
// window of the given pixel width seen from distanceInches on a display with
// horizontal density ppiX. Preconditions: all inputs strictly positive.
func viewingAngle(playerWidth int, distanceInches, ppiX float64) float64 {
	return 180.0 / math.Pi * 2 * math.Atan(float64(playerWidth)/(2*distanceInches*ppiX))
}

// angularResolution computes the angular resolution in cycles per degree.
// The effective width is min(videoWidth, playerWidth): detail cannot exceed
// what the player renders, and degrades when the source is scaled into a
// window of a different size. Preconditions: all inputs strictly positive.
func angularResolution(videoWidth, playerWidth int, distanceInches, ppiX float64) float64 {
	effective := videoWidth
	if playerWidth < effective {
		effective = playerWidth
	}

	// Viewing angle of one cycle (two pixels) of the rendered video.
	cycle := 180.0 / math.Pi * 2 * math.Atan(float64(playerWidth)/(float64(effective)*distanceInches*ppiX))
	return 1 / cycle
}
