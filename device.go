package pmos

import "fmt"

// DeviceClass selects one of the built-in viewing setups, or DeviceCustom to
// supply an explicit DeviceProfile.
type DeviceClass int

const (
	DeviceMobile  DeviceClass = iota // e.g. Samsung Galaxy S21, 6.2", held ~13"
	DeviceTablet                     // e.g. Samsung Galaxy Tab S8+, 12.4", ~18"
	DeviceDesktop                    // e.g. Dell UltraSharp U3011, 30", ~24"
	DeviceTV                         // e.g. 55" UHDTV, ~3 display heights
	DeviceCustom                     // caller-supplied DeviceProfile

	numDeviceClasses = iota
)

func (d DeviceClass) String() string {
	switch d {
	case DeviceMobile:
		return "mobile"
	case DeviceTablet:
		return "tablet"
	case DeviceDesktop:
		return "desktop"
	case DeviceTV:
		return "tv"
	case DeviceCustom:
		return "custom"
	}
	return fmt.Sprintf("DeviceClass(%d)", int(d))
}

// DistanceUnit says how DeviceProfile.Distance is expressed.
type DistanceUnit int

const (
	// DistanceInches is an absolute viewing distance in inches.
	DistanceInches DistanceUnit = iota
	// DistanceDisplayHeights is a viewing distance in multiples of the
	// physical display height.
	DistanceDisplayHeights

	numDistanceUnits = iota
)

// DeviceProfile describes a display and how far the viewer sits from it.
type DeviceProfile struct {
	DisplayWidth  int          `json:"display_width"`  // pixels
	DisplayHeight int          `json:"display_height"` // pixels
	PPIX          float64      `json:"ppi_x"`          // horizontal pixel density
	PPIY          float64      `json:"ppi_y"`          // vertical pixel density
	DistanceUnit  DistanceUnit `json:"distance_unit"`
	Distance      float64      `json:"distance"` // in units of DistanceUnit
}

// builtinProfiles holds ballpark parameters for each built-in device class,
// calibrated to typical real devices. Indexed by DeviceClass; read-only after
// process start.
var builtinProfiles = [DeviceCustom]DeviceProfile{
	DeviceMobile:  {2400, 1080, 421, 421, DistanceInches, 13},
	DeviceTablet:  {2800, 1752, 266, 266, DistanceInches, 18},
	DeviceDesktop: {2560, 1600, 100, 100, DistanceInches, 24},
	DeviceTV:      {3840, 2160, 80, 80, DistanceDisplayHeights, 3},
}

// BuiltinProfile returns the profile behind a built-in device class.
func BuiltinProfile(class DeviceClass) (DeviceProfile, error) {
	if class < 0 || class >= DeviceCustom {
		return DeviceProfile{}, fmt.Errorf("%w: %d", ErrInvalidDevice, int(class))
	}
	return builtinProfiles[class], nil
}

// Custom profile bounds. Values outside these describe no display that could
// plausibly exist.
const (
	minDisplayDim = 128
	maxDisplayDim = 16384
	minPPI        = 1
	maxPPI        = 10000
	maxDistance   = 10000
)

// resolveProfile maps a device class (plus a caller profile for DeviceCustom)
// to a concrete validated profile.
func resolveProfile(class DeviceClass, custom *DeviceProfile) (DeviceProfile, error) {
	if class < 0 || class >= numDeviceClasses {
		return DeviceProfile{}, fmt.Errorf("%w: %d", ErrInvalidDevice, int(class))
	}
	if class != DeviceCustom {
		return builtinProfiles[class], nil
	}
	if custom == nil {
		return DeviceProfile{}, ErrMissingProfile
	}
	if err := validateProfile(*custom); err != nil {
		return DeviceProfile{}, err
	}
	return *custom, nil
}

func validateProfile(p DeviceProfile) error {
	if p.DisplayWidth < minDisplayDim || p.DisplayWidth > maxDisplayDim {
		return fmt.Errorf("%w: display width %d", ErrInvalidProfile, p.DisplayWidth)
	}
	if p.DisplayHeight < minDisplayDim || p.DisplayHeight > maxDisplayDim {
		return fmt.Errorf("%w: display height %d", ErrInvalidProfile, p.DisplayHeight)
	}
	if p.PPIX < minPPI || p.PPIX > maxPPI {
		return fmt.Errorf("%w: ppi_x %g", ErrInvalidProfile, p.PPIX)
	}
	if p.PPIY < minPPI || p.PPIY > maxPPI {
		return fmt.Errorf("%w: ppi_y %g", ErrInvalidProfile, p.PPIY)
	}
	if p.DistanceUnit < 0 || p.DistanceUnit >= numDistanceUnits {
		return fmt.Errorf("%w: distance unit %d", ErrInvalidProfile, int(p.DistanceUnit))
	}
	if p.Distance <= 0 || p.Distance > maxDistance {
		return fmt.Errorf("%w: distance %g", ErrInvalidProfile, p.Distance)
	}
	return nil
}

// distanceInches normalizes the profile's viewing distance to inches. This is
// the only place units are converted; everything downstream works in inches
// and pixels.
func (p DeviceProfile) distanceInches() float64 {
	if p.DistanceUnit == DistanceDisplayHeights {
		return heightsToInches(p.DisplayHeight, p.PPIY, p.Distance)
	}
	return p.Distance
}

// heightsToInches converts a viewing distance expressed in display heights to
// inches. Preconditions: displayHeight > 0, ppiY > 0, heights > 0.
func heightsToInches(displayHeight int, ppiY, heights float64) float64 {
	return float64(displayHeight) / ppiY * heights
}
