package pmos

import (
	"errors"
	"math"
	"testing"
)

// Reference TV setup: 3840x2160 display, 80 ppi, 81" viewing distance.
const (
	tvPlayerWidth = 3840
	tvDistance    = 81.0
	tvPPI         = 80.0
)

func TestViewingAngle(t *testing.T) {
	phi := viewingAngle(tvPlayerWidth, tvDistance, tvPPI)
	want := 180.0 / math.Pi * 2 * math.Atan(3840.0/(2*81*80))
	if math.Abs(phi-want) > 1e-12 {
		t.Errorf("viewingAngle = %v, want %v", phi, want)
	}
	// A full-screen 4K TV at 3H subtends ~33 degrees.
	if phi < 32.9 || phi > 33.1 {
		t.Errorf("viewingAngle = %v, want ~33.0", phi)
	}
}

func TestAngularResolution(t *testing.T) {
	t.Run("upscaled 1080p on 4K player", func(t *testing.T) {
		u := angularResolution(1920, tvPlayerWidth, tvDistance, tvPPI)
		if math.Abs(u-28.274334780111232) > 1e-9 {
			t.Errorf("u = %v, want 28.2743...", u)
		}
	})

	t.Run("effective width caps at player width", func(t *testing.T) {
		// An 8K source rendered into a 4K player carries no more detail
		// than a 4K source.
		native := angularResolution(3840, tvPlayerWidth, tvDistance, tvPPI)
		oversized := angularResolution(7680, tvPlayerWidth, tvDistance, tvPPI)
		if native != oversized {
			t.Errorf("oversized source u = %v, native u = %v, want equal", oversized, native)
		}
	})

	t.Run("lower source resolution lowers angular resolution", func(t *testing.T) {
		prev := 0.0
		for _, w := range []int{384, 512, 720, 1280, 1920, 3840} {
			u := angularResolution(w, tvPlayerWidth, tvDistance, tvPPI)
			if u <= prev {
				t.Errorf("u(%d) = %v, want > u of previous width %v", w, u, prev)
			}
			prev = u
		}
	})
}

func TestSetupGeometry(t *testing.T) {
	s := Setup{
		VideoWidth: 1920, VideoHeight: 1080,
		PlayerWidth: 3840, PlayerHeight: 2160,
		Device: DeviceTV,
	}
	g, err := s.Geometry()
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}
	if math.Abs(g.Angle-33.008722763510036) > 1e-9 {
		t.Errorf("Angle = %v, want 33.0087...", g.Angle)
	}
	if math.Abs(g.Resolution-28.274334780111232) > 1e-9 {
		t.Errorf("Resolution = %v, want 28.2743...", g.Resolution)
	}
}

func TestSetupGeometryOutOfRange(t *testing.T) {
	// A plausible-in-isolation but jointly absurd setup: a tiny player very
	// far from a coarse display yields a sub-degree viewing angle.
	s := Setup{
		VideoWidth: 1920, VideoHeight: 1080,
		PlayerWidth: 16, PlayerHeight: 16,
		Device: DeviceCustom,
		Profile: &DeviceProfile{
			DisplayWidth: 1920, DisplayHeight: 1080,
			PPIX: 100, PPIY: 100,
			DistanceUnit: DistanceInches, Distance: 1000,
		},
	}
	if _, err := s.Geometry(); !errors.Is(err, ErrGeometryOutOfRange) {
		t.Fatalf("Geometry err = %v, want ErrGeometryOutOfRange", err)
	}
}
