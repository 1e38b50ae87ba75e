package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// TestCameraLookAtBasis checks invariant 4: the camera basis is
// orthonormal and right-handed for a simple axis-aligned look-at.
func TestCameraLookAtBasis(t *testing.T) {
	from := vec3.V3(0, 0, 0)
	to := vec3.V3(0, 0, -1)
	cam := New(from, to, vec3.Up(), 90, 16.0/9, 1, 0, 400, 225)

	if got, want := cam.Forward, vec3.V3(0, 0, 1); got != want {
		t.Errorf("Forward = %v, want %v", got, want)
	}
	if got, want := cam.Right, vec3.V3(1, 0, 0); got != want {
		t.Errorf("Right = %v, want %v", got, want)
	}
	if got, want := cam.Up, vec3.V3(0, 1, 0); got != want {
		t.Errorf("Up = %v, want %v", got, want)
	}
}

func TestCameraBasisOrthonormal(t *testing.T) {
	cases := []struct {
		from, to, vup vec3.Vec3
	}{
		{vec3.V3(3, 2, 5), vec3.V3(0, 0, 0), vec3.Up()},
		{vec3.V3(-2, 4, -1), vec3.V3(1, 1, 1), vec3.Up()},
		{vec3.V3(0, 0, 3), vec3.V3(0, 0, 0), vec3.V3(0, 1, 0)},
	}
	for _, c := range cases {
		cam := New(c.from, c.to, c.vup, 40, 1, 1, 0, 100, 100)
		checkOrthonormal(t, cam)
	}
}

func checkOrthonormal(t *testing.T, cam Camera) {
	t.Helper()
	for _, axis := range []struct {
		name string
		v    vec3.Vec3
	}{
		{"forward", cam.Forward}, {"right", cam.Right}, {"up", cam.Up},
	} {
		if got := axis.v.Len(); math.Abs(got-1) > 1e-9 {
			t.Errorf("‖%s‖ = %v, want 1", axis.name, got)
		}
	}
	if got := cam.Forward.Dot(cam.Right); math.Abs(got) > 1e-9 {
		t.Errorf("forward·right = %v, want 0", got)
	}
	if got := cam.Forward.Dot(cam.Up); math.Abs(got) > 1e-9 {
		t.Errorf("forward·up = %v, want 0", got)
	}
	if got := cam.Right.Dot(cam.Up); math.Abs(got) > 1e-9 {
		t.Errorf("right·up = %v, want 0", got)
	}
	// Right-handed: cross(forward, right) == up.
	if got := cam.Forward.Cross(cam.Right); got.Sub(cam.Up).Len() > 1e-9 {
		t.Errorf("cross(forward, right) = %v, want up %v", got, cam.Up)
	}
}

func TestGetRaysBundleCountsAndOrigins(t *testing.T) {
	cam := New(vec3.V3(0, 0, 3), vec3.V3(0, 0, 0), vec3.Up(), 40, 1, 3, 0, 10, 10)
	rng := rand.New(rand.NewSource(1))
	bundles := cam.GetRays(4, rng)

	if got, want := len(bundles), 100; got != want {
		t.Fatalf("len(bundles) = %d, want %d", got, want)
	}
	for _, b := range bundles {
		if len(b.Rays) != 4 {
			t.Fatalf("pixel (%d,%d): len(Rays) = %d, want 4", b.X, b.Y, len(b.Rays))
		}
		for _, r := range b.Rays {
			if r.Origin != cam.Position {
				t.Errorf("pixel (%d,%d): ray origin = %v, want camera position %v (aperture=0)", b.X, b.Y, r.Origin, cam.Position)
			}
		}
	}
}

func TestGetRaysDefocusBlurOffsetsOrigin(t *testing.T) {
	cam := New(vec3.V3(0, 0, 3), vec3.V3(0, 0, 0), vec3.Up(), 40, 1, 3, 0.5, 5, 5)
	rng := rand.New(rand.NewSource(2))
	bundles := cam.GetRays(50, rng)

	anyOffset := false
	for _, b := range bundles {
		for _, r := range b.Rays {
			if r.Origin.Sub(cam.Position).Len() > 1e-9 {
				anyOffset = true
			}
		}
	}
	if !anyOffset {
		t.Error("expected at least one ray origin offset by defocus blur with nonzero aperture")
	}
}
