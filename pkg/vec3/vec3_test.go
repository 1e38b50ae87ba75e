package vec3

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -1, 2)

	if got := a.Add(b); got != (Vec3{5, 1, 5}) {
		t.Errorf("Add = %v, want {5 1 5}", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, 3, 1}) {
		t.Errorf("Sub = %v, want {-3 3 1}", got)
	}
	if got := a.Mul(b); got != (Vec3{4, -2, 6}) {
		t.Errorf("Mul = %v, want {4 -2 6}", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v, want {2 4 6}", got)
	}
	if got := a.Negate(); got != (Vec3{-1, -2, -3}) {
		t.Errorf("Negate = %v, want {-1 -2 -3}", got)
	}
}

func TestVec3Dot(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)
	if got, want := a.Dot(b), 12.0; got != want {
		t.Errorf("Dot = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	if got, want := x.Cross(y), (Vec3{0, 0, 1}); got != want {
		t.Errorf("Cross(x,y) = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	cases := []Vec3{
		{3, 4, 0},
		{1, 1, 1},
		{-2, 5, -3},
	}
	for _, v := range cases {
		n := v.Normalize()
		if got := n.Len(); math.Abs(got-1) > 1e-9 {
			t.Errorf("Normalize(%v).Len() = %v, want 1", v, got)
		}
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	z := Zero3()
	if got := z.Normalize(); got != z {
		t.Errorf("Normalize of zero vector = %v, want %v", got, z)
	}
}

// TestVec3ReflectPreservesLength checks the law that reflecting a vector
// about a unit normal preserves its length.
func TestVec3ReflectPreservesLength(t *testing.T) {
	cases := []struct {
		v, n Vec3
	}{
		{V3(1, -1, 0), V3(0, 1, 0)},
		{V3(3, -4, 2), V3(0, 1, 0)},
		{V3(-1, -2, -3), V3(1, 0, 0)},
	}
	for _, c := range cases {
		n := c.n.Normalize()
		r := c.v.Reflect(n)
		if got, want := r.Len(), c.v.Len(); math.Abs(got-want) > 1e-9 {
			t.Errorf("Reflect(%v, %v).Len() = %v, want %v", c.v, c.n, got, want)
		}
	}
}

// TestVec3ReflectNegatesNormalComponent checks that the component of the
// reflected vector along n is the negation of the incident component.
func TestVec3ReflectNegatesNormalComponent(t *testing.T) {
	v := V3(2, -3, 1)
	n := V3(0, 1, 0)
	r := v.Reflect(n)
	if got, want := r.Dot(n), -v.Dot(n); math.Abs(got-want) > 1e-9 {
		t.Errorf("Reflect(%v,%v)·n = %v, want %v", v, n, got, want)
	}
	// Tangential component (orthogonal to n) is unchanged.
	vTangent := v.Sub(n.Scale(v.Dot(n)))
	rTangent := r.Sub(n.Scale(r.Dot(n)))
	if got, want := rTangent, vTangent; got.Sub(want).Len() > 1e-9 {
		t.Errorf("tangential component changed: got %v, want %v", got, want)
	}
}

func TestVec3NearZero(t *testing.T) {
	if !(Vec3{1e-10, -1e-9, 0}).NearZero() {
		t.Error("expected near-zero vector to report NearZero")
	}
	if (Vec3{0.1, 0, 0}).NearZero() {
		t.Error("expected non-zero vector to not report NearZero")
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 1000 {
		p := RandomInUnitSphere(rng)
		if p.LenSq() >= 1 {
			t.Fatalf("RandomInUnitSphere returned point outside unit sphere: %v", p)
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for range 1000 {
		p := RandomInUnitDisk(rng)
		if p.LenSq() >= 1 {
			t.Fatalf("RandomInUnitDisk returned point outside unit disk: %v", p)
		}
		if p.Z != 0 {
			t.Fatalf("RandomInUnitDisk returned nonzero Z: %v", p)
		}
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(V3(1, 1, 1), V3(2, 0, 0))
	if got, want := r.At(0), (Vec3{1, 1, 1}); got != want {
		t.Errorf("At(0) = %v, want %v", got, want)
	}
	if got, want := r.At(2), (Vec3{5, 1, 1}); got != want {
		t.Errorf("At(2) = %v, want %v", got, want)
	}
}

func TestRayTo(t *testing.T) {
	origin := V3(0, 0, 0)
	dest := V3(3, 4, 0)
	r := RayTo(origin, dest)
	if got, want := r.At(1), dest; got != want {
		t.Errorf("RayTo At(1) = %v, want %v", got, want)
	}
}
