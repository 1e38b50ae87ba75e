package vec3

import "testing"

func TestMat4IdentityMulVec3(t *testing.T) {
	v := V3(1, 2, 3)
	if got := Identity().MulVec3(v); got != v {
		t.Errorf("Identity().MulVec3(%v) = %v, want %v", v, got, v)
	}
}

func TestMat4Translate(t *testing.T) {
	v := V3(1, 2, 3)
	want := V3(2, 2, 8)
	if got := Translate(V3(1, 0, 5)).MulVec3(v); got != want {
		t.Errorf("Translate.MulVec3(%v) = %v, want %v", v, got, want)
	}
}

func TestMat4ScaleUniform(t *testing.T) {
	v := V3(1, -2, 3)
	want := V3(2, -4, 6)
	if got := ScaleUniform(2).MulVec3(v); got != want {
		t.Errorf("ScaleUniform(2).MulVec3(%v) = %v, want %v", v, got, want)
	}
}

// TestMat4MulAppliesRightOperandFirst checks that a.Mul(b).MulVec3(v) equals
// a.MulVec3(b.MulVec3(v)) — b is applied first, matching column-vector
// convention.
func TestMat4MulAppliesRightOperandFirst(t *testing.T) {
	scale := ScaleUniform(2)
	translate := Translate(V3(1, 0, 0))
	v := V3(1, 1, 1)

	combined := scale.Mul(translate).MulVec3(v)
	sequential := scale.MulVec3(translate.MulVec3(v))

	if combined != sequential {
		t.Errorf("scale.Mul(translate).MulVec3(%v) = %v, want %v", v, combined, sequential)
	}
}

func TestMat4MulVec3DirIgnoresTranslation(t *testing.T) {
	dir := V3(1, 0, 0)
	got := Translate(V3(5, 5, 5)).MulVec3Dir(dir)
	if got != dir {
		t.Errorf("Translate.MulVec3Dir(%v) = %v, want %v unchanged", dir, got, dir)
	}
}

func TestMat4MulVec4(t *testing.T) {
	m := Translate(V3(1, 2, 3))

	point := m.MulVec4(V4FromV3(V3(0, 0, 0), 1))
	if want := V4(1, 2, 3, 1); point != want {
		t.Errorf("MulVec4(point) = %v, want %v", point, want)
	}

	dir := m.MulVec4(V4FromV3(V3(0, 0, 0), 0))
	if want := V4(0, 0, 0, 0); dir != want {
		t.Errorf("MulVec4(dir) = %v, want %v (translation ignored when w=0)", dir, want)
	}
}

func TestVec4Vec3(t *testing.T) {
	v := V4(1, 2, 3, 1)
	if got, want := v.Vec3(), V3(1, 2, 3); got != want {
		t.Errorf("Vec4.Vec3() = %v, want %v", got, want)
	}
}
