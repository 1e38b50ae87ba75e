package scene

import (
	"math/rand"
	"testing"

	"github.com/droidkid/ray-tracing-weekend-go/pkg/hittable"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/material"
	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

func TestSceneHitPrefersNearerOfBVHAndPlane(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mat := material.NewLambertian(rtcolor.New(0.5, 0.5, 0.5))

	sphere := hittable.Sphere{Center: vec3.V3(0, 0, -5), Radius: 1, Material: mat}
	plane := hittable.XYPlane(-10, mat)

	s := Build([]hittable.Hittable{sphere}, []hittable.Plane{plane}, 0, rng)

	r := vec3.NewRay(vec3.V3(0, 0, 0), vec3.V3(0, 0, -1))
	rec, ok := s.Hit(r, 0.0001, 1e9)
	if !ok {
		t.Fatal("expected a hit")
	}
	if rec.T > 5 {
		t.Errorf("Hit returned t=%v, want the nearer sphere hit (t≈4)", rec.T)
	}
}

func TestSceneHitEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := Build(nil, nil, 0, rng)
	r := vec3.NewRay(vec3.V3(0, 0, 0), vec3.V3(0, 0, -1))
	if _, ok := s.Hit(r, 0.0001, 1e9); ok {
		t.Error("expected no hit against an empty scene")
	}
}

func TestSceneHitPlaneOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mat := material.NewLambertian(rtcolor.New(0.5, 0.5, 0.5))
	plane := hittable.XYPlane(-5, mat)
	s := Build(nil, []hittable.Plane{plane}, 0, rng)

	r := vec3.NewRay(vec3.V3(0, 0, 0), vec3.V3(0, 0, -1))
	rec, ok := s.Hit(r, 0.0001, 1e9)
	if !ok {
		t.Fatal("expected a hit on the plane")
	}
	if rec.T != 5 {
		t.Errorf("T = %v, want 5", rec.T)
	}
}
