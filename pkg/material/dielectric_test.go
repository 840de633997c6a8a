package material

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

func TestDielectric_NormalIncidence(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), Material: glass}

	// At normal incidence reflect_prob = r0 = 0.04
	tests := []struct {
		name     string
		xi       float64
		expected core.Vec3
	}{
		{"refracts when xi >= r0", 0.5, core.NewVec3(0, -1, 0)},
		{"refracts at the boundary", 0.04 + 1e-12, core.NewVec3(0, -1, 0)},
		{"reflects when xi < r0", 0.01, core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, didScatter := glass.Scatter(ray, hit, core.NewSequenceSampler(tt.xi))
			if !didScatter {
				t.Fatal("Dielectric should always scatter")
			}
			if result.Scattered.Direction.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected direction %v, got %v", tt.expected, result.Scattered.Direction)
			}
			if result.Scattered.Origin != hit.Point {
				t.Errorf("Scattered ray should start at the hit point, got %v", result.Scattered.Origin)
			}
			if result.Attenuation != core.NewVec3(1, 1, 1) {
				t.Errorf("Expected white attenuation, got %v", result.Attenuation)
			}
		})
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Ray inside the sphere heading out at a shallow angle; the stored normal is outward
	direction := core.NewVec3(1, 0.2, 0)
	ray := core.NewRay(core.NewVec3(-1, -0.2, 0), direction)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), Material: glass}

	if _, ok := Refract(direction, hit.Normal.Negate(), 1.5); ok {
		t.Fatal("Test setup error: this angle should cause total internal reflection")
	}

	// Every sample must reflect, regardless of the Fresnel draw
	for _, xi := range []float64{0.0, 0.3, 0.999} {
		result, didScatter := glass.Scatter(ray, hit, core.NewSequenceSampler(xi))
		if !didScatter {
			t.Fatal("Dielectric should always scatter")
		}

		// Reflection uses the incoming direction and the surface normal
		expected := core.NewVec3(1, -0.2, 0)
		if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
			t.Errorf("xi=%f: expected reflected direction %v, got %v", xi, expected, result.Scattered.Direction)
		}
	}
}

func TestDielectric_ExitingMediumRefracts(t *testing.T) {
	glass := NewDielectric(1.5)

	// Inside the glass, 20 degrees from the normal is below the critical angle
	theta := 20 * math.Pi / 180
	direction := core.NewVec3(math.Sin(theta), math.Cos(theta), 0)
	ray := core.NewRay(core.NewVec3(0, -1, 0), direction)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), Material: glass}

	result, _ := glass.Scatter(ray, hit, core.NewSequenceSampler(0.99))

	out := result.Scattered.Direction.Normalize()
	if out.Y <= 0 {
		t.Fatalf("Expected the ray to leave through the surface, got %v", out)
	}

	// Snell's law: sinθt = 1.5·sinθi
	sinT := math.Sqrt(1 - out.Y*out.Y)
	if math.Abs(sinT-1.5*math.Sin(theta)) > 1e-9 {
		t.Errorf("Expected sinθt=%f, got %f", 1.5*math.Sin(theta), sinT)
	}
}

func TestDielectric_NegativeRadiusNormal(t *testing.T) {
	glass := NewDielectric(1.5)

	// A hollow shell's inner sphere stores an inward-pointing normal.
	// A ray moving outward then reads as entering the medium.
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0.45, 0), Normal: core.NewVec3(0, -1, 0), Material: glass}

	result, _ := glass.Scatter(ray, hit, core.NewSequenceSampler(0.5))
	if result.Scattered.Direction.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-12 {
		t.Errorf("Expected straight-through refraction, got %v", result.Scattered.Direction)
	}
}

func TestDielectric_ReflectsAndRefracts(t *testing.T) {
	glass := NewDielectric(1.5)

	// Grazing entry where Fresnel reflection is likely but not certain
	ray := core.NewRay(core.NewVec3(-1, 0.1, 0), core.NewVec3(1, -0.1, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), Material: glass}

	sampler := core.NewSeededSampler(42)
	reflections, refractions := 0, 0
	for i := 0; i < 2000; i++ {
		result, _ := glass.Scatter(ray, hit, sampler)
		if result.Scattered.Direction.Y > 0 {
			reflections++
		} else {
			refractions++
		}
	}

	if reflections == 0 || refractions == 0 {
		t.Errorf("Expected both outcomes, got %d reflections and %d refractions", reflections, refractions)
	}
}
