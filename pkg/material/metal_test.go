package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

func TestNewMetal_KeepsFuzz(t *testing.T) {
	tests := []struct {
		name string
		fuzz float64
	}{
		{"Mirror", 0.0},
		{"Moderate", 0.5},
		{"Unit", 1.0},
		{"Above one", 1.5},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.fuzz)
			if metal.Fuzz != tt.fuzz {
				t.Errorf("Expected fuzz %f, got %f", tt.fuzz, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectReflectionAt45Degrees(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.6, 0.5)
	metal := NewMetal(albedo, 0.0)

	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))
	hit := HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		Material: metal,
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, core.NewSeededSampler(42))
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected reflection %v, got %v", expected, scatter.Scattered.Direction)
	}

	// 45 degrees on the opposite side of the normal
	angle := math.Acos(scatter.Scattered.Direction.Normalize().Dot(hit.Normal)) * 180 / math.Pi
	if math.Abs(angle-45) > 1e-6 {
		t.Errorf("Expected 45 degree reflection, got %f", angle)
	}
	if scatter.Scattered.Direction.X <= 0 {
		t.Errorf("Reflected ray should continue forward, got %v", scatter.Scattered.Direction)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzedDirectionNotRenormalized(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 1.0)

	rayIn := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -5, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), Material: metal}

	// Unit-sphere sample (0.5, 0, 0)
	sampler := core.NewSequenceSampler(0.75, 0.5, 0.5)
	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewVec3(0.5, 1, 0)
	if scatter.Scattered.Direction != expected {
		t.Errorf("Expected unnormalized direction %v, got %v", expected, scatter.Scattered.Direction)
	}
}

func TestMetal_AbsorbsRaysReflectedIntoSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)

	// Ray travelling along the normal reflects back into the surface
	rayIn := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), Material: metal}

	if _, didScatter := metal.Scatter(rayIn, hit, core.NewSequenceSampler(0.5)); didScatter {
		t.Error("Expected metal to absorb a ray reflected below the surface")
	}
}

func TestMetal_FuzzyGrazingAbsorbsSome(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(123)))

	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), Material: metal}

	absorbed, scattered := 0, 0
	for i := 0; i < 1000; i++ {
		result, didScatter := metal.Scatter(rayIn, hit, sampler)
		if didScatter {
			scattered++
			if result.Scattered.Direction.Dot(hit.Normal) <= 0 {
				t.Fatalf("Scattered ray %v points into the surface", result.Scattered.Direction)
			}
		} else {
			absorbed++
		}
	}

	if absorbed == 0 {
		t.Error("Expected some rays to be absorbed with high fuzz at grazing angle")
	}
	if scattered == 0 {
		t.Error("Expected some rays to be scattered")
	}
}
