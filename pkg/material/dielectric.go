package material

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction relative to air (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// Dielectrics always scatter with white attenuation.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	direction := rayIn.Direction
	drn := direction.Dot(hit.Normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if drn > 0 {
		// Exiting the medium
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * drn / direction.Length()
	} else {
		// Entering the medium
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -drn / direction.Length()
	}

	if refracted, ok := Refract(direction, outwardNormal, niOverNt); ok {
		if sampler.Get1D() >= Schlick(cosine, d.RefractiveIndex) {
			return ScatterResult{
				Scattered:   core.NewRay(hit.Point, refracted),
				Attenuation: attenuation,
			}, true
		}
	}

	// Total internal reflection or Fresnel reflection, using the unflipped normal
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, Reflect(direction, hit.Normal)),
		Attenuation: attenuation,
	}, true
}
