package scene

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// NewRandomScene creates the reference scene: a large ground sphere, a 22x22 grid of
// small randomly placed spheres, and three large feature spheres.
// The sampler drives sphere placement and materials.
func NewRandomScene(config renderer.SamplingConfig, sampler core.Sampler) *Scene {
	lookFrom := core.NewVec3(6, 1.2, 2.5)
	lookAt := core.NewVec3(0, 0, -1)
	cameraConfig := renderer.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		Aperture:      0.0,
		FocusDistance: lookFrom.Subtract(lookAt).Length(),
	}

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	// Keep small spheres clear of the metal feature sphere
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8: // diffuse
				albedo := core.NewVec3(
					sampler.Get1D()*sampler.Get1D(),
					sampler.Get1D()*sampler.Get1D(),
					sampler.Get1D()*sampler.Get1D(),
				)
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95: // metal
				fuzz := 0.5 * sampler.Get1D()
				albedo := core.NewVec3(
					0.5*(1+sampler.Get1D()),
					0.5*(1+sampler.Get1D()),
					0.5*(1+sampler.Get1D()),
				)
				mat = material.NewMetal(albedo, fuzz)
			default: // glass
				mat = material.NewDielectric(1.5)
			}
			world.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	world.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return newScene("random", config, cameraConfig, world)
}
