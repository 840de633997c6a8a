package scene

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// pinholeAtOrigin looks down -z from the origin with a 90 degree field of view
func pinholeAtOrigin() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90.0,
		Aperture:      0.0,
		FocusDistance: 1.0,
	}
}

// NewSimpleScene creates a single gray diffuse sphere in front of a pinhole camera
func NewSimpleScene(config renderer.SamplingConfig) *Scene {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	return newScene("simple", config, pinholeAtOrigin(), world)
}

// NewEmptyScene creates a scene with nothing in it, so every pixel shows the sky
func NewEmptyScene(config renderer.SamplingConfig) *Scene {
	return newScene("empty", config, pinholeAtOrigin(), geometry.NewHittableList())
}

// NewHollowGlassScene creates a row of diffuse, metal, and hollow glass spheres on a
// large ground sphere. The hollow sphere is a glass shell with a negative-radius inner surface.
func NewHollowGlassScene(config renderer.SamplingConfig) *Scene {
	glass := material.NewDielectric(1.5)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
	)

	lookFrom := core.NewVec3(-2, 2, 1)
	lookAt := core.NewVec3(0, 0, -1)
	cameraConfig := renderer.CameraConfig{
		LookFrom: lookFrom,
		LookAt:   lookAt,
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40.0,
		Aperture: 0.0,
	}
	return newScene("hollow-glass", config, cameraConfig, world)
}
