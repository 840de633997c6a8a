package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
}

type builder func(config renderer.SamplingConfig) *Scene

var builtinScenes = map[string]struct {
	description string
	build       builder
}{
	"random": {
		description: "Reference scene: ground, 22x22 random small spheres, three large spheres",
		build: func(config renderer.SamplingConfig) *Scene {
			// Placement draws from a separate stream from the render sampler
			return NewRandomScene(config, core.NewSeededSampler(config.Seed))
		},
	},
	"simple": {
		description: "Single gray diffuse sphere in front of a pinhole camera",
		build:       NewSimpleScene,
	},
	"hollow-glass": {
		description: "Diffuse, metal, and hollow glass spheres on a ground sphere",
		build:       NewHollowGlassScene,
	},
	"empty": {
		description: "No objects, sky gradient only",
		build:       NewEmptyScene,
	},
}

// NewSceneByName builds the named built-in scene for the given image settings
func NewSceneByName(name string, config renderer.SamplingConfig) (*Scene, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return entry.build(config), nil
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for name, entry := range builtinScenes {
		scenes = append(scenes, SceneInfo{Name: name, Description: entry.description})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}
