package scene

import (
	"fmt"
	"io"

	"github.com/anthropic-exercise/pathtracer/pkg/camera"
	"github.com/anthropic-exercise/pathtracer/pkg/core"
	"github.com/anthropic-exercise/pathtracer/pkg/geometry"
	"github.com/anthropic-exercise/pathtracer/pkg/lights"
	"github.com/anthropic-exercise/pathtracer/pkg/material"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// yamlVec3 decodes a [x, y, z] YAML sequence into a core.Vec3.
type yamlVec3 [3]float64

func (v yamlVec3) vec() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

// yamlCamera mirrors camera.Config in declarative form.
type yamlCamera struct {
	Center        yamlVec3 `yaml:"center"`
	LookAt        yamlVec3 `yaml:"lookAt"`
	Up            yamlVec3 `yaml:"up"`
	VFov          float64  `yaml:"vfov"`
	AspectRatio   float64  `yaml:"aspectRatio"`
	Aperture      float64  `yaml:"aperture"`
	FocusDistance float64  `yaml:"focusDistance"`
	TimeStart     float64  `yaml:"timeStart"`
	TimeEnd       float64  `yaml:"timeEnd"`
}

// yamlMaterial describes one entry of the material registry. Each Type reads
// only its own fields: lambertian and isotropic use Albedo, metal uses Albedo
// and Fuzz, dielectric uses RefractiveIndex, light uses Emission.
type yamlMaterial struct {
	Name            string   `yaml:"name"`
	Type            string   `yaml:"type"` // lambertian, metal, dielectric, light, isotropic
	Albedo          yamlVec3 `yaml:"albedo"`
	Fuzz            float64  `yaml:"fuzz"`
	RefractiveIndex float64  `yaml:"refractiveIndex"`
	Emission        yamlVec3 `yaml:"emission"`
}

// yamlShape describes one primitive, referencing its material by name.
type yamlShape struct {
	Type     string   `yaml:"type"` // sphere, quad, disk, cylinder, cappedCylinder, box, triangle
	Material string   `yaml:"material"`
	Center   yamlVec3 `yaml:"center"`
	Radius   float64  `yaml:"radius"`
	Corner   yamlVec3 `yaml:"corner"`
	U        yamlVec3 `yaml:"u"`
	V        yamlVec3 `yaml:"v"`
	Min      yamlVec3 `yaml:"min"`
	Max      yamlVec3 `yaml:"max"`
	YMin     float64  `yaml:"yMin"`
	YMax     float64  `yaml:"yMax"`
	Capped   bool     `yaml:"capped"`
	V0       yamlVec3 `yaml:"v0"`
	V1       yamlVec3 `yaml:"v1"`
	V2       yamlVec3 `yaml:"v2"`
	Light    bool     `yaml:"light"` // if true, also registered as an explicit-sampling light
}

// yamlSamplingConfig mirrors SamplingConfig.
type yamlSamplingConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	SamplesPerPixel int `yaml:"samplesPerPixel"`
	MaxDepth        int `yaml:"maxDepth"`
}

// yamlScene is the root document shape.
type yamlScene struct {
	Camera    yamlCamera         `yaml:"camera"`
	Sampling  yamlSamplingConfig `yaml:"sampling"`
	Materials []yamlMaterial     `yaml:"materials"`
	Shapes    []yamlShape        `yaml:"shapes"`
}

// LoadYAML decodes a declarative scene description and builds a Scene from
// it. The returned Scene has not yet had Preprocess called.
func LoadYAML(r io.Reader) (*Scene, error) {
	var doc yamlScene
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding scene YAML")
	}

	cfg := camera.Config{
		Center:        doc.Camera.Center.vec(),
		LookAt:        doc.Camera.LookAt.vec(),
		Up:            doc.Camera.Up.vec(),
		VFov:          doc.Camera.VFov,
		AspectRatio:   doc.Camera.AspectRatio,
		Aperture:      doc.Camera.Aperture,
		FocusDistance: doc.Camera.FocusDistance,
		TimeStart:     doc.Camera.TimeStart,
		TimeEnd:       doc.Camera.TimeEnd,
	}

	s := NewScene(cfg, SamplingConfig{
		Width:           doc.Sampling.Width,
		Height:          doc.Sampling.Height,
		SamplesPerPixel: doc.Sampling.SamplesPerPixel,
		MaxDepth:        doc.Sampling.MaxDepth,
	})

	materialIndex := make(map[string]int, len(doc.Materials))
	for _, m := range doc.Materials {
		idx, err := buildMaterial(s, m)
		if err != nil {
			return nil, errors.Wrapf(err, "material %q", m.Name)
		}
		materialIndex[m.Name] = idx
	}

	for i, sh := range doc.Shapes {
		matIdx, ok := materialIndex[sh.Material]
		if !ok {
			return nil, errors.Errorf("shape %d: unknown material %q", i, sh.Material)
		}
		shape, sampler, err := buildShape(sh, matIdx)
		if err != nil {
			return nil, errors.Wrapf(err, "shape %d", i)
		}
		s.AddShape(shape)
		if sh.Light && sampler != nil {
			emission := doc.Materials[materialNameIndex(doc.Materials, sh.Material)].Emission.vec()
			s.Lights = append(s.Lights, lights.NewLight(sampler, emission))
		}
	}

	return s, nil
}

func materialNameIndex(materials []yamlMaterial, name string) int {
	for i, m := range materials {
		if m.Name == name {
			return i
		}
	}
	return 0
}

func buildMaterial(s *Scene, m yamlMaterial) (int, error) {
	switch m.Type {
	case "lambertian":
		return s.AddMaterial(material.NewLambertian(material.NewConstantTexture(m.Albedo.vec()))), nil
	case "metal":
		return s.AddMaterial(material.NewMetal(m.Albedo.vec(), m.Fuzz)), nil
	case "dielectric":
		return s.AddMaterial(material.NewDielectric(m.RefractiveIndex)), nil
	case "light":
		return s.AddMaterial(material.NewDiffuseLight(material.NewConstantTexture(m.Emission.vec()))), nil
	case "isotropic":
		return s.AddMaterial(material.NewIsotropic(material.NewConstantTexture(m.Albedo.vec()))), nil
	default:
		return 0, fmt.Errorf("unknown material type %q", m.Type)
	}
}

func buildShape(sh yamlShape, materialIndex int) (core.Shape, core.AreaSampler, error) {
	switch sh.Type {
	case "sphere":
		shape := geometry.NewSphere(sh.Center.vec(), sh.Radius, materialIndex)
		return shape, shape, nil
	case "quad":
		shape := geometry.NewQuad(sh.Corner.vec(), sh.U.vec(), sh.V.vec(), materialIndex)
		return shape, shape, nil
	case "disk":
		shape := geometry.NewDisk(sh.Center.vec(), sh.Radius, materialIndex)
		return shape, nil, nil
	case "cylinder":
		shape := geometry.NewCylinder(sh.Center.vec(), sh.Radius, sh.YMin, sh.YMax, materialIndex)
		return shape, nil, nil
	case "cappedCylinder":
		shape := geometry.NewCappedCylinder(sh.Center.vec(), sh.Radius, sh.YMin, sh.YMax, materialIndex)
		return shape, nil, nil
	case "box":
		shape := geometry.NewBox(sh.Min.vec(), sh.Max.vec(), materialIndex)
		return shape, nil, nil
	case "triangle":
		shape := geometry.NewTriangle(sh.V0.vec(), sh.V1.vec(), sh.V2.vec(), materialIndex)
		return shape, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown shape type %q", sh.Type)
	}
}
