package scene

import "fmt"

// Builtin names the scene constructors the CLI can select by flag.
var Builtin = map[string]func() *Scene{
	"default":       NewDefaultScene,
	"cornell":       NewCornellScene,
	"cornell-smoke": NewCornellSmokeScene,
	"sphere-grid":   NewSphereGridScene,
	"cylinder":      NewCylinderScene,
	"triangle-mesh": func() *Scene { return NewTriangleMeshScene(24) },
	"texture-test":  NewTextureTestScene,
}

// ByName builds the named built-in scene, or an error listing the known
// names if name isn't registered.
func ByName(name string) (*Scene, error) {
	build, ok := Builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (known: %v)", name, names())
	}
	return build(), nil
}

func names() []string {
	out := make([]string, 0, len(Builtin))
	for n := range Builtin {
		out = append(out, n)
	}
	return out
}
