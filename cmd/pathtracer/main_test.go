package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSceneBuiltins(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"cornell scene", "cornell", false},
		{"cornell smoke scene", "cornell-smoke", false},
		{"sphere grid scene", "sphere-grid", false},
		{"cylinder scene", "cylinder", false},
		{"triangle mesh scene", "triangle-mesh", false},
		{"texture test scene", "texture-test", false},
		{"unknown scene", "nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, s)
		})
	}
}

func TestCreateSceneLoadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	yamlDoc := `
camera:
  center: [0, 0, 0]
  lookAt: [0, 0, 1]
  up: [0, 1, 0]
  vfov: 40
  aspectRatio: 1
  focusDistance: 1
sampling:
  width: 4
  height: 4
  samplesPerPixel: 2
  maxDepth: 4
materials:
  - name: gray
    type: lambertian
    albedo: [0.5, 0.5, 0.5]
shapes:
  - type: sphere
    material: gray
    center: [0, 0, 3]
    radius: 1
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0644))

	s, err := createScene(path)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Len(t, s.Shapes, 1)
}

func TestCreateSceneMissingYAMLFileFails(t *testing.T) {
	_, err := createScene("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestSceneNamesIncludesDefault(t *testing.T) {
	assert.Contains(t, sceneNames(), "default")
}
