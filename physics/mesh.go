package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// MeshLibrary resolves a model name to its vertex positions
type MeshLibrary interface {
	Vertices(model string) ([]mgl64.Vec3, bool)
}

// StaticMeshLibrary is an in-memory MeshLibrary
type StaticMeshLibrary map[string][]mgl64.Vec3

func (l StaticMeshLibrary) Vertices(model string) ([]mgl64.Vec3, bool) {
	v, ok := l[model]
	return v, ok
}

// BoxVertices returns the eight corners of a box with the given half extents
func BoxVertices(half mgl64.Vec3) []mgl64.Vec3 {
	verts := make([]mgl64.Vec3, 0, 8)
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				verts = append(verts, mgl64.Vec3{sx * half.X(), sy * half.Y(), sz * half.Z()})
			}
		}
	}
	return verts
}

// DefaultMeshes holds the models referenced by the built-in catalog
func DefaultMeshes() StaticMeshLibrary {
	return StaticMeshLibrary{
		"wall_segment": BoxVertices(mgl64.Vec3{2, 1.5, 0.25}),
		"orb":          BoxVertices(mgl64.Vec3{0.5, 0.5, 0.5}),
	}
}
