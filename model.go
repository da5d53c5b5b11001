package softgl

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Model is the read-only mesh provider a Shader pulls its per-vertex data and material samples from. Faces are
// triangles; slot selects one of a face's three corners and ranges from 0 to 2.
//
// The mesh package provides the in-memory and glTF-backed implementations.
type Model interface {
	// NumFaces returns the number of triangles in the Model.
	NumFaces() int
	// Vert returns the model-space position of the given corner of the given face.
	Vert(face, slot int) mgl32.Vec3
	// Normal returns the model-space vertex normal of the given corner of the given face.
	Normal(face, slot int) mgl32.Vec3
	// UV returns the texture coordinate of the given corner of the given face.
	UV(face, slot int) mgl32.Vec2

	// Diffuse samples the diffuse (albedo) map at uv. Models without a diffuse map return their base color.
	Diffuse(uv mgl32.Vec2) Color
	// Specular samples the specular exponent at uv. Models without a specular map return a default exponent.
	Specular(uv mgl32.Vec2) float32
	// NormalAt samples the normal map at uv, returning a unit vector in model space. If the Model has no normal
	// map, ok is false and shaders fall back to interpolated vertex normals.
	NormalAt(uv mgl32.Vec2) (n mgl32.Vec3, ok bool)
}
