// Package mesh provides the triangle meshes softgl renders: procedural shapes, and meshes adapted from glTF
// documents. A *Mesh satisfies softgl.Model.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/softgl/softgl"
	"github.com/softgl/softgl/math32"
)

// Dimensions represents the minimum and maximum corners of a Mesh's bounding box.
type Dimensions [2]mgl32.Vec3

// Center returns the center point inbetween the two corners of the dimension set.
func (dim Dimensions) Center() mgl32.Vec3 {
	return dim[0].Add(dim[1]).Mul(0.5)
}

func (dim Dimensions) Width() float32 {
	return dim[1].X() - dim[0].X()
}

func (dim Dimensions) Height() float32 {
	return dim[1].Y() - dim[0].Y()
}

func (dim Dimensions) Depth() float32 {
	return dim[1].Z() - dim[0].Z()
}

// MaxSpan returns the maximum span out of width, height, and depth.
func (dim Dimensions) MaxSpan() float32 {
	return math32.Max3(dim.Width(), dim.Height(), dim.Depth())
}

// Vertex is a single corner shared by any number of faces.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2 // (0, 0) is the bottom-left of a texture
}

// Mesh is an indexed triangle mesh with a single Material.
type Mesh struct {
	Name       string
	Vertices   []Vertex
	Indices    []int // Three per face, indexing into Vertices
	Material   *Material
	Dimensions Dimensions
}

var _ softgl.Model = (*Mesh)(nil)

// NewMesh creates a new, empty Mesh with a default Material.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Material: NewMaterial(name),
	}
}

// AddVertices appends vertices to the Mesh, returning the index of the first one.
func (mesh *Mesh) AddVertices(verts ...Vertex) int {
	start := len(mesh.Vertices)
	mesh.Vertices = append(mesh.Vertices, verts...)
	return start
}

// AddFace appends a triangle made out of three existing vertices, in counter-clockwise order when seen from the
// front.
func (mesh *Mesh) AddFace(a, b, c int) {
	mesh.Indices = append(mesh.Indices, a, b, c)
}

// NumFaces returns the number of triangles in the Mesh.
func (mesh *Mesh) NumFaces() int {
	return len(mesh.Indices) / 3
}

func (mesh *Mesh) vertex(face, slot int) Vertex {
	return mesh.Vertices[mesh.Indices[face*3+slot]]
}

// Vert returns the position of the given corner of the given face.
func (mesh *Mesh) Vert(face, slot int) mgl32.Vec3 {
	return mesh.vertex(face, slot).Position
}

// Normal returns the vertex normal of the given corner of the given face.
func (mesh *Mesh) Normal(face, slot int) mgl32.Vec3 {
	return mesh.vertex(face, slot).Normal
}

// UV returns the texture coordinate of the given corner of the given face.
func (mesh *Mesh) UV(face, slot int) mgl32.Vec2 {
	return mesh.vertex(face, slot).UV
}

// Diffuse samples the Material's diffuse map; see Material.Diffuse.
func (mesh *Mesh) Diffuse(uv mgl32.Vec2) softgl.Color {
	return mesh.Material.Diffuse(uv)
}

// Specular samples the Material's specular map; see Material.Specular.
func (mesh *Mesh) Specular(uv mgl32.Vec2) float32 {
	return mesh.Material.Specular(uv)
}

// NormalAt samples the Material's normal map; see Material.NormalAt.
func (mesh *Mesh) NormalAt(uv mgl32.Vec2) (mgl32.Vec3, bool) {
	return mesh.Material.NormalAt(uv)
}

// UpdateBounds updates the mesh's dimensions; call this after manually changing vertex positions.
func (mesh *Mesh) UpdateBounds() {

	if len(mesh.Vertices) == 0 {
		mesh.Dimensions = Dimensions{}
		return
	}

	mesh.Dimensions[0] = mgl32.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32}
	mesh.Dimensions[1] = mgl32.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32}

	for _, v := range mesh.Vertices {
		for axis := 0; axis < 3; axis++ {
			mesh.Dimensions[0][axis] = min(mesh.Dimensions[0][axis], v.Position[axis])
			mesh.Dimensions[1][axis] = max(mesh.Dimensions[1][axis], v.Position[axis])
		}
	}

}

// Fit centers the Mesh on the origin and uniformly scales it so that its largest span equals size. Meshes with no
// extent are only centered.
func (mesh *Mesh) Fit(size float32) {

	mesh.UpdateBounds()

	center := mesh.Dimensions.Center()
	scale := float32(1)
	if span := mesh.Dimensions.MaxSpan(); span > 0 {
		scale = size / span
	}

	for i := range mesh.Vertices {
		mesh.Vertices[i].Position = mesh.Vertices[i].Position.Sub(center).Mul(scale)
	}

	mesh.UpdateBounds()

}

// GenerateNormals replaces every vertex normal with the area-weighted average of the normals of the faces sharing
// that vertex.
func (mesh *Mesh) GenerateNormals() {
	mesh.generateNormals(0, 0)
}

// generateNormals recomputes normals for the vertices from firstVertex on, using the faces from firstFace on.
// Faces referencing earlier vertices leave those vertices untouched.
func (mesh *Mesh) generateNormals(firstFace, firstVertex int) {

	normals := make([]mgl32.Vec3, len(mesh.Vertices)-firstVertex)

	for face := firstFace; face < mesh.NumFaces(); face++ {
		a, b, c := mesh.Indices[face*3], mesh.Indices[face*3+1], mesh.Indices[face*3+2]
		p0 := mesh.Vertices[a].Position
		// The cross product's length is twice the face's area.
		n := mesh.Vertices[b].Position.Sub(p0).Cross(mesh.Vertices[c].Position.Sub(p0))
		for _, index := range [3]int{a, b, c} {
			if index >= firstVertex {
				normals[index-firstVertex] = normals[index-firstVertex].Add(n)
			}
		}
	}

	for i, n := range normals {
		if n.Len() > 0 {
			n = n.Normalize()
		}
		mesh.Vertices[firstVertex+i].Normal = n
	}

}
