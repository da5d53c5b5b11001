package mesh

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/softgl/softgl"
	"github.com/softgl/softgl/imageio"
)

// LoadGLTF loads the first mesh of the .gltf or .glb file at path. External buffers and images are resolved
// relative to the file.
func LoadGLTF(path string) (*Mesh, error) {

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: opening %s: %w", path, err)
	}

	return FromGLTF(doc, filepath.Dir(path))

}

// DecodeGLTF decodes a glTF document (JSON or binary) from r and returns its first mesh. Buffers must be embedded
// (a .glb file, or data URIs); image URIs are resolved relative to dir.
func DecodeGLTF(r io.Reader, dir string) (*Mesh, error) {

	doc := new(gltf.Document)

	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("mesh: decoding glTF: %w", err)
	}

	return FromGLTF(doc, dir)

}

// FromGLTF adapts the first mesh of an already decoded glTF document. Every triangle primitive of that mesh is
// merged into the returned Mesh; the Material comes from the first primitive that has one. Other primitive modes
// (points, lines, strips) are skipped. Primitives without normals get smooth normals generated from their own
// faces.
func FromGLTF(doc *gltf.Document, dir string) (*Mesh, error) {

	if len(doc.Meshes) == 0 {
		return nil, ErrNoMesh
	}

	gltfMesh := doc.Meshes[0]
	mesh := NewMesh(gltfMesh.Name)
	materialSet := false

	for primIndex, prim := range gltfMesh.Primitives {

		if prim.Mode != gltf.PrimitiveTriangles {
			softgl.Logger().Debug("skipping non-triangle primitive", "mesh", gltfMesh.Name, "primitive", primIndex)
			continue
		}

		posAccessor, exists := prim.Attributes[gltf.POSITION]
		if !exists {
			return nil, fmt.Errorf("%w (mesh %q, primitive %d)", ErrNoPositions, gltfMesh.Name, primIndex)
		}

		posBuffer := [][3]float32{}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], posBuffer)
		if err != nil {
			return nil, fmt.Errorf("mesh: reading positions: %w", err)
		}

		vertexData := make([]Vertex, len(positions))

		for i, p := range positions {
			vertexData[i].Position = mgl32.Vec3{p[0], p[1], p[2]}
		}

		if texCoordAccessor, texCoordExists := prim.Attributes[gltf.TEXCOORD_0]; texCoordExists {

			uvBuffer := [][2]float32{}
			texCoords, err := modeler.ReadTextureCoord(doc, doc.Accessors[texCoordAccessor], uvBuffer)
			if err != nil {
				return nil, fmt.Errorf("mesh: reading texture coordinates: %w", err)
			}

			// glTF's V axis points down the image.
			for i, uv := range texCoords {
				if i < len(vertexData) {
					vertexData[i].UV = mgl32.Vec2{uv[0], 1 - uv[1]}
				}
			}

		}

		normalAccessor, hasNormals := prim.Attributes[gltf.NORMAL]
		if hasNormals {

			normalBuffer := [][3]float32{}
			normals, err := modeler.ReadNormal(doc, doc.Accessors[normalAccessor], normalBuffer)
			if err != nil {
				return nil, fmt.Errorf("mesh: reading normals: %w", err)
			}

			for i, n := range normals {
				if i < len(vertexData) {
					vertexData[i].Normal = mgl32.Vec3{n[0], n[1], n[2]}
				}
			}

		}

		start := mesh.AddVertices(vertexData...)
		firstFace := mesh.NumFaces()

		if prim.Indices != nil {

			indexBuffer := []uint32{}
			indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], indexBuffer)
			if err != nil {
				return nil, fmt.Errorf("mesh: reading indices: %w", err)
			}

			for i := 0; i+2 < len(indices); i += 3 {
				a, b, c := int(indices[i]), int(indices[i+1]), int(indices[i+2])
				if a >= len(vertexData) || b >= len(vertexData) || c >= len(vertexData) {
					return nil, fmt.Errorf("mesh: primitive %d indexes past its %d vertices", primIndex, len(vertexData))
				}
				mesh.AddFace(start+a, start+b, start+c)
			}

		} else {

			for i := 0; i+2 < len(vertexData); i += 3 {
				mesh.AddFace(start+i, start+i+1, start+i+2)
			}

		}

		if !hasNormals {
			mesh.generateNormals(firstFace, start)
		}

		if !materialSet && prim.Material != nil {
			mesh.Material = loadGLTFMaterial(doc, doc.Materials[*prim.Material], dir)
			materialSet = true
		}

	}

	mesh.UpdateBounds()

	softgl.Logger().Debug("glTF mesh loaded",
		"mesh", mesh.Name,
		"vertices", len(mesh.Vertices),
		"faces", mesh.NumFaces(),
		"material", mesh.Material.Name,
		"textured", mesh.Material.DiffuseMap != nil,
	)

	return mesh, nil

}

// loadGLTFMaterial builds a Material out of a glTF material's base color factor and texture. A texture that can't
// be loaded is logged and skipped.
func loadGLTFMaterial(doc *gltf.Document, gltfMat *gltf.Material, dir string) *Material {

	mat := NewMaterial(gltfMat.Name)

	pbr := gltfMat.PBRMetallicRoughness
	if pbr == nil {
		return mat
	}

	factor := pbr.BaseColorFactorOrDefault()
	mat.BaseColor = softgl.NewColorRGBA(
		unitToChannel(factor[0]),
		unitToChannel(factor[1]),
		unitToChannel(factor[2]),
		unitToChannel(factor[3]),
	)

	if texture := pbr.BaseColorTexture; texture != nil {
		img, err := loadGLTFTexture(doc, int(texture.Index), dir)
		if err != nil {
			softgl.Logger().Warn("texture not loaded, using base color", "material", gltfMat.Name, "err", err)
		} else {
			mat.DiffuseMap = img
		}
	}

	return mat

}

func loadGLTFTexture(doc *gltf.Document, textureIndex int, dir string) (image.Image, error) {

	if textureIndex < 0 || textureIndex >= len(doc.Textures) || doc.Textures[textureIndex].Source == nil {
		return nil, fmt.Errorf("texture %d has no image", textureIndex)
	}

	gltfImage := doc.Images[*doc.Textures[textureIndex].Source]

	switch {

	case gltfImage.BufferView != nil:
		imageData, err := modeler.ReadBufferView(doc, doc.BufferViews[*gltfImage.BufferView])
		if err != nil {
			return nil, err
		}
		return imageio.Decode(bytes.NewReader(imageData), imageio.ExtFromMIME(gltfImage.MimeType))

	case gltfImage.IsEmbeddedResource():
		imageData, err := gltfImage.MarshalData()
		if err != nil {
			return nil, err
		}
		return imageio.Decode(bytes.NewReader(imageData), imageio.ExtFromMIME(dataURIMediaType(gltfImage.URI)))

	case gltfImage.URI != "":
		uri, err := url.PathUnescape(gltfImage.URI)
		if err != nil {
			uri = gltfImage.URI
		}
		return imageio.Load(filepath.Join(dir, filepath.FromSlash(uri)))

	}

	return nil, fmt.Errorf("image %q has no data", gltfImage.Name)

}

// dataURIMediaType returns the media type of a "data:" URI, such as "image/png", or "" if it names none.
func dataURIMediaType(uri string) string {
	header, _, found := strings.Cut(strings.TrimPrefix(uri, "data:"), ",")
	if !found {
		return ""
	}
	mediaType, _, _ := strings.Cut(header, ";")
	return mediaType
}

func unitToChannel(v float64) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}
