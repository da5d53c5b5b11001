package mesh

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/softgl/softgl"
	"github.com/softgl/softgl/imageio"
	"github.com/softgl/softgl/math32"
)

// DefaultShininess is the specular exponent used by Materials without a specular map.
const DefaultShininess = 32

// Material holds a Mesh's textures. Every map is optional; a missing map produces a neutral sample (the base color,
// the default shininess, or no normal map at all).
type Material struct {
	Name string

	// BaseColor multiplies the diffuse map, or is used as-is if there's no diffuse map. Defaults to white.
	BaseColor softgl.Color
	// Shininess is the specular exponent used when SpecularMap is nil.
	Shininess float32

	DiffuseMap  image.Image
	NormalMap   image.Image // Tangent-agnostic: colors map directly onto model-space normals.
	SpecularMap image.Image // The red channel holds the specular exponent (0-255).
}

// NewMaterial creates a new Material with the given name, a white base color, and DefaultShininess.
func NewMaterial(name string) *Material {
	return &Material{
		Name:      name,
		BaseColor: softgl.NewColor(255, 255, 255),
		Shininess: DefaultShininess,
	}
}

// Diffuse returns the diffuse color at uv.
func (mat *Material) Diffuse(uv mgl32.Vec2) softgl.Color {

	if mat.DiffuseMap == nil {
		return mat.BaseColor
	}

	c := sample(mat.DiffuseMap, uv)
	return softgl.Color{
		R: modulate(c.R, mat.BaseColor.R),
		G: modulate(c.G, mat.BaseColor.G),
		B: modulate(c.B, mat.BaseColor.B),
		A: modulate(c.A, mat.BaseColor.A),
	}

}

// Specular returns the specular exponent at uv.
func (mat *Material) Specular(uv mgl32.Vec2) float32 {
	if mat.SpecularMap == nil {
		return mat.Shininess
	}
	return float32(sample(mat.SpecularMap, uv).R)
}

// NormalAt returns the unit normal stored in the normal map at uv. Each channel maps 0..255 onto -1..1.
func (mat *Material) NormalAt(uv mgl32.Vec2) (mgl32.Vec3, bool) {

	if mat.NormalMap == nil {
		return mgl32.Vec3{}, false
	}

	c := sample(mat.NormalMap, uv)
	n := mgl32.Vec3{
		float32(c.R)/255*2 - 1,
		float32(c.G)/255*2 - 1,
		float32(c.B)/255*2 - 1,
	}

	if n.Len() == 0 {
		return mgl32.Vec3{}, false
	}

	return n.Normalize(), true

}

// LoadMaps loads the diffuse, normal, and specular maps from the given paths; an empty path leaves that map
// untouched. A map that can't be loaded is left as it was and a warning is logged, so the Material falls back to
// its neutral sample. The returned error joins every failure, for callers that want to treat them as fatal.
func (mat *Material) LoadMaps(diffuse, normal, specular string) error {

	var failed []error

	load := func(kind, path string, dst *image.Image) {
		if path == "" {
			return
		}
		img, err := imageio.Load(path)
		if err != nil {
			softgl.Logger().Warn("texture not loaded, using defaults", "material", mat.Name, "map", kind, "err", err)
			failed = append(failed, fmt.Errorf("%s map: %w", kind, err))
			return
		}
		*dst = img
	}

	load("diffuse", diffuse, &mat.DiffuseMap)
	load("normal", normal, &mat.NormalMap)
	load("specular", specular, &mat.SpecularMap)

	return errors.Join(failed...)

}

// sample reads the texel under uv with nearest-neighbor filtering. uv (0, 0) is the bottom-left of the image and
// coordinates outside 0..1 are clamped to the edge.
func sample(img image.Image, uv mgl32.Vec2) color.NRGBA {

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	x := int(math32.Clamp(math32.Floor(uv.X()*float32(w)), 0, float32(w-1)))
	y := int(math32.Clamp(math32.Floor((1-uv.Y())*float32(h)), 0, float32(h-1)))

	return color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)

}

func modulate(a, b uint8) uint8 {
	return uint8(uint16(a) * uint16(b) / 255)
}
