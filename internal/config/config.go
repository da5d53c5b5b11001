// Package config holds the scene setup shared by the softgl drivers: image size, camera, light, shader, and the
// model to render, along with the command-line flags that fill it in.
package config

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/softgl/softgl"
	"github.com/softgl/softgl/colors"
	"github.com/softgl/softgl/mesh"
)

// Built-in model names accepted in place of a glTF path.
const (
	ModelQuad   = "quad"
	ModelCube   = "cube"
	ModelSphere = "sphere"
	ModelTorus  = "torus"
)

var builtinModels = []string{ModelQuad, ModelCube, ModelSphere, ModelTorus}

var (
	// ErrBadSize is returned by Validate for non-positive image dimensions.
	ErrBadSize = errors.New("config: width and height must be positive")
	// ErrDegenerateCamera is returned by Validate when the eye sits on the center or looks along the up vector.
	ErrDegenerateCamera = errors.New("config: eye, center, and up don't define a camera")
	// ErrZeroLight is returned by Validate when the light direction has no length.
	ErrZeroLight = errors.New("config: light direction can't be zero")
)

// Config describes a scene to render.
type Config struct {
	Width, Height int

	Eye, Center, Up mgl32.Vec3
	Light           mgl32.Vec3

	Shader             string
	PerspectiveCorrect bool
	Background         softgl.Color

	// Model is a glTF / GLB path, or one of the built-in shapes.
	Model string
	// FitSize rescales loaded models so their largest span equals it; 0 leaves them untouched.
	FitSize float32

	DiffuseMap, NormalMap, SpecularMap string

	Verbose bool
}

// Default returns the reference scene: an 800x800 image, looking at the origin from (1, 0.5, 1.5), lit from
// (0, 1, 1).
func Default() Config {
	return Config{
		Width:      800,
		Height:     800,
		Eye:        mgl32.Vec3{1, 0.5, 1.5},
		Center:     mgl32.Vec3{0, 0, 0},
		Up:         mgl32.Vec3{0, 1, 0},
		Light:      mgl32.Vec3{0, 1, 1},
		Shader:     softgl.ShaderGouraud,
		Background: colors.Midnight(),
		Model:      ModelSphere,
		FitSize:    2,
	}
}

// RegisterFlags binds the Config's fields to flags on fs; the current values become the flags' defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {

	fs.IntVar(&c.Width, "width", c.Width, "Output width in pixels.")
	fs.IntVar(&c.Height, "height", c.Height, "Output height in pixels.")

	fs.Var((*Vec3Value)(&c.Eye), "eye", "Camera position, as x,y,z.")
	fs.Var((*Vec3Value)(&c.Center), "center", "Point the camera looks at, as x,y,z.")
	fs.Var((*Vec3Value)(&c.Up), "up", "Camera up direction, as x,y,z.")
	fs.Var((*Vec3Value)(&c.Light), "light", "Direction towards the light, as x,y,z.")

	fs.StringVar(&c.Shader, "shader", c.Shader, "Shader: "+strings.Join(softgl.ShaderKinds, "|")+".")
	fs.BoolVar(&c.PerspectiveCorrect, "perspective-correct", c.PerspectiveCorrect, "Interpolate varyings with perspective-correct weights.")
	fs.Var((*ColorValue)(&c.Background), "bg", "Background color, as a name or #rrggbb[aa].")

	fs.StringVar(&c.Model, "model", c.Model, "glTF / GLB file, or one of "+strings.Join(builtinModels, "|")+".")
	fs.Var((*float32Value)(&c.FitSize), "fit", "Rescale the model to this size; 0 keeps its own scale.")

	fs.StringVar(&c.DiffuseMap, "diffuse", c.DiffuseMap, "Diffuse texture path.")
	fs.StringVar(&c.NormalMap, "normal", c.NormalMap, "Normal map path.")
	fs.StringVar(&c.SpecularMap, "specular", c.SpecularMap, "Specular map path.")

	fs.BoolVar(&c.Verbose, "v", c.Verbose, "Log debug output.")

}

// Validate reports settings that can't produce an image.
func (c *Config) Validate() error {

	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrBadSize, c.Width, c.Height)
	}

	forward := c.Eye.Sub(c.Center)
	if forward.Len() == 0 || forward.Cross(c.Up).Len() == 0 {
		return ErrDegenerateCamera
	}

	if c.Light.Len() == 0 {
		return ErrZeroLight
	}

	if !slices.Contains(softgl.ShaderKinds, strings.ToLower(strings.TrimSpace(c.Shader))) {
		return fmt.Errorf("%w: %q", softgl.ErrUnknownShader, c.Shader)
	}

	return nil

}

// Viewport returns the rectangle the scene is drawn into: the middle three quarters of the image.
func (c *Config) Viewport() (x, y, w, h int) {
	return c.Width / 8, c.Height / 8, c.Width * 3 / 4, c.Height * 3 / 4
}

// Apply configures ctx's camera, projection, viewport, and light from the Config. The projection coefficient is
// -1 / |eye - center|.
func (c *Config) Apply(ctx *softgl.Context) {
	ctx.LookAt(c.Eye, c.Center, c.Up)
	ctx.SetProjection(-1 / c.Eye.Sub(c.Center).Len())
	ctx.SetViewport(c.Viewport())
	ctx.SetLight(c.Light)
	ctx.PerspectiveCorrect = c.PerspectiveCorrect
}

// LoadModel builds the configured model and attaches the configured texture maps. Textures that fail to load are
// logged and skipped; only a model that can't be loaded at all is an error.
func (c *Config) LoadModel() (*mesh.Mesh, error) {

	var m *mesh.Mesh

	switch strings.ToLower(c.Model) {
	case ModelQuad:
		m = mesh.NewQuad(2)
	case ModelCube:
		m = mesh.NewCube(2)
	case ModelSphere:
		m = mesh.NewUVSphere(1, 48, 24)
	case ModelTorus:
		m = mesh.NewTorus(1, 0.35, 48, 24)
	default:
		var err error
		if m, err = mesh.LoadGLTF(c.Model); err != nil {
			return nil, err
		}
	}

	if c.FitSize > 0 {
		m.Fit(c.FitSize)
	}

	// Failures are already logged per map.
	_ = m.Material.LoadMaps(c.DiffuseMap, c.NormalMap, c.SpecularMap)

	return m, nil

}

// Vec3Value is a flag.Value holding a vector written as "x,y,z".
type Vec3Value mgl32.Vec3

// ParseVec3 parses a vector written as three comma-separated numbers.
func ParseVec3(s string) (mgl32.Vec3, error) {

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("config: %q isn't an x,y,z vector", s)
	}

	var v mgl32.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("config: %q isn't an x,y,z vector: %w", s, err)
		}
		v[i] = float32(f)
	}

	return v, nil

}

func (v *Vec3Value) String() string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", v[0], v[1], v[2])
}

func (v *Vec3Value) Set(s string) error {
	parsed, err := ParseVec3(s)
	if err != nil {
		return err
	}
	*v = Vec3Value(parsed)
	return nil
}

// ColorValue is a flag.Value holding a color name or hex code; see colors.Parse.
type ColorValue softgl.Color

func (c *ColorValue) String() string {
	if c == nil {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c *ColorValue) Set(s string) error {
	parsed, err := colors.Parse(s)
	if err != nil {
		return err
	}
	*c = ColorValue(parsed)
	return nil
}

type float32Value float32

func (f *float32Value) String() string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(float64(*f), 'g', -1, 32)
}

func (f *float32Value) Set(s string) error {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	*f = float32Value(v)
	return nil
}
