// Command softgl renders a model to an image file with the software rasterizer.
//
//	softgl -model cube -shader toon -o cube.png
//	softgl -model helmet.glb -shader phong -frames 36 -orbit 360 -o turntable.png
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/softgl/softgl"
	"github.com/softgl/softgl/imageio"
	"github.com/softgl/softgl/internal/config"
)

// options are the flags that only make sense for offline rendering.
type options struct {
	output   string
	depthOut string
	caption  string
	frames   int
	orbit    float64 // degrees
}

func main() {

	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)

	opts := options{}
	flag.StringVar(&opts.output, "o", "output.png", "Output image path; the extension picks the format.")
	flag.StringVar(&opts.depthOut, "depth-out", "", "Also write the depth buffer as a grayscale image to this path.")
	flag.StringVar(&opts.caption, "caption", "", "Text stamped in the top-left corner of the image.")
	flag.IntVar(&opts.frames, "frames", 1, "Number of frames to render while orbiting the camera.")
	flag.Float64Var(&opts.orbit, "orbit", 360, "Degrees the camera orbits around the center over all frames.")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	softgl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := cfg.Validate(); err != nil {
		fatalf("error: %v", err)
	}
	if opts.frames < 1 {
		fatalf("error: -frames must be at least 1")
	}
	if !imageio.CanEncode(filepath.Ext(opts.output)) {
		fatalf("error: can't write %q; use .png, .jpg, .bmp, .tiff, .gif, or .tga", opts.output)
	}

	if err := run(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func run(cfg config.Config, opts options) error {

	model, err := cfg.LoadModel()
	if err != nil {
		return err
	}

	ctx := softgl.NewContext(model)
	canvas := softgl.NewCanvas(cfg.Width, cfg.Height)
	fb := softgl.NewFrameBuffer(canvas)

	orbit := softgl.NewOrbitFromEye(cfg.Eye, cfg.Center)
	startYaw := orbit.Yaw

	// The turntable spins around +Y, so it can't start straight above or below the center.
	if opts.frames > 1 && cfg.Eye.Sub(cfg.Center).Cross(mgl32.Vec3{0, 1, 0}).Len() == 0 {
		return fmt.Errorf("%w: the turntable can't orbit from directly above or below", config.ErrDegenerateCamera)
	}

	spin := gween.New(0, mgl32.DegToRad(float32(opts.orbit)), float32(max(opts.frames-1, 1)), ease.InOutSine)

	for frame := 0; frame < opts.frames; frame++ {

		step := float32(1)
		if frame == 0 {
			step = 0
		}
		angle, _ := spin.Update(step)

		// Shaders capture the camera when they're created, so the camera goes first.
		cfg.Apply(ctx)
		if opts.frames > 1 {
			orbit.Yaw = startYaw + angle
			orbit.Apply(ctx)
		}
		shader, err := softgl.NewShader(cfg.Shader, ctx)
		if err != nil {
			return err
		}

		fb.Clear(cfg.Background)
		stats := softgl.Render(ctx, shader, fb)
		fb.Finalize()

		if opts.caption != "" {
			imageio.Caption(canvas.Image(), opts.caption, 4, 14, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}

		path := framePath(opts.output, frame, opts.frames)
		if err := imageio.Save(path, canvas.Image()); err != nil {
			return err
		}

		if opts.depthOut != "" {
			if err := imageio.Save(framePath(opts.depthOut, frame, opts.frames), fb.Depth.ToImage()); err != nil {
				return err
			}
		}

		softgl.Logger().Info("frame rendered",
			"frame", frame,
			"path", path,
			"faces", stats.Faces,
			"pixels", stats.Pixels,
			"duration", stats.Duration,
		)

	}

	return nil

}

// framePath numbers path when more than one frame is rendered: "out.png" becomes "out_007.png".
func framePath(path string, frame, frames int) string {
	if frames <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	digits := len(fmt.Sprint(frames - 1))
	return fmt.Sprintf("%s_%0*d%s", strings.TrimSuffix(path, ext), max(digits, 3), frame, ext)
}
