// Command viewer shows a model rendered by the software rasterizer in a window, re-rendering it every frame.
//
// Controls:
//
//	W, A, S, D, Space, Ctrl   move the camera
//	Arrow keys                orbit around the center
//	Mouse wheel               zoom
//	1 - 4                     gouraud, phong, flat, toon
//	P                         toggle perspective-correct interpolation
//	T                         spin once around the model
//	Escape                    quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"github.com/softgl/softgl"
	"github.com/softgl/softgl/internal/config"
	"github.com/softgl/softgl/math32"
)

const (
	moveSpeed   = 0.05
	orbitSpeed  = 2 * math32.Pi / 180
	zoomSpeed   = 0.1
	minRadius   = 0.2
	spinTicks   = 120
	windowScale = 1
)

var shaderKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

type Game struct {
	cfg config.Config

	ctx    *softgl.Context
	canvas *softgl.Canvas
	fb     *softgl.FrameBuffer
	stats  softgl.Stats

	rgba   *image.RGBA
	screen *ebiten.Image

	spin      *gween.Tween
	spinStart softgl.Orbit
}

func NewGame(cfg config.Config) (*Game, error) {

	model, err := cfg.LoadModel()
	if err != nil {
		return nil, err
	}

	canvas := softgl.NewCanvas(cfg.Width, cfg.Height)

	game := &Game{
		cfg:    cfg,
		ctx:    softgl.NewContext(model),
		canvas: canvas,
		fb:     softgl.NewFrameBuffer(canvas),
		rgba:   image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		screen: ebiten.NewImage(cfg.Width, cfg.Height),
	}

	return game, nil

}

func (g *Game) orbit() softgl.Orbit {
	return softgl.NewOrbitFromEye(g.cfg.Eye, g.cfg.Center)
}

func (g *Game) Update() error {

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	move := mgl32.Vec3{}

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		move[2] -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		move[2] += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		move[0] -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		move[0] += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		move[1] += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		move[1] -= moveSpeed
	}

	if eye := g.cfg.Eye.Add(move); eye.Sub(g.cfg.Center).Len() > minRadius {
		g.cfg.Eye = eye
	}

	orbit := g.orbit()
	yaw, pitch := float32(0), float32(0)

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		yaw -= orbitSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		yaw += orbitSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		pitch += orbitSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		pitch -= orbitSpeed
	}

	_, wheel := ebiten.Wheel()

	if yaw != 0 || pitch != 0 || wheel != 0 {
		orbit.Rotate(yaw, pitch)
		orbit.Zoom(float32(-wheel)*zoomSpeed, minRadius)
		g.cfg.Eye = orbit.Eye()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) && g.spin == nil {
		g.spin = gween.New(0, 2*math32.Pi, spinTicks, ease.InOutSine)
		g.spinStart = orbit
	}

	if g.spin != nil {
		angle, finished := g.spin.Update(1)
		spun := g.spinStart
		spun.Rotate(angle, 0)
		g.cfg.Eye = spun.Eye()
		if finished {
			g.spin = nil
		}
	}

	for i, key := range shaderKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.cfg.Shader = softgl.ShaderKinds[i]
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.cfg.PerspectiveCorrect = !g.cfg.PerspectiveCorrect
	}

	return nil

}

func (g *Game) Draw(screen *ebiten.Image) {

	g.cfg.Apply(g.ctx)

	shader, err := softgl.NewShader(g.cfg.Shader, g.ctx)
	if err != nil {
		softgl.Logger().Error("can't create shader", "err", err)
		return
	}

	g.fb.Clear(g.cfg.Background)
	g.stats = softgl.Render(g.ctx, shader, g.fb)
	g.fb.Finalize()

	// ebiten wants premultiplied alpha.
	draw.Draw(g.rgba, g.rgba.Bounds(), g.canvas.Image(), image.Point{}, draw.Src)
	g.screen.WritePixels(g.rgba.Pix)
	screen.DrawImage(g.screen, nil)

	hud := fmt.Sprintf("%s  perspective-correct: %t\nfaces: %d  drawn: %d  pixels: %d\nrender: %s  FPS: %0.1f",
		g.cfg.Shader, g.cfg.PerspectiveCorrect,
		g.stats.Faces, g.stats.DrawnTris, g.stats.Pixels,
		g.stats.Duration.Round(100 * time.Microsecond), ebiten.ActualFPS(),
	)
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, color.White)

}

func (g *Game) Layout(w, h int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func main() {

	cfg := config.Default()
	cfg.Width, cfg.Height = 480, 480
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	softgl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	game, err := NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("softgl viewer")
	ebiten.SetWindowSize(cfg.Width*windowScale, cfg.Height*windowScale)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

}
