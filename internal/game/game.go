// Package game drives the per-frame loop of the visualizer: it reads
// cursor and scroll input, runs the visibility sweep, and draws the
// resulting light rays and wall geometry.
package game

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/softglow/raycaster/internal/geom"
	"github.com/softglow/raycaster/internal/render"
	"github.com/softglow/raycaster/internal/scene"
	"github.com/softglow/raycaster/internal/vision"
)

const (
	rayStrokeWidth     = 1
	wallStrokeWidth    = 5
	originMarkerRadius = 4
)

// Game holds the per-frame state of the visualizer. The obstacle set
// is fixed at construction; only the cursor-driven origin and the
// scroll-driven ray density change between frames.
type Game struct {
	cfg       *scene.Config
	scene     *scene.Scene
	obstacles []geom.Segment

	renderer render.Renderer
	input    render.InputManager
	engine   render.Engine

	density    Density
	wheelAccum float64

	origin geom.Point
	beams  []geom.Segment

	debug bool
}

// New builds a Game from a validated scene config.
func New(cfg *scene.Config, renderer render.Renderer, input render.InputManager, engine render.Engine, debug bool) *Game {
	sc := cfg.Scene()
	return &Game{
		cfg:       cfg,
		scene:     sc,
		obstacles: sc.Obstacles(),
		renderer:  renderer,
		input:     input,
		engine:    engine,
		density:   NewDensity(cfg.DensityDefault, cfg.DensityMax),
		debug:     debug,
	}
}

// Update reads input and recomputes the frame's light rays. The
// density counter is read once here and stays stable for the frame.
func (g *Game) Update() error {
	if g.input.IsKeyJustPressed(render.KeyEscape) {
		return render.Terminated
	}
	if g.input.IsKeyJustPressed(render.KeyUp) {
		g.density.Adjust(1)
	}
	if g.input.IsKeyJustPressed(render.KeyDown) {
		g.density.Adjust(-1)
	}

	// Wheel offsets arrive as fractions on smooth-scrolling devices;
	// accumulate them and apply whole ticks.
	_, yoff := g.input.Wheel()
	g.wheelAccum += yoff
	if ticks := int(g.wheelAccum); ticks != 0 {
		g.wheelAccum -= float64(ticks)
		g.density.Adjust(ticks)
	}

	x, y := g.input.GetCursorPosition()
	g.origin = NormalizeCursor(x, y, g.cfg.ScreenWidth, g.cfg.ScreenHeight)

	beams, err := vision.Sweep(g.origin, g.density.Count(), g.cfg.CircleRadius, g.cfg.AspectRatio(), g.obstacles)
	if err != nil {
		return fmt.Errorf("visibility sweep: %w", err)
	}
	g.beams = beams
	return nil
}

// Draw renders the frame: light rays first, then the walls on top.
// The border is scaffolding and is never drawn.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(color.Black)

	for _, beam := range g.beams {
		x1, y1 := g.toScreen(beam.A)
		x2, y2 := g.toScreen(beam.B)
		g.renderer.StrokeLine(screen, x1, y1, x2, y2, rayStrokeWidth, colornames.Lightyellow)
	}

	for _, wall := range g.scene.Walls {
		x1, y1 := g.toScreen(wall.A)
		x2, y2 := g.toScreen(wall.B)
		g.renderer.StrokeLine(screen, x1, y1, x2, y2, wallStrokeWidth, colornames.White)
	}

	if g.debug {
		ox, oy := g.toScreen(g.origin)
		g.renderer.FillCircle(screen, ox, oy, originMarkerRadius, colornames.Orange)
		g.renderer.DrawText(screen, fmt.Sprintf("FPS: %0.1f  TPS: %0.1f\nRays: %d\nOrigin: (%+.2f, %+.2f)",
			g.engine.ActualFPS(), g.engine.ActualTPS(),
			g.density.Count(), g.origin.X, g.origin.Y), 8, 8)
	}
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

func (g *Game) toScreen(p geom.Point) (float32, float32) {
	return DeviceToScreen(p, g.cfg.ScreenWidth, g.cfg.ScreenHeight)
}
