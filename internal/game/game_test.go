package game

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/softglow/raycaster/internal/render"
	"github.com/softglow/raycaster/internal/scene"
)

type fakeInput struct {
	x, y   int
	wheelY float64
	keys   map[render.Key]bool
}

func (f *fakeInput) GetCursorPosition() (int, int)        { return f.x, f.y }
func (f *fakeInput) Wheel() (float64, float64)            { return 0, f.wheelY }
func (f *fakeInput) IsKeyJustPressed(key render.Key) bool { return f.keys[key] }

type fakeRenderer struct {
	lines   int
	circles int
	texts   []string
}

func (f *fakeRenderer) StrokeLine(dst render.Image, x1, y1, x2, y2, w float32, c color.Color) {
	f.lines++
}
func (f *fakeRenderer) FillCircle(dst render.Image, x, y, r float32, c color.Color) { f.circles++ }
func (f *fakeRenderer) DrawText(dst render.Image, text string, x, y int) {
	f.texts = append(f.texts, text)
}

type fakeImage struct {
	fills int
}

func (f *fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, 1920, 1080) }
func (f *fakeImage) Fill(color.Color)        { f.fills++ }

type fakeEngine struct{}

func (fakeEngine) SetWindowSize(int, int)    {}
func (fakeEngine) SetWindowTitle(string)     {}
func (fakeEngine) SetWindowResizable(bool)   {}
func (fakeEngine) ActualFPS() float64        { return 60 }
func (fakeEngine) ActualTPS() float64        { return 60 }
func (fakeEngine) RunGame(render.Game) error { return nil }

func newTestGame(input *fakeInput, rend *fakeRenderer, debug bool) *Game {
	cfg := scene.DefaultConfig()
	return New(cfg, rend, input, fakeEngine{}, debug)
}

func TestUpdateComputesBeamsFromCursor(t *testing.T) {
	input := &fakeInput{x: 960, y: 540}
	g := newTestGame(input, &fakeRenderer{}, false)

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if g.origin != NormalizeCursor(960, 540, 1920, 1080) {
		t.Errorf("origin %v, want the normalized window center", g.origin)
	}
	if len(g.beams) != 180 {
		t.Errorf("got %d beams, want the default density of 180", len(g.beams))
	}
}

func TestUpdateEscapeTerminates(t *testing.T) {
	input := &fakeInput{keys: map[render.Key]bool{render.KeyEscape: true}}
	g := newTestGame(input, &fakeRenderer{}, false)

	if err := g.Update(); !errors.Is(err, render.Terminated) {
		t.Errorf("Update() = %v, want Terminated", err)
	}
}

func TestUpdateWheelAdjustsDensity(t *testing.T) {
	input := &fakeInput{x: 960, y: 540, wheelY: -1}
	g := newTestGame(input, &fakeRenderer{}, false)

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.density.Count() != 179 {
		t.Errorf("density %d after one tick down, want 179", g.density.Count())
	}

	// Fractional offsets accumulate across ticks.
	input.wheelY = 0.5
	for i := 0; i < 2; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	if g.density.Count() != 180 {
		t.Errorf("density %d after two half ticks up, want 180", g.density.Count())
	}
}

func TestUpdateArrowKeysAdjustDensity(t *testing.T) {
	input := &fakeInput{x: 960, y: 540, keys: map[render.Key]bool{render.KeyUp: true}}
	g := newTestGame(input, &fakeRenderer{}, false)

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.density.Count() != 181 {
		t.Errorf("density %d after KeyUp, want 181", g.density.Count())
	}
}

func TestDrawStrokesBeamsAndWalls(t *testing.T) {
	input := &fakeInput{x: 960, y: 540}
	rend := &fakeRenderer{}
	g := newTestGame(input, rend, false)

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	screen := &fakeImage{}
	g.Draw(screen)

	if screen.fills != 1 {
		t.Errorf("screen filled %d times, want 1", screen.fills)
	}
	want := len(g.beams) + len(g.scene.Walls)
	if rend.lines != want {
		t.Errorf("stroked %d lines, want %d (beams + walls)", rend.lines, want)
	}
	if rend.circles != 0 || len(rend.texts) != 0 {
		t.Error("debug overlay drawn without the debug flag")
	}
}

func TestDrawDebugOverlay(t *testing.T) {
	input := &fakeInput{x: 960, y: 540}
	rend := &fakeRenderer{}
	g := newTestGame(input, rend, true)

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	g.Draw(&fakeImage{})

	if rend.circles != 1 {
		t.Errorf("drew %d origin markers, want 1", rend.circles)
	}
	if len(rend.texts) != 1 {
		t.Errorf("drew %d overlay texts, want 1", len(rend.texts))
	}
}
