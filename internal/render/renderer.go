// Package render defines the backend-neutral drawing and input surface
// the visualizer runs against. This allows swapping rendering backends
// without touching the visibility core or the frame logic.
package render

import (
	"errors"
	"image"
	"image/color"
)

// Terminated is returned from Game.Update to request a clean shutdown
// of the engine loop.
var Terminated = errors.New("render: game terminated")

// Renderer draws primitives onto an image surface.
type Renderer interface {
	// StrokeLine draws a straight line with the given stroke width.
	StrokeLine(dst Image, x1, y1, x2, y2, strokeWidth float32, clr color.Color)

	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// DrawText draws debug text at the given pixel position.
	DrawText(dst Image, text string, x, y int)
}

// Image represents a renderable surface. The engine hands the frame's
// screen to Game.Draw through this interface.
type Image interface {
	Bounds() image.Rectangle
	Fill(clr color.Color)
}

// InputManager handles input from the user (mouse, wheel, keyboard).
type InputManager interface {
	// GetCursorPosition returns the cursor position in window pixels.
	GetCursorPosition() (x, y int)

	// Wheel returns the scroll offsets since the previous tick.
	Wheel() (xoff, yoff float64)

	// IsKeyJustPressed reports whether the key went down this tick.
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the visualizer reacts to.
const (
	KeyUp Key = iota
	KeyDown
	KeyEscape
)

// Game represents the per-frame callbacks the engine drives.
type Game interface {
	// Update advances the frame logic. It is called once per tick.
	// Returning Terminated ends the loop cleanly; any other error
	// aborts it.
	Update() error

	// Draw renders the current frame onto the screen.
	Draw(screen Image)

	// Layout accepts the outside (window) size and returns the logical
	// screen size used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages the window and the game loop.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// ActualFPS and ActualTPS report the measured frame and tick rates
	// for the debug overlay.
	ActualFPS() float64
	ActualTPS() float64

	// RunGame runs the game loop with the provided game. This is a
	// blocking call that runs until the game ends.
	RunGame(game Game) error
}
