package game

import "github.com/softglow/raycaster/internal/geom"

// NormalizeCursor maps a cursor position in window pixels to device
// coordinates: origin at the window center, both axes clamped to
// [-1, 1], y flipped so up is positive. Window coordinates grow
// downward; device coordinates grow upward.
func NormalizeCursor(x, y, width, height int) geom.Point {
	halfW := float64(width) / 2
	halfH := float64(height) / 2
	return geom.Point{
		X: clampFloat((float64(x)-halfW)/halfW, -1, 1),
		Y: -clampFloat((float64(y)-halfH)/halfH, -1, 1),
	}
}

// DeviceToScreen maps a device-space point back to window pixels for
// drawing. It is the inverse of NormalizeCursor without the clamp:
// border hits at ±1.1 land slightly off screen, which is fine for
// line strokes.
func DeviceToScreen(p geom.Point, width, height int) (x, y float32) {
	halfW := float64(width) / 2
	halfH := float64(height) / 2
	return float32(halfW + p.X*halfW), float32(halfH - p.Y*halfH)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
