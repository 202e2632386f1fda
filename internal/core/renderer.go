package core

// Renderer is the pixel-level drawing contract a windowed front end provides.
// Coordinates are in pixels with the origin at the top-left.
type Renderer interface {
	// Clear fills the whole frame with c.
	Clear(c RGBA)
	// DrawRect fills an axis-aligned rectangle, alpha-blended over the frame.
	DrawRect(x, y, w, h int, c RGBA)
	// Present flips the finished frame to the display.
	Present() error
}
