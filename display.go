package ledwave

// This module defines the contracts for the pixel display and font
// collaborators.  The display driver itself is a black box, ili9341 class
// panels and the terminal simulation both fit behind the same interface.

// Font is an opaque handle for a bitmap font owned by the display driver.
type Font interface {
	// Size returns the glyph cell dimensions in pixels.
	Size() (w, h int)
}

// FontLoader fetches a bitmap font resource by name.  A load failure is
// not fatal, callers fall back to the drivers built in glyphs.
type FontLoader func(name string) (font Font, err error)

// Display is a pixel addressed panel taking packed 5/6/5 colors.  All
// writes are blocking and complete before the call returns.
type Display interface {
	// Size returns the panel dimensions in pixels.
	Size() (width, height int)

	// Clear floods the whole panel with a single color.
	Clear(c Color565) (err error)

	// Block writes the rectangular region with inclusive corners (x0,y0)
	// and (x1,y1) from a row major buffer of 16 bit colors, high byte
	// first.  One call transfers the whole region.
	Block(x0, y0, x1, y1 int, pixels []byte) (err error)

	// FillRectangle floods a w by h region anchored at (x,y).
	FillRectangle(x, y, w, h int, c Color565) (err error)

	// DrawText renders text using a font previously obtained from a
	// FontLoader.
	DrawText(x, y int, text string, font Font, fg, bg Color565) (err error)

	// DrawText8x8 renders text with the drivers built in 8x8 glyphs.
	DrawText8x8(x, y int, text string, fg, bg Color565) (err error)
}
