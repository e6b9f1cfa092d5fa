// Package canvas provides the character grid a clock frame is painted onto.
//
// A [Canvas] is a width × height grid of runes. Pixel writes take real-valued
// coordinates, are rounded to the nearest cell and silently clipped to the
// grid, so callers never need to bounds-check geometry themselves.
//
// Resizing and clearing are separate steps:
//
//	c := canvas.New(0, 0)
//	c.Resize(80, 24)
//	c.Clear()
//	c.SetPixel(40, 12, '*')
//	out := c.Serialize(true)
package canvas
