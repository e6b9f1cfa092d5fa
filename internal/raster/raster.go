// Package raster draws lines and circles through a single pixel-set primitive.
package raster

import "math"

// Plotter is anything that can take a character at a real-valued position.
// Bounds reports the drawable width and height; points that round outside
// it are never plotted. canvas.Canvas is the usual implementation.
type Plotter interface {
	SetPixel(x, y float64, c rune)
	Bounds() (width, height int)
}

// margin widens the drawable window so points that round onto an edge
// cell are still visited.
const margin = 1.0

// DrawLine draws from (x0, y0) to (x1, y1) inclusive with a DDA stepper:
// point i is the start plus i real-valued increments, rounded when plotted.
// A zero-length segment plots the start point once. Only the steps that
// land near the plotter's bounds are visited, so the cost is bounded by
// the drawable area and not by the segment length.
func DrawLine(p Plotter, x0, y0, x1, y1 float64, c rune) {
	if !finite(x0, y0, x1, y1) {
		return
	}
	dx := x1 - x0
	dy := y1 - y0

	steps := math.Round(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		p.SetPixel(x0, y0, c)
		return
	}
	if math.IsInf(steps, 0) {
		return
	}

	incX := dx / steps
	incY := dy / steps

	w, h := p.Bounds()
	lo, hi := 0.0, steps
	var ok bool
	if lo, hi, ok = clip(lo, hi, x0, incX, float64(w)); !ok {
		return
	}
	if lo, hi, ok = clip(lo, hi, y0, incY, float64(h)); !ok {
		return
	}

	first := math.Ceil(lo)
	last := math.Floor(hi)
	if first+1 == first {
		return
	}
	for i := first; i <= last; i++ {
		p.SetPixel(x0+i*incX, y0+i*incY, c)
	}
}

// clip narrows [lo, hi] to the step indices i where start+i*inc stays
// within [-margin, size+margin].
func clip(lo, hi, start, inc, size float64) (float64, float64, bool) {
	lower, upper := -margin, size+margin
	if inc == 0 {
		return lo, hi, start >= lower && start <= upper
	}
	a := (lower - start) / inc
	b := (upper - start) / inc
	if a > b {
		a, b = b, a
	}
	lo = math.Max(lo, a)
	hi = math.Min(hi, b)
	return lo, hi, lo <= hi
}

// DrawCircle draws the outline of a circle centred on (cx, cy).
//
// Terminal cells are about twice as tall as they are wide, so the circle is
// stretched by 2 horizontally. Two scans cover the outline: one steps along x
// and solves for y where the curve is flat, the other steps along y and solves
// for x where it is steep. They overlap near the diagonals. Each scan keeps
// its unit step from the curve's extreme but only visits the part that
// overlaps the plotter's bounds.
func DrawCircle(p Plotter, cx, cy, radius float64, c rune) {
	if !finite(cx, cy, radius) || radius <= 0 {
		return
	}
	r2 := radius * radius
	w, h := p.Bounds()

	left := cx - radius*math.Sqrt2
	right := cx + radius*math.Sqrt2
	scan(left, right, float64(w), func(x float64) {
		dy := math.Sqrt(clamp(r2 - math.Pow(0.5*x-0.5*cx, 2)))
		p.SetPixel(x, cy+dy, c)
		p.SetPixel(x, cy-dy, c)
	})

	top := cy - radius*math.Sqrt(0.5)
	bottom := cy + radius*math.Sqrt(0.5)
	scan(top, bottom, float64(h), func(y float64) {
		dx := 2 * math.Sqrt(clamp(r2-math.Pow(y-cy, 2)))
		p.SetPixel(cx+dx, y, c)
		p.SetPixel(cx-dx, y, c)
	})
}

// scan calls fn for from, from+1, ... below to, skipping the values that
// fall outside [-margin, size+margin].
func scan(from, to, size float64, fn func(float64)) {
	start := from
	if start < -margin {
		start = from + math.Ceil(-margin-from)
		// far enough out that from has no fractional part left to keep
		if !(math.Abs(start+margin) <= 1) {
			start = -margin
		}
	}
	end := math.Min(to, size+margin)
	if start+1 == start {
		return
	}
	for v := start; v < end; v++ {
		fn(v)
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
