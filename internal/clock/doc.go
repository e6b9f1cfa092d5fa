// Package clock converts a time of day into clock-face geometry.
//
// Angles are in radians, measured clockwise from twelve o'clock. Screen
// coordinates grow right and down, and every horizontal distance is doubled
// to make up for terminal cells being about twice as tall as wide:
//
//	x = ox + L·sin(θ)·2
//	y = oy − L·cos(θ)
//
// [Compute] builds a whole frame's [Geometry] from the terminal size, the
// current time and the loaded parameters.
package clock
