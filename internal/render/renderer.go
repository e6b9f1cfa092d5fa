package render

import (
	"time"

	"github.com/san-kum/termclock/internal/canvas"
	"github.com/san-kum/termclock/internal/clock"
	"github.com/san-kum/termclock/internal/config"
	"github.com/san-kum/termclock/internal/raster"
)

type Renderer struct {
	params *config.Parameters
	canvas *canvas.Canvas
}

func NewRenderer(p *config.Parameters) *Renderer {
	return &Renderer{
		params: p,
		canvas: canvas.New(0, 0),
	}
}

// Canvas exposes the grid from the most recent Draw.
func (r *Renderer) Canvas() *canvas.Canvas { return r.canvas }

// Draw paints the clock for time t onto a freshly sized canvas. Hands are
// drawn second, minute, hour, so the hour hand wins where they overlap.
func (r *Renderer) Draw(width, height int, t time.Time) clock.Geometry {
	r.canvas.Resize(width, height)
	r.canvas.Clear()

	g := clock.Compute(width, height, t, r.params)

	raster.DrawCircle(r.canvas, g.OriginX, g.OriginY, g.DialRadius, g.DialSymbol)
	for _, h := range g.Hands {
		raster.DrawLine(r.canvas, g.OriginX, g.OriginY, h.EndX, h.EndY, h.Symbol)
	}
	return g
}

// Frame draws and serializes one frame.
func (r *Renderer) Frame(width, height int, t time.Time) string {
	r.Draw(width, height, t)
	return r.canvas.Serialize(r.params.RenderLastLine)
}
