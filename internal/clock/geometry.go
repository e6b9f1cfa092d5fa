package clock

import (
	"math"
	"time"

	"github.com/san-kum/termclock/internal/config"
)

// Aspect is the horizontal stretch applied to every x offset.
const Aspect = 2.0

// SecondAngle places the second hand. In smooth mode the sub-second
// fraction moves it between ticks.
func SecondAngle(t time.Time, smooth bool) float64 {
	v := float64(t.Second())
	if smooth {
		v += float64(t.Nanosecond()) / float64(time.Second)
	}
	return v / 60 * 2 * math.Pi
}

func MinuteAngle(t time.Time, smooth bool) float64 {
	v := float64(t.Minute())
	if smooth {
		v += float64(t.Second()) / 60
	}
	return v / 60 * 2 * math.Pi
}

// HourAngle places the hour hand on a 12-hour dial; 13:00 and 01:00 give
// the same angle.
func HourAngle(t time.Time, smooth bool) float64 {
	v := float64(t.Hour() % 12)
	if smooth {
		v += float64(t.Minute()) / 60
	}
	return v / 12 * 2 * math.Pi
}

// Endpoint returns the tip of a hand of the given length.
func Endpoint(ox, oy, length, angle float64) (x, y float64) {
	x = ox + length*math.Sin(angle)*Aspect
	y = oy - length*math.Cos(angle)
	return x, y
}

// Layout returns the screen centre and the largest radius that fits once the
// horizontal stretch is accounted for. Integer division matches how cell
// coordinates are picked.
func Layout(width, height int) (ox, oy, maxRadius float64) {
	ox = float64(width / 2)
	oy = float64(height / 2)
	maxRadius = float64(min(width/2, height) / 2)
	return ox, oy, maxRadius
}

// Hand is one resolved clock hand.
type Hand struct {
	Angle  float64
	Length float64
	EndX   float64
	EndY   float64
	Symbol rune
}

// Geometry is everything needed to paint one frame.
type Geometry struct {
	OriginX, OriginY float64
	MaxRadius        float64
	DialRadius       float64
	DialSymbol       rune

	// Hands holds second, minute and hour, in draw order.
	Hands [3]Hand
}

// Compute resolves the frame geometry for a terminal of the given size.
func Compute(width, height int, t time.Time, p *config.Parameters) Geometry {
	ox, oy, maxR := Layout(width, height)
	g := Geometry{
		OriginX:    ox,
		OriginY:    oy,
		MaxRadius:  maxR,
		DialRadius: p.DialRadius * maxR,
		DialSymbol: rune(p.DialSymbol),
	}

	specs := [3]struct {
		angle  float64
		length float64
		symbol config.Symbol
	}{
		{SecondAngle(t, p.Smooth), p.SecondHandLength, p.SecondHandSymbol},
		{MinuteAngle(t, p.Smooth), p.MinuteHandLength, p.MinuteHandSymbol},
		{HourAngle(t, p.Smooth), p.HourHandLength, p.HourHandSymbol},
	}
	for i, s := range specs {
		length := s.length * maxR
		x, y := Endpoint(ox, oy, length, s.angle)
		g.Hands[i] = Hand{
			Angle:  s.angle,
			Length: length,
			EndX:   x,
			EndY:   y,
			Symbol: rune(s.symbol),
		}
	}
	return g
}
