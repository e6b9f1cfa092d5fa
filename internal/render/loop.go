package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

// Screen is where frames end up. terminal.Terminal implements it.
type Screen interface {
	Size() (width, height int)
	Present(frame string) error
	HideCursor() error
	ShowCursor() error
}

type Config struct {
	// Interval is the pause between frames. Zero means none.
	Interval time.Duration
}

type Stats struct {
	Frames int
	Failed int
}

type Loop struct {
	renderer *Renderer
	screen   Screen
	clock    clockwork.Clock
	logger   *slog.Logger
}

func NewLoop(r *Renderer, s Screen, clk clockwork.Clock, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		renderer: r,
		screen:   s,
		clock:    clk,
		logger:   logger,
	}
}

// Step renders and presents a single frame. A panic anywhere in the frame
// is turned into an error wrapping ErrFrame.
func (l *Loop) Step() (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: panic: %v", ErrFrame, rec)
		}
	}()

	w, h := l.screen.Size()
	frame := l.renderer.Frame(w, h, l.clock.Now())
	if err := l.screen.Present(frame); err != nil {
		return fmt.Errorf("%w: present: %w", ErrFrame, err)
	}
	return nil
}

// Run hides the cursor and renders frames until ctx is done. Failed frames
// are skipped; a streak of failures is logged once when it starts and once
// when it ends. The cursor is shown again before returning.
func (l *Loop) Run(ctx context.Context, cfg Config) (*Stats, error) {
	if cfg.Interval < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInterval, cfg.Interval)
	}

	if err := l.screen.HideCursor(); err != nil {
		l.logger.Warn("hide cursor", "err", err)
	}
	defer func() {
		if err := l.screen.ShowCursor(); err != nil {
			l.logger.Warn("show cursor", "err", err)
		}
	}()

	stats := &Stats{}
	streak := 0
	l.logger.Info("render loop started", "interval", cfg.Interval)

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("render loop stopped", "frames", stats.Frames, "failed", stats.Failed)
			return stats, ctx.Err()
		default:
		}

		stats.Frames++
		if err := l.Step(); err != nil {
			stats.Failed++
			streak++
			// only the first failure of a streak is logged; a closed stdout
			// would otherwise log once per frame
			if streak == 1 {
				l.logger.Error("frame", "n", stats.Frames, "err", err)
			}
		} else if streak > 0 {
			l.logger.Info("frames recovered", "n", stats.Frames, "failed", streak)
			streak = 0
		}

		if cfg.Interval > 0 {
			select {
			case <-ctx.Done():
			case <-l.clock.After(cfg.Interval):
			}
		}
	}
}
