package render_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/termclock/internal/config"
	"github.com/san-kum/termclock/internal/render"
)

type fakeScreen struct {
	mu sync.Mutex

	width, height int
	presentErr    error
	failFirst     int
	panicOnSize   int
	stopAfter     int
	cancel        context.CancelFunc

	sizeCalls int
	frames    []string
	events    []string
}

func (s *fakeScreen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sizeCalls++
	if s.sizeCalls == s.panicOnSize {
		panic("terminal went away")
	}
	return s.width, s.height
}

func (s *fakeScreen) Present(frame string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, frame)
	s.events = append(s.events, "present")
	if s.stopAfter > 0 && len(s.frames) >= s.stopAfter {
		s.cancel()
	}
	if len(s.frames) <= s.failFirst {
		return errors.New("broken pipe")
	}
	return s.presentErr
}

func (s *fakeScreen) HideCursor() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, "hide")
	return nil
}

func (s *fakeScreen) ShowCursor() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, "show")
	return nil
}

func (s *fakeScreen) frameCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

var _ = Describe("Loop", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
		screen *fakeScreen
		clk    *clockwork.FakeClock
		logBuf *bytes.Buffer
		loop   *render.Loop
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		DeferCleanup(cancel)

		screen = &fakeScreen{width: 80, height: 24, cancel: cancel}
		clk = clockwork.NewFakeClockAt(clockAt(15, 0, 0))
		logBuf = &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(logBuf, nil))

		params := config.DefaultParameters()
		params.Smooth = false
		loop = render.NewLoop(render.NewRenderer(params), screen, clk, logger)
	})

	Describe("Step", func() {
		It("presents one frame sized to the screen", func() {
			Expect(loop.Step()).To(Succeed())
			Expect(screen.frames).To(HaveLen(1))
			Expect(screen.frames[0]).To(HaveLen(80 * 24))
		})

		It("reads the time from the clock", func() {
			Expect(loop.Step()).To(Succeed())
			clk.Advance(3 * time.Hour)
			Expect(loop.Step()).To(Succeed())
			Expect(screen.frames[1]).NotTo(Equal(screen.frames[0]))
		})

		It("wraps presenter failures", func() {
			screen.presentErr = errors.New("broken pipe")
			err := loop.Step()
			Expect(err).To(MatchError(render.ErrFrame))
			Expect(err.Error()).To(ContainSubstring("broken pipe"))
		})

		It("recovers from a panicking frame", func() {
			screen.panicOnSize = 1
			var err error
			Expect(func() { err = loop.Step() }).NotTo(Panic())
			Expect(err).To(MatchError(render.ErrFrame))
			Expect(err.Error()).To(ContainSubstring("terminal went away"))
		})
	})

	Describe("Run", func() {
		It("rejects a negative interval", func() {
			_, err := loop.Run(ctx, render.Config{Interval: -time.Second})
			Expect(err).To(MatchError(render.ErrInterval))
			Expect(screen.events).To(BeEmpty())
		})

		It("runs uncapped until cancelled and restores the cursor", func() {
			screen.stopAfter = 5
			stats, err := loop.Run(ctx, render.Config{})
			Expect(err).To(MatchError(context.Canceled))
			Expect(stats.Frames).To(Equal(5))
			Expect(stats.Failed).To(BeZero())

			Expect(screen.events[0]).To(Equal("hide"))
			Expect(screen.events[len(screen.events)-1]).To(Equal("show"))
		})

		It("keeps going after a failed frame", func() {
			screen.panicOnSize = 2
			screen.stopAfter = 3
			stats, err := loop.Run(ctx, render.Config{})
			Expect(err).To(MatchError(context.Canceled))
			Expect(stats.Frames).To(Equal(4))
			Expect(stats.Failed).To(Equal(1))
			Expect(logBuf.String()).To(ContainSubstring("terminal went away"))
		})

		It("logs a streak of failed frames once", func() {
			screen.presentErr = errors.New("broken pipe")
			screen.stopAfter = 50
			stats, err := loop.Run(ctx, render.Config{})
			Expect(err).To(MatchError(context.Canceled))
			Expect(stats.Failed).To(Equal(50))
			Expect(strings.Count(logBuf.String(), "level=ERROR")).To(Equal(1))
		})

		It("logs when frames recover after a streak", func() {
			screen.failFirst = 3
			screen.stopAfter = 6
			stats, err := loop.Run(ctx, render.Config{})
			Expect(err).To(MatchError(context.Canceled))
			Expect(stats.Failed).To(Equal(3))
			Expect(strings.Count(logBuf.String(), "level=ERROR")).To(Equal(1))
			Expect(logBuf.String()).To(ContainSubstring("frames recovered"))
			Expect(logBuf.String()).To(ContainSubstring("failed=3"))
		})

		It("follows screen resizes", func() {
			screen.stopAfter = 2
			screen.width, screen.height = 40, 10
			_, err := loop.Run(ctx, render.Config{})
			Expect(err).To(MatchError(context.Canceled))
			Expect(screen.frames[0]).To(HaveLen(40 * 10))
			Expect(screen.sizeCalls).To(Equal(2))
		})

		It("waits on the clock between frames when an interval is set", func() {
			screen.stopAfter = 3
			interval := 250 * time.Millisecond

			done := make(chan struct{})
			var stats *render.Stats
			go func() {
				defer GinkgoRecover()
				defer close(done)
				stats, _ = loop.Run(ctx, render.Config{Interval: interval})
			}()

			for i := 1; i <= 2; i++ {
				Expect(clk.BlockUntilContext(ctx, 1)).To(Succeed())
				Expect(screen.frameCount()).To(Equal(i))
				clk.Advance(interval)
			}

			Eventually(done).Should(BeClosed())
			Expect(stats.Frames).To(Equal(3))
		})
	})
})
