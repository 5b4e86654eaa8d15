package carousel

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/handiism/showcase/internal/model"
	"go.uber.org/zap"
)

const (
	// DefaultAutoPlayInterval is the auto-play period when none is configured.
	DefaultAutoPlayInterval = 3 * time.Second

	// DefaultSettleDelay is how long manual-scroll detection stays suppressed
	// after the carousel scrolls the container itself.
	DefaultSettleDelay = 600 * time.Millisecond
)

// Option customises a Carousel.
type Option func(*Carousel)

// WithAutoPlayInterval sets the auto-play period. Non-positive values are ignored.
func WithAutoPlayInterval(d time.Duration) Option {
	return func(c *Carousel) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithSettleDelay sets the programmatic scroll settle delay. Non-positive values are ignored.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Carousel) {
		if d > 0 {
			c.settleDelay = d
		}
	}
}

// WithClock sets the clock used for auto-play and settle timers. Default: RealClock.
func WithClock(clock Clock) Option {
	return func(c *Carousel) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the logger used for advisory warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Carousel) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Carousel rotates through a fixed set of slides.
//
// Carousel owns:
//   - the current slide index, always within [0, n-1] when n > 0
//   - a repeating auto-play timer calling Next
//   - a settle timer that suppresses manual-scroll detection while the
//     carousel scrolls its own container
//
// All methods are safe for concurrent use. Navigation never fails: an empty
// carousel ignores navigation, out-of-range GoToSlide calls are ignored.
//
// Example:
//
//	c, err := carousel.New(container, carousel.WithAutoPlayInterval(1500*time.Millisecond))
//	if err != nil {
//	    return err
//	}
//	c.StartAutoPlay()
//	defer c.Destroy()
type Carousel struct {
	mu sync.Mutex

	container  Container
	scroller   Scroller
	slides     []Handle
	indicators []Handle
	current    int

	interval    time.Duration
	settleDelay time.Duration
	clock       Clock
	logger      *zap.Logger

	timer    Timer
	timerGen uint64

	programmatic bool
	settle       Timer
	settleGen    uint64
}

// New creates a Carousel over the slides found in container.
//
// Slides are discovered with SlideSelector, falling back to
// LegacySlideSelector. Finding no slides is valid: a warning is logged and
// every navigation call becomes a no-op. Indicators are discovered once with
// IndicatorSelector.
//
// Returns an error wrapping model.ErrInvalidArgument if container is nil.
func New(container Container, opts ...Option) (*Carousel, error) {
	if container == nil {
		return nil, fmt.Errorf("%w: carousel container is required", model.ErrInvalidArgument)
	}

	c := &Carousel{
		container:   container,
		interval:    DefaultAutoPlayInterval,
		settleDelay: DefaultSettleDelay,
		clock:       RealClock{},
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.slides = container.QueryAll(SlideSelector)
	if len(c.slides) == 0 {
		c.slides = container.QueryAll(LegacySlideSelector)
	}
	c.indicators = container.QueryAll(IndicatorSelector)

	if s, ok := container.(Scroller); ok && slidesHaveGeometry(c.slides) {
		c.scroller = s
	}

	if len(c.slides) == 0 {
		c.logger.Warn("no slides found in carousel container",
			zap.String("selector", SlideSelector),
			zap.String("legacy_selector", LegacySlideSelector))
		return c, nil
	}

	c.updateDisplayLocked()
	return c, nil
}

func slidesHaveGeometry(slides []Handle) bool {
	for _, s := range slides {
		if _, ok := s.(Geometry); !ok {
			return false
		}
	}
	return true
}

// CurrentIndex returns the index of the active slide. It is 0 for an empty carousel.
func (c *Carousel) CurrentIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// SlideCount returns the number of slides discovered at construction.
func (c *Carousel) SlideCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slides)
}

// AutoPlaying reports whether the auto-play timer is armed.
func (c *Carousel) AutoPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

// Interval returns the auto-play period.
func (c *Carousel) Interval() time.Duration {
	return c.interval
}

// Next advances to the following slide, wrapping to the first.
func (c *Carousel) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextLocked()
}

func (c *Carousel) nextLocked() {
	n := len(c.slides)
	if n == 0 {
		return
	}
	c.current = (c.current + 1) % n
	c.updateDisplayLocked()
}

// Prev moves to the previous slide, wrapping to the last.
func (c *Carousel) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.slides)
	if n == 0 {
		return
	}
	c.current = (c.current - 1 + n) % n
	c.updateDisplayLocked()
}

// GoToSlide activates slide i. Indices outside [0, n-1] are ignored.
func (c *Carousel) GoToSlide(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= len(c.slides) {
		return
	}
	c.current = i
	c.updateDisplayLocked()
}

// UpdateDisplay marks the current slide and its indicator active and every
// other one inactive, then centers the active slide when the container
// scrolls.
func (c *Carousel) UpdateDisplay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateDisplayLocked()
}

func (c *Carousel) updateDisplayLocked() {
	for i, slide := range c.slides {
		slide.SetActive(i == c.current)
	}
	for i, dot := range c.indicators {
		dot.SetActive(i == c.current)
	}

	if !c.scrollableLocked() || len(c.slides) == 0 {
		return
	}

	g := c.slides[c.current].(Geometry)
	left := g.Offset() + g.Width()/2 - c.scroller.ClientWidth()/2
	if left < 0 {
		left = 0
	}

	c.programmatic = true
	c.armSettleLocked()
	c.scroller.SmoothScrollTo(left)
}

func (c *Carousel) scrollableLocked() bool {
	return c.scroller != nil && c.scroller.Scrollable()
}

func (c *Carousel) armSettleLocked() {
	c.stopSettleLocked()
	gen := c.settleGen
	c.settle = c.clock.AfterFunc(c.settleDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.settleGen != gen {
			return
		}
		c.programmatic = false
		c.settle = nil
	})
}

func (c *Carousel) stopSettleLocked() {
	if c.settle != nil {
		c.settle.Stop()
		c.settle = nil
	}
	c.settleGen++
}

// StartAutoPlay arms the auto-play timer, replacing any timer already running.
func (c *Carousel) StartAutoPlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked()
}

func (c *Carousel) startLocked() {
	c.stopLocked()
	gen := c.timerGen
	c.timer = c.clock.Every(c.interval, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.timerGen != gen {
			return
		}
		c.nextLocked()
	})
}

// StopAutoPlay clears the auto-play timer. It is safe to call at any time.
func (c *Carousel) StopAutoPlay() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Carousel) stopLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.timerGen++
}

// PauseAutoPlay is StopAutoPlay under the name used by hover handlers.
func (c *Carousel) PauseAutoPlay() {
	c.StopAutoPlay()
}

// ResetAutoPlay restarts the auto-play timer so the next tick is a full
// interval away.
func (c *Carousel) ResetAutoPlay() {
	c.StartAutoPlay()
}

// HandleScroll reconciles the current index with a user-driven scroll.
//
// It is a no-op when the container does not scroll or while a programmatic
// scroll is settling. Otherwise the slide whose center is closest to the
// viewport center becomes current (first one wins ties); if that changes the
// index the display is updated and auto-play restarts.
func (c *Carousel) HandleScroll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.scrollableLocked() || c.programmatic || len(c.slides) == 0 {
		return
	}

	closest := c.closestSlideLocked()
	if closest == c.current {
		return
	}

	c.current = closest
	c.updateDisplayLocked()
	c.startLocked()
}

func (c *Carousel) closestSlideLocked() int {
	center := c.scroller.ScrollLeft() + c.scroller.ClientWidth()/2

	closest := 0
	best := math.Inf(1)
	for i, slide := range c.slides {
		g := slide.(Geometry)
		d := math.Abs(g.Offset() + g.Width()/2 - center)
		if d < best {
			best = d
			closest = i
		}
	}
	return closest
}

// Destroy stops every timer owned by the carousel. Slide and indicator state
// is left as is.
func (c *Carousel) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.stopSettleLocked()
	c.programmatic = false
}
