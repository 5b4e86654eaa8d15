package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/handiism/showcase/internal/carousel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrip_Layout(t *testing.T) {
	s := NewStrip(testSlides(3), 6, 2)

	slides := s.QueryAll(carousel.SlideSelector)
	require.Len(t, slides, 3)
	assert.Len(t, s.QueryAll(carousel.IndicatorSelector), 3)
	assert.Empty(t, s.QueryAll(carousel.LegacySlideSelector))

	for i, h := range slides {
		g := h.(carousel.Geometry)
		assert.Equal(t, float64(i*12), g.Offset())
		assert.Equal(t, 10.0, g.Width())
	}
	assert.Equal(t, 5, s.Height())
}

func TestStrip_Scrollable(t *testing.T) {
	s := NewStrip(testSlides(3), 6, 2)

	s.SetClientWidth(80)
	assert.False(t, s.Scrollable())

	s.SetClientWidth(20)
	assert.True(t, s.Scrollable())
}

func TestStrip_ScrollClamps(t *testing.T) {
	s := NewStrip(testSlides(3), 6, 2) // content is 34 wide
	s.SetClientWidth(20)

	s.ScrollBy(-5)
	assert.Equal(t, 0.0, s.ScrollLeft())

	s.ScrollBy(100)
	assert.Equal(t, 14.0, s.ScrollLeft())

	s.SetClientWidth(30)
	assert.Equal(t, 4.0, s.ScrollLeft())
}

func TestStrip_SmoothScroll(t *testing.T) {
	s := NewStrip(testSlides(5), 6, 2)
	s.SetClientWidth(20)

	s.SmoothScrollTo(20)
	require.True(t, s.needsFrame())
	assert.False(t, s.needsFrame(), "one frame at a time")

	frames := 0
	for s.animating {
		s.step()
		frames++
		require.Less(t, frames, 20)
	}
	assert.Equal(t, 20.0, s.ScrollLeft())
	assert.Greater(t, frames, 1)

	// Manual scrolling cancels the animation.
	s.SmoothScrollTo(0)
	s.ScrollBy(1)
	assert.False(t, s.animating)
	assert.Equal(t, 21.0, s.ScrollLeft())
}

func TestStrip_View(t *testing.T) {
	s := NewStrip(testSlides(5), 6, 2)
	s.SetClientWidth(25)
	s.ScrollBy(12)
	s.cards[1].SetActive(true)
	s.dots[1].SetActive(true)

	lines := strings.Split(s.View(), "\n")
	assert.Len(t, lines, s.Height())
	for _, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 25)
	}
	assert.Contains(t, ansi.Strip(s.View()), "02 sl…")

	dots := ansi.Strip(s.DotsView())
	assert.Contains(t, dots, "○ ● ○ ○ ○")
}

func TestStrip_Empty(t *testing.T) {
	s := NewStrip(nil, 6, 2)
	assert.False(t, s.Scrollable())
	assert.Contains(t, ansi.Strip(s.View()), "No slides")
}
