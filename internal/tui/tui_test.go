package tui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/handiism/showcase/internal/carousel"
	"github.com/handiism/showcase/internal/config"
	"github.com/handiism/showcase/internal/download"
	"github.com/handiism/showcase/internal/model"
	"github.com/handiism/showcase/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	m      Model
	clock  *carousel.ManualClock
	opened []string
}

func testSlides(n int) []*model.Slide {
	slides := make([]*model.Slide, n)
	for i := range slides {
		slides[i] = model.NewSlide(fmt.Sprintf("slides/%02d_slide.png", i+1), "")
	}
	return slides
}

func newHarness(t *testing.T, slides int, mutate func(*config.Settings)) *harness {
	t.Helper()

	settings := config.DefaultSettings()
	settings.ThumbnailWidth = 6
	settings.ThumbnailHeight = 2
	if mutate != nil {
		mutate(settings)
	}

	h := &harness{clock: carousel.NewManualClock()}
	m, err := NewModel(Options{
		Settings: settings,
		Slides:   testSlides(slides),
		Store:    store.NewMemory(),
		Opener:   &download.LogOpener{Opened: func(url string) { h.opened = append(h.opened, url) }},
		Clock:    h.clock,
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)

	h.m = m
	return h
}

func (h *harness) send(msg tea.Msg) {
	updated, _ := h.m.Update(msg)
	h.m = updated.(Model)
}

func (h *harness) press(keys ...string) {
	for _, k := range keys {
		switch k {
		case "left":
			h.send(tea.KeyMsg{Type: tea.KeyLeft})
		case "right":
			h.send(tea.KeyMsg{Type: tea.KeyRight})
		case "space":
			h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		default:
			h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		}
	}
}

func (h *harness) index() int {
	return h.m.app.Carousel.CurrentIndex()
}

func TestModel_Navigation(t *testing.T) {
	h := newHarness(t, 5, nil)

	h.press("right")
	assert.Equal(t, 1, h.index())

	h.press("left", "left")
	assert.Equal(t, 4, h.index())

	h.press("3")
	assert.Equal(t, 2, h.index())

	// Out of range selection is ignored.
	h.press("9")
	assert.Equal(t, 2, h.index())
}

func TestModel_AutoPlayAndPause(t *testing.T) {
	h := newHarness(t, 3, nil)

	h.clock.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1, h.index())

	h.press("space")
	assert.False(t, h.m.app.Carousel.AutoPlaying())
	h.clock.Advance(5 * time.Second)
	assert.Equal(t, 1, h.index())
	assert.Contains(t, ansi.Strip(h.m.View()), "paused")

	h.press("space")
	h.clock.Advance(1500 * time.Millisecond)
	assert.Equal(t, 2, h.index())
}

func TestModel_HoverPausesAutoPlay(t *testing.T) {
	h := newHarness(t, 3, nil)

	h.send(tea.MouseMsg{Y: headerHeight, Action: tea.MouseActionMotion})
	assert.False(t, h.m.app.Carousel.AutoPlaying())

	h.clock.Advance(3 * time.Second)
	assert.Equal(t, 0, h.index())

	h.send(tea.MouseMsg{Y: 0, Action: tea.MouseActionMotion})
	assert.True(t, h.m.app.Carousel.AutoPlaying())

	// Leaving does not resume a manual pause.
	h.press("space")
	h.send(tea.MouseMsg{Y: headerHeight, Action: tea.MouseActionMotion})
	h.send(tea.MouseMsg{Y: 0, Action: tea.MouseActionMotion})
	assert.False(t, h.m.app.Carousel.AutoPlaying())
}

func TestModel_Download(t *testing.T) {
	h := newHarness(t, 1, nil)

	h.press("d")
	assert.Equal(t, []string{config.DefaultBookURL}, h.opened)
	assert.Equal(t, 1, h.m.app.Counter.Count())
	assert.True(t, h.m.downloading)
	assert.True(t, h.m.pulsing)

	view := ansi.Strip(h.m.View())
	assert.Contains(t, view, "Downloading…")
	assert.Contains(t, view, "Downloads: 1")

	// Disabled while the previous download shows.
	h.press("d")
	assert.Len(t, h.opened, 1)

	h.send(pulseDoneMsg{gen: h.m.pulseGen})
	assert.False(t, h.m.pulsing)
	h.send(downloadDoneMsg{gen: h.m.downloadGen})
	assert.False(t, h.m.downloading)
	assert.Contains(t, ansi.Strip(h.m.View()), "Download book")

	h.press("d")
	assert.Len(t, h.opened, 2)
	assert.Equal(t, 2, h.m.app.Counter.Count())
}

func TestModel_StaleDoneMessage(t *testing.T) {
	h := newHarness(t, 1, nil)

	h.press("d")
	h.send(downloadDoneMsg{gen: h.m.downloadGen - 1})
	assert.True(t, h.m.downloading)
}

func TestModel_DownloadUnresolved(t *testing.T) {
	h := newHarness(t, 1, func(s *config.Settings) {
		s.DriveLink = "https://drive.google.com/drive/folders"
	})

	h.press("d")
	assert.Empty(t, h.opened)
	assert.Equal(t, 0, h.m.app.Counter.Count())
	assert.False(t, h.m.downloading)
	require.NotEmpty(t, h.m.logs)
	assert.Equal(t, download.LevelError, h.m.logs[len(h.m.logs)-1].Level)
}

func TestModel_ResetCounter(t *testing.T) {
	h := newHarness(t, 1, nil)

	h.press("d")
	h.press("r")
	assert.Equal(t, 0, h.m.app.Counter.Count())
	assert.Contains(t, ansi.Strip(h.m.View()), "Downloads: 0")
}

func TestModel_ScrollAnimationIsNotManual(t *testing.T) {
	h := newHarness(t, 5, nil)
	h.send(tea.WindowSizeMsg{Width: 25, Height: 30})

	h.press("4")
	require.True(t, h.m.strip.animating)

	for i := 0; i < 20 && h.m.strip.animating; i++ {
		h.send(scrollFrameMsg{})
	}
	assert.False(t, h.m.strip.animating)
	assert.Equal(t, 3, h.index())
	// Slide 4 spans 36..46, centered in a 25 column window.
	assert.Equal(t, 28.5, h.m.strip.ScrollLeft())
}

func TestModel_ManualScroll(t *testing.T) {
	h := newHarness(t, 5, nil)
	h.send(tea.WindowSizeMsg{Width: 25, Height: 30})

	// Let the resize scroll settle.
	h.clock.Advance(600 * time.Millisecond)

	h.press("l")
	assert.Equal(t, 1, h.index())
	assert.True(t, h.m.app.Carousel.AutoPlaying())
}

func TestModel_ManualScrollWhilePaused(t *testing.T) {
	h := newHarness(t, 5, nil)
	h.send(tea.WindowSizeMsg{Width: 25, Height: 30})
	h.clock.Advance(600 * time.Millisecond)

	h.press("space", "l")
	assert.Equal(t, 1, h.index())
	assert.False(t, h.m.app.Carousel.AutoPlaying())
}

func TestModel_Quit(t *testing.T) {
	h := newHarness(t, 3, nil)

	_, cmd := h.m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 0, h.clock.Pending())
}

func TestModel_NoSlides(t *testing.T) {
	h := newHarness(t, 0, nil)

	h.press("right", "l", "1")
	assert.Equal(t, 0, h.index())
	assert.Contains(t, ansi.Strip(h.m.View()), "No slides")
}
