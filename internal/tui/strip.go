package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/handiism/showcase/internal/carousel"
	"github.com/handiism/showcase/internal/model"
)

const (
	// cardChrome is the border plus horizontal padding around slide art.
	cardChrome = 4
	cardGap    = 2
)

// card is one slide in the strip.
type card struct {
	slide  *model.Slide
	active bool
	offset float64
	width  float64
}

func (c *card) SetActive(active bool) { c.active = active }
func (c *card) Offset() float64       { return c.offset }
func (c *card) Width() float64        { return c.width }

// dot is a slide indicator.
type dot struct {
	active bool
}

func (d *dot) SetActive(active bool) { d.active = active }

// Strip lays slides out side by side and shows a horizontally scrolled
// window of them. It is the carousel's container in the terminal.
type Strip struct {
	cards   []*card
	dots    []*dot
	artCols int
	artRows int

	client float64
	left   float64
	target float64

	animating    bool
	framePending bool
}

// NewStrip creates a Strip of slides whose art fits artCols x artRows cells.
func NewStrip(slides []*model.Slide, artCols, artRows int) *Strip {
	s := &Strip{
		artCols: max(artCols, 1),
		artRows: max(artRows, 1),
		client:  80,
	}

	width := s.artCols + cardChrome
	for i, slide := range slides {
		s.cards = append(s.cards, &card{
			slide:  slide,
			offset: float64(i * (width + cardGap)),
			width:  float64(width),
		})
		s.dots = append(s.dots, &dot{})
	}
	return s
}

// QueryAll implements carousel.Container.
func (s *Strip) QueryAll(selector string) []carousel.Handle {
	var handles []carousel.Handle
	switch selector {
	case carousel.SlideSelector:
		for _, c := range s.cards {
			handles = append(handles, c)
		}
	case carousel.IndicatorSelector:
		for _, d := range s.dots {
			handles = append(handles, d)
		}
	}
	return handles
}

// Scrollable implements carousel.Scroller.
func (s *Strip) Scrollable() bool {
	return s.contentWidth() > s.client
}

// ScrollLeft implements carousel.Scroller.
func (s *Strip) ScrollLeft() float64 { return s.left }

// ClientWidth implements carousel.Scroller.
func (s *Strip) ClientWidth() float64 { return s.client }

// SmoothScrollTo implements carousel.Scroller. The scroll position moves
// toward left over the following animation frames.
func (s *Strip) SmoothScrollTo(left float64) {
	s.target = s.clamp(left)
	s.animating = s.target != s.left
}

// ScrollBy moves the window immediately, cancelling any animation.
func (s *Strip) ScrollBy(delta float64) {
	s.left = s.clamp(s.left + delta)
	s.target = s.left
	s.animating = false
}

// SetClientWidth sets the visible width in columns.
func (s *Strip) SetClientWidth(width int) {
	s.client = float64(max(width, 1))
	s.left = s.clamp(s.left)
	s.target = s.clamp(s.target)
}

// Height returns the number of rows the cards occupy.
func (s *Strip) Height() int {
	// art, caption and two border rows
	return s.artRows + 3
}

// needsFrame reports whether an animation frame should be scheduled and
// marks it as pending.
func (s *Strip) needsFrame() bool {
	if !s.animating || s.framePending {
		return false
	}
	s.framePending = true
	return true
}

// step advances the animation by one frame, halving the remaining distance.
func (s *Strip) step() {
	s.framePending = false
	if !s.animating {
		return
	}

	d := s.target - s.left
	if d > -1 && d < 1 {
		s.left = s.target
		s.animating = false
		return
	}

	move := d / 2
	if move > -1 && move < 1 {
		move = d
	}
	s.left += move
	if s.left == s.target {
		s.animating = false
	}
}

func (s *Strip) contentWidth() float64 {
	if len(s.cards) == 0 {
		return 0
	}
	last := s.cards[len(s.cards)-1]
	return last.offset + last.width
}

func (s *Strip) clamp(left float64) float64 {
	maxLeft := s.contentWidth() - s.client
	if left > maxLeft {
		left = maxLeft
	}
	if left < 0 {
		left = 0
	}
	return left
}

// View renders the visible window of cards.
func (s *Strip) View() string {
	if len(s.cards) == 0 {
		return dimStyle.Render("No slides to show.")
	}

	views := make([]string, 0, len(s.cards)*2)
	spacer := strings.Repeat(" ", cardGap)
	for i, c := range s.cards {
		if i > 0 {
			views = append(views, spacer)
		}
		views = append(views, s.renderCard(c))
	}

	joined := lipgloss.JoinHorizontal(lipgloss.Top, views...)
	lines := strings.Split(joined, "\n")
	left := int(s.left)
	for i, line := range lines {
		lines[i] = ansi.Cut(line, left, left+int(s.client))
	}
	return strings.Join(lines, "\n")
}

func (s *Strip) renderCard(c *card) string {
	art := c.slide.Art
	if !c.slide.HasArt() {
		art = dimStyle.Render(ansi.Truncate("no image", s.artCols, ""))
	}
	art = lipgloss.Place(s.artCols, s.artRows, lipgloss.Center, lipgloss.Center, art)

	caption := lipgloss.PlaceHorizontal(s.artCols, lipgloss.Center,
		ansi.Truncate(c.slide.Title, s.artCols, "…"))

	style := cardStyle
	if c.active {
		style = activeCardStyle
		caption = captionStyle.Render(caption)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, art, caption))
}

// DotsView renders the indicators centered in the window.
func (s *Strip) DotsView() string {
	marks := make([]string, len(s.dots))
	for i, d := range s.dots {
		if d.active {
			marks[i] = activeDotStyle.Render("●")
		} else {
			marks[i] = dimStyle.Render("○")
		}
	}
	return lipgloss.PlaceHorizontal(int(s.client), lipgloss.Center, strings.Join(marks, " "))
}
