package carousel

// Selectors used to discover carousel parts inside a container.
const (
	// SlideSelector matches slides in current markup.
	SlideSelector = ".carousel-slide"

	// LegacySlideSelector matches slides in markup that predates SlideSelector.
	// It is only queried when SlideSelector yields nothing.
	LegacySlideSelector = ".carousel-image"

	// IndicatorSelector matches navigation dots, one per slide by position.
	IndicatorSelector = ".carousel-dot"
)

// Handle is one element managed by the carousel: a slide or an indicator.
type Handle interface {
	// SetActive marks the element active or inactive (class toggling in a DOM,
	// highlight state in a terminal).
	SetActive(active bool)
}

// Geometry is implemented by slide handles that can report their horizontal
// position inside a scrollable container. Units are up to the binding
// (pixels, terminal columns) but must match the Scroller's.
type Geometry interface {
	Offset() float64
	Width() float64
}

// Container discovers carousel parts with selector-scoped lookup.
//
// QueryAll returns matches in document order. It returns nil or an empty
// slice when nothing matches.
type Container interface {
	QueryAll(selector string) []Handle
}

// Scroller is implemented by containers with horizontal scrollable overflow.
//
// When the container is a Scroller reporting Scrollable() and every slide
// implements Geometry, the carousel centers the active slide and reconciles
// manual scrolling through HandleScroll.
type Scroller interface {
	Container

	// Scrollable reports whether content currently overflows the viewport.
	Scrollable() bool

	// ScrollLeft returns the current horizontal scroll position.
	ScrollLeft() float64

	// ClientWidth returns the visible viewport width.
	ClientWidth() float64

	// SmoothScrollTo starts a smooth scroll to the given position.
	SmoothScrollTo(left float64)
}
