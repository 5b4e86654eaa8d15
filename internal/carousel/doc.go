// Package carousel implements an auto-rotating slide carousel that is
// independent of any particular UI toolkit.
//
// The carousel talks to its host through small capability interfaces:
//
//   - Container discovers slides and indicators by selector
//   - Handle marks one element active or inactive
//   - Geometry and Scroller add horizontal layout for scrollable hosts
//   - Clock arms the auto-play and settle timers
//
// # Basic Usage
//
//	c, err := carousel.New(container,
//	    carousel.WithAutoPlayInterval(1500*time.Millisecond),
//	    carousel.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//	c.StartAutoPlay()
//	defer c.Destroy()
//
// Hosts forward UI events to Next, Prev, GoToSlide, PauseAutoPlay and
// HandleScroll.
//
// # Manual Scrolling
//
// When the container scrolls, UpdateDisplay centers the active slide and
// suppresses scroll detection for DefaultSettleDelay. HandleScroll then picks
// the slide closest to the viewport center and restarts auto-play.
//
// # Timers
//
// RealClock runs callbacks on goroutines. ManualClock is advanced explicitly
// and is meant for tests. Stopped timers never change carousel state, even if
// a callback was already in flight.
package carousel
