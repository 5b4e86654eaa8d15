// Package tui provides a Bubble Tea terminal user interface for the showcase.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/handiism/showcase/internal/app"
	"github.com/handiism/showcase/internal/carousel"
	"github.com/handiism/showcase/internal/config"
	"github.com/handiism/showcase/internal/counter"
	"github.com/handiism/showcase/internal/download"
	ioutils "github.com/handiism/showcase/internal/io"
	"github.com/handiism/showcase/internal/logging"
	"github.com/handiism/showcase/internal/model"
	"github.com/handiism/showcase/internal/store"
	"go.uber.org/zap"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6C757D")).
			Padding(0, 1)

	activeCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("#4ECDC4"))

	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	activeDotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	counterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	pulseStyle = counterStyle.
			Foreground(lipgloss.Color("#FFE66D")).
			Underline(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A2E")).
			Background(lipgloss.Color("#4ECDC4")).
			Padding(0, 2)

	busyButtonStyle = buttonStyle.
			Background(lipgloss.Color("#6C757D"))
)

const (
	// headerHeight is the number of rows above the strip: title, its
	// margin, subtitle and a blank line.
	headerHeight = 4

	// downloadingFor and pulseFor match the feedback of the download button.
	downloadingFor = 2 * time.Second
	pulseFor       = 600 * time.Millisecond

	frameInterval = 30 * time.Millisecond
	scrollStep    = 4
	maxLogs       = 5
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// Options configures a Model.
type Options struct {
	Settings *config.Settings
	Slides   []*model.Slide
	Store    counter.Store

	// Opener defaults to the one named by Settings.Opener.
	Opener download.Opener

	// Clock defaults to a clock that delivers ticks through the event loop.
	Clock carousel.Clock

	Logger *zap.Logger
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	app      *app.App
	strip    *Strip
	fetcher  *download.Fetcher
	settings *config.Settings
	logger   *zap.Logger

	keys     keyMap
	help     help.Model
	progress progress.Model
	logs     []LogEntry

	// Background goroutines post timer and fetch messages here.
	events chan tea.Msg
	ctx    context.Context
	cancel context.CancelFunc

	downloading bool
	downloadGen int
	pulsing     bool
	pulseGen    int
	fetching    bool

	paused   bool
	hovering bool

	receivedBytes int64
	totalBytes    int64

	width  int
	height int
}

// Message types
type (
	// ProgressMsg is sent when fetch progress updates.
	ProgressMsg struct {
		Event download.ProgressEvent
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}

	// scrollFrameMsg advances the strip's scroll animation.
	scrollFrameMsg struct{}

	// downloadDoneMsg ends the "Downloading…" state it was scheduled for.
	downloadDoneMsg struct{ gen int }

	// pulseDoneMsg ends the counter pulse it was scheduled for.
	pulseDoneMsg struct{ gen int }
)

// NewModel creates a new TUI model and starts auto-play.
func NewModel(opts Options) (Model, error) {
	settings := opts.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tea.Msg, 64)

	m := Model{
		strip:    NewStrip(opts.Slides, settings.ThumbnailWidth, settings.ThumbnailHeight),
		settings: settings,
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		logs:     make([]LogEntry, 0),
		events:   events,
		ctx:      ctx,
		cancel:   cancel,
	}
	m.progress.Width = 50

	opener := opts.Opener
	if opener == nil {
		var err error
		opener, err = download.NewOpener(ctx, settings.Opener, settings, logger, func(event download.ProgressEvent) {
			select {
			case events <- ProgressMsg{Event: event}:
			case <-ctx.Done():
			}
		})
		if err != nil {
			cancel()
			return Model{}, err
		}
	}
	if f, ok := opener.(*download.Fetcher); ok {
		m.fetcher = f
	}

	clock := opts.Clock
	if clock == nil {
		clock = &loopClock{ctx: ctx, events: events}
	}

	a, err := app.New(app.Deps{
		Container: m.strip,
		Store:     opts.Store,
		Opener:    opener,
		Clock:     clock,
		Logger:    logger,
		Settings:  settings,
	})
	if err != nil {
		cancel()
		return Model{}, err
	}
	m.app = a

	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(listen(m.ctx, m.events), m.animate())
}

// Close stops timers and background downloads.
func (m Model) Close() {
	m.app.Close()
	m.cancel()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		m.strip.SetClientWidth(msg.Width)
		m.app.Carousel.UpdateDisplay()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Prev):
			m.app.Carousel.Prev()

		case key.Matches(msg, m.keys.Next):
			m.app.Carousel.Next()

		case key.Matches(msg, m.keys.ScrollLeft):
			m.strip.ScrollBy(-scrollStep)
			m.handleScroll()

		case key.Matches(msg, m.keys.ScrollRight):
			m.strip.ScrollBy(scrollStep)
			m.handleScroll()

		case key.Matches(msg, m.keys.Slide):
			m.app.Carousel.GoToSlide(int(msg.Runes[0] - '1'))

		case key.Matches(msg, m.keys.Pause):
			m.togglePause()

		case key.Matches(msg, m.keys.Download):
			cmds = append(cmds, m.startDownload())

		case key.Matches(msg, m.keys.Reset):
			if err := m.app.Counter.Reset(); err != nil {
				m.addLog(err.Error(), download.LevelError)
			} else {
				m.addLog("Download count reset", download.LevelInfo)
			}
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case timerMsg:
		msg.timer.fire()
		cmds = append(cmds, listen(m.ctx, m.events))

	case ProgressMsg:
		if msg.Event.Level != download.LevelVerbose {
			m.addLog(msg.Event.Message, msg.Event.Level)
		}
		if msg.Event.Level == download.LevelSuccess || msg.Event.Level == download.LevelError {
			m.fetching = false
		}
		cmds = append(cmds, listen(m.ctx, m.events))

	case scrollFrameMsg:
		m.strip.step()
		m.handleScroll()

	case downloadDoneMsg:
		if msg.gen == m.downloadGen {
			m.downloading = false
		}

	case pulseDoneMsg:
		if msg.gen == m.pulseGen {
			m.pulsing = false
		}

	case TickMsg:
		if m.fetcher != nil {
			received, total, _, _ := m.fetcher.GetProgress()
			m.receivedBytes = received
			m.totalBytes = total

			var percent float64
			if total > 0 {
				percent = float64(received) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent))
			if m.fetching {
				cmds = append(cmds, m.tickProgress())
			}
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Carousel calls above may have started a smooth scroll.
	cmds = append(cmds, m.animate())

	return m, tea.Batch(cmds...)
}

func (m *Model) togglePause() {
	if m.paused {
		m.paused = false
		if !m.hovering {
			m.app.Carousel.StartAutoPlay()
		}
		return
	}
	m.paused = true
	m.app.Carousel.PauseAutoPlay()
}

// handleMouse pauses auto-play while the pointer is over the strip and
// scrolls it with the wheel.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	over := msg.Y >= headerHeight && msg.Y < headerHeight+m.strip.Height()

	switch {
	case over && !m.hovering:
		m.hovering = true
		m.app.Carousel.PauseAutoPlay()
	case !over && m.hovering:
		m.hovering = false
		if !m.paused {
			m.app.Carousel.StartAutoPlay()
		}
	}

	if !over || msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		m.strip.ScrollBy(-scrollStep)
		m.handleScroll()
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		m.strip.ScrollBy(scrollStep)
		m.handleScroll()
	}
}

// handleScroll reports a scroll to the carousel. A manual scroll restarts
// auto-play, which must stay off while paused or hovered.
func (m *Model) handleScroll() {
	m.app.Carousel.HandleScroll()
	if (m.paused || m.hovering) && m.app.Carousel.AutoPlaying() {
		m.app.Carousel.PauseAutoPlay()
	}
}

// startDownload counts and opens the configured book. The action is
// disabled while the previous one still shows as downloading.
func (m *Model) startDownload() tea.Cmd {
	if m.downloading {
		return nil
	}

	url, err := m.app.Download("", func() {
		m.downloading = true
		m.downloadGen++
		m.pulsing = true
		m.pulseGen++
	})
	if err != nil {
		m.addLog(fmt.Sprintf("Download failed: %v", err), download.LevelError)
		return nil
	}
	m.addLog(fmt.Sprintf("Opening %s", url), download.LevelInfo)

	downloadGen, pulseGen := m.downloadGen, m.pulseGen
	cmds := []tea.Cmd{
		tea.Tick(downloadingFor, func(time.Time) tea.Msg { return downloadDoneMsg{gen: downloadGen} }),
		tea.Tick(pulseFor, func(time.Time) tea.Msg { return pulseDoneMsg{gen: pulseGen} }),
	}
	if m.fetcher != nil {
		m.fetching = true
		cmds = append(cmds, m.tickProgress())
	}
	return tea.Batch(cmds...)
}

func (m *Model) addLog(message string, level download.ProgressLevel) {
	m.logs = append(m.logs, LogEntry{Message: message, Level: level})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// animate schedules the next scroll frame while the strip is animating.
func (m Model) animate() tea.Cmd {
	if !m.strip.needsFrame() {
		return nil
	}
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return scrollFrameMsg{}
	})
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render(m.settings.BookTitle))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.slideStatus()))
	b.WriteString("\n\n")

	// Carousel
	b.WriteString(m.strip.View())
	b.WriteString("\n")
	b.WriteString(m.strip.DotsView())
	b.WriteString("\n\n")

	// Download
	b.WriteString(m.viewDownload())
	b.WriteString("\n")

	// Logs
	b.WriteString(m.renderLogs())

	// Footer
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) slideStatus() string {
	c := m.app.Carousel
	if c.SlideCount() == 0 {
		return "No slides"
	}

	state := "▶ auto-play"
	switch {
	case m.paused:
		state = "⏸ paused"
	case m.hovering:
		state = "⏸ hover"
	}
	return fmt.Sprintf("Slide %d/%d • %s", c.CurrentIndex()+1, c.SlideCount(), state)
}

func (m Model) viewDownload() string {
	var b strings.Builder

	count := humanize.Comma(int64(m.app.Counter.Count()))
	style := counterStyle
	if m.pulsing {
		style = pulseStyle
	}
	b.WriteString(infoStyle.Render("Downloads:"))
	b.WriteString(" ")
	b.WriteString(style.Render(count))
	b.WriteString("\n\n")

	if m.downloading {
		b.WriteString(busyButtonStyle.Render("Downloading…"))
	} else {
		b.WriteString(buttonStyle.Render("Download book"))
	}
	b.WriteString("\n")

	if m.fetcher != nil && (m.fetching || m.totalBytes > 0) {
		var percent float64
		if m.totalBytes > 0 {
			percent = float64(m.receivedBytes) / float64(m.totalBytes)
		}
		b.WriteString("\n")
		b.WriteString(m.progress.ViewAs(percent))
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf("Downloaded: %s / %s",
			humanize.Bytes(uint64(m.receivedBytes)),
			humanize.Bytes(uint64(m.totalBytes)))))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

// Run starts the TUI application.
func Run(configPath string, verbose bool) error {
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Verbose: verbose,
		File:    settings.LogFile,
		Discard: true,
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	kv, err := store.Open(settings.StoreBackend, settings.StorePath, logger)
	if err != nil {
		return err
	}
	defer kv.Close()

	slides, err := ioutils.LoadSlides(context.Background(), settings.SlidesDir,
		settings.ThumbnailWidth, settings.ThumbnailHeight, 4, logger)
	if err != nil {
		logger.Warn("slides not loaded", zap.String("dir", settings.SlidesDir), zap.Error(err))
	}

	m, err := NewModel(Options{
		Settings: settings,
		Slides:   slides,
		Store:    kv,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}
