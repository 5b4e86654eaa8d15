package app

import (
	"errors"
	"testing"
	"time"

	"github.com/handiism/showcase/internal/carousel"
	"github.com/handiism/showcase/internal/config"
	"github.com/handiism/showcase/internal/counter"
	"github.com/handiism/showcase/internal/download"
	"github.com/handiism/showcase/internal/model"
	"github.com/handiism/showcase/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slide struct{ active bool }

func (s *slide) SetActive(active bool) { s.active = active }

type container struct{ slides []*slide }

func (c *container) QueryAll(selector string) []carousel.Handle {
	if selector != carousel.SlideSelector {
		return nil
	}
	handles := make([]carousel.Handle, len(c.slides))
	for i, s := range c.slides {
		handles[i] = s
	}
	return handles
}

func newContainer(n int) *container {
	c := &container{}
	for i := 0; i < n; i++ {
		c.slides = append(c.slides, &slide{})
	}
	return c
}

type failingStore struct{ *store.Memory }

func (failingStore) SetItem(string, string) error { return errors.New("disk full") }

type fixture struct {
	app    *App
	clock  *carousel.ManualClock
	opened []string
}

func newFixture(t *testing.T, slides int, kv counter.Store) *fixture {
	t.Helper()
	f := &fixture{clock: carousel.NewManualClock()}
	if kv == nil {
		kv = store.NewMemory()
	}

	a, err := New(Deps{
		Container: newContainer(slides),
		Store:     kv,
		Opener:    download.OpenerFunc(func(url string) { f.opened = append(f.opened, url) }),
		Clock:     f.clock,
	})
	require.NoError(t, err)
	t.Cleanup(a.Close)

	f.app = a
	return f
}

func TestNew_MissingDeps(t *testing.T) {
	opener := download.OpenerFunc(func(string) {})

	tests := []struct {
		name string
		deps Deps
	}{
		{"container", Deps{Store: store.NewMemory(), Opener: opener}},
		{"store", Deps{Container: newContainer(1), Opener: opener}},
		{"opener", Deps{Container: newContainer(1), Store: store.NewMemory()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.deps)
			assert.True(t, errors.Is(err, model.ErrInvalidArgument))
		})
	}
}

func TestNew_StartsAutoPlay(t *testing.T) {
	f := newFixture(t, 3, nil)

	assert.True(t, f.app.Carousel.AutoPlaying())
	assert.Equal(t, config.DefaultSettings().AutoPlayInterval, f.app.Carousel.Interval())

	f.clock.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1, f.app.Carousel.CurrentIndex())
}

func TestNew_NoSlides(t *testing.T) {
	f := newFixture(t, 0, nil)

	assert.False(t, f.app.Carousel.AutoPlaying())
	assert.Equal(t, 0, f.clock.Pending())
}

func TestNew_UsesSettings(t *testing.T) {
	settings := config.DefaultSettings()
	settings.AutoPlayInterval = 5 * time.Second
	settings.DriveLink = "abc123"

	a, err := New(Deps{
		Container: newContainer(2),
		Store:     store.NewMemory(),
		Opener:    download.OpenerFunc(func(string) {}),
		Clock:     carousel.NewManualClock(),
		Settings:  settings,
	})
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, 5*time.Second, a.Carousel.Interval())
	assert.Equal(t, "abc123", a.Book().Target())
}

func TestDownload_DefaultBook(t *testing.T) {
	f := newFixture(t, 1, nil)

	started := 0
	url, err := f.app.Download("", func() { started++ })
	require.NoError(t, err)

	assert.Equal(t, config.DefaultBookURL, url)
	assert.Equal(t, []string{config.DefaultBookURL}, f.opened)
	assert.Equal(t, 1, started)
	assert.Equal(t, 1, f.app.Counter.Count())
}

func TestDownload_DriveLink(t *testing.T) {
	f := newFixture(t, 1, nil)

	url, err := f.app.Download("https://drive.google.com/file/d/ABC_123-x/view?usp=sharing", nil)
	require.NoError(t, err)

	want := "https://drive.google.com/uc?export=download&id=ABC_123-x"
	assert.Equal(t, want, url)
	assert.Equal(t, []string{want}, f.opened)
}

func TestDownload_UnresolvedLink(t *testing.T) {
	f := newFixture(t, 1, nil)

	_, err := f.app.Download("https://drive.google.com/drive/folders", nil)
	assert.True(t, errors.Is(err, model.ErrInvalidArgument))
	assert.Empty(t, f.opened)
	assert.Equal(t, 0, f.app.Counter.Count())
}

func TestDownload_StoreFailureStillOpens(t *testing.T) {
	f := newFixture(t, 1, failingStore{store.NewMemory()})

	_, err := f.app.Download("https://example.com/book.pdf", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/book.pdf"}, f.opened)
	assert.Equal(t, 1, f.app.Counter.Count())
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		target  string
		want    string
		wantErr bool
	}{
		{"https://example.com/book.pdf", "https://example.com/book.pdf", false},
		{"  abc123  ", "https://drive.google.com/uc?export=download&id=abc123", false},
		{"https://drive.google.com/open?id=xyz", "https://drive.google.com/uc?export=download&id=xyz", false},
		{"https://drive.google.com/drive/folders", "", true},
		{"https://docs.google.com/uc?export=download&id=a_b-1", "https://drive.google.com/uc?export=download&id=a_b-1", false},
		{"abc 123", "", true},
		{"", "", true},
		{"   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got, err := ResolveTarget(tt.target)
			if tt.wantErr {
				assert.True(t, errors.Is(err, model.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClose_StopsTimers(t *testing.T) {
	f := newFixture(t, 2, nil)
	f.app.Close()

	assert.Equal(t, 0, f.clock.Pending())
	f.clock.Advance(time.Minute)
	assert.Equal(t, 0, f.app.Carousel.CurrentIndex())
}

func TestNewDownloader(t *testing.T) {
	var opened []string
	d, err := NewDownloader(store.NewMemory(), download.OpenerFunc(func(url string) { opened = append(opened, url) }), nil, nil)
	require.NoError(t, err)

	url, err := d.Download("abc123", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://drive.google.com/uc?export=download&id=abc123", url)
	assert.Equal(t, []string{url}, opened)
	assert.Equal(t, 1, d.Counter.Count())
	assert.Equal(t, config.DefaultBookURL, d.Book().URL)

	_, err = NewDownloader(nil, download.OpenerFunc(func(string) {}), nil, nil)
	assert.True(t, errors.Is(err, model.ErrInvalidArgument))
}
