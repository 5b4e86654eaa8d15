package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
auto-play-interval: 3s
drive-link: https://drive.google.com/file/d/abc123/view
opener: log
store-backend: sqlite
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, settings.AutoPlayInterval)
	assert.Equal(t, "https://drive.google.com/file/d/abc123/view", settings.DriveLink)
	assert.Equal(t, "log", settings.Opener)
	assert.Equal(t, "sqlite", settings.StoreBackend)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultBookURL, settings.BookURL)
	assert.Equal(t, 7, settings.DownloadMaxRetries)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("opener: log\n"), 0644))

	t.Setenv("SHOWCASE_OPENER", "fetch")
	t.Setenv("SHOWCASE_AUTO_PLAY_INTERVAL", "250ms")

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fetch", settings.Opener)
	assert.Equal(t, 250*time.Millisecond, settings.AutoPlayInterval)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("opener: [unterminated\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	settings := DefaultSettings()
	settings.DriveLink = "abc123"
	settings.AutoPlayInterval = 2 * time.Second
	settings.MaxConcurrentDownloads = 3
	require.NoError(t, settings.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestToBook(t *testing.T) {
	settings := DefaultSettings()
	settings.DriveLink = "abc123"

	book := settings.ToBook()
	assert.Equal(t, settings.BookTitle, book.Title)
	assert.Equal(t, DefaultBookURL, book.URL)
	assert.Equal(t, "abc123", book.Target())
	assert.True(t, book.UsesDrive())
}
