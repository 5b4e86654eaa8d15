package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const body = "%PDF-1.4 book"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "Showcase" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if r.URL.Path == "/missing.pdf" {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, "book.pdf", time.Time{}, strings.NewReader(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetFileSize(t *testing.T) {
	srv := newServer(t)
	client := NewClient()

	size, err := client.GetFileSize(context.Background(), srv.URL+"/book.pdf")
	if err != nil {
		t.Fatalf("GetFileSize() error = %v", err)
	}
	if size != int64(len(body)) {
		t.Errorf("GetFileSize() = %d, want %d", size, len(body))
	}

	if _, err := client.GetFileSize(context.Background(), srv.URL+"/missing.pdf"); err == nil {
		t.Error("GetFileSize() on a missing file should fail")
	}
}

func TestDownloadFile(t *testing.T) {
	srv := newServer(t)
	client := NewClient()
	dest := filepath.Join(t.TempDir(), "book.pdf")

	var lastWritten, lastTotal int64
	err := client.DownloadFile(context.Background(), srv.URL+"/book.pdf", dest, func(written, total int64) {
		lastWritten, lastTotal = written, total
	})
	if err != nil {
		t.Fatalf("DownloadFile() error = %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != body {
		t.Errorf("downloaded %q, want %q", data, body)
	}
	if lastWritten != int64(len(body)) || lastTotal != int64(len(body)) {
		t.Errorf("progress = %d/%d, want %d/%d", lastWritten, lastTotal, len(body), len(body))
	}
}

func TestDownloadFile_HTTPError(t *testing.T) {
	srv := newServer(t)
	dest := filepath.Join(t.TempDir(), "missing.pdf")

	err := NewClient().DownloadFile(context.Background(), srv.URL+"/missing.pdf", dest, nil)
	if err == nil {
		t.Fatal("DownloadFile() should fail on 404")
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("no file should be created on HTTP errors")
	}
}
