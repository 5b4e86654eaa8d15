package model

import (
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.pdf", "normal-file.pdf"},
		{"file:with:colons.pdf", "file_with_colons.pdf"},
		{"file<with>brackets.pdf", "file_with_brackets.pdf"},
		{"file/with\\slashes.pdf", "file_with_slashes.pdf"},
		{"file|with|pipes.pdf", "file_with_pipes.pdf"},
		{"file?with*wildcards.pdf", "file_with_wildcards.pdf"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"trailing spaces   ", "trailing spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewSlide_TitleFromPath(t *testing.T) {
	slide := NewSlide("/slides/03_sofia-dragon.png", "")

	if slide.Title != "03 sofia dragon" {
		t.Errorf("Title = %q, want %q", slide.Title, "03 sofia dragon")
	}
	if slide.HasArt() {
		t.Error("HasArt() should be false before rendering")
	}
}

func TestNewSlide_ExplicitTitle(t *testing.T) {
	slide := NewSlide("/slides/a.png", "El dragón de Sofía")

	if slide.Title != "El dragón de Sofía" {
		t.Errorf("Title = %q", slide.Title)
	}
	if slide.ImagePath != "/slides/a.png" {
		t.Errorf("ImagePath = %q", slide.ImagePath)
	}
}

func TestBook_Target(t *testing.T) {
	tests := []struct {
		name      string
		book      Book
		want      string
		wantDrive bool
	}{
		{"direct url", Book{URL: "http://example.com/libro.pdf"}, "http://example.com/libro.pdf", false},
		{"drive link wins", Book{URL: "http://example.com/libro.pdf", DriveLink: " ABC123 "}, "ABC123", true},
		{"empty", Book{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.book.Target(); got != tt.want {
				t.Errorf("Target() = %q, want %q", got, tt.want)
			}
			if got := tt.book.UsesDrive(); got != tt.wantDrive {
				t.Errorf("UsesDrive() = %v, want %v", got, tt.wantDrive)
			}
		})
	}
}

func TestBook_FileName(t *testing.T) {
	book := &Book{Title: "Taller: Lectura"}

	tests := []struct {
		url  string
		want string
	}{
		{"http://example.com/assets/libro-taller-lectura-UNAM-v2.0.pdf", "libro-taller-lectura-UNAM-v2.0.pdf"},
		{"https://drive.google.com/uc?export=download&id=ABC123", "Taller_ Lectura.pdf"},
		{"::not a url", "Taller_ Lectura.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := book.FileName(tt.url); got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}

	untitled := &Book{}
	if got := untitled.FileName("https://drive.google.com/uc"); got != "download.pdf" {
		t.Errorf("FileName() without title = %q, want %q", got, "download.pdf")
	}
}
