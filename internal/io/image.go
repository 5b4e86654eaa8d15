package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// ImageService renders slide drawings as terminal art.
//
// Each terminal cell shows two vertical pixels using an upper half block:
// the foreground carries the top pixel and the background the bottom one.
//
// Example usage:
//
//	svc := NewImageService()
//
//	data, _ := os.ReadFile("slides/01_dragon.png")
//	art, _ := svc.RenderArt(ctx, data, 48, 24)
//	fmt.Println(art)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// RenderArt decodes an image and renders it to fit within cols x rows
// terminal cells.
//
// The aspect ratio is preserved, so one of the dimensions may come out
// smaller than requested. Images are scaled up as well as down.
//
// The Catmull-Rom algorithm is used for high-quality resizing.
func (s *ImageService) RenderArt(ctx context.Context, data []byte, cols, rows int) (string, error) {
	if cols < 1 || rows < 1 {
		return "", fmt.Errorf("invalid art size %dx%d", cols, rows)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dst := s.ResizeImage(img, cols, rows*2)
	return renderHalfBlocks(dst), nil
}

// ResizeImage scales img to fit within maxWidth x maxHeight pixels.
//
// Example:
//
//	// A 1500x1000 image fit into 48x48 becomes 48x32
//	small := svc.ResizeImage(img, 48, 48)
func (s *ImageService) ResizeImage(img image.Image, maxWidth, maxHeight int) *image.RGBA {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		// Height is the limiting factor
		width = int(float64(maxHeight) * ratio)
		height = maxHeight
	} else {
		// Width is the limiting factor
		height = int(float64(maxWidth) / ratio)
		width = maxWidth
	}
	width = max(width, 1)
	height = max(height, 1)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func renderHalfBlocks(img *image.RGBA) string {
	bounds := img.Bounds()
	var b strings.Builder

	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		if y > bounds.Min.Y {
			b.WriteByte('\n')
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(img.At(x, y)))
			if y+1 < bounds.Max.Y {
				style = style.Background(hexColor(img.At(x, y+1)))
			}
			b.WriteString(style.Render("▀"))
		}
	}

	return b.String()
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
