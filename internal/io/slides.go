package ioutils

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/handiism/showcase/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ManifestName is the optional file listing slides in display order.
const ManifestName = "slides.yaml"

// Manifest is the on-disk slide listing.
//
//	slides:
//	  - image: 01_dragon.png
//	    title: Sofía y el dragón
//	  - image: 02_forest.jpg
type Manifest struct {
	Slides []ManifestEntry `yaml:"slides"`
}

// ManifestEntry names one slide image relative to the manifest.
type ManifestEntry struct {
	Image string `yaml:"image"`
	Title string `yaml:"title,omitempty"`
}

var slideExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// LoadSlides reads the slides in dir and renders their art to fit within
// cols x rows cells, using at most limit concurrent workers.
//
// The order comes from slides.yaml when present, otherwise image files are
// taken in name order. A slide whose image cannot be read or decoded keeps
// an empty Art and is logged as a warning; only a missing directory or a
// broken manifest is an error.
func LoadSlides(ctx context.Context, dir string, cols, rows, limit int, logger *zap.Logger) ([]*model.Slide, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	slides, err := listSlides(dir)
	if err != nil {
		return nil, err
	}

	svc := NewImageService()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for _, slide := range slides {
		g.Go(func() error {
			data, err := os.ReadFile(slide.ImagePath)
			if err != nil {
				logger.Warn("slide image not read", zap.String("path", slide.ImagePath), zap.Error(err))
				return nil
			}
			art, err := svc.RenderArt(gctx, data, cols, rows)
			if err != nil {
				if gctx.Err() == nil {
					logger.Warn("slide image not rendered", zap.String("path", slide.ImagePath), zap.Error(err))
				}
				return nil
			}
			slide.Art = art
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slides, ctx.Err()
}

func listSlides(dir string) ([]*model.Slide, error) {
	manifest, err := readManifest(filepath.Join(dir, ManifestName))
	if err == nil {
		slides := make([]*model.Slide, 0, len(manifest.Slides))
		for _, entry := range manifest.Slides {
			if strings.TrimSpace(entry.Image) == "" {
				continue
			}
			slides = append(slides, model.NewSlide(filepath.Join(dir, entry.Image), entry.Title))
		}
		return slides, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if slideExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	slides := make([]*model.Slide, 0, len(names))
	for _, name := range names {
		slides = append(slides, model.NewSlide(filepath.Join(dir, name), ""))
	}
	return slides, nil
}

func readManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &manifest, nil
}
