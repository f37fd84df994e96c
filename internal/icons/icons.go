// Package icons renders the app launcher icons from a single source image.
package icons

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Target is one square icon to render.
type Target struct {
	Size int
	Path string
}

// DefaultTargets returns the Android mipmap and PWA icons, relative to the
// frontend root.
func DefaultTargets(root string) []Target {
	mipmap := func(density string) string {
		return filepath.Join(root, "android", "app", "src", "main", "res", "mipmap-"+density, "ic_launcher.png")
	}
	return []Target{
		{48, mipmap("mdpi")},
		{72, mipmap("hdpi")},
		{96, mipmap("xhdpi")},
		{144, mipmap("xxhdpi")},
		{192, mipmap("xxxhdpi")},
		{192, filepath.Join(root, "public", "icon-192x192.png")},
		{512, filepath.Join(root, "public", "icon-512x512.png")},
	}
}

// Generate resizes src to every target with Lanczos resampling, creating
// parent directories as needed. It returns the paths written.
func Generate(src string, targets []Target) ([]string, error) {
	img, err := imaging.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src, err)
	}
	return Render(img, targets)
}

// Render writes img resized to each target.
func Render(img image.Image, targets []Target) ([]string, error) {
	written := make([]string, 0, len(targets))
	for _, t := range targets {
		if t.Size <= 0 {
			return written, fmt.Errorf("invalid icon size %d for %s", t.Size, t.Path)
		}
		if err := os.MkdirAll(filepath.Dir(t.Path), 0o755); err != nil {
			return written, err
		}
		resized := imaging.Resize(img, t.Size, t.Size, imaging.Lanczos)
		if err := imaging.Save(resized, t.Path); err != nil {
			return written, fmt.Errorf("save %s: %w", t.Path, err)
		}
		written = append(written, t.Path)
	}
	return written, nil
}
