package icons

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestRender(t *testing.T) {
	dir := t.TempDir()
	src := imaging.New(600, 400, color.NRGBA{R: 200, G: 40, B: 40, A: 255})

	targets := []Target{
		{48, filepath.Join(dir, "a", "small.png")},
		{192, filepath.Join(dir, "b", "large.png")},
	}
	written, err := Render(src, targets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("expected 2 icons, got %d", len(written))
	}

	for _, target := range targets {
		img, err := imaging.Open(target.Path)
		if err != nil {
			t.Fatalf("open %s: %v", target.Path, err)
		}
		if b := img.Bounds(); b.Dx() != target.Size || b.Dy() != target.Size {
			t.Errorf("%s: expected %dx%d, got %dx%d", target.Path, target.Size, target.Size, b.Dx(), b.Dy())
		}
	}
}

func TestRender_RejectsBadSize(t *testing.T) {
	src := imaging.New(10, 10, color.NRGBA{A: 255})
	if _, err := Render(src, []Target{{0, filepath.Join(t.TempDir(), "x.png")}}); err == nil {
		t.Error("expected error for zero size")
	}
}

func TestDefaultTargets(t *testing.T) {
	targets := DefaultTargets("frontend")
	if len(targets) != 7 {
		t.Fatalf("expected 7 targets, got %d", len(targets))
	}
	if targets[len(targets)-1].Size != 512 {
		t.Errorf("expected last target 512, got %d", targets[len(targets)-1].Size)
	}
}
