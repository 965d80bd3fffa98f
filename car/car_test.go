package car

import (
	"image/color"
	"testing"
)

func TestCatalog(t *testing.T) {
	all := Models()
	if len(all) == 0 {
		t.Fatal("empty catalog")
	}
	seen := map[string]bool{}
	for _, m := range all {
		if seen[m.ID] {
			t.Fatalf("duplicate id %q", m.ID)
		}
		seen[m.ID] = true
	}

	i, ok := Index("default")
	if !ok || i != 0 {
		t.Fatalf("Index(default) = %d, %v", i, ok)
	}
	if _, ok := Get(len(all)); ok {
		t.Fatal("Get past the end should fail")
	}
	if got := len(Sprites()); got != len(all) {
		t.Fatalf("Sprites() = %d images, want %d", got, len(all))
	}
}

func TestSprite(t *testing.T) {
	red := color.RGBA{220, 20, 20, 255}
	img := Sprite(red)
	if b := img.Bounds(); b.Dx() != SpriteWidth || b.Dy() != SpriteHeight {
		t.Fatalf("bounds = %v", b)
	}
	// body beside the roof
	if got := img.RGBAAt(6, 40); got != red {
		t.Fatalf("body pixel = %v, want %v", got, red)
	}
	if got := img.RGBAAt(SpriteWidth/2, 12); got != windshieldColor {
		t.Fatalf("windshield pixel = %v", got)
	}
	if got := img.RGBAAt(1, 8); got != wheelColor {
		t.Fatalf("wheel pixel = %v", got)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Fatalf("corner should be transparent, got %v", got)
	}
}
