package assets

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/zeromvx/irys3drace/pkg/background"
	"github.com/zeromvx/irys3drace/pkg/scene"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestDiskLoader(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "banner.png"))
	if err := os.WriteFile(filepath.Join(dir, "junk.png"), []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	l := NewDiskLoader(dir, background.NewGenerator(1))
	ctx := context.Background()

	img, err := l.LoadTexture(ctx, "banner.png")
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}

	if _, err := l.LoadModel(ctx, "gen:tree"); err != nil {
		t.Fatalf("gen path: %v", err)
	}
	for _, p := range []string{"missing.png", "junk.png", "gen:nothing"} {
		if _, err := l.LoadTexture(ctx, p); err == nil {
			t.Errorf("LoadTexture(%q) should fail", p)
		}
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := l.LoadTexture(cancelled, "banner.png"); err == nil {
		t.Error("cancelled context should fail")
	}
}

func TestDiskLoaderFeedsCatalog(t *testing.T) {
	c := NewCatalog()
	err := c.Load(context.Background(), NewDiskLoader("", background.NewGenerator(1)), []Entry{
		{Kind: scene.KindBanner, Paths: []string{"gen:banner:0", "gen:banner:1", "nope.webp"}},
		{Kind: scene.KindCloud, Paths: []string{"gen:cloud"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.Variants(scene.KindBanner) != 2 || !c.Ready(scene.KindCloud) {
		t.Fatalf("banner variants = %d, cloud ready = %v", c.Variants(scene.KindBanner), c.Ready(scene.KindCloud))
	}
}
