package background

import (
	"bytes"
	"testing"
)

func TestGenerateNames(t *testing.T) {
	g := NewGenerator(1)
	for _, name := range []string{"grass", "tree", "tree:3", "obstacle", "coin", "banner:0", "banner:2", "cloud"} {
		img, err := g.Generate(name)
		if err != nil {
			t.Fatalf("Generate(%q): %v", name, err)
		}
		if img.Bounds().Empty() {
			t.Fatalf("Generate(%q) returned an empty image", name)
		}
	}

	for _, name := range []string{"", "car", "banner:x", "tree:-1"} {
		if _, err := g.Generate(name); err == nil {
			t.Fatalf("Generate(%q) should fail", name)
		}
	}
}

func TestDeterministic(t *testing.T) {
	a := NewGenerator(7).Tree(1)
	b := NewGenerator(7).Tree(1)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("same seed and variant produced different trees")
	}
	c := NewGenerator(8).Tree(1)
	if bytes.Equal(a.Pix, c.Pix) {
		t.Fatal("different seeds produced identical trees")
	}
}

func TestBannerVariantsDiffer(t *testing.T) {
	g := NewGenerator(1)
	if bytes.Equal(g.Banner(0).Pix, g.Banner(1).Pix) {
		t.Fatal("banner variants should differ")
	}
	// background colour away from the slogan and the frame
	if got, want := g.Banner(2).RGBAAt(10, 10), bannerColors[2]; got != want {
		t.Fatalf("banner pixel = %v, want %v", got, want)
	}
}

func TestCloudAlpha(t *testing.T) {
	img := NewGenerator(3).Cloud(0)
	var opaque, clear int
	for i := 3; i < len(img.Pix); i += 4 {
		switch img.Pix[i] {
		case 0:
			clear++
		default:
			opaque++
		}
	}
	if opaque == 0 || clear == 0 {
		t.Fatalf("cloud should mix covered and clear pixels, got %d covered %d clear", opaque, clear)
	}
}
