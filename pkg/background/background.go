// Package background draws procedural sprites for the "gen:" asset paths:
// the roadside grass tile plus every entity prototype the game needs when no
// asset directory is present.
package background

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/hajimehoshi/bitmapfont/v4"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Generator creates textures. Every image is drawn from its own generator
// seeded with Seed, so the same name always yields the same pixels.
type Generator struct {
	Seed int64
}

// NewGenerator creates a new background generator
func NewGenerator(seed int64) *Generator {
	return &Generator{Seed: seed}
}

// BannerSlogans are the texts painted on banner variants.
var BannerSlogans = []string{"IRYS", "TURBO", "GO FAST"}

var bannerColors = []color.RGBA{
	{200, 30, 60, 255},
	{30, 80, 200, 255},
	{250, 160, 20, 255},
}

// Generate resolves a generator name such as "tree" or "banner:1".
func (g *Generator) Generate(name string) (image.Image, error) {
	base, arg, _ := strings.Cut(name, ":")
	variant := 0
	if arg != "" {
		v, err := strconv.Atoi(arg)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("bad variant in %q", name)
		}
		variant = v
	}
	switch base {
	case "grass":
		return g.Grass(256, 256), nil
	case "tree":
		return g.Tree(variant), nil
	case "obstacle":
		return g.Obstacle(), nil
	case "coin":
		return g.Coin(), nil
	case "banner":
		return g.Banner(variant), nil
	case "cloud":
		return g.Cloud(variant), nil
	}
	return nil, fmt.Errorf("unknown generator %q", base)
}

func (g *Generator) rng(salt int64) *rand.Rand {
	return rand.New(rand.NewSource(g.Seed*7919 + salt))
}

// Grass creates a textured grass tile dotted with bushes.
func (g *Generator) Grass(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rng := g.rng(1)

	// Base grass layer (dark rich green)
	fill(img, img.Bounds(), color.RGBA{58, 95, 11, 255})

	for i := 0; i < width*height/10; i++ {
		x := rng.Intn(width)
		y := rng.Intn(height)
		shade := uint8(80 + rng.Intn(60))
		img.Set(x, y, color.RGBA{40, shade, 20, 255})
	}

	for y := 0; y < height; y += 24 {
		density := 0.3 + 0.2*math.Sin(float64(y)*0.01)
		for x := 0; x < width; x += 10 + rng.Intn(30) {
			if rng.Float64() > density {
				continue
			}
			drawBush(img, x+rng.Intn(10)-5, y+rng.Intn(10)-5, rng)
		}
	}
	return img
}

// Tree is a canopy seen from above around a short trunk.
func (g *Generator) Tree(variant int) *image.RGBA {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	rng := g.rng(100 + int64(variant))

	// Leaves: overlapping blobs, darker ones first
	for l := 0; l < 3; l++ {
		c := color.RGBA{
			uint8(20 + rng.Intn(20) + l*10),
			uint8(100 + rng.Intn(30) + l*20),
			uint8(20 + rng.Intn(20)),
			255,
		}
		for i := 0; i < 6; i++ {
			r := size/5 - l*3 + rng.Intn(4)
			a := rng.Float64() * 2 * math.Pi
			d := float64(size/6-l*4) * rng.Float64()
			disc(img, size/2+int(d*math.Cos(a)), size/2+int(d*math.Sin(a)), r, c)
		}
	}
	disc(img, size/2, size/2, 3, color.RGBA{139, 69, 19, 255})
	return img
}

// Obstacle is a striped road barrier.
func (g *Generator) Obstacle() *image.RGBA {
	const w, h = 38, 80
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	orange := color.RGBA{240, 120, 20, 255}
	white := color.RGBA{245, 245, 245, 255}
	fill(img, img.Bounds(), orange)
	for y := 0; y < h; y += 16 {
		fill(img, image.Rect(0, y, w, y+8), white)
	}
	outline(img, img.Bounds(), 2, color.RGBA{60, 30, 10, 255})
	return img
}

// Coin is a gold disc with a darker rim.
func (g *Generator) Coin() *image.RGBA {
	const size = 32
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	disc(img, size/2, size/2, size/2-1, color.RGBA{184, 134, 11, 255})
	disc(img, size/2, size/2, size/2-4, color.RGBA{255, 215, 0, 255})
	disc(img, size/2-4, size/2-4, 3, color.RGBA{255, 245, 180, 255})
	return img
}

// Banner is a coloured board with a slogan.
func (g *Generator) Banner(variant int) *image.RGBA {
	const w, h = 120, 64
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := bannerColors[variant%len(bannerColors)]
	fill(img, img.Bounds(), bg)
	outline(img, img.Bounds(), 3, color.RGBA{250, 250, 250, 255})

	slogan := BannerSlogans[variant%len(BannerSlogans)]
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: bitmapfont.Face,
	}
	adv := d.MeasureString(slogan)
	d.Dot = fixed.Point26_6{
		X: fixed.I(w)/2 - adv/2,
		Y: fixed.I(h/2 + 5),
	}
	d.DrawString(slogan)
	return img
}

// Cloud is a soft white puff with translucent edges.
func (g *Generator) Cloud(variant int) *image.RGBA {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	rng := g.rng(200 + int64(variant))
	for i := 0; i < 7; i++ {
		r := 10 + rng.Intn(10)
		x := size/2 + rng.Intn(size/2) - size/4
		y := size/2 + rng.Intn(size/3) - size/6
		softDisc(img, x, y, r)
	}
	return img
}

func drawBush(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 3 + rng.Intn(6)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}
	disc(img, x, y, radius, c)
}

func disc(img *image.RGBA, cx, cy, radius int, c color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(cx+dx, cy+dy, c)
			}
		}
	}
}

// softDisc blends white towards full opacity at the centre, keeping the
// strongest alpha already present.
func softDisc(img *image.RGBA, cx, cy, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d := math.Sqrt(float64(dx*dx + dy*dy))
			if d > float64(radius) {
				continue
			}
			a := uint8(230 * (1 - 0.6*d/float64(radius)))
			if cur := img.RGBAAt(cx+dx, cy+dy); cur.A >= a {
				continue
			}
			// premultiplied white
			img.SetRGBA(cx+dx, cy+dy, color.RGBA{a, a, a, a})
		}
	}
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func outline(img draw.Image, r image.Rectangle, width int, c color.Color) {
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	fill(img, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), c)
	fill(img, image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), c)
}
