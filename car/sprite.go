package car

import (
	"image"
	"image/color"
	"image/draw"
)

// Sprite size in pixels. The bonnet is at the top.
const (
	SpriteWidth  = 30
	SpriteHeight = 50
)

var (
	outlineColor    = color.RGBA{20, 20, 20, 255}
	windshieldColor = color.RGBA{150, 200, 255, 255}
	wheelColor      = color.RGBA{30, 30, 30, 255}
	headlightColor  = color.RGBA{255, 255, 100, 255}
	taillightColor  = color.RGBA{255, 0, 0, 255}
)

// Sprite renders a top-down view of a car in body colour c.
func Sprite(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SpriteWidth, SpriteHeight))
	w, h := SpriteWidth, SpriteHeight

	// Wheels first so the body overlaps their inner edge
	wheelW, wheelH := 6, 8
	fill(img, image.Rect(0, 6, wheelW, 6+wheelH), wheelColor)
	fill(img, image.Rect(w-wheelW, 6, w, 6+wheelH), wheelColor)
	fill(img, image.Rect(0, h-wheelH-6, wheelW, h-6), wheelColor)
	fill(img, image.Rect(w-wheelW, h-wheelH-6, w, h-6), wheelColor)

	body := image.Rect(3, 2, w-3, h-2)
	fill(img, body, c)
	fill(img, image.Rect(body.Min.X+3, 16, body.Max.X-3, 32), shade(c, 0.8)) // roof

	// Outline
	fill(img, image.Rect(body.Min.X, body.Min.Y, body.Max.X, body.Min.Y+2), outlineColor)
	fill(img, image.Rect(body.Min.X, body.Max.Y-2, body.Max.X, body.Max.Y), outlineColor)
	fill(img, image.Rect(body.Min.X, body.Min.Y, body.Min.X+2, body.Max.Y), outlineColor)
	fill(img, image.Rect(body.Max.X-2, body.Min.Y, body.Max.X, body.Max.Y), outlineColor)

	windshieldW := w * 6 / 10
	fill(img, image.Rect((w-windshieldW)/2, 10, (w+windshieldW)/2, 10+h/5), windshieldColor)

	fill(img, image.Rect(7, 2, 11, 4), headlightColor)
	fill(img, image.Rect(w-11, 2, w-7, 4), headlightColor)
	fill(img, image.Rect(7, h-4, 11, h-2), taillightColor)
	fill(img, image.Rect(w-11, h-4, w-7, h-2), taillightColor)
	return img
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), c.A}
}
