package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zeromvx/irys3drace/pkg/vehicle"
)

// Status is what the HUD shows. It is rebuilt from game state every frame.
type Status struct {
	Score      int
	Best       int
	TurboFill  float64 // 0..1
	TurboBand  vehicle.Band
	TurboOn    bool
	ShowTouch  bool
	TouchLeft  bool
	TouchRight bool
	TouchTurbo bool
}

// MeterColor maps the turbo band onto the meter colour.
func MeterColor(b vehicle.Band) color.RGBA {
	switch b {
	case vehicle.BandHigh:
		return color.RGBA{40, 200, 60, 255}
	case vehicle.BandMid:
		return color.RGBA{230, 200, 30, 255}
	default:
		return color.RGBA{220, 40, 40, 255}
	}
}

// TouchButtons is the on-screen control layout: steer left, steer right
// and turbo.
func TouchButtons() (left, right, turbo image.Rectangle) {
	const size, margin = 110, 20
	bottom := ScreenHeight - margin
	left = image.Rect(margin, bottom-size, margin+size, bottom)
	right = image.Rect(2*margin+size, bottom-size, 2*margin+2*size, bottom)
	turbo = image.Rect(ScreenWidth-margin-size, bottom-size, ScreenWidth-margin, bottom)
	return left, right, turbo
}

const meterWidth, meterHeight = 200, 16

// DrawHUD draws score, best score, the turbo meter and touch buttons.
func DrawHUD(screen *ebiten.Image, s Status) {
	drawTextAt(screen, fmt.Sprintf("Score: %d", s.Score), 20, 24, 24, color.White)
	drawTextAt(screen, fmt.Sprintf("Best: %d", s.Best), 20, 56, 16, hintColor)

	x, y := float64(ScreenWidth-meterWidth-20), 20.0
	fillRect(screen, x-2, y-2, meterWidth+4, meterHeight+4, borderColor)
	fillRect(screen, x, y, meterWidth, meterHeight, color.RGBA{20, 20, 20, 255})
	fillRect(screen, x, y, meterWidth*clamp01(s.TurboFill), meterHeight, MeterColor(s.TurboBand))
	label := "TURBO"
	if s.TurboOn {
		label = "TURBO!"
	}
	drawTextAt(screen, label, x, y+meterHeight+14, 16, color.White)

	if !s.ShowTouch {
		return
	}
	l, r, t := TouchButtons()
	drawTouchButton(screen, l, "<", s.TouchLeft)
	drawTouchButton(screen, r, ">", s.TouchRight)
	drawTouchButton(screen, t, "TURBO", s.TouchTurbo)
}

func drawTouchButton(screen *ebiten.Image, r image.Rectangle, label string, held bool) {
	a := uint8(60)
	if held {
		a = 140
	}
	fillRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), color.RGBA{a, a, a, a})
	drawText(screen, label, float64(r.Min.X+r.Dx()/2), float64(r.Min.Y+r.Dy()/2), 24, color.White)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
