// Package ui draws the menus and the HUD on top of the world view. Screens
// never touch the simulation; they report choices through callbacks.
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Logical screen size. The shell lays the window out at this size.
const (
	ScreenWidth  = 1024
	ScreenHeight = 600
)

var (
	face = text.NewGoXFace(bitmapfont.Face)

	panelColor   = color.RGBA{15, 20, 35, 200}
	buttonColor  = color.RGBA{40, 40, 60, 255}
	selectedBg   = color.RGBA{60, 100, 140, 255}
	selectedText = color.RGBA{200, 240, 255, 255}
	borderColor  = color.RGBA{80, 80, 100, 255}
	hintColor    = color.RGBA{150, 150, 150, 255}
	titleColor   = color.RGBA{255, 200, 50, 255}
)

var pixel *ebiten.Image

// fillRect draws a solid rectangle by stretching a single white pixel.
func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(pixel, op)
}

// drawButton draws a button with background and text
func drawButton(screen *ebiten.Image, label string, r image.Rectangle, selected bool) {
	bg, fg := color.Color(buttonColor), color.Color(color.White)
	if selected {
		bg, fg = selectedBg, selectedText
	}
	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())

	fillRect(screen, x, y, w, h, borderColor)
	fillRect(screen, x+2, y+2, w-4, h-4, bg)
	drawText(screen, label, x+w/2, y+h/2, 16, fg)
}

// drawText draws text centred on (centerX, centerY). size is the glyph
// height in pixels; the bitmap font is 16px tall.
func drawText(screen *ebiten.Image, str string, centerX, centerY, size float64, clr color.Color) {
	scale := size / 16.0
	w := text.Advance(str, face) * scale
	drawTextAt(screen, str, centerX-w/2, centerY, size, clr)
}

// drawTextAt draws text with its left edge at x, vertically centred on y.
func drawTextAt(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	scale := size / 16.0
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y-8*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// justTapped reports a fresh mouse click or touch.
func justTapped() (image.Point, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return image.Pt(x, y), true
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return image.Pt(x, y), true
	}
	return image.Point{}, false
}

func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// menu is a vertical list of buttons driven by arrows, Enter and taps.
type menu struct {
	options  []string
	selected int
	top      int // y of the first button
}

const (
	buttonWidth   = 300
	buttonHeight  = 50
	buttonSpacing = 70
)

func (m *menu) button(i int) image.Rectangle {
	x := ScreenWidth/2 - buttonWidth/2
	y := m.top + i*buttonSpacing
	return image.Rect(x, y, x+buttonWidth, y+buttonHeight)
}

func (m *menu) move(delta int) {
	n := len(m.options)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

// hit returns the option under p, or -1.
func (m *menu) hit(p image.Point) int {
	for i := range m.options {
		if p.In(m.button(i)) {
			return i
		}
	}
	return -1
}

// update returns the chosen option, or -1 when nothing was chosen.
func (m *menu) update() int {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		m.move(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		m.move(1)
	}
	if confirmPressed() {
		return m.selected
	}
	if p, ok := justTapped(); ok {
		if i := m.hit(p); i >= 0 {
			m.selected = i
			return i
		}
	}
	return -1
}

func (m *menu) draw(screen *ebiten.Image) {
	for i, label := range m.options {
		drawButton(screen, label, m.button(i), i == m.selected)
	}
}
