package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/zeromvx/irys3drace/car"
)

// CarSelectScreen lets the player pick a car model for the session.
type CarSelectScreen struct {
	models   []car.Model
	sprites  []*ebiten.Image
	selected int
	onSelect func(int)
	onBack   func()
}

// NewCarSelectScreen creates a new car selection screen with current highlighted
func NewCarSelectScreen(current int, onSelect func(int), onBack func()) *CarSelectScreen {
	cs := &CarSelectScreen{
		models:   car.Models(),
		onSelect: onSelect,
		onBack:   onBack,
	}
	if current >= 0 && current < len(cs.models) {
		cs.selected = current
	}
	return cs
}

const (
	cellWidth  = 180
	cellHeight = 220
)

// cell is the clickable rectangle of model i
func (cs *CarSelectScreen) cell(i int) image.Rectangle {
	left := ScreenWidth/2 - len(cs.models)*cellWidth/2
	x := left + i*cellWidth
	return image.Rect(x+10, 150, x+cellWidth-10, 150+cellHeight)
}

// Update moves the highlight and confirms a choice
func (cs *CarSelectScreen) Update() error {
	n := len(cs.models)
	if n == 0 {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		cs.selected = (cs.selected + n - 1) % n
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		cs.selected = (cs.selected + 1) % n
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if cs.onBack != nil {
			cs.onBack()
		}
		return nil
	}
	if confirmPressed() {
		cs.choose(cs.selected)
		return nil
	}
	if p, ok := justTapped(); ok {
		for i := range cs.models {
			if p.In(cs.cell(i)) {
				cs.choose(i)
				return nil
			}
		}
	}
	return nil
}

// choose selects model i and notifies the caller
func (cs *CarSelectScreen) choose(i int) {
	cs.selected = i
	if cs.onSelect != nil {
		cs.onSelect(i)
	}
}

// Draw renders the car selection screen
func (cs *CarSelectScreen) Draw(screen *ebiten.Image) {
	if cs.sprites == nil {
		for _, m := range cs.models {
			cs.sprites = append(cs.sprites, ebiten.NewImageFromImage(car.Sprite(m.Color)))
		}
	}

	fillRect(screen, 0, 0, ScreenWidth, ScreenHeight, color.RGBA{20, 20, 40, 230})
	drawText(screen, "SELECT YOUR CAR", ScreenWidth/2, 70, 40, color.White)

	for i, m := range cs.models {
		r := cs.cell(i)
		x, y := float64(r.Min.X), float64(r.Min.Y)
		if i == cs.selected {
			fillRect(screen, x-5, y-5, float64(r.Dx())+10, float64(r.Dy())+10, color.RGBA{255, 215, 0, 100})
		}
		fillRect(screen, x, y, float64(r.Dx()), float64(r.Dy()), buttonColor)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(2.5, 2.5)
		op.GeoM.Translate(x+float64(r.Dx())/2-car.SpriteWidth*1.25, y+20)
		screen.DrawImage(cs.sprites[i], op)

		nameColor := color.Color(color.White)
		if i == cs.selected {
			nameColor = color.RGBA{255, 255, 0, 255}
		}
		drawText(screen, m.Name, x+float64(r.Dx())/2, y+float64(r.Dy())-30, 16, nameColor)
	}

	drawText(screen, "ARROWS to Select   ENTER to Confirm   ESC to Go Back", ScreenWidth/2, ScreenHeight-50, 16, hintColor)
}
