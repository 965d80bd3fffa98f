package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PauseScreen offers Resume and Quit while a run is frozen.
type PauseScreen struct {
	menu     menu
	onResume func()
	onQuit   func()
}

// NewPauseScreen creates a new pause screen
func NewPauseScreen(onResume, onQuit func()) *PauseScreen {
	return &PauseScreen{
		menu:     menu{options: []string{"Resume", "Quit"}, top: ScreenHeight / 2},
		onResume: onResume,
		onQuit:   onQuit,
	}
}

// Update handles the pause menu and the Escape shortcut
func (ps *PauseScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ps.resume()
		return nil
	}
	switch ps.menu.update() {
	case 0:
		ps.resume()
	case 1:
		if ps.onQuit != nil {
			ps.onQuit()
		}
	}
	return nil
}

// resume hands control back to the run
func (ps *PauseScreen) resume() {
	if ps.onResume != nil {
		ps.onResume()
	}
}

// Draw renders the pause overlay
func (ps *PauseScreen) Draw(screen *ebiten.Image) {
	fillRect(screen, 0, 0, ScreenWidth, ScreenHeight, color.RGBA{0, 0, 0, 120})
	drawText(screen, "PAUSED", ScreenWidth/2, ScreenHeight/3, 48, titleColor)
	ps.menu.draw(screen)
}
