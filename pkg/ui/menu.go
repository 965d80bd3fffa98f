package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScreen is the main menu drawn over the idle world.
type MenuScreen struct {
	startTime   time.Time
	menu        menu
	best        int
	last        int
	cause       string // what ended the last run, empty before the first
	car         string
	onStart     func()
	onSelectCar func()
}

// NewMenuScreen shows best and last scores. cause is empty when no run has
// finished yet.
func NewMenuScreen(best, last int, cause, car string, onStart, onSelectCar func()) *MenuScreen {
	return &MenuScreen{
		startTime:   time.Now(),
		menu:        menu{options: []string{"Start", "Select Car"}, top: ScreenHeight / 2},
		best:        best,
		last:        last,
		cause:       cause,
		car:         car,
		onStart:     onStart,
		onSelectCar: onSelectCar,
	}
}

func (ms *MenuScreen) Update() error {
	switch ms.menu.update() {
	case 0:
		if ms.onStart != nil {
			ms.onStart()
		}
	case 1:
		if ms.onSelectCar != nil {
			ms.onSelectCar()
		}
	}
	return nil
}

func (ms *MenuScreen) Draw(screen *ebiten.Image) {
	fillRect(screen, ScreenWidth/2-260, 40, 520, ScreenHeight-80, panelColor)

	elapsed := time.Since(ms.startTime).Seconds()
	pulse := 1.0 + 0.05*math.Sin(elapsed*2.0)
	drawText(screen, "IRYS 3D RACE", ScreenWidth/2, ScreenHeight/5, 56*pulse, titleColor)

	drawText(screen, fmt.Sprintf("Best: %d", ms.best), ScreenWidth/2, ScreenHeight/5+70, 20, color.White)
	if ms.cause != "" {
		drawText(screen, fmt.Sprintf("Last: %d (%s)", ms.last, ms.cause), ScreenWidth/2, ScreenHeight/5+100, 20, color.RGBA{255, 150, 150, 255})
	}
	drawText(screen, "Car: "+ms.car, ScreenWidth/2, ScreenHeight/2-30, 16, hintColor)

	ms.menu.draw(screen)
	drawText(screen, "Arrow Keys: Navigate | Enter: Select", ScreenWidth/2, ScreenHeight-70, 16, hintColor)
}
