package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zeromvx/irys3drace/pkg/assets"
	"github.com/zeromvx/irys3drace/pkg/scene"
)

// LoadingScreen waits for the asset future and shows per-kind progress.
type LoadingScreen struct {
	startTime time.Time
	catalog   *assets.Catalog
	kinds     []scene.Kind
	done      <-chan error
	onReady   func(error) // called once when loading finished
	finished  bool
}

// NewLoadingScreen creates a new loading screen watching done
func NewLoadingScreen(catalog *assets.Catalog, kinds []scene.Kind, done <-chan error, onReady func(error)) *LoadingScreen {
	return &LoadingScreen{
		startTime: time.Now(),
		catalog:   catalog,
		kinds:     kinds,
		done:      done,
		onReady:   onReady,
	}
}

// Update reports the load result once it arrives
func (ls *LoadingScreen) Update() error {
	if ls.finished {
		return nil
	}
	select {
	case err := <-ls.done:
		ls.finished = true
		if ls.onReady != nil {
			ls.onReady(err)
		}
	default:
	}
	return nil
}

// Draw renders the loading progress
func (ls *LoadingScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	dots := int(time.Since(ls.startTime).Seconds()*3) % 4
	drawText(screen, "LOADING"+strings.Repeat(".", dots), ScreenWidth/2, ScreenHeight/4, 48, titleColor)

	y := float64(ScreenHeight) / 2
	for _, k := range ls.kinds {
		state := ls.catalog.State(k)
		c := hintColor
		switch state {
		case assets.Ready:
			c = color.RGBA{100, 255, 100, 255}
		case assets.Failed:
			c = color.RGBA{255, 90, 90, 255}
		}
		drawText(screen, fmt.Sprintf("%-8s %s", k, state), ScreenWidth/2, y, 16, c)
		y += 24
	}
}
