// Package game is the ebiten shell around the simulation: it owns the
// window loop, switches between menu screens and feeds player input to the
// game loop one tick per frame.
package game

import (
	"context"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/zeromvx/irys3drace/car"
	sim "github.com/zeromvx/irys3drace/game"
	"github.com/zeromvx/irys3drace/pkg/assets"
	"github.com/zeromvx/irys3drace/pkg/scene"
	"github.com/zeromvx/irys3drace/pkg/ui"
)

const (
	screenWidth  = ui.ScreenWidth
	screenHeight = ui.ScreenHeight
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface. While currentScreen is nil
// the player is driving.
type Game struct {
	loop     *sim.Loop
	renderer *Renderer
	input    *Input

	currentScreen Screen
}

// NewGame shows the loading screen until loading yields, then the main
// menu. kinds are the asset kinds listed on the loading screen.
func NewGame(loop *sim.Loop, graph *scene.Graph, catalog *assets.Catalog, grass image.Image, loading <-chan error, kinds []scene.Kind) *Game {
	g := &Game{
		loop:     loop,
		renderer: NewRenderer(graph, catalog, grass),
		input:    NewInput(),
	}
	g.currentScreen = ui.NewLoadingScreen(catalog, kinds, loading, g.onAssetsLoaded)
	return g
}

func (g *Game) onAssetsLoaded(err error) {
	if err != nil {
		log.Printf("Warning: asset loading interrupted: %v", err)
	}
	if err := g.loop.LoadBest(context.Background()); err != nil {
		log.Printf("Warning: could not read best score: %v", err)
	}
	g.showMenu()
}

func (g *Game) showMenu() {
	g.loop.Backdrop()
	gs := g.loop.State()
	cause := ""
	if gs.Over {
		cause = gs.Cause
	}
	name := "?"
	if m, ok := car.Get(gs.CarModel); ok {
		name = m.Name
	}
	g.currentScreen = ui.NewMenuScreen(gs.BestScore, gs.LastScore, cause, name, g.startRun, g.showCarSelect)
}

func (g *Game) showCarSelect() {
	g.currentScreen = ui.NewCarSelectScreen(g.loop.State().CarModel, func(model int) {
		g.loop.SelectCar(model)
		g.showMenu()
	}, g.showMenu)
}

func (g *Game) startRun() {
	g.loop.Start()
	g.currentScreen = nil
}

func (g *Game) pause() {
	g.loop.Pause()
	g.currentScreen = ui.NewPauseScreen(g.resume, g.quit)
}

func (g *Game) resume() {
	g.loop.Resume()
	g.currentScreen = nil
}

func (g *Game) quit() {
	g.loop.Quit()
	g.showMenu()
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return nil
	}

	g.loop.Tick(1/float64(ebiten.TPS()), g.input.Poll())
	if !g.loop.State().Active {
		g.showMenu()
	}
	return nil
}

// Draw renders the world, the HUD during a run and the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	gs := g.loop.State()
	g.renderer.Draw(screen, gs)

	if gs.Active {
		fill, band := g.loop.Meter()
		touched := g.input.Touched()
		ui.DrawHUD(screen, ui.Status{
			Score:      gs.Score,
			Best:       gs.BestScore,
			TurboFill:  fill,
			TurboBand:  band,
			TurboOn:    gs.Vehicle.TurboActive,
			ShowTouch:  g.input.TouchSeen(),
			TouchLeft:  touched.Left,
			TouchRight: touched.Right,
			TouchTurbo: touched.Up,
		})
	}
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
