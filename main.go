package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zeromvx/irys3drace/car"
	"github.com/zeromvx/irys3drace/config"
	sim "github.com/zeromvx/irys3drace/game"
	"github.com/zeromvx/irys3drace/pkg/assets"
	"github.com/zeromvx/irys3drace/pkg/background"
	shell "github.com/zeromvx/irys3drace/pkg/game"
	"github.com/zeromvx/irys3drace/pkg/scene"
	"github.com/zeromvx/irys3drace/pkg/ui"
	"github.com/zeromvx/irys3drace/replay"
	"github.com/zeromvx/irys3drace/scores"
)

func main() {
	var (
		configPath   = flag.String("config", "", "tuning file (YAML); built-in defaults when empty")
		storePath    = flag.String("store", "", "best score file, overrides store.path")
		storeDriver  = flag.String("store-driver", "", "best score store: json or sqlite, overrides store.driver")
		replayDir    = flag.String("replay-dir", "", "record every run into this directory, overrides replay.dir")
		seed         = flag.Int64("seed", 0, "seed for every run; 0 picks a fresh seed per run")
		assetRoot    = flag.String("assets", ".", "directory that asset paths are relative to")
		carID        = flag.String("car", "default", "car model selected at launch")
		verifyReplay = flag.String("verify-replay", "", "replay a recorded run without a window and print the result")
	)
	flag.Parse()

	cfg, err := loadTuning(*configPath)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	if *storePath != "" {
		cfg.Store.Path = *storePath
	}
	if *storeDriver != "" {
		cfg.Store.Driver = *storeDriver
	}
	if *replayDir != "" {
		cfg.Replay.Dir = *replayDir
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid tuning: %v", err)
	}
	model, ok := car.Index(*carID)
	if !ok {
		log.Fatalf("Unknown car %q", *carID)
	}

	manifest, err := cfg.Manifest()
	if err != nil {
		log.Fatalf("Invalid asset manifest: %v", err)
	}
	gen := background.NewGenerator(cfg.Seed)
	loader := assets.NewDiskLoader(*assetRoot, gen)
	catalog := assets.NewCatalog()
	catalog.Register(scene.KindVehicle, car.Sprites()...)

	if *verifyReplay != "" {
		if err := verify(*verifyReplay, cfg, catalog, loader, manifest); err != nil {
			log.Fatalf("Replay verification failed: %v", err)
		}
		return
	}

	store, err := scores.Open(cfg.Store.Driver, cfg.Store.Path)
	if err != nil {
		log.Printf("Warning: best score will not be saved: %v", err)
		store = nil
	}

	graph := scene.NewGraph()
	loop := sim.New(cfg, graph, catalog, store)
	loop.SelectCar(model)
	if dir := cfg.Replay.Dir; dir != "" {
		loop.SetRecorderFactory(func(h replay.Header) (sim.Recorder, error) {
			return replay.Create(dir, h, time.Now)
		})
	}

	kinds := make([]scene.Kind, 0, len(manifest))
	for _, e := range manifest {
		kinds = append(kinds, e.Kind)
	}
	loading := catalog.LoadAsync(context.Background(), loader, manifest)
	g := shell.NewGame(loop, graph, catalog, gen.Grass(256, 256), loading, kinds)

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Irys 3D Race")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	runErr := ebiten.RunGame(g)
	if err := loop.Close(); err != nil {
		log.Printf("Warning: shutdown: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

func loadTuning(path string) (config.Tuning, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// verify plays a recording back against the current tuning and prints how
// the run ended.
func verify(path string, cfg config.Tuning, catalog *assets.Catalog, loader assets.Loader, manifest []assets.Entry) error {
	h, frames, err := replay.Open(path)
	if err != nil {
		return err
	}
	if err := catalog.Load(context.Background(), loader, manifest); err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	loop := sim.New(cfg, scene.NewGraph(), catalog, nil)
	applied := loop.Replay(h.Seed, h.Car, frames)
	gs := loop.State()
	fmt.Printf("seed %d car %d: applied %d/%d frames, score %d, z %.2f", h.Seed, h.Car, applied, len(frames), gs.Score, gs.Vehicle.Z)
	if gs.Over {
		fmt.Printf(", ended by %s at tick %d", gs.Cause, gs.Tick)
	}
	fmt.Println()
	return nil
}
