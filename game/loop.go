// Package game drives the simulation: one Tick per frame runs the vehicle,
// streams the road, recycles and spawns entities and judges collisions.
package game

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/zeromvx/irys3drace/collision"
	"github.com/zeromvx/irys3drace/config"
	"github.com/zeromvx/irys3drace/models"
	"github.com/zeromvx/irys3drace/pkg/assets"
	"github.com/zeromvx/irys3drace/pkg/clock"
	"github.com/zeromvx/irys3drace/pkg/scene"
	"github.com/zeromvx/irys3drace/pkg/vehicle"
	"github.com/zeromvx/irys3drace/registry"
	"github.com/zeromvx/irys3drace/replay"
	"github.com/zeromvx/irys3drace/road"
	"github.com/zeromvx/irys3drace/scores"
	"github.com/zeromvx/irys3drace/spawn"
)

// Recorder receives every advanced tick of a run.
type Recorder interface {
	Record(replay.Frame) error
	Close() error
}

// RecorderFactory opens a recorder for a new run.
type RecorderFactory func(replay.Header) (Recorder, error)

// epoch is where the simulation clock restarts on every run.
var epoch = time.Unix(0, 0).UTC()

// Loop owns the GameState and every component that mutates it. It is not
// safe for concurrent use; call it from the frame callback only.
type Loop struct {
	cfg   config.Tuning
	scene scene.Scene
	store scores.Store

	state      *models.GameState
	simClock   *clock.Manual
	controller *vehicle.Controller
	spawner    *spawn.Spawner
	registry   *registry.Registry
	judge      *collision.Judge

	newRecorder RecorderFactory
	recorder    Recorder
}

// New wires a loop. store may be nil, in which case the best score only
// lives for the session.
func New(cfg config.Tuning, sc scene.Scene, catalog *assets.Catalog, store scores.Store) *Loop {
	simClock := clock.NewManual(epoch)
	var cooldownClock clock.Provider = simClock
	if cfg.Spawn.CooldownClock == "wall" {
		cooldownClock = clock.Wall{}
	}

	sp := spawn.New(cfg, sc, catalog, cooldownClock, cfg.Seed)
	return &Loop{
		cfg:        cfg,
		scene:      sc,
		store:      store,
		state:      models.NewGameState(road.New(sc, cfg.World)),
		simClock:   simClock,
		controller: vehicle.NewController(cfg.Vehicle, cfg.World.RoadWidth),
		spawner:    sp,
		registry:   registry.New(cfg, sc, sp),
		judge:      collision.New(cfg, sc),
	}
}

func (l *Loop) State() *models.GameState { return l.state }

// Meter returns the turbo meter fill and colour band for the HUD.
func (l *Loop) Meter() (float64, vehicle.Band) {
	return l.controller.Meter(l.state.Vehicle)
}

// SetRecorderFactory enables recording of every run started afterwards.
func (l *Loop) SetRecorderFactory(f RecorderFactory) {
	l.newRecorder = f
}

// LoadBest reads the stored best score.
func (l *Loop) LoadBest(ctx context.Context) error {
	if l.store == nil {
		return nil
	}
	best, err := l.store.Best(ctx)
	if err != nil {
		return err
	}
	l.state.BestScore = best
	return nil
}

// SelectCar picks the vehicle prototype variant for the next run.
func (l *Loop) SelectCar(model int) {
	l.state.CarModel = model
}

// Backdrop fills the sky around the origin so the menu is not empty. It
// does nothing while a run is active.
func (l *Loop) Backdrop() {
	if l.state.Active {
		return
	}
	l.spawner.TopUpClouds(&l.state.Entities, 0)
}

// Start begins a run with the configured seed, or a fresh one when the
// tuning leaves it at zero. It returns the seed used.
func (l *Loop) Start() int64 {
	seed := l.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	l.StartSeeded(seed)
	return seed
}

// StartSeeded clears the world and begins a run from seed. Two runs started
// from the same seed and fed the same ticks play out identically.
func (l *Loop) StartSeeded(seed int64) {
	l.closeRecorder()
	l.clearWorld()

	gs := l.state
	gs.Active, gs.Paused, gs.Over = true, false, false
	gs.Score, gs.Cause = 0, ""
	gs.Seed, gs.Tick, gs.Elapsed = seed, 0, 0
	gs.ObstacleFrequency = l.cfg.Spawn.ObstacleFrequency

	l.spawner.Reseed(seed)
	l.simClock.Set(epoch)

	for _, seg := range gs.Road.Reset() {
		l.spawner.Decorate(seg, &gs.Entities)
	}

	gs.Vehicle = l.controller.Spawn()
	gs.VehicleHandle = l.scene.Create(scene.KindVehicle, gs.CarModel, l.cfg.Sizes.Body, l.vehicleTransform())

	if l.newRecorder != nil {
		rec, err := l.newRecorder(replay.Header{Seed: seed, Car: gs.CarModel})
		if err != nil {
			log.Printf("Warning: replay recording disabled: %v", err)
		} else {
			l.recorder = rec
		}
	}
	log.Printf("Run started (seed %d, car %d)", seed, gs.CarModel)
}

// Tick advances the simulation by one frame. dt is the frame time in
// seconds. Paused or inactive ticks change nothing.
func (l *Loop) Tick(dt float64, in vehicle.Input) collision.Result {
	gs := l.state
	if !gs.Playing() {
		return collision.Result{}
	}
	gs.Tick++
	l.record(replay.NewFrame(gs.Tick, dt, in))

	l.simClock.Advance(time.Duration(dt * float64(time.Second)))
	gs.Elapsed += dt
	sp := l.cfg.Spawn
	gs.ObstacleFrequency = math.Min(sp.ObstacleFrequencyMax, gs.ObstacleFrequency+dt*sp.ObstacleFrequencyRamp)

	l.controller.Update(&gs.Vehicle, dt, in)
	l.scene.SetTransform(gs.VehicleHandle, l.vehicleTransform())
	vz := gs.Vehicle.Z

	if seg, ok := gs.Road.ExtendIfNeeded(vz); ok {
		l.spawner.Decorate(seg, &gs.Entities)
	}

	l.registry.Obstacles(&gs.Entities, vz, gs.Elapsed)
	l.registry.Trees(&gs.Entities, vz)
	l.registry.Banners(&gs.Entities, vz)
	l.registry.Clouds(&gs.Entities, vz, dt)

	l.spawner.TopUpObstacles(gs)
	l.spawner.TopUpClouds(&gs.Entities, vz)

	res := l.judge.Evaluate(gs)
	gs.Score += res.Points
	l.registry.Coins(&gs.Entities, vz)

	if res.Crashed {
		l.gameOver(res.Cause)
	}
	return res
}

// Replay starts a run from seed and feeds it frames until they run out or
// the run ends. It returns how many frames were applied.
func (l *Loop) Replay(seed int64, car int, frames []replay.Frame) int {
	l.SelectCar(car)
	l.StartSeeded(seed)
	n := 0
	for _, f := range frames {
		if !l.state.Active {
			break
		}
		l.Tick(f.DT, f.Input())
		n++
	}
	return n
}

// Pause freezes an active run.
func (l *Loop) Pause() {
	if l.state.Active {
		l.state.Paused = true
	}
}

func (l *Loop) Resume() {
	l.state.Paused = false
}

// TogglePause flips the pause flag of an active run and reports the new
// state.
func (l *Loop) TogglePause() bool {
	if l.state.Paused {
		l.Resume()
	} else {
		l.Pause()
	}
	return l.state.Paused
}

// Quit abandons the run without scoring it and clears the world.
func (l *Loop) Quit() {
	l.state.Active, l.state.Paused = false, false
	l.closeRecorder()
	l.clearWorld()
}

// Close releases the recorder and the store.
func (l *Loop) Close() error {
	l.closeRecorder()
	if l.store != nil {
		return l.store.Close()
	}
	return nil
}

func (l *Loop) gameOver(cause collision.Cause) {
	gs := l.state
	gs.Active, gs.Paused, gs.Over = false, false, true
	gs.Cause = string(cause)
	gs.LastScore = gs.Score
	l.closeRecorder()
	log.Printf("Game over after %d ticks: %s, score %d", gs.Tick, cause, gs.Score)

	if gs.Score <= gs.BestScore {
		return
	}
	gs.BestScore = gs.Score
	if l.store == nil {
		return
	}
	if _, _, err := scores.Record(context.Background(), l.store, gs.Score); err != nil {
		log.Printf("Warning: could not save best score: %v", err)
	}
}

func (l *Loop) clearWorld() {
	gs := l.state
	l.registry.Clear(&gs.Entities)
	gs.Road.Clear()
	if gs.VehicleHandle != 0 {
		l.scene.Destroy(gs.VehicleHandle)
		gs.VehicleHandle = 0
	}
	gs.Vehicle = vehicle.Vehicle{}
}

func (l *Loop) vehicleTransform() scene.Transform {
	v := l.state.Vehicle
	t := scene.At(v.Position())
	t.Position.Y = l.cfg.Sizes.Body.Y / 2
	t.Yaw = v.Yaw
	return t
}

func (l *Loop) record(f replay.Frame) {
	if l.recorder == nil {
		return
	}
	if err := l.recorder.Record(f); err != nil {
		log.Printf("Warning: replay recording stopped: %v", err)
		l.closeRecorder()
	}
}

func (l *Loop) closeRecorder() {
	if l.recorder == nil {
		return
	}
	if err := l.recorder.Close(); err != nil {
		log.Printf("Warning: could not close replay: %v", err)
	}
	l.recorder = nil
}
