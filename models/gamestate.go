package models

import (
	"github.com/zeromvx/irys3drace/pkg/scene"
	"github.com/zeromvx/irys3drace/pkg/vehicle"
	"github.com/zeromvx/irys3drace/road"
)

// GameState is everything one run mutates. The game loop owns it and hands
// it to each component explicitly.
type GameState struct {
	// Run flags
	Active bool // a run is in progress; cleared by game over or quit
	Paused bool // simulation is frozen but still drawn
	Over   bool // the last run ended in a crash

	// Scoring
	Score     int    // current run score
	BestScore int    // best score from the store
	LastScore int    // score of the last finished run
	Cause     string // what ended the last run

	// Simulation clock
	Seed              int64   // seed the run's generator started from
	Tick              uint64  // advanced ticks this run
	Elapsed           float64 // simulated seconds this run
	ObstacleFrequency float64 // chance per tick of topping up obstacles

	// World
	CarModel      int             // selected car, also the vehicle prototype variant
	Vehicle       vehicle.Vehicle // the player's car
	VehicleHandle scene.Handle    // zero when no car is on the road
	Road          *road.Streamer  // segment window
	Entities      Entities        // live registries
}

// NewGameState returns an idle state around a road streamer.
func NewGameState(r *road.Streamer) *GameState {
	return &GameState{Road: r}
}

// Playing reports whether ticks should advance the simulation.
func (gs *GameState) Playing() bool {
	return gs.Active && !gs.Paused
}
