package models

import (
	"math"

	"github.com/zeromvx/irys3drace/pkg/geom"
	"github.com/zeromvx/irys3drace/pkg/scene"
)

// Obstacle blocks the road. A non-zero Amplitude makes it weave across the
// lane around BaseX.
type Obstacle struct {
	Handle scene.Handle

	X, Z  float64
	BaseX float64

	Amplitude float64 // world units, 0 = stationary
	Frequency float64 // rad/s
	Phase     float64 // rad
}

// Oscillates reports whether the obstacle weaves.
func (o *Obstacle) Oscillates() bool {
	return o.Amplitude != 0
}

// Transform places the obstacle sprite facing back down the road.
func (o *Obstacle) Transform(y float64) scene.Transform {
	return scene.Transform{Position: geom.V(o.X, y, o.Z), Yaw: math.Pi, Scale: 1}
}

// Coin is pooled. Collected flips once when the car picks it up.
type Coin struct {
	Handle    scene.Handle
	X, Z      float64
	Collected bool
}

func (c *Coin) Transform(y float64) scene.Transform {
	return scene.At(geom.V(c.X, y, c.Z))
}

// Tree is pooled roadside decoration.
type Tree struct {
	Handle scene.Handle
	X, Z   float64
	Scale  float64
	Yaw    float64
}

func (t *Tree) Transform() scene.Transform {
	return scene.Transform{Position: geom.V(t.X, 0, t.Z), Yaw: t.Yaw, Scale: t.Scale}
}

// Banner is one half of a roadside pair. Banners are destroyed, not pooled.
type Banner struct {
	Handle  scene.Handle
	Variant int
	X, Z    float64
	Width   float64
	Height  float64
	Yaw     float64
}

func (b *Banner) Transform() scene.Transform {
	return scene.Transform{Position: geom.V(b.X, b.Height/2, b.Z), Yaw: b.Yaw, Scale: 1}
}

// Cloud floats above the road and is never removed, only moved.
type Cloud struct {
	Handle  scene.Handle
	Pos     geom.Vec3
	Drift   float64
	Scale   float64
	Variant int
}

func (c *Cloud) Transform() scene.Transform {
	return scene.Transform{Position: c.Pos, Scale: c.Scale}
}

// Entities holds the live registry of every streamed kind.
type Entities struct {
	Obstacles []*Obstacle
	Coins     []*Coin
	Trees     []*Tree
	Banners   []*Banner
	Clouds    []*Cloud
}

// Total is the number of live entities across all kinds.
func (e *Entities) Total() int {
	return len(e.Obstacles) + len(e.Coins) + len(e.Trees) + len(e.Banners) + len(e.Clouds)
}
