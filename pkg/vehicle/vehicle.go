// Package vehicle integrates player input into the car's kinematic state.
package vehicle

import (
	"math"

	"github.com/zeromvx/irys3drace/config"
	"github.com/zeromvx/irys3drace/pkg/geom"
)

// Input is the last-known state of the three controls. It is not buffered:
// whatever is held when Update runs is what takes effect.
type Input struct {
	Left  bool
	Right bool
	Up    bool
}

// Vehicle is the single player car.
type Vehicle struct {
	X, Z        float64
	Yaw         float64
	Speed       float64
	TurboLevel  float64
	TurboActive bool
}

// Position returns the car's ground position.
func (v Vehicle) Position() geom.Vec3 {
	return geom.V(v.X, 0, v.Z)
}

// Band is the colour band of the turbo meter.
type Band int

const (
	BandLow Band = iota
	BandMid
	BandHigh
)

func (b Band) String() string {
	switch b {
	case BandHigh:
		return "high"
	case BandMid:
		return "mid"
	default:
		return "low"
	}
}

// Controller applies the driving rules. It holds no per-car state.
type Controller struct {
	cfg       config.Vehicle
	roadWidth float64
}

func NewController(cfg config.Vehicle, roadWidth float64) *Controller {
	return &Controller{cfg: cfg, roadWidth: roadWidth}
}

// Spawn returns a fresh car at the origin with a full turbo tank.
func (c *Controller) Spawn() Vehicle {
	return Vehicle{TurboLevel: c.cfg.TurboCapacity, Speed: c.cfg.BaseSpeed}
}

// BaseSpeed is the per-tick forward speed before turbo at depth z.
func (c *Controller) BaseSpeed(z float64) float64 {
	return c.cfg.BaseSpeed + math.Min(c.cfg.MaxSpeedBonus, z*c.cfg.SpeedRamp)
}

// Update advances v by one tick. dt is in seconds and only affects the turbo
// meter; forward motion is per tick.
func (c *Controller) Update(v *Vehicle, dt float64, in Input) {
	base := c.BaseSpeed(v.Z)

	if in.Up && v.TurboLevel > c.cfg.TurboThreshold {
		v.TurboActive = true
		v.TurboLevel = math.Max(0, v.TurboLevel-c.cfg.TurboDrain*dt)
	} else {
		v.TurboActive = false
		v.TurboLevel = math.Min(c.cfg.TurboCapacity, v.TurboLevel+c.cfg.TurboRecharge*dt)
	}

	v.Speed = base
	if v.TurboActive {
		v.Speed = base * c.cfg.TurboMultiplier
	}
	v.Z += v.Speed

	turn := c.cfg.BaseTurn + v.Speed*c.cfg.TurnPerSpeed
	switch {
	case in.Right:
		v.X -= turn
		v.Yaw = math.Min(v.Yaw+c.cfg.YawStep, c.cfg.MaxYaw)
	case in.Left:
		v.X += turn
		v.Yaw = math.Max(v.Yaw-c.cfg.YawStep, -c.cfg.MaxYaw)
	default:
		v.Yaw = geom.Approach(v.Yaw, 0, c.cfg.YawStep)
	}
	v.X = geom.Clamp(v.X, -c.roadWidth, c.roadWidth)
}

// Meter returns the turbo fill in [0,1] and its colour band.
func (c *Controller) Meter(v Vehicle) (float64, Band) {
	fill := 0.0
	if c.cfg.TurboCapacity > 0 {
		fill = geom.Clamp(v.TurboLevel/c.cfg.TurboCapacity, 0, 1)
	}
	switch {
	case fill > 0.5:
		return fill, BandHigh
	case fill > 0.2:
		return fill, BandMid
	default:
		return fill, BandLow
	}
}
