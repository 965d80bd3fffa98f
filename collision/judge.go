// Package collision decides, once per tick, whether the run is over and
// which coins the car picked up.
package collision

import (
	"math"

	"github.com/zeromvx/irys3drace/config"
	"github.com/zeromvx/irys3drace/models"
	"github.com/zeromvx/irys3drace/pkg/geom"
	"github.com/zeromvx/irys3drace/pkg/scene"
	"github.com/zeromvx/irys3drace/pkg/vehicle"
	"github.com/zeromvx/irys3drace/road"
)

// Cause names what ended a run.
type Cause string

const (
	CauseNone     Cause = ""
	CauseObstacle Cause = "obstacle"
	CauseOffRoad  Cause = "off-road"
)

// Result is the verdict for one tick.
type Result struct {
	Crashed   bool
	Cause     Cause
	Collected int // coins picked up this tick
	Points    int // score earned this tick
}

type Judge struct {
	cfg   config.Tuning
	scene scene.Scene
}

// New creates a collision judge reading bounds from sc
func New(cfg config.Tuning, sc scene.Scene) *Judge {
	return &Judge{cfg: cfg, scene: sc}
}

// Hitbox is the fixed obstacle-collision box of the car. It ignores yaw.
func (j *Judge) Hitbox(v vehicle.Vehicle) geom.AABB {
	center := v.Position().Add(geom.V(j.cfg.Sizes.HitboxOffsetX, 0, 0))
	return geom.FromCenterAndSize(center, j.cfg.Sizes.Hitbox)
}

// Body is the whole-car box used for coin pickup. It turns with the car.
func (j *Judge) Body(v vehicle.Vehicle) geom.AABB {
	size := j.cfg.Sizes.Body
	p := scene.Proxy{
		Size: size,
		Transform: scene.Transform{
			Position: v.Position().Add(geom.V(0, size.Y/2, 0)),
			Yaw:      v.Yaw,
			Scale:    1,
		},
	}
	return p.Bounds()
}

// Obstacle reports whether the hitbox touches any live obstacle.
func (j *Judge) Obstacle(v vehicle.Vehicle, obstacles []*models.Obstacle) bool {
	hit := j.Hitbox(v)
	for _, o := range obstacles {
		if hit.Intersects(j.scene.Bounds(o.Handle)) {
			return true
		}
	}
	return false
}

// OffRoad reports whether the car left the road in the segment under it.
// With no segment under the car there is no constraint.
func (j *Judge) OffRoad(v vehicle.Vehicle, r *road.Streamer) bool {
	seg, ok := r.SegmentAt(v.Z)
	if !ok {
		return false
	}
	return math.Abs(v.X-seg.LateralOffset) > j.cfg.World.RoadWidth/2
}

// Coins marks every uncollected coin the car body overlaps as collected
// and returns how many it marked.
func (j *Judge) Coins(v vehicle.Vehicle, coins []*models.Coin) int {
	body := j.Body(v)
	n := 0
	for _, c := range coins {
		if c.Collected {
			continue
		}
		if body.Intersects(j.scene.Bounds(c.Handle)) {
			c.Collected = true
			n++
		}
	}
	return n
}

// Evaluate runs every check for one tick. Terminal checks come first; coins
// are still scored on the tick the car crashes.
func (j *Judge) Evaluate(gs *models.GameState) Result {
	var res Result
	switch {
	case j.Obstacle(gs.Vehicle, gs.Entities.Obstacles):
		res.Crashed, res.Cause = true, CauseObstacle
	case gs.Road != nil && j.OffRoad(gs.Vehicle, gs.Road):
		res.Crashed, res.Cause = true, CauseOffRoad
	}
	res.Collected = j.Coins(gs.Vehicle, gs.Entities.Coins)
	res.Points = res.Collected * j.cfg.Scoring.CoinValue
	return res
}
