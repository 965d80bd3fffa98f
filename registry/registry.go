// Package registry runs the per-tick recycle and retire passes over the live
// entity lists. Entries are compacted in place; nothing is reallocated.
package registry

import (
	"math"

	"github.com/zeromvx/irys3drace/config"
	"github.com/zeromvx/irys3drace/models"
	"github.com/zeromvx/irys3drace/pkg/geom"
	"github.com/zeromvx/irys3drace/pkg/scene"
)

// Recycler moves recyclable entities ahead and takes pooled ones back.
// spawn.Spawner implements it.
type Recycler interface {
	PlaceObstacle(o *models.Obstacle, vehicleZ float64)
	PlaceCloud(c *models.Cloud, refZ float64)
	ReleaseCoin(c *models.Coin) bool
	ReleaseTree(t *models.Tree) bool
}

type Registry struct {
	cfg   config.Tuning
	scene scene.Scene
	rec   Recycler
}

// New creates an empty registry recycling pooled values through rec
func New(cfg config.Tuning, sc scene.Scene, rec Recycler) *Registry {
	return &Registry{cfg: cfg, scene: sc, rec: rec}
}

// retain keeps the items for which keep returns true, preserving order, and
// zeroes the tail so dropped pointers can be collected.
func retain[T any](items []T, keep func(T) bool) []T {
	n := 0
	for _, it := range items {
		if keep(it) {
			items[n] = it
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}

// Obstacles teleports every obstacle that fell behind the car back ahead of
// it and moves weaving obstacles along their sine path. Obstacles are never
// removed here.
func (r *Registry) Obstacles(es *models.Entities, vehicleZ, elapsed float64) (recycled int) {
	limit := r.cfg.World.RoadWidth/2 - 1
	for _, o := range es.Obstacles {
		if o.Z < vehicleZ-r.cfg.Recycle.ObstacleBehind {
			r.rec.PlaceObstacle(o, vehicleZ)
			recycled++
			continue
		}
		if o.Oscillates() {
			x := o.BaseX + o.Amplitude*math.Sin(o.Frequency*elapsed+o.Phase)
			o.X = geom.Clamp(x, -limit, limit)
			r.scene.SetTransform(o.Handle, o.Transform(r.cfg.Sizes.ObstacleY))
		}
	}
	return recycled
}

// Coins drops collected coins and coins left behind the car, returning both
// to the pool. It reports how many expired without being collected.
func (r *Registry) Coins(es *models.Entities, vehicleZ float64) (expired int) {
	es.Coins = retain(es.Coins, func(c *models.Coin) bool {
		switch {
		case c.Collected:
		case c.Z < vehicleZ-r.cfg.Recycle.CoinBehind:
			expired++
		default:
			return true
		}
		r.rec.ReleaseCoin(c)
		return false
	})
	return expired
}

// Trees returns trees far behind the car to the pool.
func (r *Registry) Trees(es *models.Entities, vehicleZ float64) int {
	before := len(es.Trees)
	es.Trees = retain(es.Trees, func(t *models.Tree) bool {
		if t.Z < vehicleZ-r.cfg.Recycle.TreeBehind {
			r.rec.ReleaseTree(t)
			return false
		}
		return true
	})
	return before - len(es.Trees)
}

// Banners destroys banners behind the car.
func (r *Registry) Banners(es *models.Entities, vehicleZ float64) int {
	before := len(es.Banners)
	es.Banners = retain(es.Banners, func(b *models.Banner) bool {
		if b.Z < vehicleZ-r.cfg.Recycle.BannerBehind {
			r.scene.Destroy(b.Handle)
			return false
		}
		return true
	})
	return before - len(es.Banners)
}

// Clouds drifts every cloud sideways and moves the ones that left the sky
// back ahead of the car. dt is in seconds.
func (r *Registry) Clouds(es *models.Entities, vehicleZ, dt float64) (moved int) {
	rc := r.cfg.Recycle
	for _, c := range es.Clouds {
		c.Pos.X += c.Drift * dt * r.cfg.Spawn.CloudDriftGain
		if c.Pos.Z < vehicleZ-rc.CloudBehind || math.Abs(c.Pos.X) > rc.CloudMaxX {
			r.rec.PlaceCloud(c, vehicleZ)
			moved++
			continue
		}
		r.scene.SetTransform(c.Handle, c.Transform())
	}
	return moved
}

// Clear empties every registry. Pooled kinds go back to their pools; the
// rest are destroyed.
func (r *Registry) Clear(es *models.Entities) {
	for _, o := range es.Obstacles {
		r.scene.Destroy(o.Handle)
	}
	for _, c := range es.Coins {
		r.rec.ReleaseCoin(c)
	}
	for _, t := range es.Trees {
		r.rec.ReleaseTree(t)
	}
	for _, b := range es.Banners {
		r.scene.Destroy(b.Handle)
	}
	for _, c := range es.Clouds {
		r.scene.Destroy(c.Handle)
	}
	*es = models.Entities{}
}
