// Package spawn decides where new entities appear. It draws every random
// number from one seeded generator so a run can be replayed exactly.
package spawn

import (
	"math"
	"math/rand"

	"github.com/zeromvx/irys3drace/config"
	"github.com/zeromvx/irys3drace/models"
	"github.com/zeromvx/irys3drace/pkg/assets"
	"github.com/zeromvx/irys3drace/pkg/clock"
	"github.com/zeromvx/irys3drace/pkg/geom"
	"github.com/zeromvx/irys3drace/pkg/pool"
	"github.com/zeromvx/irys3drace/pkg/scene"
	"github.com/zeromvx/irys3drace/road"
)

// Spawner creates obstacles, coins, trees, banners and clouds. Every
// creation path returns false instead of failing when a prototype is not
// loaded yet; callers skip the spawn.
type Spawner struct {
	cfg     config.Tuning
	rng     *rand.Rand
	scene   scene.Scene
	catalog *assets.Catalog

	cooldown *Cooldown
	coins    *pool.Pool[*models.Coin]
	trees    *pool.Pool[*models.Tree]
}

// New creates a spawner drawing from a generator seeded with seed.
func New(cfg config.Tuning, sc scene.Scene, catalog *assets.Catalog, clk clock.Provider, seed int64) *Spawner {
	s := &Spawner{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		scene:    sc,
		catalog:  catalog,
		cooldown: NewCooldown(clk, cfg.Spawn.ObstacleCooldown),
	}
	s.coins = pool.New(s.newCoin, s.hideCoin)
	s.trees = pool.New(s.newTree, s.hideTree)
	return s
}

// Reseed restarts the random sequence and reopens the obstacle cooldown.
func (s *Spawner) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.cooldown.Reset()
}

func (s *Spawner) CoinPool() *pool.Pool[*models.Coin] { return s.coins }
func (s *Spawner) TreePool() *pool.Pool[*models.Tree] { return s.trees }

// uniform draws from [lo, hi).
func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// laneX draws a lateral position that keeps a margin from the road edges.
func (s *Spawner) laneX() float64 {
	return (s.rng.Float64() - 0.5) * (s.cfg.World.RoadWidth - s.cfg.Spawn.LaneMargin)
}

// pooledVariant picks prototypes for pooled values in creation order. It
// leaves rng alone: a warm pool creates fewer values than a cold one, and
// the run's random sequence must not depend on that.
func (s *Spawner) pooledVariant(kind scene.Kind, created int) int {
	n := s.catalog.Variants(kind)
	if n <= 1 {
		return 0
	}
	return created % n
}

func (s *Spawner) variant(kind scene.Kind) int {
	n := s.catalog.Variants(kind)
	if n <= 1 {
		return 0
	}
	return s.rng.Intn(n)
}

// Obstacle creates one obstacle far ahead of vehicleZ. It is rate limited
// by the cooldown and needs the obstacle texture.
func (s *Spawner) Obstacle(vehicleZ float64) (*models.Obstacle, bool) {
	if !s.catalog.Ready(scene.KindObstacle) || !s.cooldown.Take() {
		return nil, false
	}
	o := &models.Obstacle{}
	s.PlaceObstacle(o, vehicleZ)
	o.Handle = s.scene.Create(scene.KindObstacle, s.variant(scene.KindObstacle), s.cfg.Sizes.Obstacle, o.Transform(s.cfg.Sizes.ObstacleY))
	return o, true
}

// PlaceObstacle moves o to a fresh spot ahead of vehicleZ and redraws its
// weave. The new Z is never closer than ObstacleAhead.
func (s *Spawner) PlaceObstacle(o *models.Obstacle, vehicleZ float64) {
	sp := s.cfg.Spawn
	o.Z = vehicleZ + sp.ObstacleAhead + s.rng.Float64()*sp.ObstacleSpread
	o.X = s.laneX()
	o.BaseX = o.X
	o.Amplitude, o.Frequency = 0, 0
	if s.rng.Float64() < sp.OscillateChance {
		o.Amplitude = s.uniform(sp.AmplitudeMin, sp.AmplitudeMax)
		o.Frequency = s.uniform(sp.OscFrequencyMin, sp.OscFrequencyMax)
	}
	o.Phase = s.rng.Float64() * 2 * math.Pi
	if o.Handle != 0 {
		s.scene.SetTransform(o.Handle, o.Transform(s.cfg.Sizes.ObstacleY))
	}
}

// TopUpObstacles spawns obstacles while the population is under target and
// a draw against the current frequency succeeds. It returns how many were
// added.
func (s *Spawner) TopUpObstacles(gs *models.GameState) int {
	added := 0
	for len(gs.Entities.Obstacles) < s.cfg.Spawn.ObstacleTarget && s.rng.Float64() < gs.ObstacleFrequency {
		o, ok := s.Obstacle(gs.Vehicle.Z)
		if !ok {
			break
		}
		gs.Entities.Obstacles = append(gs.Entities.Obstacles, o)
		added++
	}
	return added
}

// Decorate populates a freshly streamed segment: an optional banner pair,
// a handful of trees and its coins.
func (s *Spawner) Decorate(seg road.Segment, es *models.Entities) {
	es.Banners = append(es.Banners, s.Banners(seg)...)

	sp := s.cfg.Spawn
	n := sp.TreesMin + s.rng.Intn(sp.TreesMax-sp.TreesMin+1)
	for i := 0; i < n; i++ {
		if t, ok := s.Tree(seg); ok {
			es.Trees = append(es.Trees, t)
		}
	}

	for i := 0; i < sp.CoinsPerSegment; i++ {
		if c, ok := s.Coin(seg); ok {
			es.Coins = append(es.Coins, c)
		}
	}
}

// Coin places one pooled coin near the start of seg.
func (s *Spawner) Coin(seg road.Segment) (*models.Coin, bool) {
	z := seg.ZStart + s.cfg.Spawn.CoinOffset + s.rng.Float64()*s.cfg.Spawn.CoinSpread
	x := seg.LateralOffset + s.laneX()

	c, ok := s.coins.Acquire()
	if !ok {
		return nil, false
	}
	c.X, c.Z, c.Collected = x, z, false
	s.scene.SetTransform(c.Handle, c.Transform(s.cfg.Sizes.CoinY))
	s.scene.SetVisible(c.Handle, true)
	return c, true
}

// Tree places one pooled tree on a random side of seg.
func (s *Spawner) Tree(seg road.Segment) (*models.Tree, bool) {
	t, ok := s.trees.Acquire()
	if !ok {
		return nil, false
	}
	w, sp := s.cfg.World, s.cfg.Spawn
	t.Scale = s.uniform(sp.TreeScaleMin, sp.TreeScaleMax)
	side := 1.0
	if s.rng.Float64() < 0.5 {
		side = -1
	}
	offset := w.RoadWidth/2 + sp.TreeRoadGap + s.rng.Float64()*(w.GrassWidth/2-sp.TreeGrassMargin)
	t.X = seg.LateralOffset + side*offset
	t.Z = seg.ZStart + s.rng.Float64()*w.SegmentLength
	t.Yaw = s.rng.Float64() * 2 * math.Pi
	s.scene.SetTransform(t.Handle, t.Transform())
	s.scene.SetVisible(t.Handle, true)
	return t, true
}

// Banners rolls for a roadside pair in the middle of seg. Both halves share
// a texture and face the road.
func (s *Spawner) Banners(seg road.Segment) []*models.Banner {
	sp := s.cfg.Spawn
	if s.rng.Float64() >= sp.BannerChance {
		return nil
	}
	width := s.uniform(sp.BannerWidthMin, sp.BannerWidthMax)
	height := s.uniform(sp.BannerHeightMin, sp.BannerHeightMax)
	if !s.catalog.Ready(scene.KindBanner) {
		return nil
	}
	variant := s.variant(scene.KindBanner)

	lateral := s.cfg.World.RoadWidth/2 + width/2 + sp.BannerGap
	z := (seg.ZStart + seg.ZEnd) / 2
	pair := []*models.Banner{
		{Variant: variant, X: seg.LateralOffset - lateral, Z: z, Width: width, Height: height, Yaw: math.Pi},
		{Variant: variant, X: seg.LateralOffset + lateral, Z: z, Width: width, Height: height, Yaw: -math.Pi},
	}
	for _, b := range pair {
		b.Handle = s.scene.Create(scene.KindBanner, variant, geom.V(width, height, 0.1), b.Transform())
	}
	return pair
}

// Cloud creates one cloud ahead of refZ.
func (s *Spawner) Cloud(refZ float64) (*models.Cloud, bool) {
	if !s.catalog.Ready(scene.KindCloud) {
		return nil, false
	}
	c := &models.Cloud{
		Scale:   s.uniform(s.cfg.Spawn.CloudScaleMin, s.cfg.Spawn.CloudScaleMax),
		Variant: s.variant(scene.KindCloud),
	}
	s.PlaceCloud(c, refZ)
	c.Handle = s.scene.Create(scene.KindCloud, c.Variant, s.cfg.Sizes.Cloud, c.Transform())
	return c, true
}

// PlaceCloud moves c to a fresh spot ahead of refZ with a new drift speed.
func (s *Spawner) PlaceCloud(c *models.Cloud, refZ float64) {
	sp := s.cfg.Spawn
	c.Pos = geom.V(
		(s.rng.Float64()-0.5)*sp.CloudSpanX,
		sp.CloudYMin+s.rng.Float64()*sp.CloudYSpread,
		refZ+sp.CloudAhead+s.rng.Float64()*sp.CloudSpread,
	)
	c.Drift = s.uniform(sp.CloudDriftMin, sp.CloudDriftMax)
	if c.Handle != 0 {
		s.scene.SetTransform(c.Handle, c.Transform())
	}
}

// TopUpClouds keeps the cloud population at its floor. It stops early when
// a cloud cannot be created.
func (s *Spawner) TopUpClouds(es *models.Entities, refZ float64) int {
	added := 0
	for len(es.Clouds) < s.cfg.Spawn.CloudTarget {
		c, ok := s.Cloud(refZ)
		if !ok {
			break
		}
		es.Clouds = append(es.Clouds, c)
		added++
	}
	return added
}

// ReleaseCoin returns c to the pool hidden. Collected keeps its value until
// the coin is handed out again. It reports false if c was already pooled.
func (s *Spawner) ReleaseCoin(c *models.Coin) bool {
	return s.coins.Release(c)
}

func (s *Spawner) ReleaseTree(t *models.Tree) bool {
	return s.trees.Release(t)
}

func (s *Spawner) newCoin() (*models.Coin, bool) {
	if !s.catalog.Ready(scene.KindCoin) {
		return nil, false
	}
	c := &models.Coin{}
	c.Handle = s.scene.Create(scene.KindCoin, s.pooledVariant(scene.KindCoin, s.coins.Created()), s.cfg.Sizes.Coin, c.Transform(s.cfg.Sizes.CoinY))
	return c, true
}

func (s *Spawner) hideCoin(c *models.Coin) {
	s.scene.SetVisible(c.Handle, false)
}

func (s *Spawner) newTree() (*models.Tree, bool) {
	if !s.catalog.Ready(scene.KindTree) {
		return nil, false
	}
	t := &models.Tree{Scale: 1}
	t.Handle = s.scene.Create(scene.KindTree, s.pooledVariant(scene.KindTree, s.trees.Created()), s.cfg.Sizes.Tree, t.Transform())
	return t, true
}

func (s *Spawner) hideTree(t *models.Tree) {
	s.scene.SetVisible(t.Handle, false)
}
