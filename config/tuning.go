// Package config holds every gameplay tunable. Defaults reproduce the
// shipped game; a YAML file may override any subset of them.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/zeromvx/irys3drace/pkg/assets"
	"github.com/zeromvx/irys3drace/pkg/geom"
	"github.com/zeromvx/irys3drace/pkg/scene"
)

// ErrInvalid wraps every semantic validation failure.
var ErrInvalid = errors.New("invalid tuning")

//go:embed tuning.schema.json
var schemaSource string

type Tuning struct {
	// Seed fixes the world generator. Zero picks a new seed per run.
	Seed int64 `yaml:"seed"`

	World   World   `yaml:"world"`
	Vehicle Vehicle `yaml:"vehicle"`
	Spawn   Spawn   `yaml:"spawn"`
	Recycle Recycle `yaml:"recycle"`
	Scoring Scoring `yaml:"scoring"`
	Sizes   Sizes   `yaml:"sizes"`
	Assets  []Asset `yaml:"assets"`
	Store   Store   `yaml:"store"`
	Replay  Replay  `yaml:"replay"`
}

type World struct {
	RoadWidth     float64 `yaml:"road_width"`
	GrassWidth    float64 `yaml:"grass_width"`
	SegmentLength float64 `yaml:"segment_length"`
	SegmentsCount int     `yaml:"segments_count"`
	// RetireFactor times SegmentsCount is the high-water mark of the
	// segment buffer.
	RetireFactor float64 `yaml:"retire_factor"`
}

type Vehicle struct {
	BaseSpeed       float64 `yaml:"base_speed"`
	SpeedRamp       float64 `yaml:"speed_ramp"`
	MaxSpeedBonus   float64 `yaml:"max_speed_bonus"`
	TurboCapacity   float64 `yaml:"turbo_capacity"`
	TurboThreshold  float64 `yaml:"turbo_threshold"`
	TurboDrain      float64 `yaml:"turbo_drain"`
	TurboRecharge   float64 `yaml:"turbo_recharge"`
	TurboMultiplier float64 `yaml:"turbo_multiplier"`
	BaseTurn        float64 `yaml:"base_turn"`
	TurnPerSpeed    float64 `yaml:"turn_per_speed"`
	YawStep         float64 `yaml:"yaw_step"`
	MaxYaw          float64 `yaml:"max_yaw"`
}

type Spawn struct {
	ObstacleTarget        int           `yaml:"obstacle_target"`
	ObstacleCooldown      time.Duration `yaml:"obstacle_cooldown"`
	CooldownClock         string        `yaml:"cooldown_clock"`
	ObstacleAhead         float64       `yaml:"obstacle_ahead"`
	ObstacleSpread        float64       `yaml:"obstacle_spread"`
	ObstacleFrequency     float64       `yaml:"obstacle_frequency"`
	ObstacleFrequencyMax  float64       `yaml:"obstacle_frequency_max"`
	ObstacleFrequencyRamp float64       `yaml:"obstacle_frequency_ramp"`
	OscillateChance       float64       `yaml:"oscillate_chance"`
	AmplitudeMin          float64       `yaml:"amplitude_min"`
	AmplitudeMax          float64       `yaml:"amplitude_max"`
	OscFrequencyMin       float64       `yaml:"osc_frequency_min"`
	OscFrequencyMax       float64       `yaml:"osc_frequency_max"`
	LaneMargin            float64       `yaml:"lane_margin"`

	CoinOffset      float64 `yaml:"coin_offset"`
	CoinSpread      float64 `yaml:"coin_spread"`
	CoinsPerSegment int     `yaml:"coins_per_segment"`

	TreesMin        int     `yaml:"trees_min"`
	TreesMax        int     `yaml:"trees_max"`
	TreeRoadGap     float64 `yaml:"tree_road_gap"`
	TreeGrassMargin float64 `yaml:"tree_grass_margin"`
	TreeScaleMin    float64 `yaml:"tree_scale_min"`
	TreeScaleMax    float64 `yaml:"tree_scale_max"`

	BannerChance    float64 `yaml:"banner_chance"`
	BannerGap       float64 `yaml:"banner_gap"`
	BannerWidthMin  float64 `yaml:"banner_width_min"`
	BannerWidthMax  float64 `yaml:"banner_width_max"`
	BannerHeightMin float64 `yaml:"banner_height_min"`
	BannerHeightMax float64 `yaml:"banner_height_max"`

	CloudTarget    int     `yaml:"cloud_target"`
	CloudSpanX     float64 `yaml:"cloud_span_x"`
	CloudYMin      float64 `yaml:"cloud_y_min"`
	CloudYSpread   float64 `yaml:"cloud_y_spread"`
	CloudAhead     float64 `yaml:"cloud_ahead"`
	CloudSpread    float64 `yaml:"cloud_spread"`
	CloudDriftMin  float64 `yaml:"cloud_drift_min"`
	CloudDriftMax  float64 `yaml:"cloud_drift_max"`
	CloudDriftGain float64 `yaml:"cloud_drift_gain"`
	CloudScaleMin  float64 `yaml:"cloud_scale_min"`
	CloudScaleMax  float64 `yaml:"cloud_scale_max"`
}

// Recycle windows are measured behind the vehicle. They are deliberately
// separate per kind.
type Recycle struct {
	ObstacleBehind float64 `yaml:"obstacle_behind"`
	CoinBehind     float64 `yaml:"coin_behind"`
	TreeBehind     float64 `yaml:"tree_behind"`
	BannerBehind   float64 `yaml:"banner_behind"`
	CloudBehind    float64 `yaml:"cloud_behind"`
	CloudMaxX      float64 `yaml:"cloud_max_x"`
}

type Scoring struct {
	CoinValue int `yaml:"coin_value"`
}

// Sizes are full world extents at scale 1.
type Sizes struct {
	HitboxOffsetX float64   `yaml:"hitbox_offset_x"`
	Hitbox        geom.Vec3 `yaml:"hitbox"`
	Body          geom.Vec3 `yaml:"body"`
	Obstacle      geom.Vec3 `yaml:"obstacle"`
	ObstacleY     float64   `yaml:"obstacle_y"`
	Coin          geom.Vec3 `yaml:"coin"`
	CoinY         float64   `yaml:"coin_y"`
	Tree          geom.Vec3 `yaml:"tree"`
	Cloud         geom.Vec3 `yaml:"cloud"`
}

// Asset lists the prototype files for one entity kind. Paths starting with
// "gen:" are generated at startup instead of read from disk.
type Asset struct {
	Kind  string   `yaml:"kind"`
	Model bool     `yaml:"model"`
	Paths []string `yaml:"paths"`
}

type Store struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type Replay struct {
	// Dir receives one recording per run. Empty disables recording.
	Dir string `yaml:"dir"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		World: World{
			RoadWidth:     20,
			GrassWidth:    100,
			SegmentLength: 50,
			SegmentsCount: 20,
			RetireFactor:  1.5,
		},
		Vehicle: Vehicle{
			BaseSpeed:       0.5,
			SpeedRamp:       0.0001,
			MaxSpeedBonus:   2.0,
			TurboCapacity:   100,
			TurboThreshold:  20,
			TurboDrain:      20,
			TurboRecharge:   10,
			TurboMultiplier: 2,
			BaseTurn:        0.08,
			TurnPerSpeed:    0.04,
			YawStep:         0.02,
			MaxYaw:          math.Pi / 16,
		},
		Spawn: Spawn{
			ObstacleTarget:        10,
			ObstacleCooldown:      500 * time.Millisecond,
			CooldownClock:         "sim",
			ObstacleAhead:         500,
			ObstacleSpread:        500,
			ObstacleFrequency:     0.08,
			ObstacleFrequencyMax:  0.1,
			ObstacleFrequencyRamp: 0.0002,
			OscillateChance:       0.2,
			AmplitudeMin:          1,
			AmplitudeMax:          3,
			OscFrequencyMin:       0.5,
			OscFrequencyMax:       1.0,
			LaneMargin:            4,

			CoinOffset:      10,
			CoinSpread:      10,
			CoinsPerSegment: 1,

			TreesMin:        5,
			TreesMax:        10,
			TreeRoadGap:     2,
			TreeGrassMargin: 10,
			TreeScaleMin:    0.8,
			TreeScaleMax:    1.2,

			BannerChance:    0.2,
			BannerGap:       2,
			BannerWidthMin:  5,
			BannerWidthMax:  7,
			BannerHeightMin: 3,
			BannerHeightMax: 4,

			CloudTarget:    20,
			CloudSpanX:     400,
			CloudYMin:      20,
			CloudYSpread:   20,
			CloudAhead:     500,
			CloudSpread:    1000,
			CloudDriftMin:  0.02,
			CloudDriftMax:  0.05,
			CloudDriftGain: 10,
			CloudScaleMin:  10,
			CloudScaleMax:  30,
		},
		Recycle: Recycle{
			ObstacleBehind: 20,
			CoinBehind:     30,
			TreeBehind:     100,
			BannerBehind:   20,
			CloudBehind:    100,
			CloudMaxX:      250,
		},
		Scoring: Scoring{CoinValue: 10},
		Sizes: Sizes{
			HitboxOffsetX: 1.4,
			Hitbox:        geom.V(2.7, 1.0, 6.2),
			Body:          geom.V(2.0, 1.0, 4.4),
			Obstacle:      geom.V(1.9, 2.18, 4.0),
			ObstacleY:     1.09,
			Coin:          geom.V(1.2, 1.2, 0.3),
			CoinY:         0.1,
			Tree:          geom.V(4, 5.5, 4),
			Cloud:         geom.V(1, 1, 0.1),
		},
		Assets: []Asset{
			{Kind: "obstacle", Paths: []string{"gen:obstacle"}},
			{Kind: "coin", Model: true, Paths: []string{"gen:coin"}},
			{Kind: "tree", Model: true, Paths: []string{"gen:tree"}},
			{Kind: "banner", Paths: []string{"gen:banner:0", "gen:banner:1", "gen:banner:2"}},
			{Kind: "cloud", Paths: []string{"gen:cloud"}},
		},
		Store: Store{Driver: "json", Path: "best_score.json"},
	}
}

// Load reads and validates a tuning file.
func Load(path string) (Tuning, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, err
	}
	t, err := Parse(raw)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse overlays a YAML document on the defaults. The document is checked
// against the embedded schema first, then the merged result is validated.
func Parse(raw []byte) (Tuning, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Tuning{}, fmt.Errorf("tuning.yaml: %w", err)
	}
	if doc != nil {
		if err := validateSchema(doc); err != nil {
			return Tuning{}, err
		}
	}

	t := Default()
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Tuning{}, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// schema compiles the embedded schema on first use; safe for concurrent Parse calls.
var schema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	s, err := jsonschema.CompileString("tuning.schema.json", schemaSource)
	if err != nil {
		return nil, fmt.Errorf("compile tuning schema: %w", err)
	}
	return s, nil
})

func validateSchema(doc any) error {
	s, err := schema()
	if err != nil {
		return err
	}
	// Round trip through JSON so the validator sees json.Number values.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("tuning.yaml: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Validate checks the rules the schema cannot express.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	w := t.World
	check(w.RoadWidth > 0, "world.road_width must be positive")
	check(w.GrassWidth >= w.RoadWidth, "world.grass_width must be at least road_width")
	check(w.SegmentLength > 0, "world.segment_length must be positive")
	check(w.SegmentsCount >= 2, "world.segments_count must be at least 2")
	check(w.RetireFactor >= 1, "world.retire_factor must be at least 1")

	v := t.Vehicle
	check(v.TurboCapacity > 0, "vehicle.turbo_capacity must be positive")
	check(v.TurboThreshold >= 0 && v.TurboThreshold < v.TurboCapacity, "vehicle.turbo_threshold must be in [0, turbo_capacity)")
	check(v.MaxYaw >= 0, "vehicle.max_yaw must not be negative")

	s := t.Spawn
	check(s.ObstacleCooldown >= 0, "spawn.obstacle_cooldown must not be negative")
	check(s.CooldownClock == "sim" || s.CooldownClock == "wall", "spawn.cooldown_clock must be sim or wall, got %q", s.CooldownClock)
	check(s.ObstacleFrequency <= s.ObstacleFrequencyMax, "spawn.obstacle_frequency exceeds obstacle_frequency_max")
	check(s.AmplitudeMin <= s.AmplitudeMax, "spawn.amplitude_min exceeds amplitude_max")
	check(s.OscFrequencyMin <= s.OscFrequencyMax, "spawn.osc_frequency_min exceeds osc_frequency_max")
	check(s.LaneMargin < w.RoadWidth, "spawn.lane_margin must be narrower than the road")
	check(s.TreesMin <= s.TreesMax, "spawn.trees_min exceeds trees_max")
	check(s.TreeScaleMin <= s.TreeScaleMax, "spawn.tree_scale_min exceeds tree_scale_max")
	check(w.GrassWidth/2-s.TreeGrassMargin >= 0, "spawn.tree_grass_margin leaves no room for trees")
	check(s.BannerWidthMin <= s.BannerWidthMax, "spawn.banner_width_min exceeds banner_width_max")
	check(s.BannerHeightMin <= s.BannerHeightMax, "spawn.banner_height_min exceeds banner_height_max")
	check(s.CloudDriftMin <= s.CloudDriftMax, "spawn.cloud_drift_min exceeds cloud_drift_max")
	check(s.CloudScaleMin <= s.CloudScaleMax, "spawn.cloud_scale_min exceeds cloud_scale_max")

	check(t.Store.Driver == "json" || t.Store.Driver == "sqlite", "store.driver must be json or sqlite, got %q", t.Store.Driver)
	for _, a := range t.Assets {
		if _, err := scene.ParseKind(a.Kind); err != nil {
			errs = append(errs, fmt.Errorf("assets: %w", err))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Manifest converts the asset list for the loader.
func (t Tuning) Manifest() ([]assets.Entry, error) {
	out := make([]assets.Entry, 0, len(t.Assets))
	for _, a := range t.Assets {
		kind, err := scene.ParseKind(a.Kind)
		if err != nil {
			return nil, err
		}
		out = append(out, assets.Entry{Kind: kind, Model: a.Model, Paths: append([]string(nil), a.Paths...)})
	}
	return out, nil
}
