package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/zeromvx/irys3drace/pkg/scene"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestLoadShippedFile(t *testing.T) {
	got, err := Load(filepath.Join("..", "configs", "tuning.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Default()
	if got.World != want.World {
		t.Fatalf("world = %+v, want %+v", got.World, want.World)
	}
	if math.Abs(got.Vehicle.MaxYaw-math.Pi/16) > 1e-12 {
		t.Fatalf("max yaw = %v", got.Vehicle.MaxYaw)
	}
	if got.Spawn.ObstacleCooldown != 500*time.Millisecond {
		t.Fatalf("cooldown = %v", got.Spawn.ObstacleCooldown)
	}
	if len(got.Assets) != 5 {
		t.Fatalf("assets = %d entries, want 5", len(got.Assets))
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	got, err := Parse([]byte(`
seed: 42
world:
  segments_count: 8
spawn:
  obstacle_cooldown: 1s
  cooldown_clock: wall
store:
  driver: sqlite
  path: scores.db
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Seed != 42 || got.World.SegmentsCount != 8 {
		t.Fatalf("overrides not applied: %+v", got)
	}
	if got.World.RoadWidth != 20 || got.World.SegmentLength != 50 {
		t.Fatalf("untouched keys lost their defaults: %+v", got.World)
	}
	if got.Spawn.ObstacleCooldown != time.Second || got.Spawn.CooldownClock != "wall" {
		t.Fatalf("spawn = %+v", got.Spawn)
	}
	if got.Store.Driver != "sqlite" || got.Store.Path != "scores.db" {
		t.Fatalf("store = %+v", got.Store)
	}
}

func TestParseConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			got, err := Parse([]byte(fmt.Sprintf("seed: %d\n", seed+1)))
			if err == nil && got.Seed != int64(seed+1) {
				err = fmt.Errorf("seed %d parsed as %d", seed+1, got.Seed)
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
	}
}

func TestParseEmptyDocument(t *testing.T) {
	got, err := Parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.World != Default().World {
		t.Fatalf("empty document changed defaults")
	}
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "world:\n  lanes: 3\n",
		"negative width":    "world:\n  road_width: -1\n",
		"bad probability":   "spawn:\n  banner_chance: 1.5\n",
		"fractional count":  "spawn:\n  obstacle_target: 2.5\n",
		"bad clock":         "spawn:\n  cooldown_clock: atomic\n",
		"bad driver":        "store:\n  driver: redis\n",
		"bad duration":      "spawn:\n  obstacle_cooldown: soon\n",
		"bad asset kind":    "assets:\n  - kind: plane\n    paths: [a.png]\n",
		"inverted trees":    "spawn:\n  trees_min: 9\n  trees_max: 3\n",
		"grass under road":  "world:\n  grass_width: 10\n",
		"too few segments":  "world:\n  segments_count: 1\n",
		"threshold too big": "vehicle:\n  turbo_threshold: 150\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("world: [")); err == nil {
		t.Fatalf("expected syntax error")
	}
}

func TestManifest(t *testing.T) {
	m, err := Default().Manifest()
	if err != nil {
		t.Fatalf("manifest: %v", err)
	}
	kinds := map[scene.Kind]int{}
	for _, e := range m {
		kinds[e.Kind] = len(e.Paths)
	}
	if kinds[scene.KindBanner] != 3 || kinds[scene.KindObstacle] != 1 {
		t.Fatalf("kinds = %v", kinds)
	}
}
