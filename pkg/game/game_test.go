package game

import (
	"image"
	"math"
	"testing"

	"github.com/zeromvx/irys3drace/pkg/ui"
	"github.com/zeromvx/irys3drace/pkg/vehicle"
)

func TestCameraToScreen(t *testing.T) {
	c := NewCamera(1024, 600)
	c.Snap(0, 0)

	sx, sy := c.ToScreen(0, 0)
	if sx != 512 || sy != 300 {
		t.Fatalf("origin at (%v, %v), want screen centre", sx, sy)
	}
	// ahead is up, +X is left
	if _, sy := c.ToScreen(0, 10); sy >= 300 {
		t.Errorf("z ahead drawn at y %v, want above centre", sy)
	}
	if sx, _ := c.ToScreen(5, 0); sx >= 512 {
		t.Errorf("+x drawn at x %v, want left of centre", sx)
	}

	if !c.Visible(0, 0, 1) {
		t.Error("centre should be visible")
	}
	if c.Visible(0, 1000, 1) {
		t.Error("far ahead should be culled")
	}
	if !c.Visible(0, 300/pixelsPerUnit+5, 10) {
		t.Error("large sprite overlapping the top edge should be visible")
	}
}

func TestCameraFollow(t *testing.T) {
	c := NewCamera(1024, 600)
	for i := 0; i < 200; i++ {
		c.Follow(8, 100)
	}
	if math.Abs(c.X-8) > 1e-6 {
		t.Errorf("camera x = %v, want eased onto 8", c.X)
	}
	if c.Z != 100+lookAhead {
		t.Errorf("camera z = %v, want %v", c.Z, 100+lookAhead)
	}

	c.Snap(0, 0)
	c.Follow(10, 0)
	if c.X <= 0 || c.X >= 10 {
		t.Errorf("one step should move part way, got %v", c.X)
	}
}

func TestCameraFlyoverWraps(t *testing.T) {
	c := NewCamera(1024, 600)
	c.Snap(20, flyoverEnd-2)
	c.Flyover()
	if c.Z <= flyoverEnd-2 {
		t.Fatalf("flyover should move forward, z = %v", c.Z)
	}
	c.Flyover()
	if c.Z != lookAhead {
		t.Fatalf("flyover should wrap to %v, got %v", lookAhead, c.Z)
	}
	if c.X >= 20 {
		t.Fatalf("flyover should ease back to the road centre, x = %v", c.X)
	}
}

func TestTouchInput(t *testing.T) {
	left, right, turbo := ui.TouchButtons()
	centre := func(r image.Rectangle) image.Point {
		return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
	}

	cases := []struct {
		name   string
		points []image.Point
		want   vehicle.Input
	}{
		{"none", nil, vehicle.Input{}},
		{"left", []image.Point{centre(left)}, vehicle.Input{Left: true}},
		{"right and turbo", []image.Point{centre(right), centre(turbo)}, vehicle.Input{Right: true, Up: true}},
		{"outside buttons", []image.Point{{X: 500, Y: 100}}, vehicle.Input{}},
	}
	for _, tc := range cases {
		if got := touchInput(tc.points); got != tc.want {
			t.Errorf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestMerge(t *testing.T) {
	got := merge(vehicle.Input{Left: true}, vehicle.Input{Up: true})
	if got != (vehicle.Input{Left: true, Up: true}) {
		t.Fatalf("merge = %+v", got)
	}
}
