package ui

import (
	"image"
	"testing"

	"github.com/zeromvx/irys3drace/pkg/vehicle"
)

func TestMeterColor(t *testing.T) {
	high, mid, low := MeterColor(vehicle.BandHigh), MeterColor(vehicle.BandMid), MeterColor(vehicle.BandLow)
	if high.G <= high.R {
		t.Errorf("high band should be green, got %v", high)
	}
	if mid.R < 200 || mid.G < 200 {
		t.Errorf("mid band should be yellow, got %v", mid)
	}
	if low.R <= low.G {
		t.Errorf("low band should be red, got %v", low)
	}
}

func TestTouchButtons(t *testing.T) {
	screen := image.Rect(0, 0, ScreenWidth, ScreenHeight)
	l, r, turbo := TouchButtons()
	for _, b := range []image.Rectangle{l, r, turbo} {
		if !b.In(screen) {
			t.Fatalf("button %v outside the screen", b)
		}
	}
	if l.Overlaps(r) || r.Overlaps(turbo) || l.Overlaps(turbo) {
		t.Fatalf("buttons overlap: %v %v %v", l, r, turbo)
	}
	if l.Min.X >= r.Min.X {
		t.Fatal("left button should sit left of the right button")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := menu{options: []string{"Start", "Select Car"}, top: 300}
	m.move(-1)
	if m.selected != 1 {
		t.Fatalf("move(-1) from 0 = %d, want wrap to 1", m.selected)
	}
	m.move(1)
	if m.selected != 0 {
		t.Fatalf("move(1) = %d", m.selected)
	}

	second := m.button(1)
	if got := m.hit(second.Min.Add(image.Pt(5, 5))); got != 1 {
		t.Fatalf("hit inside second button = %d", got)
	}
	if got := m.hit(image.Pt(0, 0)); got != -1 {
		t.Fatalf("hit outside = %d", got)
	}
	if m.button(0).Overlaps(m.button(1)) {
		t.Fatal("buttons overlap")
	}
}

func TestClamp01(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{{-1, 0}, {0.3, 0.3}, {2, 1}} {
		if got := clamp01(tc.in); got != tc.want {
			t.Errorf("clamp01(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
