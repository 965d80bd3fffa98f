package scene

import (
	"math"
	"testing"

	"github.com/zeromvx/irys3drace/pkg/geom"
)

func TestGraphLifecycle(t *testing.T) {
	g := NewGraph()
	h := g.Create(KindCoin, 0, geom.V(1, 1, 1), At(geom.V(0, 0, 10)))
	if h == 0 {
		t.Fatal("Create returned zero handle")
	}

	g.SetVisible(h, false)
	p, ok := g.Get(h)
	if !ok || p.Visible {
		t.Fatalf("proxy = %+v, %v", p, ok)
	}

	visited := 0
	g.Visit(KindCoin, func(Handle, Proxy) { visited++ })
	if visited != 0 {
		t.Fatalf("Visit saw %d hidden proxies", visited)
	}

	g.Destroy(h)
	if g.Len() != 0 {
		t.Fatalf("Len() = %d after Destroy", g.Len())
	}
	if !g.Bounds(h).IsEmpty() {
		t.Fatal("destroyed handle should have empty bounds")
	}
}

func TestBoundsYaw(t *testing.T) {
	p := Proxy{
		Size:      geom.V(2, 1, 6),
		Transform: Transform{Position: geom.V(0, 0, 0), Yaw: math.Pi / 2, Scale: 1},
	}
	size := p.Bounds().Size()
	if math.Abs(size.X-6) > 1e-9 || math.Abs(size.Z-2) > 1e-9 {
		t.Fatalf("rotated size = %+v, want x=6 z=2", size)
	}

	p.Transform.Yaw = math.Pi
	p.Transform.Scale = 2
	size = p.Bounds().Size()
	if math.Abs(size.X-4) > 1e-9 || math.Abs(size.Z-12) > 1e-9 {
		t.Fatalf("half-turn scaled size = %+v", size)
	}
}

func TestParseKind(t *testing.T) {
	for k := KindRoad; k <= KindCloud; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("spaceship"); err == nil {
		t.Error("ParseKind accepted unknown kind")
	}
}
