package road

import (
	"testing"

	"github.com/zeromvx/irys3drace/config"
	"github.com/zeromvx/irys3drace/pkg/scene"
)

func newStreamer() (*Streamer, *scene.Graph) {
	g := scene.NewGraph()
	return New(g, config.Default().World), g
}

func checkContiguous(t *testing.T, segs []Segment) {
	t.Helper()
	for i := 0; i+1 < len(segs); i++ {
		if segs[i].ZEnd != segs[i+1].ZStart {
			t.Fatalf("gap between segment %d (end %v) and %d (start %v)", i, segs[i].ZEnd, i+1, segs[i+1].ZStart)
		}
	}
}

func TestReset(t *testing.T) {
	r, g := newStreamer()
	segs := r.Reset()
	if len(segs) != 20 {
		t.Fatalf("len = %d, want 20", len(segs))
	}
	for i, s := range segs {
		if s.ZStart != float64(i)*50 || s.ZEnd != float64(i+1)*50 {
			t.Fatalf("segment %d = [%v, %v)", i, s.ZStart, s.ZEnd)
		}
	}
	if g.Count(scene.KindRoad) != 20 || g.Count(scene.KindGrass) != 20 {
		t.Fatalf("proxies: road %d grass %d", g.Count(scene.KindRoad), g.Count(scene.KindGrass))
	}

	// A second reset must not leak proxies.
	r.Reset()
	if g.Len() != 40 {
		t.Fatalf("proxies after second reset = %d, want 40", g.Len())
	}
}

func TestExtendThreshold(t *testing.T) {
	r, _ := newStreamer()
	r.Reset()
	// Last segment starts at 950; the threshold is 950 - 20*50/2 = 450.
	if _, ok := r.ExtendIfNeeded(450); ok {
		t.Fatalf("extended at the threshold")
	}
	seg, ok := r.ExtendIfNeeded(450.5)
	if !ok {
		t.Fatalf("did not extend past the threshold")
	}
	if seg.ZStart != 1000 || seg.ZEnd != 1050 {
		t.Fatalf("new segment = [%v, %v)", seg.ZStart, seg.ZEnd)
	}
	if r.Len() != 21 {
		t.Fatalf("len = %d", r.Len())
	}
}

func TestStreamingKeepsWindowBounded(t *testing.T) {
	r, g := newStreamer()
	r.Reset()
	z := 0.0
	for tick := 0; tick < 20000; tick++ {
		z += 2.5
		r.ExtendIfNeeded(z)
		n := r.Len()
		if n < 20 || n > 30 {
			t.Fatalf("tick %d: window length %d outside [20, 30]", tick, n)
		}
		if g.Count(scene.KindRoad) != n {
			t.Fatalf("tick %d: %d road proxies for %d segments", tick, g.Count(scene.KindRoad), n)
		}
	}
	checkContiguous(t, r.Segments())
	last, _ := r.Last()
	if last.ZStart < z {
		t.Fatalf("road fell behind the car: last start %v, car %v", last.ZStart, z)
	}
}

func TestSegmentAt(t *testing.T) {
	r, _ := newStreamer()
	r.Reset()
	s, ok := r.SegmentAt(50)
	if !ok || s.ZStart != 50 {
		t.Fatalf("SegmentAt(50) = %+v, %v", s, ok)
	}
	s, ok = r.SegmentAt(99.999)
	if !ok || s.ZStart != 50 {
		t.Fatalf("SegmentAt(99.999) = %+v, %v", s, ok)
	}
	if _, ok := r.SegmentAt(-1); ok {
		t.Fatalf("found a segment behind the road")
	}
	if _, ok := r.SegmentAt(1000); ok {
		t.Fatalf("found a segment past the end")
	}
}

func TestClear(t *testing.T) {
	r, g := newStreamer()
	r.Reset()
	r.Clear()
	if r.Len() != 0 || g.Len() != 0 {
		t.Fatalf("clear left %d segments and %d proxies", r.Len(), g.Len())
	}
	if _, ok := r.ExtendIfNeeded(1e9); ok {
		t.Fatalf("extended an empty road")
	}
}
