// Package road streams the endless road: a sliding window of fixed-length
// segments that grows ahead of the car and drops segments far behind it.
package road

import (
	"github.com/zeromvx/irys3drace/config"
	"github.com/zeromvx/irys3drace/pkg/geom"
	"github.com/zeromvx/irys3drace/pkg/scene"
)

// Segment is one slice of road plus the grass beside it.
type Segment struct {
	LateralOffset float64 // X of the road centerline
	ZStart        float64 // world Z where this segment starts
	ZEnd          float64 // world Z where this segment ends (exclusive)

	Road  scene.Handle
	Grass scene.Handle
}

// Center is the middle of the segment on the ground plane.
func (s Segment) Center() geom.Vec3 {
	return geom.V(s.LateralOffset, 0, (s.ZStart+s.ZEnd)/2)
}

// Streamer owns the segment window. Segments are ordered by ZStart and
// contiguous: Segments[i].ZEnd == Segments[i+1].ZStart.
type Streamer struct {
	scene    scene.Scene
	cfg      config.World
	segments []Segment
}

// New creates a streamer that lays segments into sc
func New(sc scene.Scene, cfg config.World) *Streamer {
	return &Streamer{
		scene:    sc,
		cfg:      cfg,
		segments: make([]Segment, 0, cfg.SegmentsCount*2),
	}
}

// Reset destroys every segment and lays down SegmentsCount fresh ones
// starting at z 0. It returns the new segments in order.
func (r *Streamer) Reset() []Segment {
	r.Clear()
	for i := 0; i < r.cfg.SegmentsCount; i++ {
		r.add(float64(i) * r.cfg.SegmentLength)
	}
	return r.Segments()
}

// ExtendIfNeeded appends at most one segment when the car has come within
// half a window of the last one, then retires the oldest segment if the
// window went over its high-water mark. It reports the appended segment.
func (r *Streamer) ExtendIfNeeded(vehicleZ float64) (Segment, bool) {
	last, ok := r.Last()
	if !ok {
		return Segment{}, false
	}
	if vehicleZ <= last.ZStart-float64(r.cfg.SegmentsCount)*r.cfg.SegmentLength/2 {
		return Segment{}, false
	}

	seg := r.add(last.ZEnd)
	if float64(len(r.segments)) > float64(r.cfg.SegmentsCount)*r.cfg.RetireFactor {
		r.retireOldest()
	}
	return seg, true
}

// SegmentAt returns the segment whose [ZStart, ZEnd) contains z.
func (r *Streamer) SegmentAt(z float64) (Segment, bool) {
	for _, s := range r.segments {
		if z >= s.ZStart && z < s.ZEnd {
			return s, true
		}
	}
	return Segment{}, false
}

// Last returns the newest segment.
func (r *Streamer) Last() (Segment, bool) {
	if len(r.segments) == 0 {
		return Segment{}, false
	}
	return r.segments[len(r.segments)-1], true
}

// Segments returns a copy of the window, oldest first.
func (r *Streamer) Segments() []Segment {
	return append([]Segment(nil), r.segments...)
}

func (r *Streamer) Len() int {
	return len(r.segments)
}

// Clear destroys every segment's presentation and empties the window.
func (r *Streamer) Clear() {
	for _, s := range r.segments {
		r.destroy(s)
	}
	r.segments = r.segments[:0]
}

func (r *Streamer) add(zStart float64) Segment {
	seg := Segment{
		ZStart: zStart,
		ZEnd:   zStart + r.cfg.SegmentLength,
	}
	center := seg.Center()
	seg.Road = r.scene.Create(scene.KindRoad, 0,
		geom.V(r.cfg.RoadWidth, 0.02, r.cfg.SegmentLength),
		scene.At(center.Add(geom.V(0, 0.01, 0))))
	seg.Grass = r.scene.Create(scene.KindGrass, 0,
		geom.V(r.cfg.GrassWidth, 0.02, r.cfg.SegmentLength),
		scene.At(center))
	r.segments = append(r.segments, seg)
	return seg
}

func (r *Streamer) retireOldest() {
	r.destroy(r.segments[0])
	n := copy(r.segments, r.segments[1:])
	r.segments[n] = Segment{}
	r.segments = r.segments[:n]
}

func (r *Streamer) destroy(s Segment) {
	r.scene.Destroy(s.Road)
	r.scene.Destroy(s.Grass)
}
