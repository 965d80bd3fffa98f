package replay

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zeromvx/irys3drace/pkg/vehicle"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rec, err := Create(dir, Header{Seed: 42, Car: 2}, fixedClock)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasSuffix(rec.Path(), ".jsonl.zst") || filepath.Dir(rec.Path()) != dir {
		t.Fatalf("path = %s", rec.Path())
	}

	inputs := []vehicle.Input{{}, {Left: true}, {Right: true, Up: true}, {Up: true}}
	for i, in := range inputs {
		if err := rec.Record(NewFrame(uint64(i+1), 1.0/60, in)); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if err := rec.Record(Frame{}); !errors.Is(err, ErrClosed) {
		t.Fatalf("record after close = %v", err)
	}

	h, frames, err := Open(rec.Path())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if h.Seed != 42 || h.Car != 2 || h.Version != Version || !h.CreatedAt.Equal(fixedClock()) {
		t.Fatalf("header = %+v", h)
	}
	if len(frames) != len(inputs) {
		t.Fatalf("frames = %d", len(frames))
	}
	for i, fr := range frames {
		if fr.Tick != uint64(i+1) || fr.DT != 1.0/60 || fr.Input() != inputs[i] {
			t.Fatalf("frame %d = %+v", i, fr)
		}
	}
}

func TestCreateNeedsDir(t *testing.T) {
	if _, err := Create("", Header{}, nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenMissing(t *testing.T) {
	if _, _, err := Open(filepath.Join(t.TempDir(), "nope.jsonl.zst")); err == nil {
		t.Fatalf("expected error")
	}
}
