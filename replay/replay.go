// Package replay records the inputs of a run so it can be played back. A
// recording is one zstd-compressed JSON Lines file: a header line followed
// by one line per simulated tick.
package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/zeromvx/irys3drace/pkg/vehicle"
)

// Version is bumped whenever the frame format changes.
const Version = 1

var ErrClosed = errors.New("replay: recorder closed")

// Header describes the run a recording belongs to.
type Header struct {
	Version   int       `json:"version"`
	Seed      int64     `json:"seed"`
	Car       int       `json:"car"`
	CreatedAt time.Time `json:"created_at"`
}

// Frame is the input for one simulated tick.
type Frame struct {
	Tick  uint64  `json:"tick"`
	DT    float64 `json:"dt"`
	Left  bool    `json:"left,omitempty"`
	Right bool    `json:"right,omitempty"`
	Up    bool    `json:"up,omitempty"`
}

func NewFrame(tick uint64, dt float64, in vehicle.Input) Frame {
	return Frame{Tick: tick, DT: dt, Left: in.Left, Right: in.Right, Up: in.Up}
}

func (f Frame) Input() vehicle.Input {
	return vehicle.Input{Left: f.Left, Right: f.Right, Up: f.Up}
}

// Recorder streams frames to disk.
type Recorder struct {
	mu   sync.Mutex
	path string
	f    *os.File
	enc  *zstd.Encoder
	w    *bufio.Writer
}

// Create opens a new recording under dir named after the creation time.
// clock may be nil.
func Create(dir string, h Header, clock func() time.Time) (*Recorder, error) {
	if dir == "" {
		return nil, fmt.Errorf("replay dir must be provided")
	}
	if clock == nil {
		clock = time.Now
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	created := clock().UTC()
	h.Version = Version
	h.CreatedAt = created
	path := filepath.Join(dir, fmt.Sprintf("run-%s.jsonl.zst", created.Format("20060102T150405.000Z")))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r := &Recorder{path: path, f: f, enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}
	if err := r.writeLine(h); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("write replay header: %w", err)
	}
	return r, nil
}

func (r *Recorder) Path() string { return r.path }

// Record appends one frame. Frames are buffered until Close.
func (r *Recorder) Record(f Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.w == nil {
		return ErrClosed
	}
	return r.writeLine(f)
}

func (r *Recorder) writeLine(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	return r.w.WriteByte('\n')
}

// Close flushes and closes the file. Closing twice is a no-op.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.w == nil {
		return nil
	}
	err := r.w.Flush()
	if cerr := r.enc.Close(); err == nil {
		err = cerr
	}
	if cerr := r.f.Close(); err == nil {
		err = cerr
	}
	r.w, r.enc, r.f = nil, nil, nil
	return err
}

// Open reads a whole recording back.
func Open(path string) (Header, []Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return Header{}, nil, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var h Header
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return Header{}, nil, fmt.Errorf("read %s: %w", path, err)
		}
		return Header{}, nil, fmt.Errorf("read %s: missing header", path)
	}
	if err := json.Unmarshal(sc.Bytes(), &h); err != nil {
		return Header{}, nil, fmt.Errorf("parse header: %w", err)
	}
	if h.Version != Version {
		return Header{}, nil, fmt.Errorf("unsupported replay version %d", h.Version)
	}

	var frames []Frame
	for sc.Scan() {
		var fr Frame
		if err := json.Unmarshal(sc.Bytes(), &fr); err != nil {
			return Header{}, nil, fmt.Errorf("parse frame %d: %w", len(frames), err)
		}
		frames = append(frames, fr)
	}
	if err := sc.Err(); err != nil {
		return Header{}, nil, fmt.Errorf("read %s: %w", path, err)
	}
	return h, frames, nil
}
