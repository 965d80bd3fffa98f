// Package assets tracks which entity prototypes are available. Loading is
// asynchronous and each asset may fail on its own; a kind without a prototype
// simply cannot be spawned.
package assets

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/zeromvx/irys3drace/pkg/scene"
)

// State is the load state of one entity kind.
type State int

const (
	Pending State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// Loader fetches prototypes. Implementations decide what a path means.
type Loader interface {
	LoadModel(ctx context.Context, path string) (image.Image, error)
	LoadTexture(ctx context.Context, path string) (image.Image, error)
}

// Entry lists the files backing one kind. Each path is one variant.
type Entry struct {
	Kind  scene.Kind
	Model bool
	Paths []string
}

// maxParallelLoads bounds concurrent loader calls.
const maxParallelLoads = 4

type slot struct {
	state    State
	variants []image.Image
	errs     []error
}

// Catalog is safe for concurrent use: loads write from worker goroutines
// while the game loop reads.
type Catalog struct {
	mu    sync.RWMutex
	slots map[scene.Kind]*slot
}

func NewCatalog() *Catalog {
	return &Catalog{slots: make(map[scene.Kind]*slot)}
}

// Register marks kind ready with the given prototypes, bypassing the loader.
func (c *Catalog) Register(kind scene.Kind, variants ...image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := &slot{state: Failed}
	for _, v := range variants {
		if v != nil {
			s.variants = append(s.variants, v)
		}
	}
	if len(s.variants) > 0 {
		s.state = Ready
	}
	c.slots[kind] = s
}

// State returns the load state of kind. Unknown kinds are pending.
func (c *Catalog) State(kind scene.Kind) State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if s, ok := c.slots[kind]; ok {
		return s.state
	}
	return Pending
}

// Ready reports whether at least one prototype of kind is loaded.
func (c *Catalog) Ready(kind scene.Kind) bool {
	return c.State(kind) == Ready
}

// Variants is the number of loaded prototypes for kind.
func (c *Catalog) Variants(kind scene.Kind) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if s, ok := c.slots[kind]; ok {
		return len(s.variants)
	}
	return 0
}

// Prototype returns the loaded image for kind. Out of range variants wrap.
func (c *Catalog) Prototype(kind scene.Kind, variant int) (image.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.slots[kind]
	if !ok || len(s.variants) == 0 {
		return nil, false
	}
	if variant < 0 {
		variant = -variant
	}
	return s.variants[variant%len(s.variants)], true
}

// Errors returns the load errors recorded for kind.
func (c *Catalog) Errors(kind scene.Kind) []error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if s, ok := c.slots[kind]; ok {
		return append([]error(nil), s.errs...)
	}
	return nil
}

// Load fetches every entry and blocks until all loads finished. A failed path
// is logged and leaves its variant out; a kind with no successful variant
// ends up Failed for the rest of the session. Only context cancellation is
// returned as an error.
func (c *Catalog) Load(ctx context.Context, loader Loader, manifest []Entry) error {
	type result struct {
		imgs []image.Image
		errs []error
	}
	results := make([]result, len(manifest))
	for i, e := range manifest {
		results[i] = result{
			imgs: make([]image.Image, len(e.Paths)),
			errs: make([]error, len(e.Paths)),
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, e := range manifest {
		for j, path := range e.Paths {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				var (
					img image.Image
					err error
				)
				if e.Model {
					img, err = loader.LoadModel(gctx, path)
				} else {
					img, err = loader.LoadTexture(gctx, path)
				}
				if err == nil && img == nil {
					err = fmt.Errorf("loader returned no image")
				}
				if err != nil {
					log.Printf("Warning: could not load %s asset %q: %v", e.Kind, path, err)
					results[i].errs[j] = fmt.Errorf("%s: %w", path, err)
					return nil
				}
				results[i].imgs[j] = img
				return nil
			})
		}
	}
	waitErr := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range manifest {
		s := &slot{state: Failed}
		for j := range e.Paths {
			if img := results[i].imgs[j]; img != nil {
				s.variants = append(s.variants, img)
			}
			if err := results[i].errs[j]; err != nil {
				s.errs = append(s.errs, err)
			}
		}
		if len(s.variants) > 0 {
			s.state = Ready
		}
		if waitErr != nil && s.state != Ready {
			// interrupted before this kind finished; leave it retryable
			s.state = Pending
		}
		c.slots[e.Kind] = s
	}
	return waitErr
}

// LoadAsync starts Load in the background. The returned channel yields the
// result exactly once and is then closed.
func (c *Catalog) LoadAsync(ctx context.Context, loader Loader, manifest []Entry) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- c.Load(ctx, loader, manifest)
	}()
	return done
}
