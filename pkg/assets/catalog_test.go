package assets

import (
	"context"
	"errors"
	"image"
	"sync/atomic"
	"testing"

	"github.com/zeromvx/irys3drace/pkg/scene"
)

type fakeLoader struct {
	fail  map[string]bool
	calls atomic.Int32
}

func (f *fakeLoader) load(path string) (image.Image, error) {
	f.calls.Add(1)
	if f.fail[path] {
		return nil, errors.New("boom")
	}
	return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
}

func (f *fakeLoader) LoadModel(_ context.Context, path string) (image.Image, error) {
	return f.load(path)
}

func (f *fakeLoader) LoadTexture(_ context.Context, path string) (image.Image, error) {
	return f.load(path)
}

func TestLoadIndependentFailures(t *testing.T) {
	loader := &fakeLoader{fail: map[string]bool{
		"coin.png":    true,
		"banner2.png": true,
	}}
	manifest := []Entry{
		{Kind: scene.KindCoin, Model: true, Paths: []string{"coin.png"}},
		{Kind: scene.KindBanner, Paths: []string{"banner1.png", "banner2.png", "banner3.png"}},
		{Kind: scene.KindCloud, Paths: []string{"cloud.png"}},
	}

	c := NewCatalog()
	if c.Ready(scene.KindCloud) {
		t.Fatal("kind ready before load")
	}
	if err := c.Load(context.Background(), loader, manifest); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := c.State(scene.KindCoin); got != Failed {
		t.Errorf("coin state = %v, want failed", got)
	}
	if len(c.Errors(scene.KindCoin)) != 1 {
		t.Errorf("coin errors = %v", c.Errors(scene.KindCoin))
	}
	if !c.Ready(scene.KindBanner) || c.Variants(scene.KindBanner) != 2 {
		t.Errorf("banner ready=%v variants=%d, want 2 variants", c.Ready(scene.KindBanner), c.Variants(scene.KindBanner))
	}
	if !c.Ready(scene.KindCloud) {
		t.Error("cloud not ready")
	}
	if c.State(scene.KindTree) != Pending {
		t.Error("unlisted kind should stay pending")
	}
	if got := loader.calls.Load(); got != 5 {
		t.Errorf("loader calls = %d, want 5", got)
	}
}

func TestLoadAsync(t *testing.T) {
	c := NewCatalog()
	done := c.LoadAsync(context.Background(), &fakeLoader{}, []Entry{
		{Kind: scene.KindObstacle, Paths: []string{"irys.png"}},
	})
	if err := <-done; err != nil {
		t.Fatalf("LoadAsync error = %v", err)
	}
	if _, open := <-done; open {
		t.Fatal("future channel not closed")
	}
	if _, ok := c.Prototype(scene.KindObstacle, 3); !ok {
		t.Fatal("Prototype missing after load")
	}
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCatalog()
	err := c.Load(ctx, &fakeLoader{}, []Entry{{Kind: scene.KindCoin, Paths: []string{"coin.png"}}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Load() error = %v, want context.Canceled", err)
	}
	if c.Ready(scene.KindCoin) {
		t.Fatal("coin ready after cancelled load")
	}
}

func TestRegister(t *testing.T) {
	c := NewCatalog()
	c.Register(scene.KindTree, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if !c.Ready(scene.KindTree) {
		t.Fatal("registered kind not ready")
	}
	c.Register(scene.KindCoin)
	if c.State(scene.KindCoin) != Failed {
		t.Fatal("registering no prototypes should mark the kind failed")
	}
}
