package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/zeromvx/irys3drace/pkg/background"
)

// GenPrefix marks a path drawn by the procedural generator.
const GenPrefix = "gen:"

// DiskLoader reads png, jpeg and webp files below Root and draws "gen:"
// paths with Gen. Models and textures are both flat sprites.
type DiskLoader struct {
	Root string
	Gen  *background.Generator
}

func NewDiskLoader(root string, gen *background.Generator) *DiskLoader {
	return &DiskLoader{Root: root, Gen: gen}
}

func (l *DiskLoader) LoadModel(ctx context.Context, path string) (image.Image, error) {
	return l.load(ctx, path)
}

func (l *DiskLoader) LoadTexture(ctx context.Context, path string) (image.Image, error) {
	return l.load(ctx, path)
}

func (l *DiskLoader) load(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name, ok := strings.CutPrefix(path, GenPrefix); ok {
		if l.Gen == nil {
			return nil, fmt.Errorf("no generator for %q", path)
		}
		return l.Gen.Generate(name)
	}

	full := path
	if !filepath.IsAbs(full) && l.Root != "" {
		full = filepath.Join(l.Root, full)
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode asset %s: %w", full, err)
	}
	return img, nil
}
