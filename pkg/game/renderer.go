package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zeromvx/irys3drace/models"
	"github.com/zeromvx/irys3drace/pkg/assets"
	"github.com/zeromvx/irys3drace/pkg/scene"
)

var (
	groundColor  = color.RGBA{30, 80, 30, 255}
	asphaltColor = color.RGBA{0x33, 0x33, 0x33, 255}
	lineColor    = color.RGBA{255, 255, 255, 255}
	flameOuter   = color.RGBA{255, 120, 0, 230}
	flameInner   = color.RGBA{255, 230, 80, 255}
)

// Road markings in world units.
const (
	edgeLineWidth = 0.2
	dashLength    = 3.0
	dashGap       = 3.0
)

// drawOrder is back to front. Clouds float above everything.
var drawOrder = []scene.Kind{
	scene.KindCoin,
	scene.KindObstacle,
	scene.KindBanner,
	scene.KindTree,
	scene.KindVehicle,
	scene.KindCloud,
}

type spriteKey struct {
	kind    scene.Kind
	variant int
}

// Renderer draws the scene graph from above.
type Renderer struct {
	graph   *scene.Graph
	catalog *assets.Catalog
	camera  Camera

	sprites map[spriteKey]*ebiten.Image
	grass   *ebiten.Image
	pixel   *ebiten.Image
	frame   int
}

// NewRenderer takes an optional grass tile; without one grass is flat.
func NewRenderer(graph *scene.Graph, catalog *assets.Catalog, grass image.Image) *Renderer {
	r := &Renderer{
		graph:   graph,
		catalog: catalog,
		camera:  NewCamera(screenWidth, screenHeight),
		sprites: make(map[spriteKey]*ebiten.Image),
	}
	if grass != nil {
		r.grass = ebiten.NewImageFromImage(grass)
	}
	r.camera.Snap(0, lookAhead)
	return r
}

func (r *Renderer) Draw(screen *ebiten.Image, gs *models.GameState) {
	r.frame++
	if gs.VehicleHandle != 0 {
		r.camera.Follow(gs.Vehicle.X, gs.Vehicle.Z)
	} else {
		r.camera.Flyover()
	}
	screen.Fill(groundColor)

	r.graph.Visit(scene.KindGrass, func(_ scene.Handle, p scene.Proxy) { r.drawGrass(screen, p) })
	r.graph.Visit(scene.KindRoad, func(_ scene.Handle, p scene.Proxy) { r.drawRoad(screen, p) })

	for _, kind := range drawOrder {
		if kind == scene.KindVehicle && gs.Vehicle.TurboActive && gs.VehicleHandle != 0 {
			r.drawFlame(screen, gs)
		}
		r.graph.Visit(kind, func(_ scene.Handle, p scene.Proxy) { r.drawProxy(screen, p) })
	}
}

// rect fills a world-space rectangle given by its centre and size.
func (r *Renderer) rect(screen *ebiten.Image, x, z, w, d float64, c color.Color) {
	if r.pixel == nil {
		r.pixel = ebiten.NewImage(1, 1)
		r.pixel.Fill(color.White)
	}
	// +X is screen left, so the left screen edge is the larger x
	sx, sy := r.camera.ToScreen(x+w/2, z+d/2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w*r.camera.Scale, d*r.camera.Scale)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(r.pixel, op)
}

func (r *Renderer) drawGrass(screen *ebiten.Image, p scene.Proxy) {
	pos := p.Transform.Position
	if !r.camera.Visible(pos.X, pos.Z, math.Max(p.Size.X, p.Size.Z)) {
		return
	}
	if r.grass == nil {
		r.rect(screen, pos.X, pos.Z, p.Size.X, p.Size.Z, color.RGBA{0x3a, 0x5f, 0x0b, 255})
		return
	}
	b := r.grass.Bounds()
	sx, sy := r.camera.ToScreen(pos.X+p.Size.X/2, pos.Z+p.Size.Z/2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.Size.X*r.camera.Scale/float64(b.Dx()), p.Size.Z*r.camera.Scale/float64(b.Dy()))
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(r.grass, op)
}

func (r *Renderer) drawRoad(screen *ebiten.Image, p scene.Proxy) {
	pos := p.Transform.Position
	if !r.camera.Visible(pos.X, pos.Z, math.Max(p.Size.X, p.Size.Z)) {
		return
	}
	w, length := p.Size.X, p.Size.Z
	r.rect(screen, pos.X, pos.Z, w, length, asphaltColor)
	r.rect(screen, pos.X-w/2, pos.Z, edgeLineWidth, length, lineColor)
	r.rect(screen, pos.X+w/2, pos.Z, edgeLineWidth, length, lineColor)

	// Dashes are laid in world space so they scroll with the road.
	start := pos.Z - length/2
	for z := start; z < start+length; z += dashLength + dashGap {
		d := math.Min(dashLength, start+length-z)
		r.rect(screen, pos.X, z+d/2, edgeLineWidth, d, lineColor)
	}
}

func (r *Renderer) sprite(kind scene.Kind, variant int) *ebiten.Image {
	key := spriteKey{kind, variant}
	if img, ok := r.sprites[key]; ok {
		return img
	}
	proto, ok := r.catalog.Prototype(kind, variant)
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(proto)
	r.sprites[key] = img
	return img
}

// drawProxy lays an entity's sprite flat on the ground. Upright things use
// their height as depth so they stay readable from above. Banners and
// clouds face the camera and ignore yaw.
func (r *Renderer) drawProxy(screen *ebiten.Image, p scene.Proxy) {
	s := p.Transform.Scale
	if s == 0 {
		s = 1
	}
	w := p.Size.X * s
	d := math.Max(p.Size.Y, p.Size.Z) * s
	pos := p.Transform.Position
	if !r.camera.Visible(pos.X, pos.Z, math.Max(w, d)) {
		return
	}

	img := r.sprite(p.Kind, p.Variant)
	if img == nil {
		r.rect(screen, pos.X, pos.Z, w, d, fallbackColor(p.Kind))
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(w*r.camera.Scale/float64(b.Dx()), d*r.camera.Scale/float64(b.Dy()))
	if p.Kind != scene.KindBanner && p.Kind != scene.KindCloud {
		op.GeoM.Rotate(p.Transform.Yaw)
	}
	sx, sy := r.camera.ToScreen(pos.X, pos.Z)
	op.GeoM.Translate(sx, sy)
	if p.Kind == scene.KindCloud {
		op.ColorScale.ScaleAlpha(0.7)
	}
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawFlame puts a flickering exhaust behind the car.
func (r *Renderer) drawFlame(screen *ebiten.Image, gs *models.GameState) {
	p, ok := r.graph.Get(gs.VehicleHandle)
	if !ok {
		return
	}
	flicker := 0.8 + 0.4*math.Abs(math.Sin(float64(r.frame)*0.7))
	length := 1.6 * flicker
	rear := gs.Vehicle.Z - p.Size.Z/2
	for _, side := range []float64{-0.5, 0.5} {
		x := gs.Vehicle.X + side
		r.rect(screen, x, rear-length/2, 0.5, length, flameOuter)
		r.rect(screen, x, rear-length/4, 0.25, length/2, flameInner)
	}
}

func fallbackColor(kind scene.Kind) color.RGBA {
	switch kind {
	case scene.KindVehicle:
		return color.RGBA{220, 20, 20, 255}
	case scene.KindObstacle:
		return color.RGBA{240, 120, 20, 255}
	case scene.KindCoin:
		return color.RGBA{255, 215, 0, 255}
	case scene.KindTree:
		return color.RGBA{34, 139, 34, 255}
	case scene.KindCloud:
		return color.RGBA{255, 255, 255, 180}
	default:
		return color.RGBA{200, 200, 200, 255}
	}
}
