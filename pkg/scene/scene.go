// Package scene is the boundary between the simulation and whatever draws
// it. The simulation only ever creates, moves, hides and destroys proxies and
// asks for their world bounds.
package scene

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/zeromvx/irys3drace/pkg/geom"
)

// Kind identifies what a proxy represents.
type Kind int

const (
	KindRoad Kind = iota
	KindGrass
	KindVehicle
	KindObstacle
	KindCoin
	KindTree
	KindBanner
	KindCloud
)

var kindNames = [...]string{
	KindRoad:     "road",
	KindGrass:    "grass",
	KindVehicle:  "vehicle",
	KindObstacle: "obstacle",
	KindCoin:     "coin",
	KindTree:     "tree",
	KindBanner:   "banner",
	KindCloud:    "cloud",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a config name back to a Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown entity kind %q", name)
}

// Handle refers to a proxy. Zero is never a valid handle.
type Handle uint32

// Transform places a proxy in the world. Yaw rotates about the Y axis.
type Transform struct {
	Position geom.Vec3
	Yaw      float64
	Scale    float64
}

// At is a unit-scale transform at p.
func At(p geom.Vec3) Transform {
	return Transform{Position: p, Scale: 1}
}

// Proxy is the presentation-side stand-in for a simulated entity.
type Proxy struct {
	Kind      Kind
	Variant   int
	Size      geom.Vec3
	Transform Transform
	Visible   bool
}

// Bounds is the world AABB of the proxy, Size scaled and rotated by yaw and
// centered on the position.
func (p Proxy) Bounds() geom.AABB {
	s := p.Transform.Scale
	if s == 0 {
		s = 1
	}
	size := p.Size.Scale(s)
	c, sn := math.Abs(math.Cos(p.Transform.Yaw)), math.Abs(math.Sin(p.Transform.Yaw))
	extent := geom.V(c*size.X+sn*size.Z, size.Y, sn*size.X+c*size.Z)
	return geom.FromCenterAndSize(p.Transform.Position, extent)
}

// Scene is what the simulation needs from a presentation layer.
type Scene interface {
	Create(kind Kind, variant int, size geom.Vec3, t Transform) Handle
	SetVisible(h Handle, visible bool)
	SetTransform(h Handle, t Transform)
	Destroy(h Handle)
	Bounds(h Handle) geom.AABB
}

// Graph is an in-memory retained scene. It runs headless and is what the
// ebiten renderer walks every frame. It is not safe for concurrent use; the
// game loop owns it.
type Graph struct {
	nodes map[Handle]*Proxy
	next  Handle
}

// NewGraph creates a new empty scene graph
func NewGraph() *Graph {
	return &Graph{nodes: make(map[Handle]*Proxy)}
}

func (g *Graph) Create(kind Kind, variant int, size geom.Vec3, t Transform) Handle {
	g.next++
	g.nodes[g.next] = &Proxy{
		Kind:      kind,
		Variant:   variant,
		Size:      size,
		Transform: t,
		Visible:   true,
	}
	return g.next
}

func (g *Graph) SetVisible(h Handle, visible bool) {
	if n, ok := g.nodes[h]; ok {
		n.Visible = visible
	}
}

func (g *Graph) SetTransform(h Handle, t Transform) {
	if n, ok := g.nodes[h]; ok {
		n.Transform = t
	}
}

func (g *Graph) Destroy(h Handle) {
	delete(g.nodes, h)
}

// Bounds returns an empty box for unknown handles so a missing proxy never
// collides with anything.
func (g *Graph) Bounds(h Handle) geom.AABB {
	n, ok := g.nodes[h]
	if !ok {
		return geom.Empty()
	}
	return n.Bounds()
}

// Get returns a copy of the proxy behind h.
func (g *Graph) Get(h Handle) (Proxy, bool) {
	n, ok := g.nodes[h]
	if !ok {
		return Proxy{}, false
	}
	return *n, true
}

// Len is the number of live proxies, visible or not.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Count returns how many live proxies of kind exist.
func (g *Graph) Count(kind Kind) int {
	n := 0
	for _, p := range g.nodes {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// Visit calls fn for every visible proxy of kind in creation order.
func (g *Graph) Visit(kind Kind, fn func(Handle, Proxy)) {
	handles := make([]Handle, 0, len(g.nodes))
	for h, p := range g.nodes {
		if p.Kind == kind && p.Visible {
			handles = append(handles, h)
		}
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	for _, h := range handles {
		fn(h, *g.nodes[h])
	}
}
