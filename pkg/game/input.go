package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zeromvx/irys3drace/pkg/ui"
	"github.com/zeromvx/irys3drace/pkg/vehicle"
)

// Input polls keyboard and touch state into the controller's flags. Key and
// touch state is read fresh every tick, so releasing a key or lifting a
// finger clears its flag on the next tick.
type Input struct {
	touches   []ebiten.TouchID
	points    []image.Point
	touchSeen bool
	lastTouch vehicle.Input
}

func NewInput() *Input {
	return &Input{}
}

// Poll returns the flags held right now.
func (in *Input) Poll() vehicle.Input {
	keys := vehicle.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
	}

	in.touches = ebiten.AppendTouchIDs(in.touches[:0])
	in.points = in.points[:0]
	for _, id := range in.touches {
		x, y := ebiten.TouchPosition(id)
		in.points = append(in.points, image.Pt(x, y))
	}
	if len(in.touches) > 0 {
		in.touchSeen = true
	}
	in.lastTouch = touchInput(in.points)
	return merge(keys, in.lastTouch)
}

// TouchSeen reports whether the device has produced touches, which is
// when the HUD shows the on-screen buttons.
func (in *Input) TouchSeen() bool {
	return in.touchSeen
}

// Touched returns the flags held by touches during the last Poll.
func (in *Input) Touched() vehicle.Input {
	return in.lastTouch
}

// touchInput maps touch points onto the on-screen buttons.
func touchInput(points []image.Point) vehicle.Input {
	left, right, turbo := ui.TouchButtons()
	var out vehicle.Input
	for _, p := range points {
		switch {
		case p.In(left):
			out.Left = true
		case p.In(right):
			out.Right = true
		case p.In(turbo):
			out.Up = true
		}
	}
	return out
}

func merge(a, b vehicle.Input) vehicle.Input {
	return vehicle.Input{
		Left:  a.Left || b.Left,
		Right: a.Right || b.Right,
		Up:    a.Up || b.Up,
	}
}
