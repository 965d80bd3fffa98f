package game

// Camera maps the ground plane onto the screen, top-down with the road
// running up the screen. Things ahead (higher Z) appear above the car and
// world +X is screen left, so the car's right is the player's right.
type Camera struct {
	X, Z          float64 // world point at the screen centre
	Scale         float64 // pixels per world unit
	Width, Height float64
}

const (
	pixelsPerUnit = 8.0
	lookAhead     = 20.0 // world units shown ahead of the car centre
	followRate    = 0.1  // fraction of the x gap closed per frame

	// With no car on the road the camera flies over the backdrop clouds.
	flyoverSpeed = 1.5
	flyoverEnd   = 1600.0
)

func NewCamera(width, height float64) Camera {
	return Camera{Scale: pixelsPerUnit, Width: width, Height: height}
}

// ToScreen converts a ground position to pixels.
func (c Camera) ToScreen(x, z float64) (float64, float64) {
	return c.Width/2 - (x-c.X)*c.Scale, c.Height/2 - (z-c.Z)*c.Scale
}

// Visible reports whether a circle of radius r world units around (x, z)
// touches the screen.
func (c Camera) Visible(x, z, r float64) bool {
	sx, sy := c.ToScreen(x, z)
	pr := r * c.Scale
	return sx+pr >= 0 && sx-pr <= c.Width && sy+pr >= 0 && sy-pr <= c.Height
}

// Follow eases sideways towards the car and keeps a fixed distance ahead
// of it.
func (c *Camera) Follow(x, z float64) {
	c.X += (x - c.X) * followRate
	c.Z = z + lookAhead
}

// Snap centres on a point immediately.
func (c *Camera) Snap(x, z float64) {
	c.X, c.Z = x, z
}

// Flyover drifts forward along the road centre, wrapping back to the start.
func (c *Camera) Flyover() {
	c.X += (0 - c.X) * followRate
	c.Z += flyoverSpeed
	if c.Z > flyoverEnd {
		c.Z = lookAhead
	}
}
