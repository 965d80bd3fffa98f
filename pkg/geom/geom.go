package geom

import "math"

// Vec3 is a point or extent in world space. X is lateral, Y is up and Z is
// the forward (travel) axis.
type Vec3 struct {
	X, Y, Z float64
}

// V is shorthand for building a Vec3.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec3
}

// Empty returns a box that contains nothing and intersects nothing.
func Empty() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// FromCenterAndSize builds a box around center with the given full extents.
func FromCenterAndSize(center, size Vec3) AABB {
	half := size.Scale(0.5)
	return AABB{
		Min: Vec3{center.X - half.X, center.Y - half.Y, center.Z - half.Z},
		Max: Vec3{center.X + half.X, center.Y + half.Y, center.Z + half.Z},
	}
}

// IsEmpty reports whether the box has a negative extent on any axis.
func (b AABB) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// Intersects reports whether two boxes overlap. Touching faces count as an
// overlap.
func (b AABB) Intersects(o AABB) bool {
	return !(o.Max.X < b.Min.X || o.Min.X > b.Max.X ||
		o.Max.Y < b.Min.Y || o.Min.Y > b.Max.Y ||
		o.Max.Z < b.Min.Z || o.Min.Z > b.Max.Z)
}

func (b AABB) Center() Vec3 {
	return Vec3{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2, (b.Min.Z + b.Max.Z) / 2}
}

func (b AABB) Size() Vec3 {
	return Vec3{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y, b.Max.Z - b.Min.Z}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves cur toward target by at most step.
func Approach(cur, target, step float64) float64 {
	if cur < target {
		cur += step
		if cur > target {
			cur = target
		}
		return cur
	}
	if cur > target {
		cur -= step
		if cur < target {
			cur = target
		}
	}
	return cur
}
