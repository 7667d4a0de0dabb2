package game

import "math"

// axisEpsilon snaps nearly axis-aligned rays onto the axis
const axisEpsilon = 0.0001

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// Add returns v+o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v-o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v*s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the vector length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the distance between two points
func (v Vec2) DistanceTo(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// AngleTo returns the bearing from v to o in radians
// Angle 0 points right (east), positive angles turn towards +Y
func (v Vec2) AngleTo(o Vec2) float64 {
	return math.Atan2(o.Y-v.Y, o.X-v.X)
}

// DirectionTo returns the unit vector from v to o, or the zero vector if they coincide
func (v Vec2) DirectionTo(o Vec2) Vec2 {
	d := o.Sub(v)
	dist := d.Len()
	if dist == 0 {
		return Vec2{}
	}
	return d.Scale(1 / dist)
}

// FromAngle returns a vector of the given length pointing along angle
func FromAngle(angle, length float64) Vec2 {
	return Vec2{math.Cos(angle) * length, math.Sin(angle) * length}
}

// Rect is an axis-aligned bounding box
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// RectAround returns the box of side 2*radius centered on center
func RectAround(center Vec2, radius float64) Rect {
	return Rect{
		MinX: center.X - radius,
		MinY: center.Y - radius,
		MaxX: center.X + radius,
		MaxY: center.Y + radius,
	}
}

// Intersects reports whether two boxes overlap; boxes that only touch do not
func (r Rect) Intersects(o Rect) bool {
	return r.MinX < o.MaxX && o.MinX < r.MaxX &&
		r.MinY < o.MaxY && o.MinY < r.MaxY
}

// SegmentCircleIntersects reports whether the segment a-b passes within radius of center
func SegmentCircleIntersects(a, b, center Vec2, radius float64) bool {
	d := b.Sub(a)
	f := center.Sub(a)

	lengthSq := d.X*d.X + d.Y*d.Y
	if lengthSq == 0 {
		return false
	}

	// Project the center onto the segment and clamp to its endpoints
	t := (f.X*d.X + f.Y*d.Y) / lengthSq
	t = math.Max(0, math.Min(1, t))

	closest := a.Add(d.Scale(t))
	dx := center.X - closest.X
	dy := center.Y - closest.Y
	return dx*dx+dy*dy <= radius*radius
}

// EdgeIntersection returns where a ray from origin along angle leaves the playfield [0,w]x[0,h]
func EdgeIntersection(origin Vec2, angle, w, h float64) Vec2 {
	cosA := math.Cos(angle)
	sinA := math.Sin(angle)

	if math.Abs(cosA) < axisEpsilon {
		if sinA > 0 {
			return Vec2{origin.X, h}
		}
		return Vec2{origin.X, 0}
	}
	if math.Abs(sinA) < axisEpsilon {
		if cosA > 0 {
			return Vec2{w, origin.Y}
		}
		return Vec2{0, origin.Y}
	}

	t := math.Inf(1)
	if cosA > 0 {
		t = math.Min(t, (w-origin.X)/cosA)
	} else {
		t = math.Min(t, -origin.X/cosA)
	}
	if sinA > 0 {
		t = math.Min(t, (h-origin.Y)/sinA)
	} else {
		t = math.Min(t, -origin.Y/sinA)
	}
	if t < 0 {
		// Origin outside the playfield on this side; the beam degenerates to its origin
		t = 0
	}

	return Vec2{origin.X + cosA*t, origin.Y + sinA*t}
}

// NormalizeAngle wraps an angle into [-Pi, Pi]
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// RotateTowards turns current towards target by at most maxStep radians
func RotateTowards(current, target, maxStep float64) float64 {
	diff := NormalizeAngle(target - current)
	if diff > maxStep {
		diff = maxStep
	} else if diff < -maxStep {
		diff = -maxStep
	}
	return current + diff
}

// outside reports whether p lies outside [-margin, w+margin]x[-margin, h+margin]
func outside(p Vec2, w, h, margin float64) bool {
	return p.X < -margin || p.X > w+margin || p.Y < -margin || p.Y > h+margin
}
