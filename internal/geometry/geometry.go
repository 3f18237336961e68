// Package geometry holds the percentage-space math shared by the composer and
// the viewer. All functions are pure.
package geometry

import "math"

// Point is a raw pointer coordinate or a percentage position, depending on context.
type Point struct {
	X, Y float64
}

// Rect is an on-screen container in the same space as pointer events.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Local translates p into r's coordinate system (top-left origin).
func (r Rect) Local(p Point) Point {
	return Point{X: p.X - r.X, Y: p.Y - r.Y}
}

// Empty reports whether the rect has no drawable area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ToPercent converts a pointer coordinate into container percentage space,
// clamped to [0,100]. A degenerate container yields 0 on that axis.
func ToPercent(p Point, container Rect) Point {
	local := container.Local(p)
	return Point{
		X: Clamp(percentOf(local.X, container.Width), 0, 100),
		Y: Clamp(percentOf(local.Y, container.Height), 0, 100),
	}
}

// FromPercent is the inverse of ToPercent for an in-range percentage.
func FromPercent(p Point, container Rect) Point {
	return Point{
		X: container.X + p.X/100*container.Width,
		Y: container.Y + p.Y/100*container.Height,
	}
}

// Distance is the Euclidean distance between two raw pointer points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func percentOf(v, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return v / total * 100
}
