package lowthrust

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	deg2rad = math.Pi / 180
	// zeroε is the threshold below which radii, speeds and masses are
	// considered degenerate throughout the engine.
	zeroε = 1e-10
)

// Vector3 is a fixed-size Cartesian vector. Positions are in km and
// velocities in km/s. The planar missions only ever populate the first two
// components, but all the math is written for the full vector.
type Vector3 [3]float64

// X returns the first component.
func (v Vector3) X() float64 { return v[0] }

// Y returns the second component.
func (v Vector3) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vector3) Z() float64 { return v[2] }

// Norm returns the Euclidean norm.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Unit returns the unit vector, or the zero vector if the norm is degenerate.
func (v Vector3) Unit() Vector3 {
	n := v.Norm()
	if scalar.EqualWithinAbs(n, 0, 1e-12) {
		return Vector3{}
	}
	return Vector3{v[0] / n, v[1] / n, v[2] / n}
}

// Dot performs the inner product.
func (v Vector3) Dot(o Vector3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Cross performs the cross product.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0]}
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns f·v.
func (v Vector3) Scale(f float64) Vector3 {
	return Vector3{f * v[0], f * v[1], f * v[2]}
}

// Deg2rad converts degrees to radians, and enforces only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforces only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}
