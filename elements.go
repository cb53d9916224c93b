package lowthrust

import (
	"fmt"
	"math"
)

const (
	// parabolicSMA is the sentinel semi-major axis reported when the specific
	// energy is numerically zero.
	parabolicSMA = 1e10
	// hyperbolicEcc is the sentinel eccentricity reported for negative
	// semi-major axes.
	hyperbolicEcc = 2.0
)

// OrbitalElements defines the classical orbital elements of a Cartesian
// state, plus the derived radii, angular momentum and energy. Elements are
// stateless: they are recomputed from a state on demand and never persisted
// independently of it.
type OrbitalElements struct {
	a, e, i, Ω, ω, ν float64
	rP, rA           float64
	h, ξ             float64
}

// SemiMajorAxis returns a (km).
func (el OrbitalElements) SemiMajorAxis() float64 { return el.a }

// Eccentricity returns e.
func (el OrbitalElements) Eccentricity() float64 { return el.e }

// Inclination returns i (radians).
func (el OrbitalElements) Inclination() float64 { return el.i }

// Apoapsis returns the apoapsis radius (km).
func (el OrbitalElements) Apoapsis() float64 { return el.rA }

// Periapsis returns the periapsis radius (km).
func (el OrbitalElements) Periapsis() float64 { return el.rP }

// HNorm returns the norm of the specific angular momentum (km²/s).
func (el OrbitalElements) HNorm() float64 { return el.h }

// Energyξ returns the specific mechanical energy ξ (km²/s²).
func (el OrbitalElements) Energyξ() float64 { return el.ξ }

// Elements returns the six classical orbital elements.
func (el OrbitalElements) Elements() (a, e, i, Ω, ω, ν float64) {
	return el.a, el.e, el.i, el.Ω, el.ω, el.ν
}

// String implements the Stringer interface (angles in degrees).
func (el OrbitalElements) String() string {
	return fmt.Sprintf("a=%.1f e=%.6f i=%.3f Ω=%.3f ω=%.3f ν=%.3f ra=%.1f rp=%.1f",
		el.a, el.e, Rad2deg(el.i), Rad2deg(el.Ω), Rad2deg(el.ω), Rad2deg(el.ν), el.rA, el.rP)
}

// ComputeElementsFromRV converts a Cartesian state into orbital elements.
// Degenerate inputs are absorbed by clamps and sentinels, never reported as
// errors: a numerically parabolic orbit gets the 1e10 semi-major axis, a
// negative semi-major axis gets the hyperbolic eccentricity sentinel, and
// every arccos argument is clamped into [−1, 1].
func ComputeElementsFromRV(R, V Vector3, μ float64) OrbitalElements {
	var el OrbitalElements

	hVec := R.Cross(V)
	el.h = hVec.Norm()

	r := R.Norm()
	el.ξ = V.Dot(V)/2 - μ/r

	if math.Abs(el.ξ) > 1e-15 {
		el.a = -μ / (2 * el.ξ)
	} else {
		el.a = parabolicSMA
	}

	if el.a > 0 {
		e2 := 1 - el.h*el.h/(μ*el.a)
		if e2 < 0 {
			// Numerical noise on circular orbits.
			e2 = 0
		}
		el.e = math.Sqrt(e2)
	} else {
		el.e = hyperbolicEcc
	}

	el.rP = el.a * (1 - el.e)
	el.rA = el.a * (1 + el.e)

	if el.h > zeroε {
		cosi := clamp1(hVec[2] / el.h)
		el.i = math.Acos(cosi)
	}

	el.Ω = math.Atan2(-hVec[0], hVec[1])
	if el.Ω < 0 {
		el.Ω += 2 * math.Pi
	}

	// Argument of periapsis from the eccentricity vector.
	eVec := V.Cross(hVec).Scale(1 / μ).Sub(R.Scale(1 / r))
	sinΩ, cosΩ := math.Sincos(el.Ω)
	sini := math.Sin(el.i)
	if math.Abs(sini) > zeroε {
		el.ω = math.Atan2(eVec[2]/sini, eVec[0]*cosΩ+eVec[1]*sinΩ)
	}
	if el.ω < 0 {
		el.ω += 2 * math.Pi
	}

	// True anomaly, sign resolved by the sign of r·v.
	if el.e > zeroε {
		cosν := clamp1((el.h*el.h/(μ*r) - 1) / el.e)
		el.ν = math.Acos(cosν)
		if R.Dot(V) < 0 {
			el.ν = 2*math.Pi - el.ν
		}
	}

	return el
}

func clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
