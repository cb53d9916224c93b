package lowthrust

// ThrustDirection selects the fixed tangential steering law: the engine
// always points along the velocity vector, either with it or against it.
type ThrustDirection int

const (
	// Prograde thrusts along the velocity vector (raises the orbit).
	Prograde ThrustDirection = 1
	// Retrograde thrusts against the velocity vector (lowers the orbit).
	Retrograde ThrustDirection = -1
)

func (d ThrustDirection) String() string {
	if d == Retrograde {
		return "retrograde"
	}
	return "prograde"
}

// GravityAccel returns the point-mass gravitational acceleration
// a = −μ·r/|r|³ (km/s²). A degenerate radius returns the zero vector.
func GravityAccel(r Vector3, μ float64) Vector3 {
	rNorm := r.Norm()
	if rNorm < zeroε {
		return Vector3{}
	}
	return r.Scale(-μ / (rNorm * rNorm * rNorm))
}

// ThrustAccel returns the tangential thrust acceleration (km/s²) for the
// given thrust magnitude in mN. The 1e-6 factor converts mN to kg·km/s².
// Negligible thrust, mass or speed yields the zero vector: with no velocity
// there is no tangent to thrust along.
func ThrustAccel(v Vector3, mass, thrustmN float64, dir ThrustDirection) Vector3 {
	if thrustmN < zeroε || mass < zeroε {
		return Vector3{}
	}
	vNorm := v.Norm()
	if vNorm < zeroε {
		return Vector3{}
	}
	aMag := thrustmN * 1e-6 / mass
	return v.Scale(float64(dir) * aMag / vNorm)
}

// Acceleration combines gravity and thrust for the given Cartesian state.
// These are the only two forces modeled.
func Acceleration(r, v Vector3, mass, thrustmN, μ float64, dir ThrustDirection) Vector3 {
	return GravityAccel(r, μ).Add(ThrustAccel(v, mass, thrustmN, dir))
}
