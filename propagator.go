package lowthrust

import "strings"

// G0 is the gravitational acceleration constant used by the propulsion model
// (km/s²). The effective-Isp metric uses the standard value instead, see
// metrics.go.
const G0 = 9.81e-3

// State is the propagated Cartesian state of the vehicle. It is mutated in
// place by each integration step; mass never goes negative and T never
// decreases.
type State struct {
	R    Vector3 // position (km)
	V    Vector3 // velocity (km/s)
	Mass float64 // kg
	T    float64 // elapsed seconds since departure
}

// Radius returns the distance from the central body.
func (s State) Radius() float64 { return s.R.Norm() }

// Speed returns the magnitude of the velocity.
func (s State) Speed() float64 { return s.V.Norm() }

// Propagator advances a mission state by one fixed timestep. Implementations
// are stateless: every call is a pure function of its inputs aside from the
// in-place mutation of s.
type Propagator interface {
	Step(s *State, dt, thrustmN, isp, μ float64, dir ThrustDirection)
}

// NewPropagator returns the propagator matching the configured method name.
// Any method other than "rk4" selects the Euler stepper.
func NewPropagator(method string) Propagator {
	if strings.EqualFold(method, "rk4") {
		return RK4{}
	}
	return Euler{}
}

// updateMass applies the exhaust-velocity mass flow over one step and clamps
// the result at zero. Negligible thrust or Isp is a coast segment: mass is
// left untouched.
func updateMass(s *State, dt, thrustmN, isp float64) {
	if thrustmN < zeroε || isp < zeroε {
		return
	}
	vExhaust := isp * G0
	s.Mass += -thrustmN * 1e-6 / vExhaust * dt
	if s.Mass < 0 {
		s.Mass = 0
	}
}

// RK4 is the classical 4th-order Runge-Kutta stepper with Simpson weights
// [1,2,2,1]/6. The position update averages the four stage velocities, not
// the initial velocity alone.
type RK4 struct{}

// Step implements the Propagator interface.
func (RK4) Step(s *State, dt, thrustmN, isp, μ float64, dir ThrustDirection) {
	half := dt / 2

	// Stage 1: start of the interval.
	k1 := Acceleration(s.R, s.V, s.Mass, thrustmN, μ, dir)
	v1 := s.V

	// Stage 2: midpoint, velocity projected with k1.
	rMid := s.R.Add(s.V.Scale(half))
	v2 := s.V.Add(k1.Scale(half))
	k2 := Acceleration(rMid, v2, s.Mass, thrustmN, μ, dir)

	// Stage 3: same midpoint position, velocity projected with k2.
	v3 := s.V.Add(k2.Scale(half))
	k3 := Acceleration(rMid, v3, s.Mass, thrustmN, μ, dir)

	// Stage 4: end of the interval, projected with k3.
	rEnd := s.R.Add(s.V.Scale(dt)).Add(k3.Scale(dt * dt / 2))
	v4 := s.V.Add(k3.Scale(dt))
	k4 := Acceleration(rEnd, v4, s.Mass, thrustmN, μ, dir)

	w := dt / 6
	s.V = s.V.Add(k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4).Scale(w))
	s.R = s.R.Add(v1.Add(v2.Scale(2)).Add(v3.Scale(2)).Add(v4).Scale(w))
	s.T += dt
	updateMass(s, dt, thrustmN, isp)
}

// Euler is a first-order stepper. The velocity updates first and the position
// update then sees the new velocity, making it semi-implicit rather than
// textbook forward Euler. The ordering must not be swapped.
type Euler struct{}

// Step implements the Propagator interface.
func (Euler) Step(s *State, dt, thrustmN, isp, μ float64, dir ThrustDirection) {
	a := Acceleration(s.R, s.V, s.Mass, thrustmN, μ, dir)
	s.V = s.V.Add(a.Scale(dt))
	s.R = s.R.Add(s.V.Scale(dt))
	s.T += dt
	updateMass(s, dt, thrustmN, isp)
}
