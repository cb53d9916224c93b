package lowthrust

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// circularError propagates a zero-thrust circular orbit at the Earth radius
// for total seconds and returns the position error against the analytic
// solution r(cos ωt, sin ωt).
func circularError(prop Propagator, dt, total float64) float64 {
	r := Earth.R
	ω := math.Sqrt(μSun / (r * r * r))
	s := State{
		R:    Vector3{r, 0, 0},
		V:    Vector3{0, ω * r, 0},
		Mass: 10000,
	}
	for s.T < total-dt/2 {
		prop.Step(&s, dt, 0, 0, μSun, Prograde)
	}
	sinθ, cosθ := math.Sincos(ω * s.T)
	analytic := Vector3{r * cosθ, r * sinθ, 0}
	return s.R.Sub(analytic).Norm()
}

func TestRK4Convergence(t *testing.T) {
	coarse := circularError(RK4{}, 50000, 1e6)
	fine := circularError(RK4{}, 25000, 1e6)
	if coarse > 1500 {
		t.Fatalf("RK4 error %f km over a %e s arc is too large", coarse, 1e6)
	}
	if ratio := coarse / fine; ratio < 3 {
		t.Fatalf("halving the step should shrink the RK4 error, ratio = %f", ratio)
	}
}

func TestEulerFirstOrder(t *testing.T) {
	coarse := circularError(Euler{}, 50000, 1e6)
	fine := circularError(Euler{}, 25000, 1e6)
	ratio := coarse / fine
	if ratio < 1.5 || ratio > 3 {
		t.Fatalf("Euler error ratio %f is not first order", ratio)
	}
	rk4 := circularError(RK4{}, 50000, 1e6)
	if coarse < 10*rk4 {
		t.Fatalf("Euler error %f km should dwarf the RK4 error %f km", coarse, rk4)
	}
}

func TestRK4EnergyConservation(t *testing.T) {
	r := Earth.R
	s := State{
		R:    Vector3{r, 0, 0},
		V:    Vector3{0, math.Sqrt(μSun / r), 0},
		Mass: 10000,
	}
	ξ0 := s.Speed()*s.Speed()/2 - μSun/s.Radius()
	for i := 0; i < 100; i++ {
		RK4{}.Step(&s, 10000, 0, 0, μSun, Prograde)
	}
	ξ := s.Speed()*s.Speed()/2 - μSun/s.Radius()
	if drift := math.Abs((ξ - ξ0) / ξ0); drift > 1e-5 {
		t.Fatalf("specific energy drifted by %e over 100 coasting steps", drift)
	}
}

func TestUpdateMass(t *testing.T) {
	s := State{Mass: 1000}
	updateMass(&s, 1000, 1000, 2750)
	// mdot = 1000e-6 / (2750 × 9.81e-3) kg/s over 1000 s.
	expected := 1000 - 1000*1e-6/(2750*G0)*1000
	if !scalar.EqualWithinAbs(s.Mass, expected, 1e-9) {
		t.Fatalf("mass = %f, expected %f", s.Mass, expected)
	}
}

func TestUpdateMassCoast(t *testing.T) {
	s := State{Mass: 1000}
	updateMass(&s, 1000, 0, 2750)
	if s.Mass != 1000 {
		t.Fatalf("coast segment should not consume propellant, mass = %f", s.Mass)
	}
	updateMass(&s, 1000, 1000, 0)
	if s.Mass != 1000 {
		t.Fatalf("zero Isp should not consume propellant, mass = %f", s.Mass)
	}
}

func TestUpdateMassClamp(t *testing.T) {
	s := State{Mass: 1e-6}
	updateMass(&s, 1e6, 5000, 500)
	if s.Mass != 0 {
		t.Fatalf("mass should clamp at zero, got %e", s.Mass)
	}
}

func TestNewPropagator(t *testing.T) {
	if _, ok := NewPropagator("rk4").(RK4); !ok {
		t.Fatal("rk4 should select the RK4 stepper")
	}
	if _, ok := NewPropagator("RK4").(RK4); !ok {
		t.Fatal("method matching should be case-insensitive")
	}
	if _, ok := NewPropagator("euler").(Euler); !ok {
		t.Fatal("euler should select the Euler stepper")
	}
	if _, ok := NewPropagator("leapfrog").(Euler); !ok {
		t.Fatal("unknown methods should fall back to Euler")
	}
}
