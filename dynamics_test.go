package lowthrust

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestGravityAccel(t *testing.T) {
	r := Vector3{Earth.R, 0, 0}
	a := GravityAccel(r, μSun)
	// Magnitude μ/r² pointing sunward.
	expected := μSun / (Earth.R * Earth.R)
	if !scalar.EqualWithinRel(a.Norm(), expected, 1e-12) {
		t.Fatalf("|a| = %e, expected %e", a.Norm(), expected)
	}
	if a[0] >= 0 || a[1] != 0 || a[2] != 0 {
		t.Fatalf("gravity not sunward: %+v", a)
	}
	if !vectorsEqual(GravityAccel(Vector3{}, μSun), Vector3{}) {
		t.Fatal("degenerate radius should yield zero acceleration")
	}
}

func TestThrustAccel(t *testing.T) {
	v := Vector3{0, 29.78, 0}
	mass := 10000.0
	a := ThrustAccel(v, mass, 1000, Prograde)
	expected := 1000 * 1e-6 / mass
	if !scalar.EqualWithinRel(a.Norm(), expected, 1e-12) {
		t.Fatalf("|a| = %e, expected %e", a.Norm(), expected)
	}
	if a[1] <= 0 {
		t.Fatalf("prograde thrust not along velocity: %+v", a)
	}

	retro := ThrustAccel(v, mass, 1000, Retrograde)
	if !vectorsEqual(retro, a.Scale(-1)) {
		t.Fatal("retrograde thrust should mirror prograde")
	}

	if !vectorsEqual(ThrustAccel(v, mass, 0, Prograde), Vector3{}) {
		t.Fatal("zero thrust should yield zero acceleration")
	}
	if !vectorsEqual(ThrustAccel(Vector3{}, mass, 1000, Prograde), Vector3{}) {
		t.Fatal("zero velocity has no thrust tangent")
	}
	if !vectorsEqual(ThrustAccel(v, 0, 1000, Prograde), Vector3{}) {
		t.Fatal("zero mass should yield zero acceleration")
	}
}

func TestAccelerationSum(t *testing.T) {
	r := Vector3{Earth.R, 0, 0}
	v := Vector3{0, 29.78, 0}
	total := Acceleration(r, v, 10000, 1000, μSun, Prograde)
	want := GravityAccel(r, μSun).Add(ThrustAccel(v, 10000, 1000, Prograde))
	if !vectorsEqual(total, want) {
		t.Fatalf("acceleration sum mismatch: %+v vs %+v", total, want)
	}
}
