package lowthrust

import "math"

const (
	// keplerTolerance is the default Newton-Raphson convergence tolerance.
	keplerTolerance = 1e-12
	// keplerMaxIterations bounds the Newton-Raphson iteration count.
	keplerMaxIterations = 20
)

// SolveKepler solves Kepler's equation M = E − e·sin(E) for the eccentric
// anomaly E with the default tolerance and iteration bound.
func SolveKepler(M, e float64) float64 {
	return SolveKeplerTol(M, e, keplerTolerance, keplerMaxIterations)
}

// SolveKeplerTol solves Kepler's equation via Newton-Raphson with E₀ = M.
// Non-convergence is not an error: the best available estimate is returned
// once the iteration bound is hit or the derivative collapses. A near-zero
// eccentricity short-circuits to E = M.
func SolveKeplerTol(M, e, tolerance float64, maxIterations int) float64 {
	M = math.Mod(M, 2*math.Pi)
	if M < 0 {
		M += 2 * math.Pi
	}
	if e < zeroε {
		return M
	}
	E := M
	for iter := 0; iter < maxIterations; iter++ {
		sinE, cosE := math.Sincos(E)
		f := E - e*sinE - M
		fPrime := 1 - e*cosE
		if math.Abs(fPrime) < 1e-15 {
			break
		}
		ENext := E - f/fPrime
		if math.Abs(ENext-E) < tolerance {
			return ENext
		}
		E = ENext
	}
	return E
}

// EccentricToTrueAnomaly converts the eccentric anomaly to the true anomaly
// via tan(ν/2) = √((1+e)/(1−e))·tan(E/2), normalized into [0, 2π). An
// eccentricity outside [0, 1) has no elliptical true anomaly and yields 0;
// a near-circular orbit yields ν = E.
func EccentricToTrueAnomaly(E, e float64) float64 {
	if e < 0 || e >= 1 {
		return 0
	}
	if e < zeroε {
		return E
	}
	ν := 2 * math.Atan(math.Sqrt((1+e)/(1-e))*math.Tan(E/2))
	if ν < 0 {
		ν += 2 * math.Pi
	}
	return ν
}
