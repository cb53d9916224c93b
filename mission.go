// Package lowthrust simulates heliocentric low-thrust transfers: it
// propagates a spacecraft under continuous tangential electric thrust from a
// circular departure orbit until its apoapsis reaches the target radius, its
// propellant runs out, or the flight-time ceiling is hit, then derives the
// classical orbital elements and mission-performance metrics of the result.
package lowthrust

import (
	"math"

	"github.com/go-kit/log"
)

// minOperatingMass is the mass floor (kg) below which the vehicle is
// considered out of propellant.
const minOperatingMass = 100.0

// PropagationStatus tracks the termination state machine of a mission run.
type PropagationStatus uint8

const (
	// Thrusting is the initial powered state; it is never terminal.
	Thrusting PropagationStatus = iota
	// Coasting means the apoapsis crossed the coast threshold.
	Coasting
	// FuelDepleted means the vehicle mass fell below the operating floor.
	FuelDepleted
	// TimeExceeded means the flight-time ceiling was reached first.
	TimeExceeded
)

// String implements the Stringer interface.
func (s PropagationStatus) String() string {
	switch s {
	case Thrusting:
		return "thrusting"
	case Coasting:
		return "coasting"
	case FuelDepleted:
		return "fuel depleted"
	case TimeExceeded:
		return "time exceeded"
	}
	return "unknown"
}

// MissionOutcome is the immutable result of one propagation run.
type MissionOutcome struct {
	Status        PropagationStatus
	FlightTime    float64 // s
	TotalΔv       float64 // km/s
	Propellant    float64 // kg consumed
	FinalMass     float64 // kg
	FinalElements OrbitalElements
}

// FlightTimeDays returns the flight time in days.
func (o MissionOutcome) FlightTimeDays() float64 { return o.FlightTime / 86400 }

// Mission owns the evolving state vector for one propagation run. Each run
// gets its own Mission: nothing is shared between sequential batch missions
// beyond the outcome collection assembled by the caller.
type Mission struct {
	Settings MissionSettings

	state        State
	prop         Propagator
	status       PropagationStatus
	history      []State
	trackHistory bool
	logger       log.Logger
}

// NewMission initializes a mission in a circular orbit at the departure
// radius. A nil logger disables logging.
func NewMission(settings MissionSettings, logger log.Logger) *Mission {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	rDep := settings.Departure.R
	vCirc := math.Sqrt(μSun / rDep)
	return &Mission{
		Settings: settings,
		state: State{
			R:    Vector3{rDep, 0, 0},
			V:    Vector3{0, vCirc, 0},
			Mass: settings.Spacecraft.InitialMass,
		},
		prop:   settings.NewPropagator(),
		status: Thrusting,
		logger: logger,
	}
}

// TrackHistory toggles in-memory retention of every recorded state. Off by
// default: long spirals record tens of thousands of steps.
func (m *Mission) TrackHistory(on bool) { m.trackHistory = on }

// State returns a copy of the current state vector.
func (m *Mission) State() State { return m.state }

// Status returns the current state-machine status.
func (m *Mission) Status() PropagationStatus { return m.status }

// History returns the recorded state history (nil unless TrackHistory(true)
// was called before Propagate).
func (m *Mission) History() []State { return m.history }

// Propagate runs the time-stepping loop to termination and returns the
// outcome. If traj is non-nil, every recorded step is streamed to it; the
// writer remains owned by the caller and must be closed by the caller
// regardless of how the run terminates. Propagate never fails: numerical
// edge cases are absorbed by the clamps in the dynamics, integrators and
// element extraction.
func (m *Mission) Propagate(traj *TrajectoryWriter) MissionOutcome {
	set := m.Settings
	rArrival := set.Arrival.R
	targetApo := set.CoastThreshold * rArrival

	m.logger.Log("level", "info", "subsys", "astro", "status", "started",
		"from", set.Departure.Name, "to", set.Arrival.Name,
		"thruster", set.Spacecraft.Name, "thrust(mN)", set.Spacecraft.Thrust,
		"isp(s)", set.Spacecraft.Isp, "mass(kg)", m.state.Mass,
		"method", set.Method, "step(s)", set.Timestep)

	var totalΔv float64
	for m.state.T < set.MaxFlightTime {
		el := ComputeElementsFromRV(m.state.R, m.state.V, μSun)

		if m.trackHistory {
			m.history = append(m.history, m.state)
		}
		if traj != nil {
			traj.WriteState(m.state, el)
		}

		if el.Apoapsis() >= targetApo {
			m.status = Coasting
			m.logger.Log("level", "notice", "subsys", "astro", "status", "coasting",
				"t(days)", m.state.T/86400, "ra(km)", el.Apoapsis(), "target(km)", targetApo)
			return m.finalize(totalΔv, el)
		}

		if m.state.Mass < minOperatingMass {
			m.status = FuelDepleted
			m.logger.Log("level", "warning", "subsys", "prop", "status", "fuel depleted",
				"t(days)", m.state.T/86400, "mass(kg)", m.state.Mass)
			return m.finalize(totalΔv, el)
		}

		// Bookkeeping Δv estimate for this step. This is the commanded
		// impulse (thrust×dt over the current mass), not the integrator's
		// own velocity change.
		if set.Spacecraft.Thrust > zeroε {
			totalΔv += set.Spacecraft.Thrust * 1e-6 / m.state.Mass * set.Timestep
		}

		m.prop.Step(&m.state, set.Timestep, set.Spacecraft.Thrust,
			set.Spacecraft.Isp, μSun, set.Direction)
	}

	m.status = TimeExceeded
	el := ComputeElementsFromRV(m.state.R, m.state.V, μSun)
	m.logger.Log("level", "warning", "subsys", "astro", "status", "time exceeded",
		"t(days)", m.state.T/86400, "max(days)", set.MaxFlightTime/86400)
	return m.finalize(totalΔv, el)
}

func (m *Mission) finalize(totalΔv float64, el OrbitalElements) MissionOutcome {
	out := MissionOutcome{
		Status:        m.status,
		FlightTime:    m.state.T,
		TotalΔv:       totalΔv,
		Propellant:    m.Settings.Spacecraft.InitialMass - m.state.Mass,
		FinalMass:     m.state.Mass,
		FinalElements: el,
	}
	m.logger.Log("level", "notice", "subsys", "astro", "status", "finished",
		"reason", out.Status, "duration(days)", out.FlightTimeDays(),
		"Δv(km/s)", out.TotalΔv, "fuel(kg)", out.Propellant, "orbit", el)
	return out
}
