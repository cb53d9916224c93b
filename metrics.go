package lowthrust

import (
	"fmt"
	"math"

	"github.com/go-kit/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// g0Std is standard gravity (km/s²), used only to invert the Tsiolkovsky
// equation for the effective-Isp metric. The propulsion model uses G0.
const g0Std = 9.80665e-3

// DerivedMetrics are the efficiency figures computed from a mission
// outcome. Undefined ratios are reported as 0, never as errors.
type DerivedMetrics struct {
	PayloadFraction    float64
	EffectiveIsp       float64 // s
	FuelEfficiency     float64 // km/s per kg of propellant
	TransferEfficiency float64 // percent of the target apoapsis reached
}

// targetApoapsis returns the reference apoapsis (km) used by the
// transfer-efficiency metric. Only the bodies with a meaningful low-thrust
// transfer target carry a reference value; every other arrival yields 0.
func targetApoapsis(arrival string) float64 {
	switch arrival {
	case "Venus":
		return 1.082e8
	case "Mars":
		return 2.279e8
	case "Jupiter":
		return 7.785e8
	}
	return 0
}

// ComputeMetrics derives the summary metrics of a single outcome.
func ComputeMetrics(initialMass float64, arrival string, out MissionOutcome) DerivedMetrics {
	var m DerivedMetrics
	m.PayloadFraction = out.FinalMass / initialMass
	if out.Propellant > zeroε {
		m.FuelEfficiency = out.TotalΔv / out.Propellant
	}
	if initialMass > out.FinalMass {
		m.EffectiveIsp = out.TotalΔv / (g0Std * math.Log(initialMass/out.FinalMass))
	}
	if target := targetApoapsis(arrival); target > zeroε {
		m.TransferEfficiency = out.FinalElements.Apoapsis() / target * 100
	}
	return m
}

// MissionSummary is one row of a batch comparison: an outcome, its derived
// metrics and the identifying labels of the run.
type MissionSummary struct {
	Name        string
	Thruster    string
	From, To    string
	InitialMass float64
	Outcome     MissionOutcome
	Metrics     DerivedMetrics
}

// Comparison accumulates mission summaries for batch reporting.
type Comparison struct {
	Missions []MissionSummary
}

// Add appends a mission summary.
func (c *Comparison) Add(ms MissionSummary) {
	c.Missions = append(c.Missions, ms)
}

// ThrusterAverage reports arithmetic means across all missions flown with
// one thruster profile.
type ThrusterAverage struct {
	Thruster       string
	Missions       int
	FlightTimeDays float64
	TotalΔv        float64
	Propellant     float64
}

// ByThruster groups the missions by thruster profile, in first-seen order.
func (c *Comparison) ByThruster() []ThrusterAverage {
	var order []string
	groups := make(map[string][]MissionSummary)
	for _, ms := range c.Missions {
		if _, seen := groups[ms.Thruster]; !seen {
			order = append(order, ms.Thruster)
		}
		groups[ms.Thruster] = append(groups[ms.Thruster], ms)
	}

	avgs := make([]ThrusterAverage, 0, len(order))
	for _, thruster := range order {
		missions := groups[thruster]
		times := make([]float64, len(missions))
		Δvs := make([]float64, len(missions))
		fuels := make([]float64, len(missions))
		for i, ms := range missions {
			times[i] = ms.Outcome.FlightTimeDays()
			Δvs[i] = ms.Outcome.TotalΔv
			fuels[i] = ms.Outcome.Propellant
		}
		avgs = append(avgs, ThrusterAverage{
			Thruster:       thruster,
			Missions:       len(missions),
			FlightTimeDays: stat.Mean(times, nil),
			TotalΔv:        stat.Mean(Δvs, nil),
			Propellant:     stat.Mean(fuels, nil),
		})
	}
	return avgs
}

// TargetBest reports the best figures achieved among all missions to one
// arrival body.
type TargetBest struct {
	Target            string
	Missions          int
	MinFlightTimeDays float64
	MinΔv             float64
}

// ByTarget groups the missions by arrival body, in first-seen order.
func (c *Comparison) ByTarget() []TargetBest {
	var order []string
	groups := make(map[string][]MissionSummary)
	for _, ms := range c.Missions {
		if _, seen := groups[ms.To]; !seen {
			order = append(order, ms.To)
		}
		groups[ms.To] = append(groups[ms.To], ms)
	}

	bests := make([]TargetBest, 0, len(order))
	for _, target := range order {
		missions := groups[target]
		times := make([]float64, len(missions))
		Δvs := make([]float64, len(missions))
		for i, ms := range missions {
			times[i] = ms.Outcome.FlightTimeDays()
			Δvs[i] = ms.Outcome.TotalΔv
		}
		bests = append(bests, TargetBest{
			Target:            target,
			Missions:          len(missions),
			MinFlightTimeDays: floats.Min(times),
			MinΔv:             floats.Min(Δvs),
		})
	}
	return bests
}

// FindBest returns the best mission by the named metric: "shortest_time",
// "lowest_delta_v", "least_fuel" or "most_efficient".
func (c *Comparison) FindBest(metric string) (MissionSummary, error) {
	if len(c.Missions) == 0 {
		return MissionSummary{}, fmt.Errorf("no missions to compare")
	}
	better := func(a, b MissionSummary) bool { return false }
	switch metric {
	case "shortest_time":
		better = func(a, b MissionSummary) bool { return a.Outcome.FlightTime < b.Outcome.FlightTime }
	case "lowest_delta_v":
		better = func(a, b MissionSummary) bool { return a.Outcome.TotalΔv < b.Outcome.TotalΔv }
	case "least_fuel":
		better = func(a, b MissionSummary) bool { return a.Outcome.Propellant < b.Outcome.Propellant }
	case "most_efficient":
		better = func(a, b MissionSummary) bool { return a.Metrics.PayloadFraction > b.Metrics.PayloadFraction }
	default:
		return MissionSummary{}, fmt.Errorf("unknown metric %q", metric)
	}
	best := c.Missions[0]
	for _, ms := range c.Missions[1:] {
		if better(ms, best) {
			best = ms
		}
	}
	return best, nil
}

// LogSummary emits the batch summary through the logger: per-thruster
// averages and per-target minima.
func (c *Comparison) LogSummary(logger log.Logger) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	logger.Log("level", "info", "subsys", "batch", "missions", len(c.Missions))
	for _, avg := range c.ByThruster() {
		logger.Log("level", "info", "subsys", "batch", "thruster", avg.Thruster,
			"missions", avg.Missions, "avgTime(days)", avg.FlightTimeDays,
			"avgΔv(km/s)", avg.TotalΔv, "avgFuel(kg)", avg.Propellant)
	}
	for _, best := range c.ByTarget() {
		logger.Log("level", "info", "subsys", "batch", "target", best.Target,
			"missions", best.Missions, "fastest(days)", best.MinFlightTimeDays,
			"minΔv(km/s)", best.MinΔv)
	}
}
