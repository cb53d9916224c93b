package lowthrust

import (
	"bufio"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/spf13/viper"
)

// MissionSettings gathers everything a propagation run needs. Every field
// has a default: a partially specified settings document silently keeps the
// defaults for whatever it omits.
type MissionSettings struct {
	Departure      CelestialObject
	Arrival        CelestialObject
	Spacecraft     SpacecraftParameters
	Method         string  // integration method, "rk4" or "euler"
	Timestep       float64 // integration timestep (s)
	MaxFlightTime  float64 // hard propagation ceiling (s)
	CoastThreshold float64 // coast when apoapsis ≥ threshold × arrival radius
	Direction      ThrustDirection
	OutputFilename string
}

// DefaultSettings returns the built-in Earth→Mars baseline.
func DefaultSettings() MissionSettings {
	return MissionSettings{
		Departure:      Earth,
		Arrival:        Mars,
		Spacecraft:     HighPowerHall,
		Method:         "rk4",
		Timestep:       10000,
		MaxFlightTime:  7.884e8, // ~25 years
		CoastThreshold: 0.999,
		Direction:      Prograde,
		OutputFilename: "results/trajectory.csv",
	}
}

// NewPropagator returns the propagator selected by the settings.
func (s MissionSettings) NewPropagator() Propagator {
	return NewPropagator(s.Method)
}

// LoadSettings reads a mission settings document (YAML or anything else
// viper understands) field by field on top of the defaults. A document that
// cannot be read at all is reported through the logger and yields the
// all-default settings; no document is ever rejected outright.
func LoadSettings(path string, logger log.Logger) MissionSettings {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	settings := DefaultSettings()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		logger.Log("level", "error", "subsys", "conf", "file", path, "err", err)
		return settings
	}

	if v.IsSet("mission.initial_mass_kg") {
		settings.Spacecraft.InitialMass = v.GetFloat64("mission.initial_mass_kg")
	}
	if v.IsSet("mission.departure_body") {
		settings.Departure = CelestialObjectFromString(v.GetString("mission.departure_body"))
	}
	if v.IsSet("mission.arrival_body") {
		settings.Arrival = CelestialObjectFromString(v.GetString("mission.arrival_body"))
	}

	if v.IsSet("spacecraft.name") {
		name := v.GetString("spacecraft.name")
		if sc, found := SpacecraftFromName(name); found {
			settings.Spacecraft.Name = sc.Name
			settings.Spacecraft.Thrust = sc.Thrust
			settings.Spacecraft.Isp = sc.Isp
		} else {
			settings.Spacecraft.Name = name
			logger.Log("level", "warning", "subsys", "conf", "message", "unknown spacecraft profile, keeping default thrust/Isp", "name", name)
		}
	}
	// Explicit overrides win over the preset selected by name.
	if v.IsSet("spacecraft.thrust_mn") {
		settings.Spacecraft.Thrust = v.GetFloat64("spacecraft.thrust_mn")
	}
	if v.IsSet("spacecraft.isp_s") {
		settings.Spacecraft.Isp = v.GetFloat64("spacecraft.isp_s")
	}

	if v.IsSet("integration.method") {
		settings.Method = v.GetString("integration.method")
	}
	if v.IsSet("integration.timestep_s") {
		settings.Timestep = v.GetFloat64("integration.timestep_s")
	}
	if v.IsSet("integration.max_flight_time_s") {
		settings.MaxFlightTime = v.GetFloat64("integration.max_flight_time_s")
	}

	if v.IsSet("propagation.coast_threshold") {
		settings.CoastThreshold = v.GetFloat64("propagation.coast_threshold")
	}
	if v.IsSet("propagation.thrust_direction") {
		if strings.EqualFold(v.GetString("propagation.thrust_direction"), "retrograde") {
			settings.Direction = Retrograde
		} else {
			settings.Direction = Prograde
		}
	}

	if v.IsSet("output.filename") {
		settings.OutputFilename = v.GetString("output.filename")
	}

	return settings
}

// LoadBatchList reads a batch list file: one settings document path per
// line, blank lines and #-comments skipped, surrounding whitespace trimmed.
func LoadBatchList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	return paths, scanner.Err()
}
