package lowthrust

import "strings"

// SpacecraftParameters defines the propulsion profile of a mission vehicle.
// Immutable for the duration of a mission.
type SpacecraftParameters struct {
	Name        string
	Thrust      float64 // thrust magnitude (mN)
	Isp         float64 // specific impulse (s)
	InitialMass float64 // wet mass at departure (kg)
}

/* Available electric propulsion profiles */

// LowPowerHall is a small Hall-effect thruster.
var LowPowerHall = SpacecraftParameters{"Low-Power Hall", 60, 1500, 10000}

// HighPowerHall is in the HERMeS demonstrator class.
var HighPowerHall = SpacecraftParameters{"High-Power Hall", 1000, 2750, 10000}

// LowPowerIon is a gridded ion thruster.
var LowPowerIon = SpacecraftParameters{"Low-Power Ion", 250, 4000, 10000}

// HighPowerIon trades thrust for a very high specific impulse.
var HighPowerIon = SpacecraftParameters{"High-Power Ion", 450, 9000, 10000}

// SpacecraftFromName returns the preset profile matching the provided name,
// case-insensitively. The second return value reports whether the name was
// found in the catalog.
func SpacecraftFromName(name string) (SpacecraftParameters, bool) {
	switch strings.ToLower(name) {
	case "low-power hall":
		return LowPowerHall, true
	case "high-power hall":
		return HighPowerHall, true
	case "low-power ion":
		return LowPowerIon, true
	case "high-power ion":
		return HighPowerIon, true
	}
	return SpacecraftParameters{}, false
}
