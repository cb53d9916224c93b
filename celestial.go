package lowthrust

import "strings"

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
	// μSun is the Sun's gravitational parameter (km³/s²).
	μSun = 1.32712440018e11
)

// CelestialObject defines a Sun-orbiting body of the transfer catalog. The
// catalog only carries the mean heliocentric radius: departure and arrival
// orbits are modeled as circular and coplanar.
type CelestialObject struct {
	Name string
	R    float64 // heliocentric orbital radius (km)
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.R == b.R
}

// CelestialObjectFromString returns the catalog body matching the provided
// name, case-insensitively. Unrecognized names fall back to Earth.
func CelestialObjectFromString(name string) CelestialObject {
	switch strings.ToLower(name) {
	case "mercury":
		return Mercury
	case "venus":
		return Venus
	case "earth":
		return Earth
	case "mars":
		return Mars
	case "jupiter":
		return Jupiter
	case "saturn":
		return Saturn
	case "uranus":
		return Uranus
	case "neptune":
		return Neptune
	case "pluto":
		return Pluto
	default:
		return Earth
	}
}

/* Definitions */

// Mercury is too close to the Sun for a sane low-thrust spiral.
var Mercury = CelestialObject{"Mercury", 5.7909e7}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", 1.08208e8}

// Earth is home.
var Earth = CelestialObject{"Earth", 1.496e8}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 2.2794e8}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 7.7857e8}

// Saturn floats and that's really cool.
var Saturn = CelestialObject{"Saturn", 1.4336e9}

// Uranus is no joke.
var Uranus = CelestialObject{"Uranus", 2.8725e9}

// Neptune is far.
var Neptune = CelestialObject{"Neptune", 4.4951e9}

// Pluto is not a planet but stays in the catalog anyway.
var Pluto = CelestialObject{"Pluto", 5.9130e9}
