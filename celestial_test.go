package lowthrust

import "testing"

func TestCelestialObjectFromString(t *testing.T) {
	for _, name := range []string{"Mars", "mars", "MARS"} {
		if body := CelestialObjectFromString(name); !body.Equals(Mars) {
			t.Fatalf("%q resolved to %s", name, body)
		}
	}
	if body := CelestialObjectFromString("Alpha Centauri Bb"); !body.Equals(Earth) {
		t.Fatalf("unknown body should fall back to Earth, got %s", body)
	}
}

func TestCatalogRadiiOrdering(t *testing.T) {
	bodies := []CelestialObject{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}
	for i := 1; i < len(bodies); i++ {
		if bodies[i].R <= bodies[i-1].R {
			t.Fatalf("%s radius %e not beyond %s radius %e", bodies[i].Name, bodies[i].R, bodies[i-1].Name, bodies[i-1].R)
		}
	}
}

func TestEarthRadius(t *testing.T) {
	if Earth.R != 1.496e8 {
		t.Fatalf("Earth heliocentric radius changed: %e", Earth.R)
	}
}
