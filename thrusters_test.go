package lowthrust

import "testing"

func TestSpacecraftFromName(t *testing.T) {
	for _, name := range []string{"High-Power Hall", "high-power hall", "HIGH-POWER HALL"} {
		sc, found := SpacecraftFromName(name)
		if !found {
			t.Fatalf("%q not found", name)
		}
		if sc.Thrust != 1000 || sc.Isp != 2750 {
			t.Fatalf("%q resolved to %+v", name, sc)
		}
	}
	if _, found := SpacecraftFromName("warp drive"); found {
		t.Fatal("unknown profile should not resolve")
	}
}

func TestPresetMasses(t *testing.T) {
	for _, sc := range []SpacecraftParameters{LowPowerHall, HighPowerHall, LowPowerIon, HighPowerIon} {
		if sc.InitialMass != 10000 {
			t.Fatalf("%s default wet mass is %f", sc.Name, sc.InitialMass)
		}
	}
}
