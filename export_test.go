package lowthrust

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestTrajectoryWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "trajectory.csv")
	traj, err := NewTrajectoryWriter(path, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}

	s := State{R: Vector3{Earth.R, 0, 0}, V: Vector3{0, 29.78, 0}, Mass: 10000}
	el := ComputeElementsFromRV(s.R, s.V, μSun)
	traj.WriteState(s, el)
	s.T = 10000
	traj.WriteState(s, el)
	if err := traj.Close(); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 5 {
		t.Fatalf("wrote %d lines, expected preamble + header + 2 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "# Creation date (UTC):") {
		t.Fatalf("first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "# Departure epoch (JD):") {
		t.Fatalf("second line %q", lines[1])
	}
	if lines[2] != trajectoryHeader {
		t.Fatalf("header %q", lines[2])
	}
	if cols := strings.Split(lines[3], ","); len(cols) != 12 {
		t.Fatalf("row has %d columns", len(cols))
	}
}

func TestComparisonWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "comparison.csv")
	if err := batchFixture().WriteCSV(path); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 4 {
		t.Fatalf("wrote %d lines, expected header + 3 rows", len(lines))
	}
	if lines[0] != comparisonHeader {
		t.Fatalf("header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "mars_hall.yaml,High-Power Hall,Earth,Mars,") {
		t.Fatalf("first row %q", lines[1])
	}
}
