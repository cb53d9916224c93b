package lowthrust

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// trajectoryHeader matches the column order of WriteState.
const trajectoryHeader = "time(s),x(km),y(km),vx(km/s),vy(km/s),r(km),v(km/s),m(kg),ra(km),rp(km),e,a(km)"

// TrajectoryWriter streams per-step samples of a single propagation run to a
// CSV file. Its lifetime is scoped to that one run: create it, hand it to
// Propagate, and close it unconditionally when the call returns.
type TrajectoryWriter struct {
	f *os.File
	w *bufio.Writer
}

// NewTrajectoryWriter creates the output file (including parent
// directories) and writes the comment preamble and column header. The epoch
// is recorded as a Julian date.
func NewTrajectoryWriter(filename string, epoch time.Time) (*TrajectoryWriter, error) {
	if dir := filepath.Dir(filename); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# Creation date (UTC): %s\n", time.Now().UTC().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "# Departure epoch (JD): %.6f\n", julian.TimeToJD(epoch.UTC()))
	fmt.Fprintln(w, trajectoryHeader)
	return &TrajectoryWriter{f: f, w: w}, nil
}

// WriteState appends one trajectory row. Write errors surface on Close.
func (t *TrajectoryWriter) WriteState(s State, el OrbitalElements) {
	fmt.Fprintf(t.w, "%e,%e,%e,%e,%e,%e,%e,%.2f,%e,%e,%f,%e\n",
		s.T, s.R[0], s.R[1], s.V[0], s.V[1], s.Radius(), s.Speed(), s.Mass,
		el.Apoapsis(), el.Periapsis(), el.Eccentricity(), el.SemiMajorAxis())
}

// Close flushes and releases the file.
func (t *TrajectoryWriter) Close() error {
	flushErr := t.w.Flush()
	if closeErr := t.f.Close(); closeErr != nil {
		return closeErr
	}
	return flushErr
}

// comparisonHeader matches the row order of WriteCSV.
const comparisonHeader = "Mission,Thruster,From,To,FlightTime(days),DeltaV(km/s),FuelConsumed(kg),FinalMass(kg),Apoapsis(km),Periapsis(km),Eccentricity,SemiMajorAxis(km),PayloadFraction,EffectiveISP(s),FuelEfficiency(km/s/kg),TransferEfficiency(%)"

// WriteCSV writes the batch comparison table, one row per mission.
func (c *Comparison) WriteCSV(filename string) error {
	if dir := filepath.Dir(filename); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, comparisonHeader)
	for _, ms := range c.Missions {
		a, e, _, _, _, _ := ms.Outcome.FinalElements.Elements()
		fmt.Fprintf(w, "%s,%s,%s,%s,%.2f,%.2f,%.2f,%.2f,%e,%e,%.6f,%e,%.4f,%.1f,%.3f,%.1f\n",
			ms.Name, ms.Thruster, ms.From, ms.To,
			ms.Outcome.FlightTimeDays(), ms.Outcome.TotalΔv,
			ms.Outcome.Propellant, ms.Outcome.FinalMass,
			ms.Outcome.FinalElements.Apoapsis(), ms.Outcome.FinalElements.Periapsis(),
			e, a,
			ms.Metrics.PayloadFraction, ms.Metrics.EffectiveIsp,
			ms.Metrics.FuelEfficiency, ms.Metrics.TransferEfficiency)
	}
	return w.Flush()
}
