package lowthrust

import (
	"path/filepath"
	"time"

	"github.com/go-kit/log"
)

// RunSingle propagates one mission and streams its trajectory to the CSV
// file named by the settings. If the output file cannot be created the
// mission is not propagated.
func RunSingle(settings MissionSettings, logger log.Logger) (MissionOutcome, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	traj, err := NewTrajectoryWriter(settings.OutputFilename, time.Now())
	if err != nil {
		logger.Log("level", "error", "subsys", "export", "file", settings.OutputFilename, "err", err)
		return MissionOutcome{}, err
	}
	defer traj.Close()

	mission := NewMission(settings, logger)
	return mission.Propagate(traj), nil
}

// RunBatch propagates each listed settings document sequentially and
// collects the outcomes into a comparison. Trajectories are not written
// during batch runs; only the summary table is kept.
func RunBatch(configPaths []string, logger log.Logger) *Comparison {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	cmp := &Comparison{}
	for _, path := range configPaths {
		settings := LoadSettings(path, logger)
		mission := NewMission(settings, logger)
		outcome := mission.Propagate(nil)
		cmp.Add(MissionSummary{
			Name:        filepath.Base(path),
			Thruster:    settings.Spacecraft.Name,
			From:        settings.Departure.Name,
			To:          settings.Arrival.Name,
			InitialMass: settings.Spacecraft.InitialMass,
			Outcome:     outcome,
			Metrics:     ComputeMetrics(settings.Spacecraft.InitialMass, settings.Arrival.Name, outcome),
		})
	}
	return cmp
}
