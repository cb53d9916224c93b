// lowthrust propagates heliocentric low-thrust transfers. With no argument
// it flies the built-in Earth→Mars baseline; given a settings file it flies
// that mission; with --batch it flies every mission listed in a batch file
// and writes a comparison table.
package main

import (
	"fmt"
	"os"

	"github.com/go-kit/log"

	lowthrust "github.com/egreisen-usc/low-thrust-mission-design"
)

const comparisonFile = "results/mission_comparison.csv"

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [settings.yaml | --batch batch.txt]\n", os.Args[0])
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	switch {
	case len(os.Args) == 1:
		runSingle(lowthrust.DefaultSettings(), logger)

	case os.Args[1] == "--batch":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "--batch requires a batch list file")
			usage()
			os.Exit(1)
		}
		runBatch(os.Args[2], logger)

	case len(os.Args) == 2:
		runSingle(lowthrust.LoadSettings(os.Args[1], logger), logger)

	default:
		fmt.Fprintln(os.Stderr, "invalid arguments")
		usage()
		os.Exit(1)
	}
}

func runSingle(settings lowthrust.MissionSettings, logger log.Logger) {
	if _, err := lowthrust.RunSingle(settings, logger); err != nil {
		os.Exit(1)
	}
}

func runBatch(listFile string, logger log.Logger) {
	paths, err := lowthrust.LoadBatchList(listFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read batch list: %s\n", err)
		os.Exit(1)
	}
	cmp := lowthrust.RunBatch(paths, logger)
	cmp.LogSummary(logger)
	for _, metric := range []string{"shortest_time", "lowest_delta_v", "least_fuel", "most_efficient"} {
		if best, err := cmp.FindBest(metric); err == nil {
			logger.Log("level", "info", "subsys", "batch", "best", metric, "mission", best.Name)
		}
	}
	if err := cmp.WriteCSV(comparisonFile); err != nil {
		fmt.Fprintf(os.Stderr, "cannot write comparison: %s\n", err)
		os.Exit(1)
	}
}
