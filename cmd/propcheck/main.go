package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"xnamath.theprimeagen.com/pkg/assert"
	checkhistory "xnamath.theprimeagen.com/pkg/check-history"
	"xnamath.theprimeagen.com/pkg/ctrlc"
	prettylog "xnamath.theprimeagen.com/pkg/pretty-log"
	"xnamath.theprimeagen.com/pkg/propcheck"
)

func main() {
	var inline bool
	var samples int
	flag.BoolVar(&inline, "inline", false, "if logging and the report should both go to stdout")
	flag.IntVar(&samples, "samples", 0, "overrides PROPCHECK_SAMPLES")
	flag.Parse()

	godotenv.Load()

	fh := os.Stderr
	if inline {
		fh = os.Stdout
	}

	logger := prettylog.SetProgramLevelPrettyLogger(fh)
	logger = logger.With("process", "propcheck")

	cfg := propcheck.ConfigFromEnv()
	if samples > 0 {
		cfg.Samples = samples
	}
	assert.AddAssertData("config", cfg)
	logger.Info("starting property check", "config", cfg.Dump())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctrlc.HandleCtrlC(cancel)

	report, err := propcheck.Run(ctx, cfg, logger)
	assert.NoError(err, "property check could not complete")

	fmt.Print(report.String())

	// PROPCHECK_HISTORY is a sqlite path or a *.json file, unset skips it
	if path := os.Getenv("PROPCHECK_HISTORY"); path != "" {
		store, err := checkhistory.Open(path)
		assert.NoError(err, "unable to open the run history", "path", path)

		now := time.Now()
		runId := fmt.Sprintf("%d-%d", now.Unix(), cfg.Seed)
		err = store.Record(checkhistory.FromReport(runId, cfg, report, now))
		assert.NoError(err, "unable to record the run", "path", path)
		store.Close()

		logger.Info("recorded run", "runId", runId, "path", path)
	}

	if report.Failed() {
		os.Exit(1)
	}
}
