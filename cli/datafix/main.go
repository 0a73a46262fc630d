package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"github.com/fake-useragent/datafix/pkg/dataset"
	"github.com/fake-useragent/datafix/pkg/e"
	"github.com/fake-useragent/datafix/pkg/normalize"
	"github.com/fake-useragent/datafix/pkg/s"
	"github.com/fake-useragent/datafix/pkg/utils/logging"
	"github.com/fake-useragent/datafix/pkg/verify"
)

type FixCmd struct {
	Source string `arg:"" optional:"" default:"data/browsers.json" help:"Original JSONL dataset"`
	Dest   string `arg:"" optional:"" default:"data/browsers_fixed.json" help:"Destination for the fixed dataset"`
}

func (f *FixCmd) Run() error {
	records, err := dataset.LoadFile(f.Source)
	if err != nil {
		return err
	}
	before := normalize.Stats(records)

	fixed, changed, err := normalize.Dataset(records)
	if err != nil {
		return err
	}
	after := normalize.Stats(fixed)

	if err = dataset.WriteFile(f.Dest, fixed); err != nil {
		return err
	}

	logStats("before", before)
	logStats("after", after)

	ratio := 0.0
	if before.Total > 0 {
		ratio = float64(changed) / float64(before.Total) * 100
	}
	log.Info().Int("fixed", changed).
		Str("fix_ratio", fmt.Sprintf("%.1f%%", ratio)).
		Str("dest", f.Dest).
		Msg("Fix complete")

	report, err := verify.File(f.Dest, len(records))
	if err != nil {
		return err
	}
	logReport(report)
	if !report.OK() {
		return e.ErrVerifyFailed
	}
	return nil
}

type VerifyCmd struct {
	Path   string `arg:"" optional:"" default:"data/browsers_fixed.json" help:"Fixed JSONL dataset to check"`
	Expect int    `default:"-1" help:"Expected record count, negative accepts whatever the file holds"`
}

func (v *VerifyCmd) Run() error {
	report, err := verify.File(v.Path, v.Expect)
	if err != nil {
		return err
	}
	logReport(report)
	if !report.OK() {
		return e.ErrVerifyFailed
	}
	log.Info().Str("path", v.Path).Msg("All checks passed")
	return nil
}

var cli struct {
	LogLevel string `env:"LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level"`

	Fix    FixCmd    `cmd:"" help:"Strip trailing whitespace from useragent values and write a fixed dataset"`
	Verify VerifyCmd `cmd:"" help:"Re-check an already fixed dataset"`
}

func logStats(stage string, stats s.DatasetStats) {
	log.Info().Str("stage", stage).
		Int("total", stats.Total).
		Int("trailing", stats.Trailing).
		Int("leading", stats.Leading).
		Int("double_space", stats.DoubleSpace).
		Int("unique", stats.Unique).
		Int("duplicates", stats.Duplicates).
		Msg("Dataset stats")
}

func logReport(report verify.Report) {
	for _, check := range report.Checks {
		event := log.Info()
		if !check.OK() {
			event = log.Error()
		}
		event.Str("check", check.Name).
			Int("passed", check.Passed).
			Int("failed", check.Failed).
			Msg("Verification check")

		for _, problem := range check.Problems {
			log.Warn().Str("check", check.Name).Msg(problem)
		}
	}
}

func main() {
	ctx := kong.Parse(&cli)
	logging.SetupLogging(cli.LogLevel)

	if err := ctx.Run(); err != nil {
		log.Fatal().Err(err).Msg("Run failed")
	}
}
