package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// runJobCommand returns a CLI command that performs one tracking pass over
// every collection some enabled subscription tracks.
//
// Usage example:
//
//	salestracker run
//	salestracker run --strict
//
// SIGINT or SIGTERM cancel the pass; collections not yet committed keep
// their watermark.
func runJobCommand(job Job) *cli.Command {
	return &cli.Command{
		Name:        "run",
		Description: "Finds new sales of every tracked collection, notifies the subscribed channels and advances the watermarks.",
		Usage:       "Runs one tracking pass. Exits with an error only when the run cannot proceed, unless --strict is set.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Also fail when any collection pass failed",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := job.Run(ctx)
			if err != nil {
				return err
			}

			if failed := report.Failed(); c.Bool("strict") && len(failed) > 0 {
				return fmt.Errorf("%d of %d collections failed", len(failed), len(report.Collections))
			}

			return nil
		},
	}
}
