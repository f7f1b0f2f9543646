// Package cli exposes the sales tracker as a command-line application: the
// `run` command performs one tracking pass and the registry commands manage
// subscriptions and token metadata.
package cli

import (
	"context"
	"os"

	"github.com/gabapcia/salestracker/internal/salesjob"

	"github.com/urfave/cli/v3"
)

// Job runs one pass of the sales tracker. salesjob.Service satisfies it.
type Job interface {
	Run(ctx context.Context) (salesjob.RunReport, error)
}

// Registry manages subscriptions and token metadata. registry.Service
// satisfies it.
type Registry interface {
	Subscribe(ctx context.Context, subscriptionID, collection, channelID string) error
	Unsubscribe(ctx context.Context, subscriptionID, collection, channelID string) error
	SetEnabled(ctx context.Context, subscriptionID string, enabled bool) error
	PutMetadata(ctx context.Context, collection, tokenID, title, media string) error
}

// Run initializes and executes the salestracker CLI application.
//
// It registers all available commands, including:
//
//   - `run`: Processes every tracked collection once.
//   - `subscribe` / `unsubscribe`: Adds or removes a subscription target.
//   - `enable` / `disable`: Toggles a subscription.
//   - `metadata`: Records the display data of a token.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, reg Registry, job Job) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "salestracker",
		Description:           "Command-line interface for running the NFT sales tracker and managing its subscribers.",
		Usage:                 "salestracker [command] [flags]",
		Commands: []*cli.Command{
			runJobCommand(job),
			subscribeCommand(reg),
			unsubscribeCommand(reg),
			enableSubscriptionCommand(reg),
			disableSubscriptionCommand(reg),
			putMetadataCommand(reg),
		},
	}

	return app.Run(ctx, os.Args)
}
