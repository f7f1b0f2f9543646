package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

// targetFlags are the flags naming a subscription target.
func targetFlags(action string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "subscription",
			Usage:    "Subscription id (e.g., the subscriber's Discord guild id)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "collection",
			Usage:    "NFT collection contract address to " + action,
			Required: true,
		},
		&cli.StringFlag{
			Name:     "channel",
			Usage:    "Discord channel id receiving the notifications",
			Required: true,
		},
	}
}

// subscribeCommand returns a CLI command that routes a collection's sales to
// a Discord channel.
//
// Usage example:
//
//	salestracker subscribe --subscription 1100 --collection orai1abc... --channel 1234
func subscribeCommand(reg Registry) *cli.Command {
	return &cli.Command{
		Name:        "subscribe",
		Description: "Route the sales of a collection to a Discord channel. The subscription is created when needed.",
		Usage:       "Adds a subscription target. Must provide subscription, collection and channel.",
		Flags:       targetFlags("track"),
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				subscription = c.String("subscription")
				collection   = c.String("collection")
				channel      = c.String("channel")
			)

			return reg.Subscribe(ctx, subscription, collection, channel)
		},
	}
}

// unsubscribeCommand returns a CLI command that stops routing a collection's
// sales to a Discord channel.
//
// Usage example:
//
//	salestracker unsubscribe --subscription 1100 --collection orai1abc... --channel 1234
func unsubscribeCommand(reg Registry) *cli.Command {
	return &cli.Command{
		Name:        "unsubscribe",
		Description: "Stop routing the sales of a collection to a Discord channel.",
		Usage:       "Removes a subscription target. Must provide subscription, collection and channel.",
		Flags:       targetFlags("stop tracking"),
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				subscription = c.String("subscription")
				collection   = c.String("collection")
				channel      = c.String("channel")
			)

			return reg.Unsubscribe(ctx, subscription, collection, channel)
		},
	}
}

func setEnabledCommand(reg Registry, name string, enabled bool, description string) *cli.Command {
	return &cli.Command{
		Name:        name,
		Description: description,
		Usage:       "Must provide the subscription id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "subscription",
				Usage:    "Subscription id",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return reg.SetEnabled(ctx, c.String("subscription"), enabled)
		},
	}
}

// enableSubscriptionCommand returns a CLI command that resumes the
// deliveries of a subscription.
//
// Usage example:
//
//	salestracker enable --subscription 1100
func enableSubscriptionCommand(reg Registry) *cli.Command {
	return setEnabledCommand(reg, "enable", true, "Resume the deliveries of every target of a subscription.")
}

// disableSubscriptionCommand returns a CLI command that pauses the
// deliveries of a subscription without deleting its targets.
//
// Usage example:
//
//	salestracker disable --subscription 1100
func disableSubscriptionCommand(reg Registry) *cli.Command {
	return setEnabledCommand(reg, "disable", false, "Pause the deliveries of every target of a subscription.")
}

// putMetadataCommand returns a CLI command that records the title and media
// shown in a token's sale notifications.
//
// Usage example:
//
//	salestracker metadata --collection orai1abc... --token 7 --title "Honor #7" --media ipfs://...
func putMetadataCommand(reg Registry) *cli.Command {
	return &cli.Command{
		Name:        "metadata",
		Description: "Record the title and media displayed in the sale notifications of a token.",
		Usage:       "Stores token metadata. Must provide collection, token and title.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "collection",
				Usage:    "NFT collection contract address",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "token",
				Usage:    "Token id within the collection",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "title",
				Usage:    "Display name of the token",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "media",
				Usage: "Image URL shown in the notification",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				collection = c.String("collection")
				token      = c.String("token")
				title      = c.String("title")
				media      = c.String("media")
			)

			return reg.PutMetadata(ctx, collection, token, title, media)
		},
	}
}
