// Package notification renders sale events as Discord embed messages.
package notification

import (
	"fmt"
	"strings"

	"github.com/gabapcia/salestracker/internal/sales"

	sdkmath "cosmossdk.io/math"
)

const (
	// embedColor is Discord's green.
	embedColor = 5763719

	embedDescription = "New sale occurred!"
	footerText       = "Built by @honorais\n"

	// priceDecimals is the fixed-point scale of on-chain amounts (1e6).
	priceDecimals = 6
)

// Message is the body of a Discord "create message" request.
type Message struct {
	Content string  `json:"content"`
	Embeds  []Embed `json:"embeds"`
}

// Embed is a Discord rich embed.
type Embed struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Color       int     `json:"color"`
	Fields      []Field `json:"fields"`
	Footer      *Footer `json:"footer,omitempty"`
	Image       *Image  `json:"image,omitempty"`
}

type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type Footer struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

type Image struct {
	URL string `json:"url"`
}

// Build renders a sale as a message. It has no side effects: the same event
// and metadata always produce the same message.
func Build(event sales.Event, metadata sales.Metadata) Message {
	embed := Embed{
		Title:       "NEW SALE " + metadata.Title,
		Description: embedDescription,
		Color:       embedColor,
		Fields: []Field{
			{Name: "**NFT**", Value: metadata.Title, Inline: true},
			{Name: "**Price**", Value: FormatPrice(event.Amount, event.Denom), Inline: true},
			{Name: "**WEN**", Value: fmt.Sprintf("<t:%d>", event.Timestamp.Unix()), Inline: true},
			{Name: "**Buyer**", Value: event.Buyer, Inline: true},
		},
		Footer: &Footer{Text: footerText},
	}

	if metadata.Media != "" {
		// Discord rejects image URLs with a raw fragment marker.
		embed.Image = &Image{URL: strings.ReplaceAll(metadata.Media, "#", "%23")}
	}

	return Message{
		Content: "",
		Embeds:  []Embed{embed},
	}
}

// FormatPrice renders amount scaled down by 1e6 as an exact decimal with at
// least one fractional digit, followed by the denomination: 2000000 "usd"
// becomes "2.0 usd" and 1234500 "orai" becomes "1.2345 orai".
func FormatPrice(amount sdkmath.Int, denom string) string {
	if amount.IsNil() {
		amount = sdkmath.ZeroInt()
	}

	scale := sdkmath.NewInt(1_000_000)
	whole := amount.Quo(scale)
	frac := amount.Mod(scale).String()

	frac = strings.Repeat("0", priceDecimals-len(frac)) + frac
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		frac = "0"
	}

	return fmt.Sprintf("%s.%s %s", whole, frac, denom)
}
