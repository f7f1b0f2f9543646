// Package sales recognizes marketplace sales inside indexed transactions and
// describes the metadata used to present them.
package sales

import (
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/salestracker/internal/txtrack"

	sdkmath "cosmossdk.io/math"
	"github.com/tidwall/gjson"
)

var (
	// ErrMalformedSale is returned when a buy message lacks the data needed
	// to describe the sale (funds, token id, or a valid amount).
	ErrMalformedSale = errors.New("malformed sale message")

	// ErrMetadataNotFound is returned by metadata stores when a token has no
	// metadata recorded.
	ErrMetadataNotFound = errors.New("nft metadata not found")
)

// buyTokenPath is the marketplace contract call that settles a sale.
const buyTokenPath = "buy_token"

// Event is a sale parsed from a buy message.
type Event struct {
	Collection string
	TxHash     string
	TokenID    string
	Buyer      string
	Amount     sdkmath.Int // in the smallest unit of Denom
	Denom      string
	Timestamp  time.Time
}

// Metadata is the display data of a token.
type Metadata struct {
	Title string `json:"title" validate:"required"`
	Media string `json:"media"`
}

// Extract returns the sales carried by tx, in message order. Messages that
// are not buy calls are skipped.
func Extract(collection string, tx txtrack.Transaction) ([]Event, error) {
	var events []Event
	for i, msg := range tx.Messages {
		buy := gjson.GetBytes(msg.Msg, buyTokenPath)
		if !buy.Exists() {
			continue
		}

		event, err := parseBuy(collection, tx, msg, buy)
		if err != nil {
			return nil, fmt.Errorf("transaction %s message %d: %w", tx.Hash, i, err)
		}
		events = append(events, event)
	}

	return events, nil
}

func parseBuy(collection string, tx txtrack.Transaction, msg txtrack.Message, buy gjson.Result) (Event, error) {
	tokenID := buy.Get("token_id")
	if !tokenID.Exists() || tokenID.String() == "" {
		return Event{}, fmt.Errorf("%w: missing token_id", ErrMalformedSale)
	}

	if len(msg.Funds) == 0 {
		return Event{}, fmt.Errorf("%w: no funds attached", ErrMalformedSale)
	}
	payment := msg.Funds[0]

	amount, ok := sdkmath.NewIntFromString(payment.Amount)
	if !ok || amount.IsNegative() {
		return Event{}, fmt.Errorf("%w: invalid amount %q", ErrMalformedSale, payment.Amount)
	}

	return Event{
		Collection: collection,
		TxHash:     tx.Hash,
		TokenID:    tokenID.String(),
		Buyer:      msg.Sender,
		Amount:     amount,
		Denom:      payment.Denom,
		Timestamp:  tx.Timestamp,
	}, nil
}
