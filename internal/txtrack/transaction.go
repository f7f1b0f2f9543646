package txtrack

import (
	"context"
	"encoding/json"
	"time"
)

// Coin is an amount of a given denomination attached to a message, in the
// smallest unit of that denomination (e.g. "2000000" of "orai").
type Coin struct {
	Amount string `json:"amount"`
	Denom  string `json:"denom"`
}

// Message is one operation embedded in a transaction. Msg keeps the
// contract call payload as raw JSON; its shape depends on the contract.
type Message struct {
	Sender string          `json:"sender"`
	Msg    json.RawMessage `json:"msg"`
	Funds  []Coin          `json:"funds"`
}

// Transaction is an indexed marketplace transaction of a collection.
type Transaction struct {
	Hash      string    `json:"tx_hash"`
	Timestamp time.Time `json:"timestamp"`
	Messages  []Message `json:"messages"`
}

// TransactionSource reads a collection's transaction history, newest first.
type TransactionSource interface {
	// FetchTransactions returns page number page (1-indexed) of the
	// collection's transactions, most recent first. A page shorter than the
	// source page size means the bottom of the history was reached.
	FetchTransactions(ctx context.Context, collection string, page int) ([]Transaction, error)
}
