// Package settlement defines the ledger-submission seam for payments and a
// simulated backend used until a real chain integration is wired in.
package settlement

import (
	"context"
	"math/rand"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/celopay/celopay-go/types"
)

// Transaction describes a payment committed to the ledger.
type Transaction struct {
	Hash        string    `json:"hash"`
	BlockNumber uint64    `json:"blockNumber"`
	Fee         string    `json:"fee"`
	Timestamp   time.Time `json:"timestamp"`
}

// Backend submits a payment for settlement. This is the integration point
// where a real distributed-ledger submission replaces the Simulator. Errors
// carrying a *types.SDKError keep their code; anything else surfaces as
// UNKNOWN to the caller.
type Backend interface {
	Settle(ctx context.Context, intent *types.PaymentIntent, profile *types.MerchantProfile) (*Transaction, error)
}

// FeeEstimate is the flat cUSD fee quoted for any transfer.
var FeeEstimate = decimal.RequireFromString("0.0007")

const (
	baseBlockNumber  = 28_000_000
	blockNumberRange = 1_000_000
)

// Simulator is a Backend that fabricates a committed transaction after a
// fixed delay. Hashes are keccak-256 digests of fresh UUIDs, so they carry
// the 0x prefix and length of a real transaction hash.
type Simulator struct {
	// Delay simulates confirmation latency before each settlement.
	Delay time.Duration
}

// NewSimulator returns a Simulator with the default confirmation latency.
func NewSimulator() *Simulator {
	return &Simulator{Delay: 2 * time.Second}
}

// Settle implements Backend.
func (s *Simulator) Settle(ctx context.Context, intent *types.PaymentIntent, _ *types.MerchantProfile) (*Transaction, error) {
	if intent == nil {
		return nil, &types.SDKError{
			Code:    types.ErrUnknown,
			Message: "nil payment intent",
		}
	}

	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return nil, &types.SDKError{
				Code:    types.ErrTimeout,
				Message: "settlement timed out",
				Details: ctx.Err().Error(),
			}
		}
	}

	nonce := uuid.New()
	return &Transaction{
		Hash:        hexutil.Encode(crypto.Keccak256(nonce[:])),
		BlockNumber: baseBlockNumber + uint64(rand.Intn(blockNumberRange)),
		Fee:         FeeEstimate.String(),
		Timestamp:   time.Now(),
	}, nil
}
