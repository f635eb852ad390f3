package merchant

import (
	"context"
	"strings"
	"time"

	"github.com/celopay/celopay-go/types"
)

// MockSource is a ProfileSource stand-in for the identity directory
// integration. Addresses containing "cafe" (case-insensitive) resolve to a
// verified demo profile; every other address resolves to an unverified
// placeholder, so "not found" stays distinct from "known but unverified".
type MockSource struct {
	// Delay simulates directory latency before each lookup.
	Delay time.Duration
}

// NewMockSource returns a source with the default simulated latency.
func NewMockSource() *MockSource {
	return &MockSource{Delay: 500 * time.Millisecond}
}

// Lookup implements ProfileSource.
func (m *MockSource) Lookup(ctx context.Context, address string) (*types.MerchantProfile, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if strings.Contains(strings.ToLower(address), "cafe") {
		return &types.MerchantProfile{
			Address:   address,
			Name:      "Celo Cafe",
			Image:     "ipfs://QmXxxx...",
			Farcaster: "@celocafe",
			Website:   "https://celocafe.example",
			Verified:  true,
		}, nil
	}

	return &types.MerchantProfile{
		Address:  address,
		Name:     "Unknown Merchant",
		Verified: false,
	}, nil
}
