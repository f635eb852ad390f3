// Package celopay implements a client SDK for QR-initiated cUSD payments on
// Celo: it decodes celo: payment URIs, resolves merchant profiles through a
// cached directory, executes payments through a pluggable settlement
// backend, and emits lifecycle events along the way.
package celopay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/celopay/celopay-go/events"
	"github.com/celopay/celopay-go/logger"
	"github.com/celopay/celopay-go/merchant"
	"github.com/celopay/celopay-go/metrics"
	"github.com/celopay/celopay-go/qr"
	"github.com/celopay/celopay-go/settlement"
	"github.com/celopay/celopay-go/types"
)

// SDK is the main entry point. Construct one with New and pass it by
// reference to consumers; there is no package-level instance.
type SDK struct {
	config  types.Config
	log     logger.Logger
	metrics metrics.Recorder

	bus       *events.Bus
	directory *merchant.Directory
	backend   settlement.Backend

	// set by options, consumed during wiring
	source merchant.ProfileSource
	cache  merchant.ProfileCache
}

// New creates an SDK instance with the given configuration. Unset config
// fields default based on the network; an invalid config is rejected here
// rather than surfacing later in the pipeline.
func New(config types.Config, opts ...Option) (*SDK, error) {
	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &SDK{
		config:  config,
		log:     logger.NoopLogger{},
		metrics: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.source == nil {
		s.source = merchant.NewMockSource()
	}
	if s.cache == nil {
		s.cache = merchant.NewMemoryCache(0, 0)
	}
	if s.backend == nil {
		s.backend = settlement.NewSimulator()
	}

	s.bus = events.NewBus(s.log)
	s.directory = merchant.NewDirectory(s.source, s.cache, s.log, s.metrics)
	return s, nil
}

// InitiatePayment runs the full pipeline for a scanned QR code: decode,
// resolve the merchant, settle, notify. It never returns an error; every
// failure surfaces as a PaymentResult with a failure status and a populated
// Error field. Exactly one payment_initiated and one terminal event are
// emitted per call.
func (s *SDK) InitiatePayment(ctx context.Context, qrData string) *types.PaymentResult {
	start := time.Now()
	s.emit(types.EventPaymentInitiated, types.InitiatedData{QRData: qrData})

	intent, err := qr.Decode(qrData)
	if err != nil {
		return s.fail(nil, err)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	profile := s.directory.GetProfile(lookupCtx, intent.MerchantAddress)
	cancel()

	// An unknown merchant is tolerated; the payment proceeds without a
	// profile.
	s.emit(types.EventPaymentPending, types.PendingData{Intent: *intent, Profile: profile})

	settleCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	tx, err := s.backend.Settle(settleCtx, intent, profile)
	cancel()
	if err != nil {
		return s.fail(intent, err)
	}

	result := s.buildSuccess(intent, profile, tx)
	s.emit(types.EventPaymentConfirmed, types.ConfirmedData{Result: result})
	s.metrics.ObserveLatency("initiate_payment", time.Since(start), s.labels())
	s.log.Info("payment confirmed", map[string]any{
		"merchant": intent.MerchantAddress,
		"amount":   intent.Amount,
		"txHash":   tx.Hash,
	})
	return result
}

// GetMerchantProfile resolves a merchant profile directly, consulting the
// directory cache first. A nil return means not found or lookup failure.
func (s *SDK) GetMerchantProfile(ctx context.Context, address string) *types.MerchantProfile {
	lookupCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()
	return s.directory.GetProfile(lookupCtx, address)
}

// ClearMerchantCache drops all cached merchant profiles.
func (s *SDK) ClearMerchantCache(ctx context.Context) {
	s.directory.ClearCache(ctx)
}

// Subscribe registers a lifecycle event callback and returns its disposer.
func (s *SDK) Subscribe(cb types.EventCallback) func() {
	return s.bus.Subscribe(cb)
}

// GenerateQRData builds the QR payload for a merchant payment request.
func (s *SDK) GenerateQRData(merchantAddress, amount, memo string) string {
	return qr.Encode(merchantAddress, amount, memo)
}

// ParseQRData decodes QR text into a payment intent without executing it.
func (s *SDK) ParseQRData(text string) (*types.PaymentIntent, error) {
	return qr.Decode(text)
}

// EstimateFee quotes the transfer fee for an amount. It is side-effect-free
// and independent of network or merchant state; today the quote is the flat
// settlement fee.
func (s *SDK) EstimateFee(_ context.Context, amount string) (string, error) {
	if _, err := decimal.NewFromString(amount); err != nil {
		return "", &types.SDKError{
			Code:    types.ErrUnknown,
			Message: fmt.Sprintf("invalid amount %q", amount),
		}
	}
	return settlement.FeeEstimate.String(), nil
}

// Config returns a copy of the resolved configuration.
func (s *SDK) Config() types.Config {
	return s.config
}

func (s *SDK) buildSuccess(intent *types.PaymentIntent, profile *types.MerchantProfile, tx *settlement.Transaction) *types.PaymentResult {
	merchantName := intent.MerchantAddress
	shareName := "merchant"
	var farcaster string
	if profile != nil {
		if profile.Name != "" {
			merchantName = profile.Name
			shareName = profile.Name
		}
		farcaster = profile.Farcaster
	}

	receipt := &types.PaymentReceipt{
		Title:             "Payment Receipt",
		Amount:            fmt.Sprintf("%s %s", intent.Amount, intent.Currency),
		MerchantName:      merchantName,
		MerchantFarcaster: farcaster,
		Date:              tx.Timestamp.UTC().Format(time.RFC3339),
		TxHash:            tx.Hash,
		ExplorerURL:       s.config.Network.ExplorerTxURL(tx.Hash),
		ShareText:         fmt.Sprintf("Paid %s %s to %s", intent.Amount, intent.Currency, shareName),
	}

	return &types.PaymentResult{
		Status:          types.StatusSuccess,
		TransactionHash: tx.Hash,
		BlockNumber:     tx.BlockNumber,
		Timestamp:       tx.Timestamp.Unix(),
		Merchant:        types.MerchantRef{Address: intent.MerchantAddress, Profile: profile},
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		Fee:             tx.Fee,
		Receipt:         receipt,
	}
}

// fail converts any pipeline error into a terminal FAILED result. Errors
// that already carry an SDK error code keep it; everything else is reported
// under UNKNOWN.
func (s *SDK) fail(intent *types.PaymentIntent, err error) *types.PaymentResult {
	sdkErr := &types.SDKError{}
	if !errors.As(err, &sdkErr) {
		sdkErr = &types.SDKError{Code: types.ErrUnknown, Message: err.Error()}
	}

	result := &types.PaymentResult{
		Status:   types.StatusFailed,
		Amount:   "0",
		Currency: types.CurrencyCUSD,
		Error:    sdkErr,
	}
	if intent != nil {
		result.Merchant.Address = intent.MerchantAddress
		result.Amount = intent.Amount
		result.Currency = intent.Currency
	}

	s.emit(types.EventPaymentFailed, types.FailedData{Result: result})
	s.log.Warn("payment failed", map[string]any{
		"code":  sdkErr.Code,
		"error": sdkErr.Message,
	})
	return result
}

func (s *SDK) emit(t types.EventType, data types.EventData) {
	s.metrics.IncCounter(string(t), s.labels())
	s.bus.Publish(types.NewEvent(t, data))
}

func (s *SDK) labels() map[string]string {
	return map[string]string{"network": s.config.Network.String()}
}
