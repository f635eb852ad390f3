package celopay

import (
	"github.com/celopay/celopay-go/logger"
	"github.com/celopay/celopay-go/merchant"
	"github.com/celopay/celopay-go/metrics"
	"github.com/celopay/celopay-go/settlement"
)

type Option func(*SDK)

func WithLogger(l logger.Logger) Option {
	return func(s *SDK) {
		s.log = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(s *SDK) {
		s.metrics = r
	}
}

// WithProfileSource replaces the mock identity directory with a real one.
func WithProfileSource(src merchant.ProfileSource) Option {
	return func(s *SDK) {
		s.source = src
	}
}

// WithProfileCache replaces the default in-memory profile cache, e.g. with
// merchant.NewRedisCache for shared deployments.
func WithProfileCache(c merchant.ProfileCache) Option {
	return func(s *SDK) {
		s.cache = c
	}
}

// WithSettlementBackend replaces the payment simulator with a real ledger
// integration.
func WithSettlementBackend(b settlement.Backend) Option {
	return func(s *SDK) {
		s.backend = b
	}
}
