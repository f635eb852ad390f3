package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// DefaultTimeout bounds the merchant-lookup and settlement steps when the
// config does not specify one.
const DefaultTimeout = 30 * time.Second

// ZeroContract is the placeholder settlement contract address used until a
// real deployment is configured.
const ZeroContract = "0x0000000000000000000000000000000000000000"

// Config contains global configuration for the SDK
type Config struct {
	Network            Network       `json:"network" validate:"required,oneof=mainnet alfajores"`
	RPCUrl             string        `json:"rpcUrl,omitempty" validate:"omitempty,url"`
	SettlementContract string        `json:"settlementContract,omitempty" validate:"omitempty,startswith=0x"`
	Timeout            time.Duration `json:"timeout,omitempty"`
}

// ApplyDefaults fills unset fields based on the selected network.
func (c *Config) ApplyDefaults() {
	if c.RPCUrl == "" {
		c.RPCUrl = c.Network.DefaultRPCUrl()
	}
	if c.SettlementContract == "" {
		c.SettlementContract = ZeroContract
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}

// Validate checks the config using struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return &SDKError{
			Code:    ErrConfigError,
			Message: fmt.Sprintf("invalid SDK config: %v", err),
		}
	}
	return nil
}
