package types

// Network represents supported Celo networks
type Network string

const (
	NetworkMainnet   Network = "mainnet"
	NetworkAlfajores Network = "alfajores" // testnet
)

// Currency represents supported stablecoins. Only cUSD is accepted today.
type Currency string

const (
	CurrencyCUSD Currency = "cUSD"
)

// AddressPrefix is the prefix every Celo account address carries.
const AddressPrefix = "0x"

// PaymentStatus represents the lifecycle state of a payment
type PaymentStatus string

const (
	StatusSuccess           PaymentStatus = "SUCCESS"
	StatusPending           PaymentStatus = "PENDING"
	StatusFailed            PaymentStatus = "FAILED"
	StatusRejected          PaymentStatus = "REJECTED"
	StatusCancelled         PaymentStatus = "CANCELLED"
	StatusInsufficientFunds PaymentStatus = "INSUFFICIENT_FUNDS"
	StatusNetworkError      PaymentStatus = "NETWORK_ERROR"
	StatusInvalidMerchant   PaymentStatus = "INVALID_MERCHANT"
)

// IsTerminal reports whether no further status transitions can occur.
func (s PaymentStatus) IsTerminal() bool {
	return s != StatusPending
}

// PaymentIntent is the structured form of a scanned payment QR code.
// It is immutable once decoded.
type PaymentIntent struct {
	// Address of the merchant to pay. Always starts with AddressPrefix.
	MerchantAddress string `json:"merchantAddress"`

	// Amount to transfer, as a decimal string (e.g. "5.00").
	Amount string `json:"amount"`

	// Currency of the transfer.
	Currency Currency `json:"currency"`

	// Optional free-form note attached by the merchant.
	Memo string `json:"memo,omitempty"`
}

// MerchantProfile holds descriptive and trust metadata about a payment
// recipient, sourced from an external identity directory.
type MerchantProfile struct {
	Address   string `json:"address"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Farcaster string `json:"farcaster,omitempty"`
	Website   string `json:"website,omitempty"`

	// Verified is set only when the directory asserts the identity.
	Verified bool `json:"verified"`
}

// MerchantRef identifies the recipient of a payment, with the resolved
// profile attached when the directory knew the address.
type MerchantRef struct {
	Address string           `json:"address"`
	Profile *MerchantProfile `json:"profile,omitempty"`
}

// PaymentReceipt is a human-readable summary of a completed payment.
type PaymentReceipt struct {
	Title             string `json:"title"`
	Amount            string `json:"amount"`
	MerchantName      string `json:"merchantName"`
	MerchantFarcaster string `json:"merchantFarcaster,omitempty"`

	// Date of settlement in RFC 3339 form.
	Date string `json:"date"`

	TxHash      string `json:"txHash"`
	ExplorerURL string `json:"explorerUrl"`
	ShareText   string `json:"shareText"`
}

// PaymentResult is the outcome of one payment attempt. A SUCCESS result
// always carries a receipt and a transaction hash; a failure result always
// carries an Error and no transaction hash or block number.
type PaymentResult struct {
	Status          PaymentStatus   `json:"status"`
	TransactionHash string          `json:"transactionHash,omitempty"`
	BlockNumber     uint64          `json:"blockNumber,omitempty"`
	Timestamp       int64           `json:"timestamp,omitempty"` // unix seconds
	Merchant        MerchantRef     `json:"merchant"`
	Amount          string          `json:"amount"`
	Currency        Currency        `json:"currency"`
	Fee             string          `json:"fee,omitempty"`
	Receipt         *PaymentReceipt `json:"receipt,omitempty"`
	Error           *SDKError       `json:"error,omitempty"`
}

// Error types
type SDKError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *SDKError) Error() string {
	return e.Message
}

// Common error codes
const (
	ErrInsufficientFunds = "INSUFFICIENT_FUNDS"
	ErrUserRejected      = "USER_REJECTED"
	ErrTxReverted        = "TX_REVERTED"
	ErrTimeout           = "TIMEOUT"
	ErrNetworkError      = "NETWORK_ERROR"
	ErrInvalidQR         = "INVALID_QR"
	ErrConfigError       = "CONFIG_ERROR"
	ErrUnknown           = "UNKNOWN"
)

// Helper functions for network classification
func (n Network) IsTestnet() bool {
	return n == NetworkAlfajores
}

func (n Network) String() string {
	return string(n)
}

// DefaultRPCUrl returns the public forno endpoint for the network.
func (n Network) DefaultRPCUrl() string {
	if n == NetworkMainnet {
		return "https://forno.celo.org"
	}
	return "https://alfajores-forno.celo-testnet.org"
}

// ExplorerTxURL returns the block-explorer page for a transaction hash.
func (n Network) ExplorerTxURL(hash string) string {
	if n == NetworkMainnet {
		return "https://explorer.celo.org/tx/" + hash
	}
	return "https://explorer.celo.org/alfajores/tx/" + hash
}
