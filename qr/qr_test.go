package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celopay/celopay-go/types"
)

func TestEncode(t *testing.T) {
	got := Encode("0x1234567890abcdef", "5.00", "")
	assert.Equal(t, "celo:0x1234567890abcdef?amount=5.00&currency=cUSD", got)

	got = Encode("0x1234567890abcdef", "5.00", "Table 4")
	assert.Equal(t, "celo:0x1234567890abcdef?amount=5.00&currency=cUSD&memo=Table+4", got)
}

func TestDecode(t *testing.T) {
	intent, err := Decode("celo:0xABC?amount=5.00&currency=cUSD")
	require.NoError(t, err)
	assert.Equal(t, "0xABC", intent.MerchantAddress)
	assert.Equal(t, "5.00", intent.Amount)
	assert.Equal(t, types.CurrencyCUSD, intent.Currency)
	assert.Empty(t, intent.Memo)
}

func TestDecode_Defaults(t *testing.T) {
	intent, err := Decode("celo:0x1234")
	require.NoError(t, err)
	assert.Equal(t, "0", intent.Amount)
	assert.Equal(t, types.CurrencyCUSD, intent.Currency)
	assert.Empty(t, intent.Memo)
}

func TestDecode_SlashForm(t *testing.T) {
	intent, err := Decode("celo://0x1234?amount=1.25")
	require.NoError(t, err)
	assert.Equal(t, "0x1234", intent.MerchantAddress)
	assert.Equal(t, "1.25", intent.Amount)
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		address string
		amount  string
		memo    string
	}{
		{"no memo", "0x1234567890abcdef", "5.00", ""},
		{"plain memo", "0xCAFE1234", "0.50", "coffee"},
		{"memo with spaces", "0xabcdef", "100", "Table 4 lunch"},
		{"memo with symbols", "0x1", "3.14", "50% off & more?"},
		{"zero amount", "0xdeadbeef", "0", "tip jar"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intent, err := Decode(Encode(tc.address, tc.amount, tc.memo))
			require.NoError(t, err)
			assert.Equal(t, tc.address, intent.MerchantAddress)
			assert.Equal(t, tc.amount, intent.Amount)
			assert.Equal(t, tc.memo, intent.Memo)
			assert.Equal(t, types.CurrencyCUSD, intent.Currency)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"not a URI", "invalid-qr-format"},
		{"wrong scheme", "bitcoin:0x1234?amount=1"},
		{"empty address", "celo:"},
		{"missing address prefix", "celo:1234abcd?amount=1"},
		{"unsupported currency", "celo:0x1234?amount=1&currency=EUR"},
		{"empty string", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intent, err := Decode(tc.text)
			require.Error(t, err)
			assert.Nil(t, intent)

			var sdkErr *types.SDKError
			require.ErrorAs(t, err, &sdkErr)
			assert.Equal(t, types.ErrInvalidQR, sdkErr.Code)
			assert.NotEmpty(t, sdkErr.Message)
		})
	}
}
