// Package qr converts between celo: payment URIs and structured payment
// intents. The format is
//
//	celo:<address>?amount=<decimal>&currency=cUSD&memo=<percent-encoded>
//
// where only the address is mandatory.
package qr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/celopay/celopay-go/types"
)

// Scheme is the URI scheme for Celo payment QR codes.
const Scheme = "celo"

// Encode builds the QR payload for a payment request. It is pure and
// deterministic: Decode(Encode(addr, amount, memo)) reproduces its inputs.
func Encode(merchantAddress, amount, memo string) string {
	s := fmt.Sprintf("%s:%s?amount=%s&currency=%s", Scheme, merchantAddress, amount, types.CurrencyCUSD)
	if memo != "" {
		s += "&memo=" + url.QueryEscape(memo)
	}
	return s
}

// Decode parses QR text into a PaymentIntent. Missing fields default to
// amount "0", currency cUSD and no memo. It fails with an INVALID_QR error
// when the scheme is wrong or the merchant address is absent or does not
// start with the chain address prefix.
func Decode(text string) (*types.PaymentIntent, error) {
	u, err := url.Parse(text)
	if err != nil || u.Scheme != Scheme {
		return nil, &types.SDKError{
			Code:    types.ErrInvalidQR,
			Message: "invalid QR code format",
		}
	}

	// "celo:0x.." parses as an opaque URI; tolerate the "celo://0x.." form too.
	address := u.Opaque
	if address == "" {
		address = u.Host
	}
	if address == "" || !strings.HasPrefix(address, types.AddressPrefix) {
		return nil, &types.SDKError{
			Code:    types.ErrInvalidQR,
			Message: "invalid merchant address in QR code",
		}
	}

	q := u.Query()

	amount := q.Get("amount")
	if amount == "" {
		amount = "0"
	}

	currency := types.CurrencyCUSD
	if c := q.Get("currency"); c != "" {
		if types.Currency(c) != types.CurrencyCUSD {
			return nil, &types.SDKError{
				Code:    types.ErrInvalidQR,
				Message: fmt.Sprintf("unsupported currency %q", c),
			}
		}
		currency = types.Currency(c)
	}

	return &types.PaymentIntent{
		MerchantAddress: address,
		Amount:          amount,
		Currency:        currency,
		Memo:            q.Get("memo"),
	}, nil
}
