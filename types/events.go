package types

import "time"

// EventType identifies a payment lifecycle event.
type EventType string

const (
	EventPaymentInitiated EventType = "payment_initiated"
	EventPaymentPending   EventType = "payment_pending"
	EventPaymentConfirmed EventType = "payment_confirmed"
	EventPaymentFailed    EventType = "payment_failed"
)

// EventData is the payload of an SDKEvent. Each event type carries its own
// variant, so subscribers can switch on the concrete type instead of
// inspecting an untyped map.
type EventData interface {
	eventData()
}

// InitiatedData accompanies payment_initiated.
type InitiatedData struct {
	QRData string `json:"qrData"`
}

// PendingData accompanies payment_pending. Profile is nil when the merchant
// directory did not know the address.
type PendingData struct {
	Intent  PaymentIntent    `json:"intent"`
	Profile *MerchantProfile `json:"profile,omitempty"`
}

// ConfirmedData accompanies payment_confirmed.
type ConfirmedData struct {
	Result *PaymentResult `json:"result"`
}

// FailedData accompanies payment_failed.
type FailedData struct {
	Result *PaymentResult `json:"result"`
}

func (InitiatedData) eventData() {}
func (PendingData) eventData()   {}
func (ConfirmedData) eventData() {}
func (FailedData) eventData()    {}

// SDKEvent is a transient lifecycle notification. Events are delivered
// synchronously at emission time and never replayed.
type SDKEvent struct {
	Type      EventType `json:"type"`
	Data      EventData `json:"data"`
	Timestamp int64     `json:"timestamp"` // unix milliseconds
}

// NewEvent stamps an event with the current time.
func NewEvent(t EventType, data EventData) SDKEvent {
	return SDKEvent{
		Type:      t,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
}

// EventCallback receives lifecycle events. Callbacks run synchronously on
// the emitting goroutine and should return quickly.
type EventCallback func(SDKEvent)
