package models

import "time"

// CheckoutStep is the state of a checkout session. The flow is linear:
// details -> review -> complete. Review may step back to details; complete
// is terminal.
type CheckoutStep string

const (
	StepDetails  CheckoutStep = "details"
	StepReview   CheckoutStep = "review"
	StepComplete CheckoutStep = "complete"
)

// CheckoutDetails carries the shipping and payment form fields. All checks
// are presence/format only; the card is never charged or transmitted.
type CheckoutDetails struct {
	Email      string `json:"email" validate:"required,contains=@"`
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	Zip        string `json:"zip" validate:"required"`
	CardNumber string `json:"card_number" validate:"required,min=12"`
	Expiry     string `json:"expiry" validate:"required,len=5"`
	CVC        string `json:"cvc" validate:"required,min=3,max=4"`
}

// ShippingInfo is the portion of the details kept on the session after
// validation.
type ShippingInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

// CheckoutSession is the per-user state machine record, persisted for the
// duration of the flow. Only the masked card survives validation; the raw
// number and CVC are discarded.
type CheckoutSession struct {
	UserID     string       `json:"user_id"`
	Step       CheckoutStep `json:"step"`
	Shipping   ShippingInfo `json:"shipping"`
	CardMasked string       `json:"card_masked"`
	CardExpiry string       `json:"card_expiry"`
	OrderID    string       `json:"order_id,omitempty"`
	StartedAt  time.Time    `json:"started_at"`
}

// Receipt is the display-only rendering of a completed order.
type Receipt struct {
	Order      *Order       `json:"order"`
	Shipping   ShippingInfo `json:"shipping"`
	CardMasked string       `json:"card_masked"`
}
