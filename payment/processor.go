package payment

import (
	"context"
	"time"
)

// Authorization is the result of a successful payment authorization.
type Authorization struct {
	ID           string
	Amount       float64
	AuthorizedAt time.Time
}

// Processor authorizes a payment for the given amount. Implementations must
// honor context cancellation; the checkout flow treats this as a fallible
// step even when the backing implementation cannot decline.
type Processor interface {
	Authorize(ctx context.Context, amount float64) (*Authorization, error)
}
