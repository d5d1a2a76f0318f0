package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SimulatedProcessor stands in for a real gateway. It waits a fixed
// processing delay and always authorizes; the only failure path is the
// caller's context expiring during the wait.
type SimulatedProcessor struct {
	delay  time.Duration
	logger *zap.Logger
}

func NewSimulatedProcessor(delay time.Duration, logger *zap.Logger) *SimulatedProcessor {
	return &SimulatedProcessor{delay: delay, logger: logger}
}

func (p *SimulatedProcessor) Authorize(ctx context.Context, amount float64) (*Authorization, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.delay):
	}

	auth := &Authorization{
		ID:           uuid.NewString(),
		Amount:       amount,
		AuthorizedAt: time.Now(),
	}
	p.logger.Info("Payment authorized",
		zap.String("authorization_id", auth.ID),
		zap.Float64("amount", amount),
	)
	return auth, nil
}
