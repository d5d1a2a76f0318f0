package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EXROSE/VaricoCare/apperrors"
	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/models"
	"github.com/EXROSE/VaricoCare/payment"
)

// CheckoutService drives the details -> review -> complete flow. Each user
// has at most one session; the session record is the single source of truth
// for which transitions are allowed.
type CheckoutService struct {
	sessions  database.CheckoutStore
	carts     database.CartStore
	orders    database.OrderRepository
	processor payment.Processor
	validate  *validator.Validate
	logger    *zap.Logger
}

func NewCheckoutService(
	sessions database.CheckoutStore,
	carts database.CartStore,
	orders database.OrderRepository,
	processor payment.Processor,
	logger *zap.Logger,
) *CheckoutService {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CheckoutService{
		sessions:  sessions,
		carts:     carts,
		orders:    orders,
		processor: processor,
		validate:  v,
		logger:    logger,
	}
}

// Begin starts a checkout session, or returns the one already in progress.
// An empty cart cannot enter checkout.
func (s *CheckoutService) Begin(ctx context.Context, userID string) (*models.CheckoutSession, *apperrors.Error) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if session != nil && session.Step != models.StepComplete {
		return session, nil
	}

	session = &models.CheckoutSession{
		UserID:    userID,
		Step:      models.StepDetails,
		StartedAt: time.Now(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return session, nil
}

// Current returns the session in progress, or nil when there is none.
func (s *CheckoutService) Current(ctx context.Context, userID string) (*models.CheckoutSession, *apperrors.Error) {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return session, nil
}

// SubmitDetails validates the form and advances details -> review. On
// success only the shipping fields and the masked card survive; the raw card
// number and CVC are dropped here and never stored.
func (s *CheckoutService) SubmitDetails(ctx context.Context, userID string, details models.CheckoutDetails) (*models.CheckoutSession, *apperrors.Error) {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if session == nil || session.Step != models.StepDetails {
		return nil, apperrors.ErrInvalidState
	}

	if err := s.validate.Struct(details); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, apperrors.Wrap(apperrors.ErrBadRequest, err)
		}
		fields := map[string]string{}
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return nil, apperrors.Validation(fields)
	}

	digits := strings.ReplaceAll(details.CardNumber, " ", "")
	last4 := digits
	if len(digits) > 4 {
		last4 = digits[len(digits)-4:]
	}
	session.Shipping = models.ShippingInfo{
		Email:   details.Email,
		Name:    details.Name,
		Address: details.Address,
		City:    details.City,
		Zip:     details.Zip,
	}
	session.CardMasked = fmt.Sprintf("**** **** **** %s", last4)
	session.CardExpiry = details.Expiry
	session.Step = models.StepReview

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return session, nil
}

// Back steps review -> details. The shipping fields are kept so the form can
// be re-filled; any other step rejects the transition.
func (s *CheckoutService) Back(ctx context.Context, userID string) (*models.CheckoutSession, *apperrors.Error) {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if session == nil || session.Step != models.StepReview {
		return nil, apperrors.ErrInvalidState
	}

	session.Step = models.StepDetails
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return session, nil
}

// ConfirmAndPay authorizes payment, snapshots the cart into an order, clears
// the cart, and completes the session. A completed session cannot confirm
// again; a payment failure leaves the session at review so the user can
// retry.
func (s *CheckoutService) ConfirmAndPay(ctx context.Context, userID string) (*models.Receipt, *apperrors.Error) {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if session == nil || session.Step != models.StepReview {
		return nil, apperrors.ErrInvalidState
	}

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	total := cart.TotalPrice()
	auth, err := s.processor.Authorize(ctx, total)
	if err != nil {
		s.logger.Warn("Payment authorization failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, apperrors.New(http.StatusBadGateway, "Payment could not be processed", err)
	}

	order := buildOrder(userID, cart, total)
	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("Failed to persist order",
			zap.String("user_id", userID),
			zap.String("authorization_id", auth.ID),
			zap.Error(err),
		)
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	session.Step = models.StepComplete
	session.OrderID = order.ID.String()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	// The order exists; a stale cart is cleaned up by its TTL if this fails.
	if err := s.carts.DeleteCart(ctx, userID); err != nil {
		s.logger.Warn("Failed to clear cart after checkout",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}

	s.logger.Info("Checkout complete",
		zap.String("user_id", userID),
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total", total),
	)
	return &models.Receipt{
		Order:      order,
		Shipping:   session.Shipping,
		CardMasked: session.CardMasked,
	}, nil
}

// Receipt returns the receipt for a completed session.
func (s *CheckoutService) Receipt(ctx context.Context, userID string) (*models.Receipt, *apperrors.Error) {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if session == nil || session.Step != models.StepComplete || session.OrderID == "" {
		return nil, apperrors.ErrNotFound
	}

	orderID, err := uuid.Parse(session.OrderID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &models.Receipt{
		Order:      order,
		Shipping:   session.Shipping,
		CardMasked: session.CardMasked,
	}, nil
}

// Cancel abandons an in-progress session. Completed sessions are kept so the
// receipt stays reachable until the session record expires.
func (s *CheckoutService) Cancel(ctx context.Context, userID string) *apperrors.Error {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if session == nil || session.Step == models.StepComplete {
		return nil
	}
	if err := s.sessions.Delete(ctx, userID); err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

func buildOrder(userID string, cart *models.Cart, total float64) *models.Order {
	orderID := uuid.New()
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, models.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: line.ID,
			Name:      line.Name,
			UnitPrice: line.EffectivePrice(),
			Quantity:  line.Quantity,
		})
	}
	return &models.Order{
		ID:          orderID,
		OrderNumber: fmt.Sprintf("VC-%s", strings.ToUpper(orderID.String()[:8])),
		UserID:      userID,
		Total:       total,
		Status:      models.OrderStatusPaid,
		Items:       items,
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "contains":
		return "Enter a valid email address"
	case "min", "max", "len":
		return "Invalid value"
	default:
		return "Invalid value"
	}
}
