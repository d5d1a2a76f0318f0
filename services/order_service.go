package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EXROSE/VaricoCare/apperrors"
	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/models"
)

type OrderResponse struct {
	Orders []models.Order `json:"orders"`
	Meta   MetaData       `json:"meta"`
}

type MetaData struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalOrders int64 `json:"total_orders"`
	TotalPages  int64 `json:"total_pages"`
	HasMore     bool  `json:"has_more"`
}

// OrderService serves the order history views; orders are only ever created
// by the checkout flow.
type OrderService struct {
	orders database.OrderRepository
	logger *zap.Logger
}

func NewOrderService(orders database.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, logger: logger}
}

// UserOrders returns the paginated history for one user, newest first.
func (s *OrderService) UserOrders(ctx context.Context, userID string, page, limit int) (*OrderResponse, *apperrors.Error) {
	page, limit = normalizePaging(page, limit)

	orders, total, err := s.orders.FindByUserID(ctx, userID, page, limit)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.String("user_id", userID), zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &OrderResponse{
		Orders: orders,
		Meta:   buildMeta(page, limit, total),
	}, nil
}

// AllOrders returns the paginated history across all users.
func (s *OrderService) AllOrders(ctx context.Context, page, limit int) (*OrderResponse, *apperrors.Error) {
	page, limit = normalizePaging(page, limit)

	orders, total, err := s.orders.FindAll(ctx, page, limit)
	if err != nil {
		s.logger.Error("Failed to fetch all orders", zap.Error(err))
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return &OrderResponse{
		Orders: orders,
		Meta:   buildMeta(page, limit, total),
	}, nil
}

// GetOrder returns one order, scoped to its owner unless the caller is an
// admin.
func (s *OrderService) GetOrder(ctx context.Context, session *models.Session, orderID string) (*models.Order, *apperrors.Error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, apperrors.New(400, "Invalid order ID format", err)
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	if order.UserID != session.UserID && session.Role != models.RoleAdmin {
		return nil, apperrors.ErrNotFound
	}
	return order, nil
}

// Stats returns the order count and summed revenue.
func (s *OrderService) Stats(ctx context.Context) (int64, float64, *apperrors.Error) {
	count, revenue, err := s.orders.Stats(ctx)
	if err != nil {
		return 0, 0, apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return count, revenue, nil
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func buildMeta(page, limit int, total int64) MetaData {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return MetaData{
		Page:        page,
		Limit:       limit,
		TotalOrders: total,
		TotalPages:  totalPages,
		HasMore:     total > int64(page*limit),
	}
}
