package database_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/models"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestOrderCreate_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := database.NewGormOrderRepository(gormDB)

	orderID := uuid.New()
	order := &models.Order{
		ID:          orderID,
		OrderNumber: "VC-TEST0001",
		UserID:      "user-1",
		Total:       79.98,
		Status:      models.OrderStatusPaid,
		Items: []models.OrderItem{
			{ID: uuid.New(), OrderID: orderID, ProductID: "1", Name: "VaricoEase Herbal Blend", UnitPrice: 39.99, Quantity: 2},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(order.ID))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(order.Items[0].ID))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), order)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderFindByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := database.NewGormOrderRepository(gormDB)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	order, err := repo.FindByID(context.Background(), id)
	assert.Error(t, err)
	assert.Nil(t, order)
}

func TestOrderFindByUserID_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := database.NewGormOrderRepository(gormDB)

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "orders"`)).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_number", "user_id", "total", "status", "created_at", "updated_at"}).
			AddRow(id, "VC-ABCD1234", "user-1", 39.99, models.OrderStatusPaid, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "name", "unit_price", "quantity"}).
			AddRow(uuid.New(), id, "1", "VaricoEase Herbal Blend", 39.99, 1))

	orders, total, err := repo.FindByUserID(context.Background(), "user-1", 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, orders, 1)
	assert.Equal(t, "VC-ABCD1234", orders[0].OrderNumber)
	assert.Len(t, orders[0].Items, 1)
}

func TestOrderStats(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := database.NewGormOrderRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(total), 0) FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(199.96))

	count, revenue, err := repo.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.InDelta(t, 199.96, revenue, 0.001)
}
