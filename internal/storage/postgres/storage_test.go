package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/storemart/internal/domain/errors"
	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/domain/rules"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func pgxErrNoRows() error { return pgx.ErrNoRows }

func expectationsMet(t *testing.T, mock pgxmockv3.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

const itemsJSON = `[{"product_id":5,"name":"Mug","price":4.5,"quantity":2,"line_total":9}]`

func orderRow(status model.OrderStatus) *pgxmockv3.Rows {
	now := time.Now()
	return pgxmockv3.NewRows([]string{
		"id", "number", "user_id", "user_email", "status", "items",
		"subtotal", "discount_code", "discount_amount", "total", "shipping_address",
		"created_at", "updated_at",
	}).AddRow(
		int64(1), "ord-1", int64(2), "buyer@example.com", status, []byte(itemsJSON),
		9.0, "", 0.0, 9.0, "1 Main St",
		now, now,
	)
}

func TestUserCreateMapsUniqueViolation(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("a@b.c", "hash", model.RoleCustomer).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	if _, err := storage.Users().Create(context.Background(), "a@b.c", "hash", model.RoleCustomer); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected already exists, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestUserGetByEmailNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, email, password_hash, role, created_at FROM users").
		WithArgs("missing@b.c").
		WillReturnError(pgxErrNoRows())

	if _, err := storage.Users().GetByEmail(context.Background(), "missing@b.c"); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestOrderUpdateStatusLegalTransition(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM orders").
		WithArgs(int64(1)).
		WillReturnRows(pgxmockv3.NewRows([]string{"status"}).AddRow(model.OrderStatusPending))
	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs(int64(1), model.OrderStatusConfirmed).
		WillReturnRows(orderRow(model.OrderStatusConfirmed))
	mock.ExpectCommit()

	order, err := storage.Orders().UpdateStatus(context.Background(), 1, model.OrderStatusConfirmed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusConfirmed {
		t.Fatalf("unexpected status %s", order.Status)
	}
	if len(order.Items) != 1 || order.Items[0].ProductID != 5 {
		t.Fatalf("unexpected items %+v", order.Items)
	}
	expectationsMet(t, mock)
}

func TestOrderUpdateStatusIllegalTransitionRollsBack(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM orders").
		WithArgs(int64(1)).
		WillReturnRows(pgxmockv3.NewRows([]string{"status"}).AddRow(model.OrderStatusDelivered))
	mock.ExpectRollback()

	if _, err := storage.Orders().UpdateStatus(context.Background(), 1, model.OrderStatusShipped); err != rules.ErrIllegalTransition {
		t.Fatalf("expected illegal transition, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestOrderUpdateStatusMissingOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM orders").
		WithArgs(int64(404)).
		WillReturnError(pgxErrNoRows())
	mock.ExpectRollback()

	if _, err := storage.Orders().UpdateStatus(context.Background(), 404, model.OrderStatusConfirmed); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestProductDecrementStockInsufficient(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE products SET stock").
		WithArgs(int64(5), 3).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	if err := storage.Products().DecrementStock(context.Background(), 5, 3); err != domainErrors.ErrOutOfStock {
		t.Fatalf("expected out of stock, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestPaymentReviewVerifyConfirmsOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status, order_id FROM payments").
		WithArgs(int64(9)).
		WillReturnRows(pgxmockv3.NewRows([]string{"status", "order_id"}).AddRow(model.PaymentStatusPending, int64(1)))
	mock.ExpectQuery("UPDATE payments SET status").
		WithArgs(int64(9), model.PaymentStatusVerified, "looks good").
		WillReturnRows(pgxmockv3.NewRows([]string{
			"id", "order_id", "amount", "status", "reference", "receipt_url", "admin_note", "created_at", "reviewed_at",
		}).AddRow(int64(9), int64(1), 9.0, model.PaymentStatusVerified, "ref-1", "", "looks good", now, &now))
	mock.ExpectQuery("SELECT status FROM orders").
		WithArgs(int64(1)).
		WillReturnRows(pgxmockv3.NewRows([]string{"status"}).AddRow(model.OrderStatusPending))
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(int64(1), model.OrderStatusConfirmed).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	payment, err := storage.Payments().Review(context.Background(), 9, model.PaymentStatusVerified, "looks good")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Status != model.PaymentStatusVerified {
		t.Fatalf("unexpected status %s", payment.Status)
	}
	expectationsMet(t, mock)
}

func TestPaymentReviewRejectLeavesOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status, order_id FROM payments").
		WithArgs(int64(9)).
		WillReturnRows(pgxmockv3.NewRows([]string{"status", "order_id"}).AddRow(model.PaymentStatusPending, int64(1)))
	mock.ExpectQuery("UPDATE payments SET status").
		WithArgs(int64(9), model.PaymentStatusRejected, "blurry receipt").
		WillReturnRows(pgxmockv3.NewRows([]string{
			"id", "order_id", "amount", "status", "reference", "receipt_url", "admin_note", "created_at", "reviewed_at",
		}).AddRow(int64(9), int64(1), 9.0, model.PaymentStatusRejected, "ref-1", "", "blurry receipt", now, &now))
	mock.ExpectCommit()

	payment, err := storage.Payments().Review(context.Background(), 9, model.PaymentStatusRejected, "blurry receipt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Status != model.PaymentStatusRejected {
		t.Fatalf("unexpected status %s", payment.Status)
	}
	expectationsMet(t, mock)
}

func TestPaymentReviewTwiceFails(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status, order_id FROM payments").
		WithArgs(int64(9)).
		WillReturnRows(pgxmockv3.NewRows([]string{"status", "order_id"}).AddRow(model.PaymentStatusVerified, int64(1)))
	mock.ExpectRollback()

	if _, err := storage.Payments().Review(context.Background(), 9, model.PaymentStatusRejected, ""); err != rules.ErrIllegalTransition {
		t.Fatalf("expected illegal transition, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestDiscountSetActiveNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("UPDATE discounts SET active").
		WithArgs(int64(77), false).
		WillReturnError(pgxErrNoRows())

	if _, err := storage.Discounts().SetActive(context.Background(), 77, false); err != domainErrors.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	expectationsMet(t, mock)
}

func TestSelectStalePending(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	cutoff := time.Now().Add(-24 * time.Hour)
	mock.ExpectBegin()
	mock.ExpectQuery("FROM orders o").
		WithArgs(model.OrderStatusPending, cutoff, model.PaymentStatusPending, model.PaymentStatusVerified, 10).
		WillReturnRows(orderRow(model.OrderStatusPending))
	mock.ExpectCommit()

	orders, err := storage.Orders().SelectStalePending(context.Background(), cutoff, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 || orders[0].Status != model.OrderStatusPending {
		t.Fatalf("unexpected orders %+v", orders)
	}
	expectationsMet(t, mock)
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}

	mock.ExpectPing()
	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectationsMet(t, mock)
}
