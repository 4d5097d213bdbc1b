package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/polkiloo/storemart/internal/domain/errors"
	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/domain/rules"
	pkgAuth "github.com/polkiloo/storemart/internal/pkg/auth"
	"github.com/polkiloo/storemart/internal/test"
)

type paymentFixture struct {
	payments  *test.PaymentRepositoryStub
	orders    *test.OrderRepositoryStub
	publisher *test.PublisherStub
	notifier  *test.NotifierStub
	uc        *PaymentUseCase
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	f := &paymentFixture{
		payments:  &test.PaymentRepositoryStub{},
		orders:    &test.OrderRepositoryStub{},
		publisher: &test.PublisherStub{},
		notifier:  &test.NotifierStub{},
	}
	f.uc = NewPaymentUseCase(
		f.payments,
		f.orders,
		f.publisher,
		f.notifier,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func payableOrder(id, userID int64, total float64) model.Order {
	return model.Order{
		ID:     id,
		UserID: userID,
		Status: model.OrderStatusPending,
		Items:  []model.OrderItem{{ProductID: 1, Quantity: 1}},
		Total:  total,
	}
}

func TestPaymentUseCaseSubmit(t *testing.T) {
	f := newPaymentFixture(t)
	f.orders.Orders = []model.Order{payableOrder(1, 7, 50)}
	session := pkgAuth.Session{UserID: 7, Role: model.RoleCustomer}

	payment, err := f.uc.Submit(context.Background(), session, 1, PaymentInput{Amount: 50, ReceiptURL: " https://bank.test/r/1 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Status != model.PaymentStatusPending {
		t.Fatalf("unexpected status %s", payment.Status)
	}
	if payment.Reference == "" {
		t.Fatal("expected generated reference")
	}
	if payment.ReceiptURL != "https://bank.test/r/1" {
		t.Fatalf("receipt url not trimmed: %q", payment.ReceiptURL)
	}
}

func TestPaymentUseCaseSubmitRejections(t *testing.T) {
	f := newPaymentFixture(t)
	shipped := payableOrder(2, 7, 50)
	shipped.Status = model.OrderStatusShipped
	f.orders.Orders = []model.Order{payableOrder(1, 7, 50), shipped}
	session := pkgAuth.Session{UserID: 7, Role: model.RoleCustomer}

	if _, err := f.uc.Submit(context.Background(), pkgAuth.Session{UserID: 9}, 1, PaymentInput{Amount: 50}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for foreign order, got %v", err)
	}
	if _, err := f.uc.Submit(context.Background(), session, 2, PaymentInput{Amount: 50}); !errors.Is(err, domainErrors.ErrOrderNotPayable) {
		t.Fatalf("expected not payable for shipped order, got %v", err)
	}
	if _, err := f.uc.Submit(context.Background(), session, 1, PaymentInput{Amount: 49.99}); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount on mismatch, got %v", err)
	}

	if _, err := f.uc.Submit(context.Background(), session, 1, PaymentInput{Amount: 50}); err != nil {
		t.Fatalf("first submission should pass: %v", err)
	}
	if _, err := f.uc.Submit(context.Background(), session, 1, PaymentInput{Amount: 50}); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists for open payment, got %v", err)
	}
}

func TestPaymentUseCaseSubmitRefusesBrokenOrder(t *testing.T) {
	f := newPaymentFixture(t)
	f.orders.Orders = []model.Order{{ID: 1, UserID: 7, Status: model.OrderStatusPending, Total: 50}}

	var recordErr *RecordError
	if _, err := f.uc.Submit(context.Background(), pkgAuth.Session{UserID: 7}, 1, PaymentInput{Amount: 50}); !errors.As(err, &recordErr) {
		t.Fatalf("expected record error for itemless order, got %v", err)
	}
}

func TestPaymentUseCaseVerifyConfirmsAndPublishes(t *testing.T) {
	f := newPaymentFixture(t)
	f.orders.Orders = []model.Order{payableOrder(1, 7, 50)}
	f.payments.Payments = []model.Payment{{ID: 1, OrderID: 1, Amount: 50, Status: model.PaymentStatusPending}}
	f.orders.GetByIDFn = func(ctx context.Context, id int64) (*model.Order, error) {
		// The repository confirms the order inside the review
		// transaction; emulate the state it returns afterwards.
		order := payableOrder(1, 7, 50)
		order.Status = model.OrderStatusConfirmed
		return &order, nil
	}

	payment, err := f.uc.Verify(context.Background(), 1, "wire received")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Status != model.PaymentStatusVerified {
		t.Fatalf("unexpected status %s", payment.Status)
	}
	if payment.ReviewedAt == nil {
		t.Fatal("expected review timestamp")
	}
	if len(f.publisher.Events) != 1 || f.publisher.Events[0].Type != "payment.verified" {
		t.Fatalf("unexpected events: %+v", f.publisher.Events)
	}
	if len(f.notifier.Sent) != 1 || f.notifier.Sent[0].Status != model.OrderStatusConfirmed {
		t.Fatalf("unexpected notifications: %+v", f.notifier.Sent)
	}
}

func TestPaymentUseCaseRejectRequiresNote(t *testing.T) {
	f := newPaymentFixture(t)
	f.payments.Payments = []model.Payment{{ID: 1, OrderID: 1, Amount: 50, Status: model.PaymentStatusPending}}

	var fieldErr *FieldError
	if _, err := f.uc.Reject(context.Background(), 1, "  "); !errors.As(err, &fieldErr) || fieldErr.Field != "admin_note" {
		t.Fatalf("expected admin_note field error, got %v", err)
	}

	payment, err := f.uc.Reject(context.Background(), 1, "receipt unreadable")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Status != model.PaymentStatusRejected || payment.AdminNote != "receipt unreadable" {
		t.Fatalf("unexpected payment: %+v", payment)
	}
}

func TestPaymentUseCaseReviewIsTerminal(t *testing.T) {
	f := newPaymentFixture(t)
	f.payments.Payments = []model.Payment{{ID: 1, OrderID: 1, Amount: 50, Status: model.PaymentStatusRejected}}

	if _, err := f.uc.Verify(context.Background(), 1, ""); !errors.Is(err, rules.ErrIllegalTransition) {
		t.Fatalf("expected illegal transition for reviewed payment, got %v", err)
	}
	if _, err := f.uc.Reject(context.Background(), 1, "note"); !errors.Is(err, rules.ErrIllegalTransition) {
		t.Fatalf("expected illegal transition for reviewed payment, got %v", err)
	}
}

func TestPaymentUseCaseGetVisibility(t *testing.T) {
	f := newPaymentFixture(t)
	f.orders.Orders = []model.Order{payableOrder(1, 7, 50)}
	f.payments.Payments = []model.Payment{{ID: 1, OrderID: 1, Amount: 50, Status: model.PaymentStatusPending}}

	if _, err := f.uc.Get(context.Background(), pkgAuth.Session{UserID: 7, Role: model.RoleCustomer}, 1); err != nil {
		t.Fatalf("owner should see payment: %v", err)
	}
	if _, err := f.uc.Get(context.Background(), pkgAuth.Session{UserID: 9, Role: model.RoleCustomer}, 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("stranger should get not found, got %v", err)
	}
	if _, err := f.uc.Get(context.Background(), pkgAuth.Session{UserID: 9, Role: model.RoleAdmin}, 1); err != nil {
		t.Fatalf("admin should see payment: %v", err)
	}
}

func TestPaymentUseCaseListPending(t *testing.T) {
	f := newPaymentFixture(t)
	f.payments.Payments = []model.Payment{
		{ID: 1, OrderID: 1, Status: model.PaymentStatusPending},
		{ID: 2, OrderID: 2, Status: model.PaymentStatusVerified},
	}

	pending, err := f.uc.ListPending(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != 1 {
		t.Fatalf("unexpected pending list: %+v", pending)
	}
}
