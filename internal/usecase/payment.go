package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/polkiloo/storemart/internal/adapter/notifier"
	domainErrors "github.com/polkiloo/storemart/internal/domain/errors"
	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/domain/repository"
	"github.com/polkiloo/storemart/internal/domain/rules"
	"github.com/polkiloo/storemart/internal/events"
	pkgAuth "github.com/polkiloo/storemart/internal/pkg/auth"
)

// PaymentInput is what a customer submits when paying an order.
type PaymentInput struct {
	Amount     float64
	ReceiptURL string
}

// PaymentUseCase covers payment submission and admin review.
type PaymentUseCase struct {
	payments  repository.PaymentRepository
	orders    repository.OrderRepository
	publisher events.Publisher
	notifier  notifier.Client
	logger    *slog.Logger
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(
	payments repository.PaymentRepository,
	orders repository.OrderRepository,
	publisher events.Publisher,
	notifierClient notifier.Client,
	logger *slog.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		payments:  payments,
		orders:    orders,
		publisher: publisher,
		notifier:  notifierClient,
		logger:    logger,
	}
}

// Submit records a customer payment against their own order. The order
// must still be payable and the amount must match its total exactly.
func (u *PaymentUseCase) Submit(ctx context.Context, session pkgAuth.Session, orderID int64, input PaymentInput) (*model.Payment, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != session.UserID {
		return nil, domainErrors.ErrNotFound
	}
	if violations := rules.ValidateOrder(order); !violations.OK() {
		return nil, &RecordError{Violations: violations}
	}
	if order.Status != model.OrderStatusPending && order.Status != model.OrderStatusConfirmed {
		return nil, domainErrors.ErrOrderNotPayable
	}
	if input.Amount != order.Total {
		return nil, domainErrors.ErrInvalidAmount
	}

	if _, err := u.payments.GetOpenByOrder(ctx, orderID); err == nil {
		return nil, domainErrors.ErrAlreadyExists
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	payment := &model.Payment{
		OrderID:    orderID,
		Amount:     input.Amount,
		Status:     model.PaymentStatusPending,
		Reference:  uuid.NewString(),
		ReceiptURL: strings.TrimSpace(input.ReceiptURL),
	}
	return u.payments.Create(ctx, payment)
}

// Get returns a payment visible to the session.
func (u *PaymentUseCase) Get(ctx context.Context, session pkgAuth.Session, paymentID int64) (*model.Payment, error) {
	payment, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if session.Role == model.RoleAdmin {
		return payment, nil
	}
	order, err := u.orders.GetByID(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != session.UserID {
		return nil, domainErrors.ErrNotFound
	}
	return payment, nil
}

// ListPending returns payments awaiting admin review.
func (u *PaymentUseCase) ListPending(ctx context.Context) ([]model.Payment, error) {
	return u.payments.ListByStatus(ctx, model.PaymentStatusPending)
}

// Verify accepts a pending payment and confirms its order.
func (u *PaymentUseCase) Verify(ctx context.Context, paymentID int64, adminNote string) (*model.Payment, error) {
	payment, err := u.review(ctx, paymentID, model.PaymentStatusVerified, adminNote)
	if err != nil {
		return nil, err
	}

	order, err := u.orders.GetByID(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}
	if err := u.publisher.PaymentVerified(ctx, payment, order); err != nil {
		u.logger.Warn("payment verified event not published",
			slog.Int64("payment_id", payment.ID),
			slog.String("error", err.Error()),
		)
	}
	u.notifyOrder(ctx, order)
	return payment, nil
}

// Reject declines a pending payment. A note explaining the rejection
// is mandatory.
func (u *PaymentUseCase) Reject(ctx context.Context, paymentID int64, adminNote string) (*model.Payment, error) {
	if strings.TrimSpace(adminNote) == "" {
		return nil, &FieldError{Field: "admin_note", Violations: rules.Violations{rules.ViolationRequired}}
	}
	return u.review(ctx, paymentID, model.PaymentStatusRejected, adminNote)
}

func (u *PaymentUseCase) review(ctx context.Context, paymentID int64, proposed model.PaymentStatus, adminNote string) (*model.Payment, error) {
	payment, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if err := rules.ValidatePaymentTransition(payment.Status, proposed); err != nil {
		return nil, err
	}
	return u.payments.Review(ctx, paymentID, proposed, strings.TrimSpace(adminNote))
}

// notifyOrder tells the customer their order moved to CONFIRMED. The
// repository confirms the order inside the review transaction, so by
// the time we are here the new status is already committed.
func (u *PaymentUseCase) notifyOrder(ctx context.Context, order *model.Order) {
	if order.Status != model.OrderStatusConfirmed {
		return
	}
	if err := u.notifier.OrderStatusChanged(ctx, order, model.OrderStatusPending); err != nil {
		u.logger.Warn("order confirmation notification failed",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}
}
