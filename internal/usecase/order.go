package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/storemart/internal/adapter/notifier"
	domainErrors "github.com/polkiloo/storemart/internal/domain/errors"
	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/domain/repository"
	"github.com/polkiloo/storemart/internal/domain/rules"
	"github.com/polkiloo/storemart/internal/events"
	pkgAuth "github.com/polkiloo/storemart/internal/pkg/auth"
)

// CartLine is one requested product in a checkout.
type CartLine struct {
	ProductID int64
	Quantity  int
}

// CheckoutInput is everything a customer submits at checkout. Prices
// are resolved server-side from the catalog, never taken from the client.
type CheckoutInput struct {
	Lines           []CartLine
	DiscountCode    string
	ShippingAddress string
}

// OrderUseCase drives the order lifecycle from checkout to delivery.
type OrderUseCase struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	users     repository.UserRepository
	discounts *DiscountUseCase
	publisher events.Publisher
	notifier  notifier.Client
	logger    *slog.Logger
	now       func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	discounts *DiscountUseCase,
	publisher events.Publisher,
	notifierClient notifier.Client,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:    orders,
		products:  products,
		users:     users,
		discounts: discounts,
		publisher: publisher,
		notifier:  notifierClient,
		logger:    logger,
		now:       time.Now,
	}
}

// Checkout prices the cart, applies an optional discount code, creates
// a PENDING order and reserves stock for every line.
func (u *OrderUseCase) Checkout(ctx context.Context, session pkgAuth.Session, input CheckoutInput) (*model.Order, error) {
	if len(input.Lines) == 0 {
		return nil, &RecordError{Violations: rules.Violations{rules.ViolationEmptyItems}}
	}
	if strings.TrimSpace(input.ShippingAddress) == "" {
		return nil, &FieldError{Field: "shipping_address", Violations: rules.Violations{rules.ViolationRequired}}
	}

	user, err := u.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	items, subtotal, err := u.priceLines(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		Number:          uuid.NewString(),
		UserID:          session.UserID,
		UserEmail:       user.Email,
		Status:          model.OrderStatusPending,
		Items:           items,
		Subtotal:        subtotal,
		Total:           subtotal,
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
	}

	if code := rules.NormalizeCode(input.DiscountCode); code != "" {
		quote, err := u.discounts.Evaluate(ctx, code, subtotal)
		if err != nil {
			return nil, err
		}
		order.DiscountCode = quote.Code
		order.DiscountAmount = quote.Discount
		order.Total = quote.Total
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := u.reserveStock(ctx, created); err != nil {
		return nil, err
	}

	if err := u.publisher.OrderCreated(ctx, created); err != nil {
		u.logger.Warn("order created event not published",
			slog.Int64("order_id", created.ID),
			slog.String("error", err.Error()),
		)
	}
	return created, nil
}

// priceLines resolves every cart line against the live catalog.
func (u *OrderUseCase) priceLines(ctx context.Context, lines []CartLine) ([]model.OrderItem, float64, error) {
	items := make([]model.OrderItem, 0, len(lines))
	var subtotal float64
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, 0, domainErrors.ErrInvalidAmount
		}
		product, err := u.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, 0, err
		}
		if !product.Active {
			return nil, 0, domainErrors.ErrNotFound
		}
		lineTotal := product.Price * float64(line.Quantity)
		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		subtotal += lineTotal
	}
	return items, subtotal, nil
}

// reserveStock decrements stock for every item. A failed line cancels
// the order so it never waits for payment on goods we cannot ship.
func (u *OrderUseCase) reserveStock(ctx context.Context, order *model.Order) error {
	for _, item := range order.Items {
		if err := u.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			if _, cancelErr := u.orders.UpdateStatus(ctx, order.ID, model.OrderStatusCancelled); cancelErr != nil {
				u.logger.Error("cancel order after stock failure failed",
					slog.Int64("order_id", order.ID),
					slog.String("error", cancelErr.Error()),
				)
			}
			return err
		}
	}
	return nil
}

// ListMine returns the calling customer's orders.
func (u *OrderUseCase) ListMine(ctx context.Context, session pkgAuth.Session) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, session.UserID)
}

// Get returns an order visible to the session: owners see their own,
// admins see everything.
func (u *OrderUseCase) Get(ctx context.Context, session pkgAuth.Session, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != session.UserID && session.Role != model.RoleAdmin {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// List returns all orders for the admin view, optionally filtered.
func (u *OrderUseCase) List(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if status != "" && !status.Valid() {
		return nil, rules.ErrInvalidStatus
	}
	return u.orders.List(ctx, status)
}

// Transitions reports the statuses an order may move to next.
func (u *OrderUseCase) Transitions(ctx context.Context, session pkgAuth.Session, orderID int64) ([]model.OrderStatus, error) {
	order, err := u.Get(ctx, session, orderID)
	if err != nil {
		return nil, err
	}
	return rules.NextStatuses(order.Status), nil
}

// UpdateStatus moves an order along its lifecycle. The record is
// checked for structural problems first, then the transition itself.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, proposed model.OrderStatus) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if violations := rules.ValidateOrder(order); !violations.OK() {
		return nil, &RecordError{Violations: violations}
	}
	if err := rules.ValidateTransition(order.Status, proposed); err != nil {
		return nil, err
	}

	previous := order.Status
	updated, err := u.orders.UpdateStatus(ctx, orderID, proposed)
	if err != nil {
		return nil, err
	}

	u.afterTransition(ctx, updated, previous)
	return updated, nil
}

// CancelStale cancels an order that sat PENDING past its deadline.
// Called by the background reaper; a concurrently confirmed order is
// left alone.
func (u *OrderUseCase) CancelStale(ctx context.Context, order *model.Order) error {
	updated, err := u.orders.UpdateStatus(ctx, order.ID, model.OrderStatusCancelled)
	if err != nil {
		if errors.Is(err, rules.ErrIllegalTransition) || errors.Is(err, rules.ErrNoOpTransition) {
			return nil
		}
		return err
	}
	u.afterTransition(ctx, updated, model.OrderStatusPending)
	return nil
}

// StaleCutoff is the creation time before which PENDING orders are stale.
func (u *OrderUseCase) StaleCutoff(ttl time.Duration) time.Time {
	return u.now().Add(-ttl)
}

// SelectStale returns a batch of stale PENDING orders locked for the caller.
func (u *OrderUseCase) SelectStale(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	return u.orders.SelectStalePending(ctx, cutoff, limit)
}

// afterTransition fans a committed transition out to Kafka and the
// notification service. Both are best-effort.
func (u *OrderUseCase) afterTransition(ctx context.Context, order *model.Order, previous model.OrderStatus) {
	if err := u.publisher.OrderStatusChanged(ctx, order, previous); err != nil {
		u.logger.Warn("status change event not published",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}
	if err := u.notifier.OrderStatusChanged(ctx, order, previous); err != nil {
		u.logger.Warn("status change notification failed",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}
}
