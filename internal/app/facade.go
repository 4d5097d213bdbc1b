package app

import (
	"context"
	"time"

	"github.com/polkiloo/storemart/internal/domain/model"
	pkgAuth "github.com/polkiloo/storemart/internal/pkg/auth"
	"github.com/polkiloo/storemart/internal/usecase"
)

// Pinger reports backing store availability.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// CommerceFacade aggregates the use cases behind the surface the HTTP
// layer and the reaper consume.
type CommerceFacade struct {
	auth       *usecase.AuthUseCase
	catalog    *usecase.CatalogUseCase
	categories *usecase.CategoryUseCase
	orders     *usecase.OrderUseCase
	payments   *usecase.PaymentUseCase
	discounts  *usecase.DiscountUseCase
	pinger     Pinger
}

func NewCommerceFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	categories *usecase.CategoryUseCase,
	orders *usecase.OrderUseCase,
	payments *usecase.PaymentUseCase,
	discounts *usecase.DiscountUseCase,
	pinger Pinger,
) *CommerceFacade {
	return &CommerceFacade{
		auth:       auth,
		catalog:    catalog,
		categories: categories,
		orders:     orders,
		payments:   payments,
		discounts:  discounts,
		pinger:     pinger,
	}
}

func (f *CommerceFacade) Register(ctx context.Context, email, password string, role model.Role) (*model.User, string, error) {
	return f.auth.Register(ctx, email, password, role)
}

func (f *CommerceFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *CommerceFacade) ParseToken(token string) (pkgAuth.Session, error) {
	return f.auth.ParseToken(token)
}

func (f *CommerceFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.ListActive(ctx)
}

func (f *CommerceFacade) Product(ctx context.Context, session pkgAuth.Session, id int64) (*model.Product, error) {
	return f.catalog.Get(ctx, session, id)
}

func (f *CommerceFacade) VendorProducts(ctx context.Context, session pkgAuth.Session) ([]model.Product, error) {
	return f.catalog.ListMine(ctx, session)
}

func (f *CommerceFacade) CreateProduct(ctx context.Context, session pkgAuth.Session, input usecase.ProductInput) (*model.Product, error) {
	return f.catalog.Create(ctx, session, input)
}

func (f *CommerceFacade) UpdateProduct(ctx context.Context, session pkgAuth.Session, id int64, input usecase.ProductInput) (*model.Product, error) {
	return f.catalog.Update(ctx, session, id, input)
}

func (f *CommerceFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.categories.List(ctx)
}

func (f *CommerceFacade) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	return f.categories.Create(ctx, name, description)
}

func (f *CommerceFacade) UpdateCategory(ctx context.Context, id int64, name, description string) (*model.Category, error) {
	return f.categories.Update(ctx, id, name, description)
}

func (f *CommerceFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.categories.Delete(ctx, id)
}

func (f *CommerceFacade) Checkout(ctx context.Context, session pkgAuth.Session, input usecase.CheckoutInput) (*model.Order, error) {
	return f.orders.Checkout(ctx, session, input)
}

func (f *CommerceFacade) Orders(ctx context.Context, session pkgAuth.Session) ([]model.Order, error) {
	return f.orders.ListMine(ctx, session)
}

func (f *CommerceFacade) Order(ctx context.Context, session pkgAuth.Session, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, session, id)
}

func (f *CommerceFacade) OrderTransitions(ctx context.Context, session pkgAuth.Session, id int64) ([]model.OrderStatus, error) {
	return f.orders.Transitions(ctx, session, id)
}

func (f *CommerceFacade) AllOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return f.orders.List(ctx, status)
}

func (f *CommerceFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *CommerceFacade) StaleOrders(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	return f.orders.SelectStale(ctx, f.orders.StaleCutoff(olderThan), limit)
}

func (f *CommerceFacade) CancelStaleOrder(ctx context.Context, order *model.Order) error {
	return f.orders.CancelStale(ctx, order)
}

func (f *CommerceFacade) SubmitPayment(ctx context.Context, session pkgAuth.Session, orderID int64, input usecase.PaymentInput) (*model.Payment, error) {
	return f.payments.Submit(ctx, session, orderID, input)
}

func (f *CommerceFacade) PendingPayments(ctx context.Context) ([]model.Payment, error) {
	return f.payments.ListPending(ctx)
}

func (f *CommerceFacade) VerifyPayment(ctx context.Context, id int64, note string) (*model.Payment, error) {
	return f.payments.Verify(ctx, id, note)
}

func (f *CommerceFacade) RejectPayment(ctx context.Context, id int64, note string) (*model.Payment, error) {
	return f.payments.Reject(ctx, id, note)
}

func (f *CommerceFacade) Discounts(ctx context.Context) ([]model.Discount, error) {
	return f.discounts.List(ctx)
}

func (f *CommerceFacade) CreateDiscount(ctx context.Context, input usecase.DiscountInput) (*model.Discount, error) {
	return f.discounts.Create(ctx, input)
}

func (f *CommerceFacade) UpdateDiscount(ctx context.Context, id int64, input usecase.DiscountInput) (*model.Discount, error) {
	return f.discounts.Update(ctx, id, input)
}

func (f *CommerceFacade) ToggleDiscount(ctx context.Context, id int64) (*model.Discount, error) {
	return f.discounts.Toggle(ctx, id)
}

func (f *CommerceFacade) QuoteDiscount(ctx context.Context, code string, subtotal float64) (*usecase.Quote, error) {
	return f.discounts.Evaluate(ctx, code, subtotal)
}

func (f *CommerceFacade) HealthCheck(ctx context.Context) error {
	return f.pinger.HealthCheck(ctx)
}
