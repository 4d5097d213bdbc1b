// Package facade stubs the application facade interfaces consumed by
// the HTTP layer. Kept separate from the repository stubs so use case
// tests can import those without pulling the facade surface back in.
package facade

import (
	"context"
	"time"

	"github.com/polkiloo/storemart/internal/domain/model"
	pkgAuth "github.com/polkiloo/storemart/internal/pkg/auth"
	"github.com/polkiloo/storemart/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, model.Role) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (pkgAuth.Session, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, password string, role model.Role) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, role)
	}
	return &model.User{ID: 1, Email: email, Role: role}, "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCustomer}, "token", nil
}

// ParseToken returns the stored session for authenticated calls.
func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Session, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Session{UserID: 1, Role: model.RoleCustomer}, nil
}

// CatalogFacadeStub provides controllable behaviour for product endpoints.
type CatalogFacadeStub struct {
	ProductsFn       func(context.Context) ([]model.Product, error)
	ProductFn        func(context.Context, pkgAuth.Session, int64) (*model.Product, error)
	VendorProductsFn func(context.Context, pkgAuth.Session) ([]model.Product, error)
	CreateProductFn  func(context.Context, pkgAuth.Session, usecase.ProductInput) (*model.Product, error)
	UpdateProductFn  func(context.Context, pkgAuth.Session, int64, usecase.ProductInput) (*model.Product, error)
}

// Products returns the configured storefront catalog.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Mug", Price: 10, Active: true}}, nil
}

// Product returns one configured catalog entry.
func (s CatalogFacadeStub) Product(ctx context.Context, session pkgAuth.Session, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, session, id)
	}
	return &model.Product{ID: id, Name: "Mug", Price: 10, Active: true}, nil
}

// VendorProducts returns the vendor's own entries.
func (s CatalogFacadeStub) VendorProducts(ctx context.Context, session pkgAuth.Session) ([]model.Product, error) {
	if s.VendorProductsFn != nil {
		return s.VendorProductsFn(ctx, session)
	}
	return []model.Product{{ID: 1, VendorID: session.UserID, Name: "Mug"}}, nil
}

// CreateProduct echoes the input back as a stored product.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, session pkgAuth.Session, input usecase.ProductInput) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, session, input)
	}
	return &model.Product{ID: 1, VendorID: session.UserID, Name: input.Name, Price: input.Price}, nil
}

// UpdateProduct echoes the input back as an updated product.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, session pkgAuth.Session, id int64, input usecase.ProductInput) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, session, id, input)
	}
	return &model.Product{ID: id, VendorID: session.UserID, Name: input.Name, Price: input.Price}, nil
}

// CategoryFacadeStub provides controllable behaviour for category endpoints.
type CategoryFacadeStub struct {
	CategoriesFn     func(context.Context) ([]model.Category, error)
	CreateCategoryFn func(context.Context, string, string) (*model.Category, error)
	UpdateCategoryFn func(context.Context, int64, string, string) (*model.Category, error)
	DeleteCategoryFn func(context.Context, int64) error
}

// Categories returns the configured taxonomy.
func (s CategoryFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: 1, Name: "Books"}}, nil
}

// CreateCategory echoes the input back as a stored category.
func (s CategoryFacadeStub) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, name, description)
	}
	return &model.Category{ID: 1, Name: name, Description: description}, nil
}

// UpdateCategory echoes the input back as an updated category.
func (s CategoryFacadeStub) UpdateCategory(ctx context.Context, id int64, name, description string) (*model.Category, error) {
	if s.UpdateCategoryFn != nil {
		return s.UpdateCategoryFn(ctx, id, name, description)
	}
	return &model.Category{ID: id, Name: name, Description: description}, nil
}

// DeleteCategory executes the configured override.
func (s CategoryFacadeStub) DeleteCategory(ctx context.Context, id int64) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CheckoutFn          func(context.Context, pkgAuth.Session, usecase.CheckoutInput) (*model.Order, error)
	OrdersFn            func(context.Context, pkgAuth.Session) ([]model.Order, error)
	OrderFn             func(context.Context, pkgAuth.Session, int64) (*model.Order, error)
	TransitionsFn       func(context.Context, pkgAuth.Session, int64) ([]model.OrderStatus, error)
	AllOrdersFn         func(context.Context, model.OrderStatus) ([]model.Order, error)
	UpdateOrderStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	StaleOrdersFn       func(context.Context, time.Duration, int) ([]model.Order, error)
	CancelStaleFn       func(context.Context, *model.Order) error
}

// Checkout returns a default PENDING order or delegates.
func (s OrderFacadeStub) Checkout(ctx context.Context, session pkgAuth.Session, input usecase.CheckoutInput) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, session, input)
	}
	return &model.Order{ID: 1, UserID: session.UserID, Status: model.OrderStatusPending, Total: 10}, nil
}

// Orders returns predefined orders for the session user.
func (s OrderFacadeStub) Orders(ctx context.Context, session pkgAuth.Session) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, session)
	}
	return []model.Order{{ID: 1, UserID: session.UserID, Status: model.OrderStatusPending}}, nil
}

// Order returns one predefined order.
func (s OrderFacadeStub) Order(ctx context.Context, session pkgAuth.Session, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, session, id)
	}
	return &model.Order{ID: id, UserID: session.UserID, Status: model.OrderStatusPending}, nil
}

// OrderTransitions returns the configured successor statuses.
func (s OrderFacadeStub) OrderTransitions(ctx context.Context, session pkgAuth.Session, id int64) ([]model.OrderStatus, error) {
	if s.TransitionsFn != nil {
		return s.TransitionsFn(ctx, session, id)
	}
	return []model.OrderStatus{model.OrderStatusConfirmed, model.OrderStatusCancelled}, nil
}

// AllOrders returns the configured admin listing.
func (s OrderFacadeStub) AllOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx, status)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusPending}}, nil
}

// UpdateOrderStatus applies the configured override.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}

// StaleOrders returns the configured stale batch.
func (s OrderFacadeStub) StaleOrders(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	if s.StaleOrdersFn != nil {
		return s.StaleOrdersFn(ctx, olderThan, limit)
	}
	return nil, nil
}

// CancelStaleOrder applies the configured override.
func (s OrderFacadeStub) CancelStaleOrder(ctx context.Context, order *model.Order) error {
	if s.CancelStaleFn != nil {
		return s.CancelStaleFn(ctx, order)
	}
	return nil
}

// PaymentFacadeStub provides controllable behaviour for payment endpoints.
type PaymentFacadeStub struct {
	SubmitFn  func(context.Context, pkgAuth.Session, int64, usecase.PaymentInput) (*model.Payment, error)
	PendingFn func(context.Context) ([]model.Payment, error)
	VerifyFn  func(context.Context, int64, string) (*model.Payment, error)
	RejectFn  func(context.Context, int64, string) (*model.Payment, error)
}

// SubmitPayment returns a default pending payment or delegates.
func (s PaymentFacadeStub) SubmitPayment(ctx context.Context, session pkgAuth.Session, orderID int64, input usecase.PaymentInput) (*model.Payment, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, session, orderID, input)
	}
	return &model.Payment{ID: 1, OrderID: orderID, Amount: input.Amount, Status: model.PaymentStatusPending}, nil
}

// PendingPayments returns the configured review queue.
func (s PaymentFacadeStub) PendingPayments(ctx context.Context) ([]model.Payment, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx)
	}
	return []model.Payment{{ID: 1, OrderID: 1, Status: model.PaymentStatusPending}}, nil
}

// VerifyPayment applies the configured override.
func (s PaymentFacadeStub) VerifyPayment(ctx context.Context, id int64, note string) (*model.Payment, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, id, note)
	}
	return &model.Payment{ID: id, Status: model.PaymentStatusVerified, AdminNote: note}, nil
}

// RejectPayment applies the configured override.
func (s PaymentFacadeStub) RejectPayment(ctx context.Context, id int64, note string) (*model.Payment, error) {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, id, note)
	}
	return &model.Payment{ID: id, Status: model.PaymentStatusRejected, AdminNote: note}, nil
}

// DiscountFacadeStub provides controllable behaviour for discount endpoints.
type DiscountFacadeStub struct {
	DiscountsFn func(context.Context) ([]model.Discount, error)
	CreateFn    func(context.Context, usecase.DiscountInput) (*model.Discount, error)
	UpdateFn    func(context.Context, int64, usecase.DiscountInput) (*model.Discount, error)
	ToggleFn    func(context.Context, int64) (*model.Discount, error)
	QuoteFn     func(context.Context, string, float64) (*usecase.Quote, error)
}

// Discounts returns the configured discount list.
func (s DiscountFacadeStub) Discounts(ctx context.Context) ([]model.Discount, error) {
	if s.DiscountsFn != nil {
		return s.DiscountsFn(ctx)
	}
	return []model.Discount{{ID: 1, Code: "SALE", Percentage: 10, Active: true}}, nil
}

// CreateDiscount echoes the input back as a stored discount.
func (s DiscountFacadeStub) CreateDiscount(ctx context.Context, input usecase.DiscountInput) (*model.Discount, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, input)
	}
	return &model.Discount{ID: 1, Code: input.Code, Percentage: input.Percentage, Active: input.Active}, nil
}

// UpdateDiscount echoes the input back as an updated discount.
func (s DiscountFacadeStub) UpdateDiscount(ctx context.Context, id int64, input usecase.DiscountInput) (*model.Discount, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, input)
	}
	return &model.Discount{ID: id, Code: input.Code, Percentage: input.Percentage, Active: input.Active}, nil
}

// ToggleDiscount applies the configured override.
func (s DiscountFacadeStub) ToggleDiscount(ctx context.Context, id int64) (*model.Discount, error) {
	if s.ToggleFn != nil {
		return s.ToggleFn(ctx, id)
	}
	return &model.Discount{ID: id, Code: "SALE", Percentage: 10}, nil
}

// QuoteDiscount prices a subtotal with the configured override.
func (s DiscountFacadeStub) QuoteDiscount(ctx context.Context, code string, subtotal float64) (*usecase.Quote, error) {
	if s.QuoteFn != nil {
		return s.QuoteFn(ctx, code, subtotal)
	}
	return &usecase.Quote{Code: code, Percentage: 10, Discount: subtotal / 10, Total: subtotal * 0.9}, nil
}

// HealthFacadeStub reports configured storage health.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CategoryFacadeStub
	OrderFacadeStub
	PaymentFacadeStub
	DiscountFacadeStub
	HealthFacadeStub
}
