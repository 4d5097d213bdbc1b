package handlers

import (
	"context"

	"github.com/polkiloo/storemart/internal/domain/model"
	pkgAuth "github.com/polkiloo/storemart/internal/pkg/auth"
	"github.com/polkiloo/storemart/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string, role model.Role) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (pkgAuth.Session, error)
}

// CatalogFacade encapsulates product operations exposed via HTTP.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, session pkgAuth.Session, id int64) (*model.Product, error)
	VendorProducts(ctx context.Context, session pkgAuth.Session) ([]model.Product, error)
	CreateProduct(ctx context.Context, session pkgAuth.Session, input usecase.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, session pkgAuth.Session, id int64, input usecase.ProductInput) (*model.Product, error)
}

// CategoryFacade provides taxonomy operations.
type CategoryFacade interface {
	Categories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name, description string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, name, description string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// OrderFacade encapsulates order lifecycle operations.
type OrderFacade interface {
	Checkout(ctx context.Context, session pkgAuth.Session, input usecase.CheckoutInput) (*model.Order, error)
	Orders(ctx context.Context, session pkgAuth.Session) ([]model.Order, error)
	Order(ctx context.Context, session pkgAuth.Session, id int64) (*model.Order, error)
	OrderTransitions(ctx context.Context, session pkgAuth.Session, id int64) ([]model.OrderStatus, error)
	AllOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}

// PaymentFacade covers payment submission and review.
type PaymentFacade interface {
	SubmitPayment(ctx context.Context, session pkgAuth.Session, orderID int64, input usecase.PaymentInput) (*model.Payment, error)
	PendingPayments(ctx context.Context) ([]model.Payment, error)
	VerifyPayment(ctx context.Context, id int64, note string) (*model.Payment, error)
	RejectPayment(ctx context.Context, id int64, note string) (*model.Payment, error)
}

// DiscountFacade covers discount management and cart-time evaluation.
type DiscountFacade interface {
	Discounts(ctx context.Context) ([]model.Discount, error)
	CreateDiscount(ctx context.Context, input usecase.DiscountInput) (*model.Discount, error)
	UpdateDiscount(ctx context.Context, id int64, input usecase.DiscountInput) (*model.Discount, error)
	ToggleDiscount(ctx context.Context, id int64) (*model.Discount, error)
	QuoteDiscount(ctx context.Context, code string, subtotal float64) (*usecase.Quote, error)
}

// HealthFacade reports backing store availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	CatalogFacade
	CategoryFacade
	OrderFacade
	PaymentFacade
	DiscountFacade
	HealthFacade
}
