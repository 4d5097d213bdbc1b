package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/storemart/internal/domain/errors"
	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/domain/rules"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderUpdateCall records one UpdateStatus invocation.
type OrderUpdateCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn             func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn            func(context.Context, int64) (*model.Order, error)
	ListByUserFn         func(context.Context, int64) ([]model.Order, error)
	ListFn               func(context.Context, model.OrderStatus) ([]model.Order, error)
	UpdateStatusFn       func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	SelectStalePendingFn func(context.Context, time.Time, int) ([]model.Order, error)

	Orders      []model.Order
	Stale       []model.Order
	UpdateCalls []OrderUpdateCall
}

// Create delegates to override or assigns a synthetic identifier.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	created := *order
	created.ID = int64(len(s.Orders) + 1)
	s.Orders = append(s.Orders, created)
	return &created, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns stored orders belonging to the user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var out []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// List returns stored orders filtered by status when provided.
func (s *OrderRepositoryStub) List(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, status)
	}
	if status == "" {
		return s.Orders, nil
	}
	var out []model.Order
	for _, o := range s.Orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

// UpdateStatus records update invocations and applies the transition
// rules the real repository enforces inside its transaction.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, proposed model.OrderStatus) (*model.Order, error) {
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{OrderID: orderID, Status: proposed})
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, proposed)
	}
	for i, o := range s.Orders {
		if o.ID == orderID {
			if err := rules.ValidateTransition(o.Status, proposed); err != nil {
				return nil, err
			}
			s.Orders[i].Status = proposed
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// SelectStalePending returns stale orders configured by the test.
func (s *OrderRepositoryStub) SelectStalePending(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	if s.SelectStalePendingFn != nil {
		return s.SelectStalePendingFn(ctx, cutoff, limit)
	}
	if limit > 0 && len(s.Stale) > limit {
		return s.Stale[:limit], nil
	}
	return s.Stale, nil
}

// PaymentRepositoryStub lets tests control payment data.
type PaymentRepositoryStub struct {
	CreateFn         func(context.Context, *model.Payment) (*model.Payment, error)
	GetByIDFn        func(context.Context, int64) (*model.Payment, error)
	GetOpenByOrderFn func(context.Context, int64) (*model.Payment, error)
	ListByStatusFn   func(context.Context, model.PaymentStatus) ([]model.Payment, error)
	ReviewFn         func(context.Context, int64, model.PaymentStatus, string) (*model.Payment, error)

	Payments []model.Payment
}

// Create delegates to override or assigns a synthetic identifier.
func (s *PaymentRepositoryStub) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, payment)
	}
	created := *payment
	created.ID = int64(len(s.Payments) + 1)
	s.Payments = append(s.Payments, created)
	return &created, nil
}

// GetByID returns matched payment from configured slice.
func (s *PaymentRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, p := range s.Payments {
		if p.ID == id {
			payment := p
			return &payment, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetOpenByOrder returns the pending payment for the order, if any.
func (s *PaymentRepositoryStub) GetOpenByOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	if s.GetOpenByOrderFn != nil {
		return s.GetOpenByOrderFn(ctx, orderID)
	}
	for _, p := range s.Payments {
		if p.OrderID == orderID && p.Status == model.PaymentStatusPending {
			payment := p
			return &payment, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByStatus filters the configured payments.
func (s *PaymentRepositoryStub) ListByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error) {
	if s.ListByStatusFn != nil {
		return s.ListByStatusFn(ctx, status)
	}
	var out []model.Payment
	for _, p := range s.Payments {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

// Review applies the review to the stored payment, mirroring the real
// repository's transition check.
func (s *PaymentRepositoryStub) Review(ctx context.Context, paymentID int64, proposed model.PaymentStatus, adminNote string) (*model.Payment, error) {
	if s.ReviewFn != nil {
		return s.ReviewFn(ctx, paymentID, proposed, adminNote)
	}
	for i, p := range s.Payments {
		if p.ID == paymentID {
			if err := rules.ValidatePaymentTransition(p.Status, proposed); err != nil {
				return nil, err
			}
			now := time.Now()
			s.Payments[i].Status = proposed
			s.Payments[i].AdminNote = adminNote
			s.Payments[i].ReviewedAt = &now
			payment := s.Payments[i]
			return &payment, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// DiscountRepositoryStub stores discounts in-memory for tests.
type DiscountRepositoryStub struct {
	CreateFn     func(context.Context, *model.Discount) (*model.Discount, error)
	UpdateFn     func(context.Context, *model.Discount) (*model.Discount, error)
	GetByIDFn    func(context.Context, int64) (*model.Discount, error)
	ListFn       func(context.Context) ([]model.Discount, error)
	ListActiveFn func(context.Context) ([]model.Discount, error)
	SetActiveFn  func(context.Context, int64, bool) (*model.Discount, error)

	Discounts []model.Discount
}

// Create delegates to override or assigns a synthetic identifier.
func (s *DiscountRepositoryStub) Create(ctx context.Context, discount *model.Discount) (*model.Discount, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, discount)
	}
	for _, d := range s.Discounts {
		if d.Code == discount.Code {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	created := *discount
	created.ID = int64(len(s.Discounts) + 1)
	s.Discounts = append(s.Discounts, created)
	return &created, nil
}

// Update replaces the stored discount with matching identifier.
func (s *DiscountRepositoryStub) Update(ctx context.Context, discount *model.Discount) (*model.Discount, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, discount)
	}
	for i, d := range s.Discounts {
		if d.ID == discount.ID {
			s.Discounts[i] = *discount
			updated := s.Discounts[i]
			return &updated, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID returns matched discount from configured slice.
func (s *DiscountRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Discount, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, d := range s.Discounts {
		if d.ID == id {
			discount := d
			return &discount, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns the configured discounts.
func (s *DiscountRepositoryStub) List(ctx context.Context) ([]model.Discount, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Discounts, nil
}

// ListActive filters the configured discounts by the active flag.
func (s *DiscountRepositoryStub) ListActive(ctx context.Context) ([]model.Discount, error) {
	if s.ListActiveFn != nil {
		return s.ListActiveFn(ctx)
	}
	var out []model.Discount
	for _, d := range s.Discounts {
		if d.Active {
			out = append(out, d)
		}
	}
	return out, nil
}

// SetActive flips the stored flag.
func (s *DiscountRepositoryStub) SetActive(ctx context.Context, id int64, active bool) (*model.Discount, error) {
	if s.SetActiveFn != nil {
		return s.SetActiveFn(ctx, id, active)
	}
	for i, d := range s.Discounts {
		if d.ID == id {
			s.Discounts[i].Active = active
			updated := s.Discounts[i]
			return &updated, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// CategoryRepositoryStub stores categories in-memory for tests.
type CategoryRepositoryStub struct {
	CreateFn func(context.Context, string, string) (*model.Category, error)
	UpdateFn func(context.Context, int64, string, string) (*model.Category, error)
	DeleteFn func(context.Context, int64) error
	ListFn   func(context.Context) ([]model.Category, error)

	Categories []model.Category
}

// Create delegates to override or assigns a synthetic identifier.
func (s *CategoryRepositoryStub) Create(ctx context.Context, name, description string) (*model.Category, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, description)
	}
	for _, c := range s.Categories {
		if c.Name == name {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	created := model.Category{ID: int64(len(s.Categories) + 1), Name: name, Description: description}
	s.Categories = append(s.Categories, created)
	return &created, nil
}

// Update replaces the stored category with matching identifier.
func (s *CategoryRepositoryStub) Update(ctx context.Context, id int64, name, description string) (*model.Category, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, name, description)
	}
	for i, c := range s.Categories {
		if c.ID == id {
			s.Categories[i].Name = name
			s.Categories[i].Description = description
			updated := s.Categories[i]
			return &updated, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes the stored category.
func (s *CategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i, c := range s.Categories {
		if c.ID == id {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// List returns the configured categories.
func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Categories, nil
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	CreateFn         func(context.Context, *model.Product) (*model.Product, error)
	UpdateFn         func(context.Context, *model.Product) (*model.Product, error)
	GetByIDFn        func(context.Context, int64) (*model.Product, error)
	ListActiveFn     func(context.Context) ([]model.Product, error)
	ListByVendorFn   func(context.Context, int64) ([]model.Product, error)
	DecrementStockFn func(context.Context, int64, int) error

	Products   []model.Product
	Decrements []struct {
		ProductID int64
		Quantity  int
	}
}

// Create delegates to override or assigns a synthetic identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	created := *product
	created.ID = int64(len(s.Products) + 1)
	s.Products = append(s.Products, created)
	return &created, nil
}

// Update replaces the stored product with matching identifier.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	for i, p := range s.Products {
		if p.ID == product.ID {
			s.Products[i] = *product
			updated := s.Products[i]
			return &updated, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID returns matched product from configured slice.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListActive filters the configured products by the active flag.
func (s *ProductRepositoryStub) ListActive(ctx context.Context) ([]model.Product, error) {
	if s.ListActiveFn != nil {
		return s.ListActiveFn(ctx)
	}
	var out []model.Product
	for _, p := range s.Products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListByVendor returns products owned by the vendor.
func (s *ProductRepositoryStub) ListByVendor(ctx context.Context, vendorID int64) ([]model.Product, error) {
	if s.ListByVendorFn != nil {
		return s.ListByVendorFn(ctx, vendorID)
	}
	var out []model.Product
	for _, p := range s.Products {
		if p.VendorID == vendorID {
			out = append(out, p)
		}
	}
	return out, nil
}

// DecrementStock records invocations and enforces the stock guard.
func (s *ProductRepositoryStub) DecrementStock(ctx context.Context, productID int64, quantity int) error {
	s.Decrements = append(s.Decrements, struct {
		ProductID int64
		Quantity  int
	}{productID, quantity})
	if s.DecrementStockFn != nil {
		return s.DecrementStockFn(ctx, productID, quantity)
	}
	for i, p := range s.Products {
		if p.ID == productID {
			if p.Stock < quantity {
				return domainErrors.ErrOutOfStock
			}
			s.Products[i].Stock -= quantity
			return nil
		}
	}
	return domainErrors.ErrNotFound
}
