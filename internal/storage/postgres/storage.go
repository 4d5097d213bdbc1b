package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/storemart/internal/domain/errors"
	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/domain/repository"
	"github.com/polkiloo/storemart/internal/domain/rules"
)

// DB is the subset of pgxpool.Pool the storage uses. Declared as an
// interface so tests can substitute a pgxmock pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   DB
	logger *slog.Logger
}

type userRepository struct{ storage *Storage }
type productRepository struct{ storage *Storage }
type categoryRepository struct{ storage *Storage }
type orderRepository struct{ storage *Storage }
type paymentRepository struct{ storage *Storage }
type discountRepository struct{ storage *Storage }

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository         { return &userRepository{storage: s} }
func (s *Storage) Products() repository.ProductRepository   { return &productRepository{storage: s} }
func (s *Storage) Categories() repository.CategoryRepository { return &categoryRepository{storage: s} }
func (s *Storage) Orders() repository.OrderRepository       { return &orderRepository{storage: s} }
func (s *Storage) Payments() repository.PaymentRepository   { return &paymentRepository{storage: s} }
func (s *Storage) Discounts() repository.DiscountRepository { return &discountRepository{storage: s} }

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS categories (
            id SERIAL PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            vendor_id BIGINT NOT NULL REFERENCES users(id),
            category_id BIGINT REFERENCES categories(id),
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL,
            stock INTEGER NOT NULL,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            number TEXT UNIQUE NOT NULL,
            user_id BIGINT NOT NULL REFERENCES users(id),
            user_email TEXT NOT NULL,
            status TEXT NOT NULL,
            items JSONB NOT NULL,
            subtotal DOUBLE PRECISION NOT NULL,
            discount_code TEXT NOT NULL DEFAULT '',
            discount_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
            total DOUBLE PRECISION NOT NULL,
            shipping_address TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS payments (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            reference TEXT UNIQUE NOT NULL,
            receipt_url TEXT NOT NULL DEFAULT '',
            admin_note TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            reviewed_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS discounts (
            id SERIAL PRIMARY KEY,
            code TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL,
            percentage DOUBLE PRECISION NOT NULL,
            starts_at TIMESTAMPTZ,
            ends_at TIMESTAMPTZ,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_status ON payments(status, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, role, created_at FROM users WHERE email=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, password_hash, role, created_at FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- ProductRepository implementation ---

const productColumns = `id, vendor_id, COALESCE(category_id, 0), name, description, price, stock, active, created_at, updated_at`

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (vendor_id, category_id, name, description, price, stock, active)
                   VALUES ($1, NULLIF($2, 0), $3, $4, $5, $6, $7)
                   RETURNING id, created_at, updated_at`
	created := *product
	err := r.storage.pool.QueryRow(ctx, query,
		product.VendorID, product.CategoryID, product.Name, product.Description,
		product.Price, product.Stock, product.Active,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `UPDATE products
                   SET category_id=NULLIF($2, 0), name=$3, description=$4, price=$5, stock=$6, active=$7, updated_at=NOW()
                   WHERE id=$1
                   RETURNING created_at, updated_at`
	updated := *product
	err := r.storage.pool.QueryRow(ctx, query,
		product.ID, product.CategoryID, product.Name, product.Description,
		product.Price, product.Stock, product.Active,
	).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.VendorID, &p.CategoryID, &p.Name, &p.Description,
		&p.Price, &p.Stock, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) ListActive(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE active ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *productRepository) ListByVendor(ctx context.Context, vendorID int64) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE vendor_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, vendorID)
}

func (r *productRepository) list(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.VendorID, &p.CategoryID, &p.Name, &p.Description,
			&p.Price, &p.Stock, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) DecrementStock(ctx context.Context, productID int64, quantity int) error {
	const query = `UPDATE products SET stock = stock - $2, updated_at=NOW() WHERE id=$1 AND stock >= $2`
	tag, err := r.storage.pool.Exec(ctx, query, productID, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrOutOfStock
	}
	return nil
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) Create(ctx context.Context, name, description string) (*model.Category, error) {
	const query = `INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id, created_at`
	c := model.Category{Name: name, Description: description}
	err := r.storage.pool.QueryRow(ctx, query, name, description).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Update(ctx context.Context, id int64, name, description string) (*model.Category, error) {
	const query = `UPDATE categories SET name=$2, description=$3 WHERE id=$1 RETURNING created_at`
	c := model.Category{ID: id, Name: name, Description: description}
	err := r.storage.pool.QueryRow(ctx, query, id, name, description).Scan(&c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT id, name, description, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, number, user_id, user_email, status, items, subtotal, discount_code, discount_amount, total, shipping_address, created_at, updated_at`

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}

	const query = `INSERT INTO orders (number, user_id, user_email, status, items, subtotal, discount_code, discount_amount, total, shipping_address)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING id, created_at, updated_at`
	created := *order
	err = r.storage.pool.QueryRow(ctx, query,
		order.Number, order.UserID, order.UserEmail, order.Status, items,
		order.Subtotal, order.DiscountCode, order.DiscountAmount, order.Total, order.ShippingAddress,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var items []byte
	err := row.Scan(&o.ID, &o.Number, &o.UserID, &o.UserEmail, &o.Status, &items,
		&o.Subtotal, &o.DiscountCode, &o.DiscountAmount, &o.Total, &o.ShippingAddress,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) List(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status == "" {
		rows, err = r.storage.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	} else {
		rows, err = r.storage.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE status=$1 ORDER BY created_at DESC`, status)
	}
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

// UpdateStatus re-reads the current status under a row lock and
// re-validates the transition, so a concurrent admin action cannot
// slip an illegal change past the earlier use-case check.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, proposed model.OrderStatus) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var current model.OrderStatus
		err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, orderID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if err := rules.ValidateTransition(current, proposed); err != nil {
			return err
		}

		row := tx.QueryRow(ctx, `UPDATE orders SET status=$2, updated_at=NOW() WHERE id=$1 RETURNING `+orderColumns, orderID, proposed)
		updated, err = scanOrder(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *orderRepository) SelectStalePending(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o
              WHERE o.status=$1 AND o.created_at < $2
                AND NOT EXISTS (
                    SELECT 1 FROM payments p
                    WHERE p.order_id = o.id AND p.status IN ($3, $4)
                )
              ORDER BY o.created_at
              LIMIT $5
              FOR UPDATE SKIP LOCKED`

	var orders []model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query,
			model.OrderStatusPending, cutoff,
			model.PaymentStatusPending, model.PaymentStatusVerified, limit)
		if err != nil {
			return err
		}
		orders, err = collectOrders(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// --- PaymentRepository implementation ---

const paymentColumns = `id, order_id, amount, status, reference, receipt_url, admin_note, created_at, reviewed_at`

func scanPayment(row pgx.Row) (*model.Payment, error) {
	var p model.Payment
	err := row.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Status, &p.Reference,
		&p.ReceiptURL, &p.AdminNote, &p.CreatedAt, &p.ReviewedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	const query = `INSERT INTO payments (order_id, amount, status, reference, receipt_url)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	created := *payment
	err := r.storage.pool.QueryRow(ctx, query,
		payment.OrderID, payment.Amount, payment.Status, payment.Reference, payment.ReceiptURL,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id=$1`
	return scanPayment(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *paymentRepository) GetOpenByOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id=$1 AND status=$2`
	return scanPayment(r.storage.pool.QueryRow(ctx, query, orderID, model.PaymentStatusPending))
}

func (r *paymentRepository) ListByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *payment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Review settles a pending payment. Verification confirms the order's
// PENDING status inside the same transaction so the two records cannot
// diverge.
func (r *paymentRepository) Review(ctx context.Context, paymentID int64, proposed model.PaymentStatus, adminNote string) (*model.Payment, error) {
	var reviewed *model.Payment
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var current model.PaymentStatus
		var orderID int64
		err := tx.QueryRow(ctx, `SELECT status, order_id FROM payments WHERE id=$1 FOR UPDATE`, paymentID).Scan(&current, &orderID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if err := rules.ValidatePaymentTransition(current, proposed); err != nil {
			return err
		}

		row := tx.QueryRow(ctx, `UPDATE payments SET status=$2, admin_note=$3, reviewed_at=NOW() WHERE id=$1 RETURNING `+paymentColumns,
			paymentID, proposed, adminNote)
		if reviewed, err = scanPayment(row); err != nil {
			return err
		}

		if proposed != model.PaymentStatusVerified {
			return nil
		}

		var orderStatus model.OrderStatus
		if err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, orderID).Scan(&orderStatus); err != nil {
			return err
		}
		if !rules.CanTransition(orderStatus, model.OrderStatusConfirmed) {
			// Already confirmed or moved on; the verified payment stands.
			return nil
		}
		_, err = tx.Exec(ctx, `UPDATE orders SET status=$2, updated_at=NOW() WHERE id=$1`, orderID, model.OrderStatusConfirmed)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reviewed, nil
}

// --- DiscountRepository implementation ---

const discountColumns = `id, code, name, percentage, starts_at, ends_at, active, created_at`

func scanDiscount(row pgx.Row) (*model.Discount, error) {
	var d model.Discount
	err := row.Scan(&d.ID, &d.Code, &d.Name, &d.Percentage, &d.StartsAt, &d.EndsAt, &d.Active, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *discountRepository) Create(ctx context.Context, discount *model.Discount) (*model.Discount, error) {
	const query = `INSERT INTO discounts (code, name, percentage, starts_at, ends_at, active)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at`
	created := *discount
	err := r.storage.pool.QueryRow(ctx, query,
		discount.Code, discount.Name, discount.Percentage, discount.StartsAt, discount.EndsAt, discount.Active,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *discountRepository) Update(ctx context.Context, discount *model.Discount) (*model.Discount, error) {
	const query = `UPDATE discounts SET code=$2, name=$3, percentage=$4, starts_at=$5, ends_at=$6, active=$7
                   WHERE id=$1
                   RETURNING created_at`
	updated := *discount
	err := r.storage.pool.QueryRow(ctx, query,
		discount.ID, discount.Code, discount.Name, discount.Percentage,
		discount.StartsAt, discount.EndsAt, discount.Active,
	).Scan(&updated.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &updated, nil
}

func (r *discountRepository) GetByID(ctx context.Context, id int64) (*model.Discount, error) {
	query := `SELECT ` + discountColumns + ` FROM discounts WHERE id=$1`
	return scanDiscount(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *discountRepository) list(ctx context.Context, query string, args ...any) ([]model.Discount, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Discount
	for rows.Next() {
		discount, err := scanDiscount(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *discount)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *discountRepository) List(ctx context.Context) ([]model.Discount, error) {
	return r.list(ctx, `SELECT `+discountColumns+` FROM discounts ORDER BY created_at DESC`)
}

func (r *discountRepository) ListActive(ctx context.Context) ([]model.Discount, error) {
	return r.list(ctx, `SELECT `+discountColumns+` FROM discounts WHERE active ORDER BY created_at DESC`)
}

func (r *discountRepository) SetActive(ctx context.Context, id int64, active bool) (*model.Discount, error) {
	query := `UPDATE discounts SET active=$2 WHERE id=$1 RETURNING ` + discountColumns
	return scanDiscount(r.storage.pool.QueryRow(ctx, query, id, active))
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
