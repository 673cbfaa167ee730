package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"storefront/storefront-svc/internal/domain"

	"github.com/google/uuid"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const orderColumns = `id, item_name, quantity, delivery_address, payment_method, payment_label,
	COALESCE(notes, ''), unit_price, line_total, delivery_fee, total, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (domain.OrderConfirmation, error) {
	var order domain.OrderConfirmation
	err := row.Scan(&order.ID, &order.ItemName, &order.Quantity, &order.DeliveryAddress,
		&order.PaymentMethod, &order.PaymentLabel, &order.Notes, &order.UnitPrice,
		&order.LineTotal, &order.DeliveryFee, &order.Total, &order.CreatedAt)
	return order, err
}

// CreateOrder ignores an order id that is already stored, so a redelivered
// message is harmless.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order domain.OrderConfirmation) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO orders (id, item_name, quantity, delivery_address, payment_method, payment_label,
			notes, unit_price, line_total, delivery_fee, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO NOTHING
	`, order.ID, order.ItemName, order.Quantity, order.DeliveryAddress, string(order.PaymentMethod),
		order.PaymentLabel, order.Notes, order.UnitPrice, order.LineTotal, order.DeliveryFee,
		order.Total, order.CreatedAt)
	return err
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID uuid.UUID, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.OrderConfirmation, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context) ([]domain.OrderConfirmation, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.OrderConfirmation{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	var qrCode []byte
	err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return qrCode, nil
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			item_name TEXT NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			delivery_address TEXT NOT NULL,
			payment_method TEXT NOT NULL,
			payment_label TEXT NOT NULL,
			notes TEXT,
			unit_price NUMERIC NOT NULL,
			line_total NUMERIC NOT NULL,
			delivery_fee NUMERIC NOT NULL,
			total NUMERIC NOT NULL,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS orders_created_at_idx ON orders (created_at DESC)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

// PopularItems ranks the items ordered during the UTC calendar day of day by
// total quantity, matching the days of PopularityKey.
func (r *PostgresRepository) PopularItems(ctx context.Context, day time.Time, limit int) ([]domain.PopularItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT item_name, SUM(quantity) AS score
		FROM orders
		WHERE (created_at AT TIME ZONE 'UTC')::date = $1::date
		GROUP BY item_name
		ORDER BY score DESC
		LIMIT $2
	`, day.UTC().Format("2006-01-02"), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.PopularItem{}
	for rows.Next() {
		var item domain.PopularItem
		if err := rows.Scan(&item.ItemName, &item.Score); err != nil {
			return nil, fmt.Errorf("scan popular item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
