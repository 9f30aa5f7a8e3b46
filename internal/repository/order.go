package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
)

// OrderRepo represents order repository.
type OrderRepo struct {
	db *pgxpool.Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{db: db}
}

// Get - returns order with its items.
func (r *OrderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx, `
        SELECT id, customer_id, total, status, created_at
        FROM orders WHERE id = $1
    `, id).Scan(&o.ID, &o.CustomerID, &o.Total, &o.Status, &o.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %q: %w", id, err)
	}

	rows, err := r.db.Query(ctx, `
        SELECT name, price, quantity
        FROM order_items WHERE order_id = $1
        ORDER BY position ASC
    `, id)
	if err != nil {
		return nil, fmt.Errorf("get order %q items: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.Name, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	return &o, rows.Err()
}

// Create - inserts the order together with its items in one transaction.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `
        INSERT INTO orders (id, customer_id, total, status, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, o.ID, o.CustomerID, o.Total, o.Status, o.CreatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for i, it := range o.Items {
		_, err = tx.Exec(ctx, `
            INSERT INTO order_items (order_id, position, name, price, quantity)
            VALUES ($1, $2, $3, $4, $5)
        `, o.ID, i, it.Name, it.Price, it.Quantity)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// UpdateStatus - sets the order status. Reports whether a row matched.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET status = $2, updated_at = now()
        WHERE id = $1
    `, id, status)
	if err != nil {
		return false, fmt.Errorf("update order %q status: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
