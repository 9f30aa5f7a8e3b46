package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
	"delivery-platform/internal/service/delivery"
)

const deliveryColumns = `id, order_id, courier_id, status, fee, distance_km, estimated_minutes,
        start_time, end_time, has_started, customer_rating, customer_feedback, created_at`

// DeliveryRepo represents delivery repository.
type DeliveryRepo struct {
	db *pgxpool.Pool
}

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(db *pgxpool.Pool) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *DeliveryRepo) WithTx(ctx context.Context, fn func(tx delivery.TxRepository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// roll back on panic before re-raising
	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func scanDelivery(row interface{ Scan(...any) error }) (*domain.Delivery, error) {
	var d domain.Delivery
	err := row.Scan(&d.ID, &d.OrderID, &d.CourierID, &d.Status, &d.Fee, &d.DistanceKm,
		&d.EstimatedMinutes, &d.StartTime, &d.EndTime, &d.HasStarted,
		&d.CustomerRating, &d.CustomerFeedback, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Get - returns delivery by its ID.
func (r *DeliveryRepo) Get(ctx context.Context, id string) (*domain.Delivery, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1`, id)
	d, err := scanDelivery(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery %q: %w", id, err)
	}
	return d, nil
}

// GetByOrderID - returns the delivery attached to an order.
func (r *DeliveryRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Delivery, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE order_id = $1`, orderID)
	d, err := scanDelivery(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery by order %q: %w", orderID, err)
	}
	return d, nil
}

// Insert - inserts a new delivery. The unique index on order_id keeps the
// order↔delivery relation 1:1 even under concurrent creation.
func (r *DeliveryRepo) Insert(ctx context.Context, d *domain.Delivery) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO deliveries (id, order_id, status, fee, distance_km, estimated_minutes, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, d.ID, d.OrderID, d.Status, d.Fee, d.DistanceKm, d.EstimatedMinutes, d.CreatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// ListPending - returns unassigned pending deliveries, oldest first.
func (r *DeliveryRepo) ListPending(ctx context.Context) ([]domain.Delivery, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+deliveryColumns+`
        FROM deliveries
        WHERE status = $1 AND courier_id IS NULL
        ORDER BY created_at ASC
    `, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending deliveries: %w", err)
	}
	defer rows.Close()
	var out []domain.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// ListOverdue - returns deliveries still delivering that started before the cutoff.
func (r *DeliveryRepo) ListOverdue(ctx context.Context, startedBefore time.Time) ([]domain.Delivery, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+deliveryColumns+`
        FROM deliveries
        WHERE status = $1 AND start_time IS NOT NULL AND start_time < $2
        ORDER BY start_time ASC
    `, domain.StatusDelivering, startedBefore)
	if err != nil {
		return nil, fmt.Errorf("list overdue deliveries: %w", err)
	}
	defer rows.Close()
	var out []domain.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

// GetDeliveryForUpdate - loads a delivery and locks its row for the transaction.
func (r *TxRepo) GetDeliveryForUpdate(ctx context.Context, id string) (*domain.Delivery, error) {
	row := r.tx.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1 FOR UPDATE`, id)
	d, err := scanDelivery(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock delivery %q: %w", id, err)
	}
	return d, nil
}

// GetCourierForUpdate - loads a courier and locks its row for the transaction.
func (r *TxRepo) GetCourierForUpdate(ctx context.Context, id int64) (*domain.Courier, error) {
	row := r.tx.QueryRow(ctx,
		`SELECT `+courierColumns+` FROM couriers WHERE id = $1 FOR UPDATE`, id)
	c, err := scanCourier(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock courier %d: %w", id, err)
	}
	return c, nil
}

// SetDeliveryCourier - records the courier assignment. The guard on courier_id
// keeps the at-most-once assignment rule even if callers skip the row lock.
func (r *TxRepo) SetDeliveryCourier(ctx context.Context, deliveryID string, courierID int64, status domain.Status) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE deliveries
        SET courier_id = $2, status = $3, updated_at = now()
        WHERE id = $1 AND courier_id IS NULL
    `, deliveryID, courierID, status)
	if err != nil {
		return fmt.Errorf("assign delivery %q: %w", deliveryID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.ErrAlreadyAssigned
	}
	return nil
}

// UpdateDeliveryProgress - persists status, timestamps, and the started flag.
func (r *TxRepo) UpdateDeliveryProgress(ctx context.Context, d *domain.Delivery) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE deliveries
        SET status = $2, start_time = $3, end_time = $4, has_started = $5, updated_at = now()
        WHERE id = $1
    `, d.ID, d.Status, d.StartTime, d.EndTime, d.HasStarted)
	if err != nil {
		return fmt.Errorf("update delivery %q: %w", d.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("delivery %q not found", d.ID)
	}
	return nil
}

// UpdateCourierStatus - update courier status.
func (r *TxRepo) UpdateCourierStatus(ctx context.Context, id int64, status domain.CourierStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE couriers
        SET status = $2, updated_at = now()
        WHERE id = $1
    `, id, string(status))
	if err != nil {
		return fmt.Errorf("update courier status %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("courier %d not found", id)
	}
	return nil
}

// IncrementCourierDeliveries - bumps the completed-deliveries counter by one.
func (r *TxRepo) IncrementCourierDeliveries(ctx context.Context, id int64) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE couriers
        SET total_deliveries = total_deliveries + 1, updated_at = now()
        WHERE id = $1
    `, id)
	if err != nil {
		return fmt.Errorf("increment courier %d deliveries: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("courier %d not found", id)
	}
	return nil
}

// SaveRating - stores the customer rating and feedback on a delivery.
func (r *TxRepo) SaveRating(ctx context.Context, deliveryID string, rating float64, feedback *string) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE deliveries
        SET customer_rating = $2, customer_feedback = $3, updated_at = now()
        WHERE id = $1
    `, deliveryID, rating, feedback)
	if err != nil {
		return fmt.Errorf("save rating for delivery %q: %w", deliveryID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("delivery %q not found", deliveryID)
	}
	return nil
}

// CourierAverageRating - mean of the courier's non-null delivery ratings,
// equal weight per delivery.
func (r *TxRepo) CourierAverageRating(ctx context.Context, courierID int64) (float64, error) {
	var avg float64
	err := r.tx.QueryRow(ctx, `
        SELECT COALESCE(AVG(customer_rating), 0)
        FROM deliveries
        WHERE courier_id = $1 AND customer_rating IS NOT NULL
    `, courierID).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("average rating for courier %d: %w", courierID, err)
	}
	return avg, nil
}

// UpdateCourierRating - stores the recomputed running average.
func (r *TxRepo) UpdateCourierRating(ctx context.Context, courierID int64, rating float64) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE couriers
        SET rating = $2, updated_at = now()
        WHERE id = $1
    `, courierID, rating)
	if err != nil {
		return fmt.Errorf("update courier %d rating: %w", courierID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("courier %d not found", courierID)
	}
	return nil
}
