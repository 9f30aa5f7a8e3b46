package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"delivery-platform/internal/apperr"
	"delivery-platform/internal/domain"
)

const courierColumns = `id, name, phone, vehicle_type, status, rating, total_deliveries, is_active, latitude, longitude`

// CourierRepo represents courier repository.
type CourierRepo struct{ db *pgxpool.Pool }

// NewCourierRepo creates a new CourierRepo.
func NewCourierRepo(db *pgxpool.Pool) *CourierRepo { return &CourierRepo{db: db} }

func scanCourier(row interface{ Scan(...any) error }) (*domain.Courier, error) {
	var c domain.Courier
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.VehicleType, &c.Status,
		&c.Rating, &c.TotalDeliveries, &c.IsActive, &c.Latitude, &c.Longitude)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Get - returns courier by its ID.
func (r *CourierRepo) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+courierColumns+` FROM couriers WHERE id=$1`, id)
	c, err := scanCourier(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get courier %d: %w", id, err)
	}
	return c, nil
}

// List returns couriers ordered by id. If limit/offset are nil, returns the full list.
func (r *CourierRepo) List(ctx context.Context, limit, offset *int) ([]domain.Courier, error) {
	q := `SELECT ` + courierColumns + ` FROM couriers ORDER BY id`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	capacity := 0
	if limit != nil && *limit > 0 {
		capacity = *limit
	}
	out := make([]domain.Courier, 0, capacity)
	for rows.Next() {
		c, err := scanCourier(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// ListActive returns couriers that have not been soft-deleted.
func (r *CourierRepo) ListActive(ctx context.Context) ([]domain.Courier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+courierColumns+` FROM couriers WHERE is_active ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Courier
	for rows.Next() {
		c, err := scanCourier(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// Create - creates a new courier.
func (r *CourierRepo) Create(ctx context.Context, c *domain.Courier) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO couriers(name, phone, vehicle_type, status, is_active)
        VALUES($1, $2, $3, $4, $5)
        RETURNING id
    `, c.Name, c.Phone, c.VehicleType, c.Status, c.IsActive).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create courier: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update to a courier and returns true if a row was affected.
func (r *CourierRepo) UpdatePartial(ctx context.Context, u domain.PartialCourierUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE couriers
        SET
            name         = COALESCE($2, name),
            phone        = COALESCE($3, phone),
            status       = COALESCE($4, status),
            vehicle_type = COALESCE($5, vehicle_type),
            updated_at   = now()
        WHERE id = $1
    `, u.ID, u.Name, u.Phone, u.Status, u.VehicleType)

	if err != nil {
		if IsDuplicate(err) {
			return false, apperr.ErrConflict
		}
		return false, fmt.Errorf("update courier %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// UpdateLocation stores the courier's last reported coordinates.
func (r *CourierRepo) UpdateLocation(ctx context.Context, id int64, lat, lon float64) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE couriers
        SET latitude = $2, longitude = $3, updated_at = now()
        WHERE id = $1
    `, id, lat, lon)
	if err != nil {
		return false, fmt.Errorf("update courier %d location: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// SetActive flips the soft-delete flag and returns true if a row was affected.
func (r *CourierRepo) SetActive(ctx context.Context, id int64, active bool) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE couriers
        SET is_active = $2, updated_at = now()
        WHERE id = $1
    `, id, active)
	if err != nil {
		return false, fmt.Errorf("set courier %d active=%t: %w", id, active, err)
	}
	return ct.RowsAffected() > 0, nil
}
