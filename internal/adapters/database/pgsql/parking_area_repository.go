package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
)

// PgxParkingAreaRepository implements repositories.ParkingAreaRepository using pgxpool.
type PgxParkingAreaRepository struct {
	db *pgxpool.Pool
}

// NewParkingAreaRepository creates a new PgxParkingAreaRepository.
func NewParkingAreaRepository(db *pgxpool.Pool) *PgxParkingAreaRepository {
	return &PgxParkingAreaRepository{db: db}
}

const parkingAreaColumns = `
	parking_area_id, name, location, weekdays_hourly_rate_usd, weekend_hourly_rate_usd,
	discount_percentage, description, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanParkingArea(row pgx.Row) (*domain.ParkingArea, error) {
	area := &domain.ParkingArea{}
	err := row.Scan(
		&area.ParkingAreaID, &area.Name, &area.Location,
		&area.WeekdaysHourlyRateUsd, &area.WeekendHourlyRateUsd,
		&area.DiscountPercentage, &area.Description, &area.IsActive,
		&area.CreatedAt, &area.CreatedBy, &area.LastUpdatedAt, &area.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return area, nil
}

// SaveParkingArea inserts a new parking area.
func (r *PgxParkingAreaRepository) SaveParkingArea(ctx context.Context, area domain.ParkingArea) error {
	query := `
		INSERT INTO parking_areas (` + parkingAreaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		area.ParkingAreaID, area.Name, area.Location,
		area.WeekdaysHourlyRateUsd, area.WeekendHourlyRateUsd,
		area.DiscountPercentage, area.Description, area.IsActive,
		area.CreatedAt, area.CreatedBy, area.LastUpdatedAt, area.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting parking area: %w", err)
	}
	return nil
}

// UpdateParkingArea overwrites an existing parking area row.
func (r *PgxParkingAreaRepository) UpdateParkingArea(ctx context.Context, area domain.ParkingArea) error {
	query := `
		UPDATE parking_areas SET
			name = $2, location = $3, weekdays_hourly_rate_usd = $4, weekend_hourly_rate_usd = $5,
			discount_percentage = $6, description = $7, is_active = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE parking_area_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		area.ParkingAreaID, area.Name, area.Location,
		area.WeekdaysHourlyRateUsd, area.WeekendHourlyRateUsd,
		area.DiscountPercentage, area.Description, area.IsActive,
		area.LastUpdatedAt, area.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating parking area: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindParkingAreaByID retrieves a parking area by ID.
func (r *PgxParkingAreaRepository) FindParkingAreaByID(ctx context.Context, areaID string) (*domain.ParkingArea, error) {
	query := `SELECT ` + parkingAreaColumns + ` FROM parking_areas WHERE parking_area_id = $1`
	area, err := scanParkingArea(r.db.QueryRow(ctx, query, areaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding parking area: %w", err)
	}
	return area, nil
}

// ListParkingAreas retrieves all parking areas ordered by name.
func (r *PgxParkingAreaRepository) ListParkingAreas(ctx context.Context) ([]domain.ParkingArea, error) {
	query := `SELECT ` + parkingAreaColumns + ` FROM parking_areas ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing parking areas: %w", err)
	}
	defer rows.Close()

	var areas []domain.ParkingArea
	for rows.Next() {
		area, err := scanParkingArea(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning parking area row: %w", err)
		}
		areas = append(areas, *area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating parking area rows: %w", err)
	}
	return areas, nil
}

// DeleteParkingArea removes a parking area by ID.
func (r *PgxParkingAreaRepository) DeleteParkingArea(ctx context.Context, areaID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM parking_areas WHERE parking_area_id = $1`, areaID)
	if err != nil {
		return fmt.Errorf("error deleting parking area: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountParkingAreas counts all parking areas.
func (r *PgxParkingAreaRepository) CountParkingAreas(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM parking_areas`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting parking areas: %w", err)
	}
	return count, nil
}

// CountActiveParkingAreas counts parking areas flagged active.
func (r *PgxParkingAreaRepository) CountActiveParkingAreas(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM parking_areas WHERE is_active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active parking areas: %w", err)
	}
	return count, nil
}
