package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	"github.com/parkingflow/parking_flow_app/internal/core/domain"
)

// PgxParkingFeeRepository implements repositories.ParkingFeeRepository using
// pgxpool. The payment result is stored as a JSONB document, mirroring how
// the rest of the system treats it as an opaque settled value.
type PgxParkingFeeRepository struct {
	db *pgxpool.Pool
}

// NewParkingFeeRepository creates a new PgxParkingFeeRepository.
func NewParkingFeeRepository(db *pgxpool.Pool) *PgxParkingFeeRepository {
	return &PgxParkingFeeRepository{db: db}
}

const parkingFeeColumns = `
	parking_fee_id, parking_area_id, start_time, end_time, parking_date, payment_result,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanParkingFee(row pgx.Row) (*domain.ParkingFee, error) {
	fee := &domain.ParkingFee{}
	var paymentResult []byte
	err := row.Scan(
		&fee.ParkingFeeID, &fee.ParkingAreaID,
		&fee.StartTime, &fee.EndTime, &fee.ParkingDate, &paymentResult,
		&fee.CreatedAt, &fee.CreatedBy, &fee.LastUpdatedAt, &fee.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(paymentResult, &fee.PaymentResult); err != nil {
		return nil, fmt.Errorf("error decoding payment result: %w", err)
	}
	return fee, nil
}

// SaveParkingFee inserts a new fee record.
func (r *PgxParkingFeeRepository) SaveParkingFee(ctx context.Context, fee domain.ParkingFee) error {
	paymentResult, err := json.Marshal(fee.PaymentResult)
	if err != nil {
		return fmt.Errorf("error encoding payment result: %w", err)
	}

	query := `
		INSERT INTO parking_fees (` + parkingFeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.db.Exec(ctx, query,
		fee.ParkingFeeID, fee.ParkingAreaID,
		fee.StartTime, fee.EndTime, fee.ParkingDate, paymentResult,
		fee.CreatedAt, fee.CreatedBy, fee.LastUpdatedAt, fee.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting parking fee: %w", err)
	}
	return nil
}

// UpdateParkingFee overwrites an existing fee row.
func (r *PgxParkingFeeRepository) UpdateParkingFee(ctx context.Context, fee domain.ParkingFee) error {
	paymentResult, err := json.Marshal(fee.PaymentResult)
	if err != nil {
		return fmt.Errorf("error encoding payment result: %w", err)
	}

	query := `
		UPDATE parking_fees SET
			parking_area_id = $2, start_time = $3, end_time = $4, parking_date = $5,
			payment_result = $6, last_updated_at = $7, last_updated_by = $8
		WHERE parking_fee_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		fee.ParkingFeeID, fee.ParkingAreaID,
		fee.StartTime, fee.EndTime, fee.ParkingDate,
		paymentResult, fee.LastUpdatedAt, fee.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating parking fee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindParkingFeeByID retrieves a fee record by ID.
func (r *PgxParkingFeeRepository) FindParkingFeeByID(ctx context.Context, feeID string) (*domain.ParkingFee, error) {
	query := `SELECT ` + parkingFeeColumns + ` FROM parking_fees WHERE parking_fee_id = $1`
	fee, err := scanParkingFee(r.db.QueryRow(ctx, query, feeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding parking fee: %w", err)
	}
	return fee, nil
}

func (r *PgxParkingFeeRepository) queryFees(ctx context.Context, query string, args ...any) ([]domain.ParkingFee, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing parking fees: %w", err)
	}
	defer rows.Close()

	var fees []domain.ParkingFee
	for rows.Next() {
		fee, err := scanParkingFee(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning parking fee row: %w", err)
		}
		fees = append(fees, *fee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating parking fee rows: %w", err)
	}
	return fees, nil
}

// ListParkingFees retrieves all fee records, most recent first.
func (r *PgxParkingFeeRepository) ListParkingFees(ctx context.Context) ([]domain.ParkingFee, error) {
	query := `SELECT ` + parkingFeeColumns + ` FROM parking_fees ORDER BY parking_date DESC`
	return r.queryFees(ctx, query)
}

// ListParkingFeesByArea retrieves all fee records of one parking area.
func (r *PgxParkingFeeRepository) ListParkingFeesByArea(ctx context.Context, areaID string) ([]domain.ParkingFee, error) {
	query := `SELECT ` + parkingFeeColumns + ` FROM parking_fees WHERE parking_area_id = $1 ORDER BY parking_date DESC`
	return r.queryFees(ctx, query, areaID)
}

// ListParkingFeesByDateRange retrieves fee records with parking_date in [from, to).
func (r *PgxParkingFeeRepository) ListParkingFeesByDateRange(ctx context.Context, from, to time.Time) ([]domain.ParkingFee, error) {
	query := `SELECT ` + parkingFeeColumns + ` FROM parking_fees WHERE parking_date >= $1 AND parking_date < $2`
	return r.queryFees(ctx, query, from, to)
}

// DeleteParkingFee removes a fee record by ID.
func (r *PgxParkingFeeRepository) DeleteParkingFee(ctx context.Context, feeID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM parking_fees WHERE parking_fee_id = $1`, feeID)
	if err != nil {
		return fmt.Errorf("error deleting parking fee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountParkingFees counts all fee records.
func (r *PgxParkingFeeRepository) CountParkingFees(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM parking_fees`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting parking fees: %w", err)
	}
	return count, nil
}
