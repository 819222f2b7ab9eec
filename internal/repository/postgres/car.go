package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/lib/pq"

	"swiftride/internal/domain"
	"swiftride/internal/repository"
)

// CarRepository is a PostgreSQL implementation of repository.CarRepository.
type CarRepository struct {
	q Querier
}

// NewCarRepository creates a new PostgreSQL car repository.
func NewCarRepository(db *sql.DB) *CarRepository {
	return &CarRepository{q: db}
}

// NewCarRepositoryWithTx creates a car repository using a transaction.
func NewCarRepositoryWithTx(tx *sql.Tx) *CarRepository {
	return &CarRepository{q: tx}
}

const carColumns = `
	id, host_id, make, model, year, color, plate_number,
	price_per_hour, price_per_day, seats, transmission, fuel_type,
	address, lat, lng,
	days_of_week, avail_start_time, avail_end_time, is_available,
	features, is_active, created_at
`

// Create persists a new car.
func (r *CarRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `
		INSERT INTO cars (` + carColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`

	_, err := r.q.ExecContext(ctx, query,
		car.ID,
		car.HostID,
		car.Make,
		car.Model,
		car.Year,
		car.Color,
		car.PlateNumber,
		car.PricePerHour,
		car.PricePerDay,
		car.Seats,
		car.Transmission,
		car.FuelType,
		car.Location.Address,
		car.Location.Lat,
		car.Location.Lng,
		pq.Array(car.Availability.DaysOfWeek),
		car.Availability.StartTime,
		car.Availability.EndTime,
		car.Availability.IsAvailable,
		pq.Array(car.Features),
		car.IsActive,
		car.CreatedAt,
	)

	return err
}

// GetByID retrieves a car by ID regardless of its active flag.
func (r *CarRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`

	car, err := scanCar(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return car, nil
}

// GetByHostID retrieves all cars owned by a host.
func (r *CarRepository) GetByHostID(ctx context.Context, hostID string) ([]*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE host_id = $1 ORDER BY created_at DESC`

	rows, err := r.q.QueryContext(ctx, query, hostID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCars(rows)
}

// ListAvailable retrieves active cars whose availability flag is set,
// narrowed by the filter.
func (r *CarRepository) ListAvailable(ctx context.Context, filter repository.CarFilter) ([]*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE is_active = TRUE AND is_available = TRUE`

	var args []any
	if filter.MinPricePerHour != nil {
		args = append(args, *filter.MinPricePerHour)
		query += " AND price_per_hour >= $" + strconv.Itoa(len(args))
	}
	if filter.MaxPricePerHour != nil {
		args = append(args, *filter.MaxPricePerHour)
		query += " AND price_per_hour <= $" + strconv.Itoa(len(args))
	}
	if filter.Transmission != "" {
		args = append(args, filter.Transmission)
		query += " AND transmission = $" + strconv.Itoa(len(args))
	}
	if filter.FuelType != "" {
		args = append(args, filter.FuelType)
		query += " AND fuel_type = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCars(rows)
}

// Update updates an existing car.
func (r *CarRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `
		UPDATE cars
		SET color = $1, price_per_hour = $2, price_per_day = $3,
		    address = $4, lat = $5, lng = $6,
		    days_of_week = $7, avail_start_time = $8, avail_end_time = $9, is_available = $10,
		    features = $11, is_active = $12
		WHERE id = $13
	`

	result, err := r.q.ExecContext(ctx, query,
		car.Color,
		car.PricePerHour,
		car.PricePerDay,
		car.Location.Address,
		car.Location.Lat,
		car.Location.Lng,
		pq.Array(car.Availability.DaysOfWeek),
		car.Availability.StartTime,
		car.Availability.EndTime,
		car.Availability.IsAvailable,
		pq.Array(car.Features),
		car.IsActive,
		car.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// SetActive flips the soft-delete flag.
func (r *CarRepository) SetActive(ctx context.Context, id string, active bool) error {
	result, err := r.q.ExecContext(ctx, `UPDATE cars SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCar(row rowScanner) (*domain.Car, error) {
	var car domain.Car
	var days pq.Int64Array
	var features pq.StringArray

	err := row.Scan(
		&car.ID,
		&car.HostID,
		&car.Make,
		&car.Model,
		&car.Year,
		&car.Color,
		&car.PlateNumber,
		&car.PricePerHour,
		&car.PricePerDay,
		&car.Seats,
		&car.Transmission,
		&car.FuelType,
		&car.Location.Address,
		&car.Location.Lat,
		&car.Location.Lng,
		&days,
		&car.Availability.StartTime,
		&car.Availability.EndTime,
		&car.Availability.IsAvailable,
		&features,
		&car.IsActive,
		&car.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	car.Availability.DaysOfWeek = make([]int, len(days))
	for i, d := range days {
		car.Availability.DaysOfWeek[i] = int(d)
	}
	car.Features = []string(features)

	return &car, nil
}

func collectCars(rows *sql.Rows) ([]*domain.Car, error) {
	var cars []*domain.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

// Ensure CarRepository implements repository.CarRepository.
var _ repository.CarRepository = (*CarRepository)(nil)
