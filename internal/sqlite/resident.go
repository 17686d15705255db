package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpggio/upkeep/internal/domain/resident"
	"github.com/rpggio/upkeep/internal/repository"
)

// ResidentRepository implements resident.Repository for SQLite
type ResidentRepository struct {
	db *DB
}

// NewResidentRepository creates a new ResidentRepository
func NewResidentRepository(db *DB) *ResidentRepository {
	return &ResidentRepository{db: db}
}

// Create inserts a resident with its externally assigned id.
func (r *ResidentRepository) Create(ctx context.Context, res *resident.Resident) error {
	query := `
		INSERT INTO residents (resident_id, name, unit, email)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, res.ID, res.Name, res.Unit, res.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create resident: %w", err)
	}

	return nil
}

// Get retrieves a resident by id
func (r *ResidentRepository) Get(ctx context.Context, id int64) (*resident.Resident, error) {
	query := `
		SELECT resident_id, name, unit, email
		FROM residents
		WHERE resident_id = ?
	`

	var res resident.Resident
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&res.ID,
		&res.Name,
		&res.Unit,
		&res.Email,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resident: %w", err)
	}

	return &res, nil
}

// List returns every resident
func (r *ResidentRepository) List(ctx context.Context) ([]resident.Resident, error) {
	query := `SELECT resident_id, name, unit, email FROM residents`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	defer rows.Close()

	var residents []resident.Resident
	for rows.Next() {
		var res resident.Resident
		if err := rows.Scan(&res.ID, &res.Name, &res.Unit, &res.Email); err != nil {
			return nil, fmt.Errorf("failed to scan resident row: %w", err)
		}
		residents = append(residents, res)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resident rows: %w", err)
	}

	return residents, nil
}
