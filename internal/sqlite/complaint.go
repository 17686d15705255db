package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rpggio/upkeep/internal/domain/complaint"
	"github.com/rpggio/upkeep/internal/repository"
)

const complaintColumns = `
	complaint_id, resident_id, subject, description, status, priority,
	created_at_utc, updated_at_utc, location_note`

// ComplaintRepository implements complaint.Repository for SQLite.
//
// Known limitation: attachment paths are not persisted by this store. The
// flat complaint row has no column for them, so reads materialize complaints
// with no attachments. The in-memory store retains them.
type ComplaintRepository struct {
	db *DB
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Create inserts one complaint row and returns the store-assigned id.
func (r *ComplaintRepository) Create(ctx context.Context, c *complaint.Complaint) (int64, error) {
	row := fromDomain(c)

	query := `
		INSERT INTO complaints (
			resident_id, subject, description, status, priority,
			created_at_utc, updated_at_utc, location_note
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		row.ResidentID,
		row.Subject,
		row.Description,
		row.Status,
		row.Priority,
		row.CreatedAtUTC,
		row.UpdatedAtUTC,
		row.LocationNote,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, repository.ErrForeignKeyViolation
		}
		return 0, fmt.Errorf("failed to create complaint: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read assigned complaint id: %w", err)
	}

	return id, nil
}

// Get retrieves a complaint by id
func (r *ComplaintRepository) Get(ctx context.Context, id int64) (*complaint.Complaint, error) {
	query := `SELECT` + complaintColumns + ` FROM complaints WHERE complaint_id = ?`

	var row complaintRow
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&row.ID,
		&row.ResidentID,
		&row.Subject,
		&row.Description,
		&row.Status,
		&row.Priority,
		&row.CreatedAtUTC,
		&row.UpdatedAtUTC,
		&row.LocationNote,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	return row.toDomain()
}

// List returns complaints matching every supplied filter. The WHERE clause
// is assembled from constant fragments only; filter values are always bound,
// never interpolated.
func (r *ComplaintRepository) List(ctx context.Context, filter complaint.ListFilter) ([]complaint.Complaint, error) {
	query := `SELECT` + complaintColumns + ` FROM complaints WHERE 1=1`
	args := []interface{}{}

	if filter.Status != nil {
		query += " AND status = ?"
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		query += " AND priority = ?"
		args = append(args, string(*filter.Priority))
	}
	if filter.ResidentID != nil {
		query += " AND resident_id = ?"
		args = append(args, *filter.ResidentID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	var complaints []complaint.Complaint
	for rows.Next() {
		var row complaintRow
		err := rows.Scan(
			&row.ID,
			&row.ResidentID,
			&row.Subject,
			&row.Description,
			&row.Status,
			&row.Priority,
			&row.CreatedAtUTC,
			&row.UpdatedAtUTC,
			&row.LocationNote,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint row: %w", err)
		}

		c, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, *c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	return complaints, nil
}

// UpdateStatus persists a status change and stamps updated_at_utc.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status complaint.Status, updatedAt time.Time) error {
	query := `UPDATE complaints SET status = ?, updated_at_utc = ? WHERE complaint_id = ?`

	result, err := r.db.ExecContext(ctx, query, string(status), formatStoredTime(updatedAt), id)
	if err != nil {
		return fmt.Errorf("failed to update complaint status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
