package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rpggio/upkeep/internal/domain/complaint"
	"github.com/rpggio/upkeep/internal/repository"
)

// timeLayout is the single canonical timestamp encoding for stored
// timestamps. Writing a timestamp and reading it back reproduces the
// identical text.
const timeLayout = time.RFC3339Nano

// complaintRow is the flat storage shape of a complaint: string-encoded
// enums and string-encoded timestamps.
type complaintRow struct {
	ID           int64
	ResidentID   int64
	Subject      string
	Description  string
	Status       string
	Priority     string
	CreatedAtUTC string
	UpdatedAtUTC sql.NullString
	LocationNote sql.NullString
}

// toDomain converts a storage row into the typed domain shape. A stored enum
// string or timestamp that no longer matches a defined value indicates
// store-level tampering or schema drift and surfaces as
// repository.ErrCorruptData, not a user input fault.
func (row complaintRow) toDomain() (*complaint.Complaint, error) {
	status, err := storedStatus(row.Status)
	if err != nil {
		return nil, err
	}

	priority, err := storedPriority(row.Priority)
	if err != nil {
		return nil, err
	}

	createdAt, err := parseStoredTime(row.CreatedAtUTC)
	if err != nil {
		return nil, err
	}

	var updatedAt *time.Time
	if row.UpdatedAtUTC.Valid {
		parsed, err := parseStoredTime(row.UpdatedAtUTC.String)
		if err != nil {
			return nil, err
		}
		updatedAt = &parsed
	}

	return &complaint.Complaint{
		ID:           row.ID,
		ResidentID:   row.ResidentID,
		Subject:      row.Subject,
		Description:  row.Description,
		Status:       status,
		Priority:     priority,
		CreatedAtUTC: createdAt,
		UpdatedAtUTC: updatedAt,
		LocationNote: row.LocationNote.String,
	}, nil
}

// fromDomain converts a domain complaint into bindable storage parameters.
func fromDomain(c *complaint.Complaint) complaintRow {
	row := complaintRow{
		ID:           c.ID,
		ResidentID:   c.ResidentID,
		Subject:      c.Subject,
		Description:  c.Description,
		Status:       string(c.Status),
		Priority:     string(c.Priority),
		CreatedAtUTC: formatStoredTime(c.CreatedAtUTC),
	}
	if c.UpdatedAtUTC != nil {
		row.UpdatedAtUTC = sql.NullString{String: formatStoredTime(*c.UpdatedAtUTC), Valid: true}
	}
	if c.LocationNote != "" {
		row.LocationNote = sql.NullString{String: c.LocationNote, Valid: true}
	}
	return row
}

// storedStatus parses a stored status string. Unlike the caller-facing
// parser this match is exact: stored values were written by us.
func storedStatus(raw string) (complaint.Status, error) {
	switch status := complaint.Status(raw); status {
	case complaint.StatusNotStarted, complaint.StatusStarted, complaint.StatusComplete:
		return status, nil
	}
	return "", fmt.Errorf("%w: stored status %q", repository.ErrCorruptData, raw)
}

func storedPriority(raw string) (complaint.Priority, error) {
	switch priority := complaint.Priority(raw); priority {
	case complaint.PriorityLow, complaint.PriorityNormal, complaint.PriorityHigh:
		return priority, nil
	}
	return "", fmt.Errorf("%w: stored priority %q", repository.ErrCorruptData, raw)
}

func formatStoredTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseStoredTime(raw string) (time.Time, error) {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: stored timestamp %q", repository.ErrCorruptData, raw)
	}
	return t.UTC(), nil
}
