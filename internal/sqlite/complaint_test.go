package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/upkeep/internal/domain/complaint"
	"github.com/rpggio/upkeep/internal/domain/resident"
	"github.com/rpggio/upkeep/internal/repository"
)

func insertResident(t *testing.T, db *DB, id int64) {
	t.Helper()
	repo := NewResidentRepository(db)
	err := repo.Create(context.Background(), &resident.Resident{
		ID: id, Name: "Resident", Unit: "1A", Email: "r@example.com",
	})
	require.NoError(t, err)
}

func newComplaint(residentID int64, priority complaint.Priority) *complaint.Complaint {
	return &complaint.Complaint{
		ResidentID:   residentID,
		Subject:      "Leak",
		Description:  "Pipe leak in unit A",
		Status:       complaint.StatusNotStarted,
		Priority:     priority,
		CreatedAtUTC: time.Now().UTC(),
	}
}

func TestComplaintRepository_CreateGetRoundTrip(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertResident(t, db, 1)

	repo := NewComplaintRepository(db)
	c := newComplaint(1, complaint.PriorityHigh)
	c.LocationNote = "kitchen ceiling"

	id, err := repo.Create(ctx, c)
	require.NoError(t, err)
	require.Positive(t, id)

	loaded, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, loaded.ID)
	require.Equal(t, c.ResidentID, loaded.ResidentID)
	require.Equal(t, c.Subject, loaded.Subject)
	require.Equal(t, c.Description, loaded.Description)
	require.Equal(t, c.Status, loaded.Status)
	require.Equal(t, c.Priority, loaded.Priority)
	require.Equal(t, c.LocationNote, loaded.LocationNote)
	require.Nil(t, loaded.UpdatedAtUTC)

	// The stored timestamp must round-trip to the identical text.
	require.Equal(t, formatStoredTime(c.CreatedAtUTC), formatStoredTime(loaded.CreatedAtUTC))
}

func TestComplaintRepository_AttachmentsNotPersisted(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertResident(t, db, 1)

	repo := NewComplaintRepository(db)
	c := newComplaint(1, complaint.PriorityNormal)
	c.Attachments = []string{"photo.jpg"}

	id, err := repo.Create(ctx, c)
	require.NoError(t, err)

	loaded, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Empty(t, loaded.Attachments)
}

func TestComplaintRepository_IDsMonotonic(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertResident(t, db, 1)

	repo := NewComplaintRepository(db)

	first, err := repo.Create(ctx, newComplaint(1, complaint.PriorityNormal))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newComplaint(1, complaint.PriorityNormal))
	require.NoError(t, err)
	require.Greater(t, second, first)
}

func TestComplaintRepository_MissingResident(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewComplaintRepository(db)
	_, err := repo.Create(ctx, newComplaint(42, complaint.PriorityNormal))
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestComplaintRepository_GetMissing(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewComplaintRepository(db)
	_, err := repo.Get(ctx, 404)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestComplaintRepository_UpdateStatus(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertResident(t, db, 1)

	repo := NewComplaintRepository(db)
	id, err := repo.Create(ctx, newComplaint(1, complaint.PriorityNormal))
	require.NoError(t, err)

	updatedAt := time.Now().UTC()
	require.NoError(t, repo.UpdateStatus(ctx, id, complaint.StatusStarted, updatedAt))

	loaded, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, complaint.StatusStarted, loaded.Status)
	require.NotNil(t, loaded.UpdatedAtUTC)
	require.Equal(t, formatStoredTime(updatedAt), formatStoredTime(*loaded.UpdatedAtUTC))

	err = repo.UpdateStatus(ctx, 404, complaint.StatusComplete, updatedAt)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestComplaintRepository_ListFilters(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertResident(t, db, 1)
	insertResident(t, db, 2)

	repo := NewComplaintRepository(db)

	// Two residents, three priorities each.
	ids := map[string]int64{}
	for _, residentID := range []int64{1, 2} {
		for _, priority := range []complaint.Priority{complaint.PriorityLow, complaint.PriorityNormal, complaint.PriorityHigh} {
			id, err := repo.Create(ctx, newComplaint(residentID, priority))
			require.NoError(t, err)
			ids[fmt.Sprintf("%s/%d", priority, residentID)] = id
		}
	}

	listIDs := func(filter complaint.ListFilter) map[int64]bool {
		complaints, err := repo.List(ctx, filter)
		require.NoError(t, err)
		out := map[int64]bool{}
		for _, c := range complaints {
			out[c.ID] = true
		}
		return out
	}

	// No filters: everything.
	require.Len(t, listIDs(complaint.ListFilter{}), 6)

	// Priority only.
	high := complaint.PriorityHigh
	got := listIDs(complaint.ListFilter{Priority: &high})
	require.Len(t, got, 2)
	require.True(t, got[ids["HIGH/1"]])
	require.True(t, got[ids["HIGH/2"]])

	// Resident only.
	residentID := int64(1)
	require.Len(t, listIDs(complaint.ListFilter{ResidentID: &residentID}), 3)

	// Priority AND resident.
	low := complaint.PriorityLow
	got = listIDs(complaint.ListFilter{Priority: &low, ResidentID: &residentID})
	require.Len(t, got, 1)
	require.True(t, got[ids["LOW/1"]])

	// Status filter composes too.
	require.NoError(t, repo.UpdateStatus(ctx, ids["HIGH/2"], complaint.StatusStarted, time.Now().UTC()))
	started := complaint.StatusStarted
	got = listIDs(complaint.ListFilter{Status: &started})
	require.Len(t, got, 1)
	require.True(t, got[ids["HIGH/2"]])

	residentTwo := int64(2)
	got = listIDs(complaint.ListFilter{Status: &started, Priority: &high, ResidentID: &residentTwo})
	require.Len(t, got, 1)

	notStarted := complaint.StatusNotStarted
	got = listIDs(complaint.ListFilter{Status: &notStarted, ResidentID: &residentTwo})
	require.Len(t, got, 2)
}

func TestComplaintRepository_CorruptStatus(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertResident(t, db, 1)

	// Bypass the mapper and write a status outside the defined set.
	_, err := db.ExecContext(ctx, `
		INSERT INTO complaints (resident_id, subject, description, status, priority, created_at_utc)
		VALUES (?, ?, ?, ?, ?, ?)`,
		1, "Leak", "Pipe leak", "BOGUS", "NORMAL", formatStoredTime(time.Now()))
	require.NoError(t, err)

	repo := NewComplaintRepository(db)
	_, err = repo.Get(ctx, 1)
	require.ErrorIs(t, err, repository.ErrCorruptData)
}

func TestComplaintRepository_CorruptTimestamp(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertResident(t, db, 1)

	_, err := db.ExecContext(ctx, `
		INSERT INTO complaints (resident_id, subject, description, status, priority, created_at_utc)
		VALUES (?, ?, ?, ?, ?, ?)`,
		1, "Leak", "Pipe leak", "NOT_STARTED", "NORMAL", "yesterday")
	require.NoError(t, err)

	repo := NewComplaintRepository(db)
	_, err = repo.Get(ctx, 1)
	require.ErrorIs(t, err, repository.ErrCorruptData)
}
