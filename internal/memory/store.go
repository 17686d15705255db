// Package memory provides the in-process store variant. All mutations run
// inside a single critical section guarding the backing slice and the id
// counter, so concurrent creations never collide on identifier.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rpggio/upkeep/internal/domain/complaint"
	"github.com/rpggio/upkeep/internal/domain/resident"
	"github.com/rpggio/upkeep/internal/repository"
)

// Store holds residents and complaints in memory. Unlike the SQLite store it
// retains attachment paths.
type Store struct {
	mu         sync.Mutex
	residents  map[int64]resident.Resident
	complaints []complaint.Complaint
	nextID     int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		residents: make(map[int64]resident.Resident),
		nextID:    1,
	}
}

// Complaints returns the complaint repository view of the store.
func (s *Store) Complaints() *ComplaintRepository {
	return &ComplaintRepository{store: s}
}

// Residents returns the resident repository view of the store.
func (s *Store) Residents() *ResidentRepository {
	return &ResidentRepository{store: s}
}

// ComplaintRepository implements complaint.Repository over the shared store.
type ComplaintRepository struct {
	store *Store
}

// Create assigns the next monotonic id and appends a copy of the complaint.
func (r *ComplaintRepository) Create(ctx context.Context, c *complaint.Complaint) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.residents[c.ResidentID]; !ok {
		return 0, repository.ErrForeignKeyViolation
	}

	stored := cloneComplaint(*c)
	stored.ID = s.nextID
	s.nextID++
	s.complaints = append(s.complaints, stored)

	return stored.ID, nil
}

// Get returns a copy of the complaint with the given id.
func (r *ComplaintRepository) Get(ctx context.Context, id int64) (*complaint.Complaint, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.complaints {
		if s.complaints[i].ID == id {
			c := cloneComplaint(s.complaints[i])
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns copies of every complaint matching all supplied filters.
func (r *ComplaintRepository) List(ctx context.Context, filter complaint.ListFilter) ([]complaint.Complaint, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []complaint.Complaint
	for i := range s.complaints {
		c := s.complaints[i]
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && c.Priority != *filter.Priority {
			continue
		}
		if filter.ResidentID != nil && c.ResidentID != *filter.ResidentID {
			continue
		}
		matched = append(matched, cloneComplaint(c))
	}
	return matched, nil
}

// UpdateStatus sets the status and update timestamp on the stored complaint.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status complaint.Status, updatedAt time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.complaints {
		if s.complaints[i].ID == id {
			s.complaints[i].Status = status
			t := updatedAt.UTC()
			s.complaints[i].UpdatedAtUTC = &t
			return nil
		}
	}
	return repository.ErrNotFound
}

// ResidentRepository implements resident.Repository over the shared store.
type ResidentRepository struct {
	store *Store
}

// Create stores a resident under its externally assigned id.
func (r *ResidentRepository) Create(ctx context.Context, res *resident.Resident) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.residents[res.ID]; ok {
		return repository.ErrConflict
	}
	s.residents[res.ID] = *res
	return nil
}

// Get returns the resident with the given id.
func (r *ResidentRepository) Get(ctx context.Context, id int64) (*resident.Resident, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.residents[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &res, nil
}

// List returns every resident.
func (r *ResidentRepository) List(ctx context.Context) ([]resident.Resident, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	residents := make([]resident.Resident, 0, len(s.residents))
	for _, res := range s.residents {
		residents = append(residents, res)
	}
	return residents, nil
}

// cloneComplaint copies a complaint so callers never share backing memory
// with the store.
func cloneComplaint(c complaint.Complaint) complaint.Complaint {
	out := c
	if c.UpdatedAtUTC != nil {
		t := *c.UpdatedAtUTC
		out.UpdatedAtUTC = &t
	}
	if c.Attachments != nil {
		out.Attachments = append([]string(nil), c.Attachments...)
	}
	return out
}
