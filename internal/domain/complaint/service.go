package complaint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rpggio/upkeep/internal/repository"
)

// Service handles complaint business logic. It holds no state between
// operations; every read goes back to the repository.
type Service struct {
	complaints Repository
	residents  ResidentLookup
	logger     *slog.Logger
}

// NewService creates a new complaint service.
func NewService(complaints Repository, residents ResidentLookup, logger *slog.Logger) *Service {
	return &Service{
		complaints: complaints,
		residents:  residents,
		logger:     logger,
	}
}

// CreateRequest describes a complaint creation request. Priority is the raw
// caller-supplied string; empty means NORMAL.
type CreateRequest struct {
	ResidentID   int64
	Subject      string
	Description  string
	Priority     string
	Attachments  []string
	LocationNote string
}

// ListQuery carries raw, caller-supplied filter values. Empty strings and
// nil mean "no filter".
type ListQuery struct {
	Status     string
	Priority   string
	ResidentID *int64
}

// Create validates and files a new complaint. The resident must exist; the
// store assigns the id.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Complaint, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	priority := PriorityNormal
	if strings.TrimSpace(req.Priority) != "" {
		parsed, err := ParsePriority(req.Priority)
		if err != nil {
			return nil, err
		}
		priority = parsed
	}

	exists, err := s.residents.Exists(ctx, req.ResidentID)
	if err != nil {
		return nil, fmt.Errorf("checking resident: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: resident %d", ErrResidentNotFound, req.ResidentID)
	}

	c := &Complaint{
		ResidentID:   req.ResidentID,
		Subject:      strings.TrimSpace(req.Subject),
		Description:  strings.TrimSpace(req.Description),
		Status:       StatusNotStarted,
		Priority:     priority,
		CreatedAtUTC: time.Now().UTC(),
		LocationNote: strings.TrimSpace(req.LocationNote),
		Attachments:  cleanAttachments(req.Attachments),
	}

	id, err := s.complaints.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("creating complaint: %w", err)
	}
	c.ID = id

	if s.logger != nil {
		s.logger.InfoContext(ctx, "complaint filed",
			"complaint_id", c.ID,
			"resident_id", c.ResidentID,
			"priority", c.Priority,
		)
	}

	return c, nil
}

// List returns all complaints matching the supplied filters.
func (s *Service) List(ctx context.Context, q ListQuery) ([]Complaint, error) {
	var filter ListFilter

	if strings.TrimSpace(q.Status) != "" {
		status, err := ParseStatus(q.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}
	if strings.TrimSpace(q.Priority) != "" {
		priority, err := ParsePriority(q.Priority)
		if err != nil {
			return nil, err
		}
		filter.Priority = &priority
	}
	filter.ResidentID = q.ResidentID

	complaints, err := s.complaints.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing complaints: %w", err)
	}
	return complaints, nil
}

// Get returns a complaint by id.
func (s *Service) Get(ctx context.Context, id int64) (*Complaint, error) {
	c, err := s.complaints.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("getting complaint: %w", err)
	}
	return c, nil
}

// UpdateStatus persists a new status and stamps the update time, then
// re-reads the row so the returned value reflects exactly what is durable.
func (s *Service) UpdateStatus(ctx context.Context, id int64, rawStatus string) (*Complaint, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	if err := s.complaints.UpdateStatus(ctx, id, status, time.Now().UTC()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("updating complaint status: %w", err)
	}

	updated, err := s.complaints.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("reloading complaint: %w", err)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "complaint status updated",
			"complaint_id", id,
			"status", status,
		)
	}

	return updated, nil
}
