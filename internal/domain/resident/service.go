package resident

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rpggio/upkeep/internal/repository"
)

// Service provides read access to residents plus the seed-time create path.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new resident service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create stores a resident. Used only by the seed/import path; there is no
// public endpoint for it.
func (s *Service) Create(ctx context.Context, res *Resident) error {
	if res.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(res.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	if err := s.repo.Create(ctx, res); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return fmt.Errorf("%w: id %d", ErrAlreadyExists, res.ID)
		}
		return fmt.Errorf("creating resident: %w", err)
	}
	return nil
}

// Get fetches a resident by id.
func (s *Service) Get(ctx context.Context, id int64) (*Resident, error) {
	res, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrResidentNotFound
		}
		return nil, fmt.Errorf("getting resident: %w", err)
	}
	return res, nil
}

// Exists reports whether a resident with the given id is stored. Absence is
// a boolean, not an error; the caller decides how to report it.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("checking resident: %w", err)
	}
	return true, nil
}

// ListAll returns every resident, unfiltered.
func (s *Service) ListAll(ctx context.Context) ([]Resident, error) {
	return s.repo.List(ctx)
}
