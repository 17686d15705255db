package mocks

import (
	"context"
	"time"

	"github.com/rpggio/upkeep/internal/domain/complaint"
	"github.com/rpggio/upkeep/internal/domain/resident"
	"github.com/stretchr/testify/mock"
)

// ComplaintRepository is a mock for complaint.Repository.
type ComplaintRepository struct {
	mock.Mock
}

func (m *ComplaintRepository) Create(ctx context.Context, c *complaint.Complaint) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ComplaintRepository) Get(ctx context.Context, id int64) (*complaint.Complaint, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*complaint.Complaint); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ComplaintRepository) List(ctx context.Context, filter complaint.ListFilter) ([]complaint.Complaint, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]complaint.Complaint); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status complaint.Status, updatedAt time.Time) error {
	args := m.Called(ctx, id, status, updatedAt)
	return args.Error(0)
}

// ResidentRepository is a mock for resident.Repository.
type ResidentRepository struct {
	mock.Mock
}

func (m *ResidentRepository) Create(ctx context.Context, res *resident.Resident) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *ResidentRepository) Get(ctx context.Context, id int64) (*resident.Resident, error) {
	args := m.Called(ctx, id)
	if res, ok := args.Get(0).(*resident.Resident); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ResidentRepository) List(ctx context.Context) ([]resident.Resident, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]resident.Resident); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ResidentLookup is a mock for complaint.ResidentLookup.
type ResidentLookup struct {
	mock.Mock
}

func (m *ResidentLookup) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
