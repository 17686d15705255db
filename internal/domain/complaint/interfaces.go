package complaint

import (
	"context"
	"time"
)

// Repository provides persistence for complaints.
type Repository interface {
	// Create inserts the complaint and returns the store-assigned id.
	Create(ctx context.Context, c *Complaint) (int64, error)
	Get(ctx context.Context, id int64) (*Complaint, error)
	List(ctx context.Context, filter ListFilter) ([]Complaint, error)
	UpdateStatus(ctx context.Context, id int64, status Status, updatedAt time.Time) error
}

// ResidentLookup reports whether a referenced resident exists.
type ResidentLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
