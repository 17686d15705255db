package resident

import "context"

// Repository provides persistence for residents.
type Repository interface {
	Create(ctx context.Context, res *Resident) error
	Get(ctx context.Context, id int64) (*Resident, error)
	List(ctx context.Context) ([]Resident, error)
}
