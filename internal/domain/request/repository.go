package request

import (
	"context"
	"time"
)

type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter ListRequestsFilter) ([]Request, int64, error)
	// ListInRange returns every request whose dates overlap [from, to] or
	// that was created in it. Nil bounds are open.
	ListInRange(ctx context.Context, from, to *time.Time) ([]Request, error)
	// UpdateStatus writes the decision fields of req only while the stored
	// status is still from. A request that has moved on in the meantime
	// yields ErrRequestAlreadyProcessed.
	UpdateStatus(ctx context.Context, req Request, from Status) error
	CountPendingByManager(ctx context.Context) (map[string]int64, error)
}
