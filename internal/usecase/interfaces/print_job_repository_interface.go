package interfaces

import (
	"context"

	"agencia_maker/internal/domain/entities"
)

// IPrintJobRepository abstracts persistence for the job board.
//
// Jobs are kept newest first. Reads fail open to the seed board.
type IPrintJobRepository interface {
	List(ctx context.Context) []entities.PrintJob
	GetByID(ctx context.Context, id string) (entities.PrintJob, bool)
	// Create prepends the job.
	Create(ctx context.Context, job entities.PrintJob) error
	// Update replaces the job with the same id in place. A zero PrintJob is
	// returned when id is unknown.
	Update(ctx context.Context, job entities.PrintJob) (entities.PrintJob, error)
	// UpdateFunc is the atomic read-modify-write variant of Update.
	UpdateFunc(ctx context.Context, id string, fn func(*entities.PrintJob) error) (entities.PrintJob, error)
}
