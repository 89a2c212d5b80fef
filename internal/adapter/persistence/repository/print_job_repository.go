package repository

import (
	"context"
	"errors"
	"time"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/domain/seed"
	"agencia_maker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const PrintJobsKey = "agencia_maker_jobs"

// PrintJobRepository persists the job board, newest first, under
// PrintJobsKey.
type PrintJobRepository struct {
	col *jsonCollection[entities.PrintJob]
}

var _ interfaces.IPrintJobRepository = (*PrintJobRepository)(nil)

func NewPrintJobRepository(store interfaces.IKeyValueStore, logger *zap.Logger, now func() time.Time) *PrintJobRepository {
	seedJobs := func() []entities.PrintJob { return seed.PrintJobs(now()) }
	return &PrintJobRepository{col: newJSONCollection(store, PrintJobsKey, "print_jobs", seedJobs, logger)}
}

func (r *PrintJobRepository) Initialize(ctx context.Context) error {
	return r.col.initialize(ctx)
}

func (r *PrintJobRepository) List(ctx context.Context) []entities.PrintJob {
	return r.col.list(ctx)
}

func (r *PrintJobRepository) GetByID(ctx context.Context, id string) (entities.PrintJob, bool) {
	for _, j := range r.col.list(ctx) {
		if j.ID == id {
			return j, true
		}
	}
	return entities.PrintJob{}, false
}

func (r *PrintJobRepository) Create(ctx context.Context, job entities.PrintJob) error {
	return r.col.mutate(ctx, func(jobs []entities.PrintJob) ([]entities.PrintJob, error) {
		return append([]entities.PrintJob{job}, jobs...), nil
	})
}

func (r *PrintJobRepository) Update(ctx context.Context, job entities.PrintJob) (entities.PrintJob, error) {
	return r.UpdateFunc(ctx, job.ID, func(j *entities.PrintJob) error {
		*j = job
		return nil
	})
}

func (r *PrintJobRepository) UpdateFunc(ctx context.Context, id string, fn func(*entities.PrintJob) error) (entities.PrintJob, error) {
	var updated entities.PrintJob
	err := r.col.mutate(ctx, func(jobs []entities.PrintJob) ([]entities.PrintJob, error) {
		for i := range jobs {
			if jobs[i].ID != id {
				continue
			}
			if err := fn(&jobs[i]); err != nil {
				return nil, err
			}
			jobs[i].ID = id
			updated = jobs[i]
			return jobs, nil
		}
		return nil, errAbort
	})
	if errors.Is(err, errAbort) {
		return entities.PrintJob{}, nil
	}
	if err != nil {
		return entities.PrintJob{}, err
	}
	return updated, nil
}
