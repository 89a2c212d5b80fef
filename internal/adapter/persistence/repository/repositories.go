package repository

import (
	"context"
	"time"

	"agencia_maker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Repositories groups the collections sharing one key/value store.
type Repositories struct {
	Users         *UserRepository
	PrintJobs     *PrintJobRepository
	Conversations *ConversationRepository
}

func NewRepositories(store interfaces.IKeyValueStore, logger *zap.Logger, now func() time.Time) *Repositories {
	if now == nil {
		now = time.Now
	}
	return &Repositories{
		Users:         NewUserRepository(store, logger),
		PrintJobs:     NewPrintJobRepository(store, logger, now),
		Conversations: NewConversationRepository(store, logger, now),
	}
}

// Initialize seeds every collection that has no persisted value yet.
// Safe to call on every start.
func (r *Repositories) Initialize(ctx context.Context) error {
	if err := r.Users.Initialize(ctx); err != nil {
		return err
	}
	if err := r.PrintJobs.Initialize(ctx); err != nil {
		return err
	}
	return r.Conversations.Initialize(ctx)
}
