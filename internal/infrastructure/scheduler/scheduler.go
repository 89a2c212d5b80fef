package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultJobTimeout = 2 * time.Minute

// Scheduler runs periodic maintenance jobs. Overlapping runs of the same job
// are skipped and panics are recovered.
type Scheduler struct {
	cron    *cron.Cron
	logger  *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
}

func New(logger *zap.Logger) *Scheduler {
	cl := cronLogger{logger.Sugar()}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		timeout: defaultJobTimeout,
	}
}

// Add registers fn under a standard cron spec or a descriptor such as
// "@every 30m". Each run gets its own timeout-bound context.
func (s *Scheduler) Add(name, spec string, fn func(ctx context.Context)) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
		defer cancel()
		start := time.Now()
		fn(ctx)
		s.logger.Info("[scheduler] job finished", zap.String("job", name), zap.Duration("took", time.Since(start)))
	})
	if err != nil {
		return err
	}
	s.logger.Info("[scheduler] job registered", zap.String("job", name), zap.String("spec", spec))
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("[scheduler] started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop cancels running jobs and waits for them or for ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw("[scheduler] "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw("[scheduler] "+msg, append(keysAndValues, "error", err)...)
}
