package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPaymentSessionNotFound   = errors.New("payment session not found")
	ErrInvalidPaymentSessionID  = errors.New("invalid payment session id")
	ErrInvalidPaymentTransition = errors.New("invalid payment transition")
	ErrPaymentServiceClosed     = errors.New("payment service closed")
)

const paymentSessionTTL = 30 * time.Minute

// PaymentTimings are the simulated latencies of the checkout.
type PaymentTimings struct {
	Generate   time.Duration
	Confirm    time.Duration
	Completion time.Duration
}

func DefaultPaymentTimings() PaymentTimings {
	return PaymentTimings{Generate: time.Second, Confirm: 1500 * time.Millisecond, Completion: 2 * time.Second}
}

// IPaymentUseCase drives the simulated PIX checkout of a print job.
//
// Sessions live in memory only. Reaching success schedules exactly one
// completion callback, which marks the job paid after Timings.Completion.
type IPaymentUseCase interface {
	Start(ctx context.Context, jobID string) (entities.PaymentSession, error)
	Get(ctx context.Context, sessionID string) (entities.PaymentSession, error)
	GenerateCharge(ctx context.Context, sessionID string) (entities.PaymentSession, error)
	Confirm(ctx context.Context, sessionID string) (entities.PaymentSession, error)
	Cancel(ctx context.Context, sessionID string) error
}

type PaymentUseCase struct {
	jobs        IPrintJobUseCase
	gateway     interfaces.IPixChargeGateway
	timings     PaymentTimings
	feeRate     float64
	logger      *zap.Logger
	now         func() time.Time
	onCompleted func(entities.PaymentSession, entities.PrintJob)

	mu       sync.Mutex
	sessions map[string]*entities.PaymentSession
	closed   bool
	closing  chan struct{}
	wg       sync.WaitGroup
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(jobs IPrintJobUseCase, gateway interfaces.IPixChargeGateway, timings PaymentTimings, feeRate float64, logger *zap.Logger) *PaymentUseCase {
	if feeRate < 0 || feeRate > 1 {
		feeRate = entities.DefaultServiceFeeRate
	}
	return &PaymentUseCase{
		jobs:     jobs,
		gateway:  gateway,
		timings:  timings,
		feeRate:  feeRate,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*entities.PaymentSession),
		closing:  make(chan struct{}),
	}
}

// OnCompleted registers a listener invoked after the job is marked paid.
// Must be called before the first session starts.
func (u *PaymentUseCase) OnCompleted(fn func(entities.PaymentSession, entities.PrintJob)) {
	u.onCompleted = fn
}

// Start opens a checkout for an unpaid job. While a session for the job is
// still live, that session is returned instead of a new one so a job is never
// charged twice.
func (u *PaymentUseCase) Start(ctx context.Context, jobID string) (entities.PaymentSession, error) {
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	if job.IsPaid() {
		return entities.PaymentSession{}, ErrPrintJobAlreadyPaid
	}
	if job.Price <= 0 {
		return entities.PaymentSession{}, ErrInvalidPrintJobPrice
	}

	now := u.now().UTC()
	s := &entities.PaymentSession{
		ID:        uuid.NewString(),
		JobID:     job.ID,
		Step:      entities.PaymentStepBreakdown,
		Breakdown: entities.NewPaymentBreakdown(job, u.feeRate),
		CreatedAt: now,
		UpdatedAt: now,
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return entities.PaymentSession{}, ErrPaymentServiceClosed
	}
	u.pruneLocked(now)
	for _, existing := range u.sessions {
		if existing.JobID == job.ID {
			u.logger.Info("[payment][usecase] resuming live session",
				zap.String("session_id", existing.ID), zap.String("job_id", job.ID))
			return *existing, nil
		}
	}
	u.sessions[s.ID] = s
	u.logger.Info("[payment][usecase] session started",
		zap.String("session_id", s.ID), zap.String("job_id", job.ID), zap.Float64("total", s.Breakdown.Total))
	return *s, nil
}

func (u *PaymentUseCase) Get(_ context.Context, sessionID string) (entities.PaymentSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.lookupLocked(sessionID)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	return *s, nil
}

// GenerateCharge moves breakdown -> pix after the simulated latency.
func (u *PaymentUseCase) GenerateCharge(ctx context.Context, sessionID string) (entities.PaymentSession, error) {
	snapshot, err := u.expectStep(sessionID, entities.PaymentStepBreakdown)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	if err := sleepContext(ctx, u.timings.Generate); err != nil {
		return entities.PaymentSession{}, err
	}

	charge, err := u.gateway.CreatePixCharge(ctx, interfaces.PixChargeRequest{
		JobID:       snapshot.JobID,
		Description: fmt.Sprintf("Agência Maker - pedido %s", snapshot.JobID),
		Amount:      snapshot.Breakdown.Total,
	})
	if err != nil {
		u.logger.Error("[payment][usecase] pix charge failed", zap.String("session_id", sessionID), zap.Error(err))
		return entities.PaymentSession{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.lookupLocked(sessionID)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	if !s.AttachCharge(charge.Code, charge.ProviderChargeID, u.now().UTC()) {
		return entities.PaymentSession{}, ErrInvalidPaymentTransition
	}
	u.logger.Info("[payment][usecase] pix charge generated", zap.String("session_id", s.ID), zap.String("job_id", s.JobID))
	return *s, nil
}

// Confirm moves pix -> success after the simulated latency and schedules the
// completion callback. The payer's report is not verified.
func (u *PaymentUseCase) Confirm(ctx context.Context, sessionID string) (entities.PaymentSession, error) {
	if _, err := u.expectStep(sessionID, entities.PaymentStepPix); err != nil {
		return entities.PaymentSession{}, err
	}
	if err := sleepContext(ctx, u.timings.Confirm); err != nil {
		return entities.PaymentSession{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.lookupLocked(sessionID)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	if u.closed {
		return entities.PaymentSession{}, ErrPaymentServiceClosed
	}
	if !s.Confirm(u.now().UTC()) {
		return entities.PaymentSession{}, ErrInvalidPaymentTransition
	}
	done := *s
	u.wg.Add(1)
	go u.complete(done)

	u.logger.Info("[payment][usecase] payment confirmed", zap.String("session_id", s.ID), zap.String("job_id", s.JobID))
	return done, nil
}

// Cancel discards a session that has not reached success.
func (u *PaymentUseCase) Cancel(_ context.Context, sessionID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.lookupLocked(sessionID)
	if err != nil {
		return err
	}
	if s.Step == entities.PaymentStepSuccess {
		return ErrInvalidPaymentTransition
	}
	delete(u.sessions, sessionID)
	u.logger.Info("[payment][usecase] session cancelled", zap.String("session_id", sessionID))
	return nil
}

// Close stops accepting sessions, fires pending completions immediately and
// waits for them or for ctx.
func (u *PaymentUseCase) Close(ctx context.Context) error {
	u.mu.Lock()
	if !u.closed {
		u.closed = true
		close(u.closing)
	}
	u.mu.Unlock()

	done := make(chan struct{})
	go func() {
		u.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (u *PaymentUseCase) complete(s entities.PaymentSession) {
	defer u.wg.Done()

	timer := time.NewTimer(u.timings.Completion)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-u.closing:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	job, err := u.jobs.MarkPaid(ctx, s.JobID)
	if err != nil {
		u.logger.Error("[payment][usecase] completion failed",
			zap.String("session_id", s.ID), zap.String("job_id", s.JobID), zap.Error(err))
		return
	}
	u.logger.Info("[payment][usecase] job marked paid", zap.String("session_id", s.ID), zap.String("job_id", job.ID))
	if u.onCompleted != nil {
		u.onCompleted(s, job)
	}
}

func (u *PaymentUseCase) expectStep(sessionID string, step entities.PaymentStep) (entities.PaymentSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, err := u.lookupLocked(sessionID)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	if s.Step != step {
		return entities.PaymentSession{}, ErrInvalidPaymentTransition
	}
	return *s, nil
}

func (u *PaymentUseCase) lookupLocked(sessionID string) (*entities.PaymentSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidPaymentSessionID
	}
	s, ok := u.sessions[sessionID]
	if !ok {
		return nil, ErrPaymentSessionNotFound
	}
	return s, nil
}

func (u *PaymentUseCase) pruneLocked(now time.Time) {
	for id, s := range u.sessions {
		if now.Sub(s.UpdatedAt) > paymentSessionTTL {
			delete(u.sessions, id)
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
