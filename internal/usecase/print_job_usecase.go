package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPrintJobNotFound      = errors.New("print job not found")
	ErrInvalidPrintJobID     = errors.New("invalid print job id")
	ErrInvalidPrintJobTitle  = errors.New("title is required")
	ErrInvalidPrintJobPrice  = errors.New("invalid print job price")
	ErrPrintJobAlreadyPaid   = errors.New("print job already paid")
	ErrPrintJobNotInProgress = errors.New("print job is not in progress")
)

const (
	guestClientID   = "guest"
	guestClientName = "Visitante"
	defaultMaterial = "PLA"
	defaultColor    = "Preto"
)

type SubmitPrintJobInput struct {
	ClientID    string
	ClientName  string
	Title       string
	Description string
	Material    string
	Color       string
	ModelURL    string
	// Price overrides the estimate when positive.
	Price float64
}

type PrintJobFilter struct {
	ClientID string
	Status   entities.PrintJobStatus
}

// IPrintJobUseCase manages the job board.
//
// Lifecycle:
//   - Submit creates the job Aberto/Pendente.
//   - MarkPaid is only called by a completed payment session.
//   - Complete closes an Em andamento job.
type IPrintJobUseCase interface {
	Submit(ctx context.Context, in SubmitPrintJobInput) (entities.PrintJob, error)
	List(ctx context.Context, filter PrintJobFilter) []entities.PrintJob
	GetByID(ctx context.Context, id string) (entities.PrintJob, error)
	MarkPaid(ctx context.Context, id string) (entities.PrintJob, error)
	Complete(ctx context.Context, id string) (entities.PrintJob, error)
}

type PrintJobUseCase struct {
	repo    interfaces.IPrintJobRepository
	quotes  IQuoteUseCase
	feeRate float64
	logger  *zap.Logger
	now     func() time.Time
}

var _ IPrintJobUseCase = (*PrintJobUseCase)(nil)

func NewPrintJobUseCase(repo interfaces.IPrintJobRepository, quotes IQuoteUseCase, feeRate float64, logger *zap.Logger) *PrintJobUseCase {
	if feeRate < 0 || feeRate > 1 {
		feeRate = entities.DefaultServiceFeeRate
	}
	return &PrintJobUseCase{repo: repo, quotes: quotes, feeRate: feeRate, logger: logger, now: time.Now}
}

func (u *PrintJobUseCase) Submit(ctx context.Context, in SubmitPrintJobInput) (entities.PrintJob, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return entities.PrintJob{}, ErrInvalidPrintJobTitle
	}
	if in.Price < 0 {
		return entities.PrintJob{}, ErrInvalidPrintJobPrice
	}
	in.Description = strings.TrimSpace(in.Description)
	in.ModelURL = strings.TrimSpace(in.ModelURL)
	in.ClientID = defaultString(in.ClientID, guestClientID)
	in.ClientName = defaultString(in.ClientName, guestClientName)
	in.Material = defaultString(in.Material, defaultMaterial)
	in.Color = defaultString(in.Color, defaultColor)

	analysis := "N/A"
	price := in.Price
	if in.Description != "" || in.ModelURL != "" {
		quote, err := u.quotes.GetIntelligentPrice(ctx, entities.QuoteRequest{
			Type:        entities.ServiceTypePrint,
			Description: in.Description,
			ModelURL:    in.ModelURL,
			Material:    in.Material,
		})
		if err != nil {
			return entities.PrintJob{}, err
		}
		analysis = quote.Analysis
		if price == 0 {
			price = quote.EstimatedPrice
		}
	}
	if price == 0 {
		price = FallbackPrice(in.Description, in.Material)
	}
	price = entities.RoundCents(price)

	job := entities.PrintJob{
		ID:            "job-" + uuid.NewString(),
		ClientID:      in.ClientID,
		ClientName:    in.ClientName,
		Title:         in.Title,
		Description:   in.Description + "\n\n[Análise IA]: " + analysis,
		Material:      in.Material,
		Color:         in.Color,
		FileURL:       in.ModelURL,
		Status:        entities.PrintJobStatusAberto,
		PaymentStatus: entities.PaymentStatusPendente,
		Price:         price,
		ServiceFee:    entities.ServiceFeeFor(price, u.feeRate),
		CreatedAt:     u.now().UTC(),
	}
	if err := u.repo.Create(ctx, job); err != nil {
		u.logger.Error("[print-job][usecase] create failed", zap.String("job_id", job.ID), zap.Error(err))
		return entities.PrintJob{}, err
	}
	u.logger.Info("[print-job][usecase] job submitted",
		zap.String("job_id", job.ID), zap.Float64("price", job.Price), zap.Float64("service_fee", job.ServiceFee))
	return job, nil
}

func (u *PrintJobUseCase) List(ctx context.Context, filter PrintJobFilter) []entities.PrintJob {
	jobs := u.repo.List(ctx)
	if filter.ClientID == "" && filter.Status == "" {
		return jobs
	}
	out := make([]entities.PrintJob, 0, len(jobs))
	for _, j := range jobs {
		if filter.ClientID != "" && j.ClientID != filter.ClientID {
			continue
		}
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		out = append(out, j)
	}
	return out
}

func (u *PrintJobUseCase) GetByID(ctx context.Context, id string) (entities.PrintJob, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PrintJob{}, ErrInvalidPrintJobID
	}
	job, ok := u.repo.GetByID(ctx, id)
	if !ok {
		return entities.PrintJob{}, ErrPrintJobNotFound
	}
	return job, nil
}

// MarkPaid flips Pendente -> Pago exactly once and starts production.
func (u *PrintJobUseCase) MarkPaid(ctx context.Context, id string) (entities.PrintJob, error) {
	return u.transition(ctx, id, func(j *entities.PrintJob) error {
		if j.IsPaid() {
			return ErrPrintJobAlreadyPaid
		}
		j.PaymentStatus = entities.PaymentStatusPago
		if j.Status == entities.PrintJobStatusAberto {
			j.Status = entities.PrintJobStatusEmAndamento
		}
		return nil
	})
}

func (u *PrintJobUseCase) Complete(ctx context.Context, id string) (entities.PrintJob, error) {
	return u.transition(ctx, id, func(j *entities.PrintJob) error {
		if j.Status != entities.PrintJobStatusEmAndamento {
			return ErrPrintJobNotInProgress
		}
		j.Status = entities.PrintJobStatusConcluido
		return nil
	})
}

func (u *PrintJobUseCase) transition(ctx context.Context, id string, fn func(*entities.PrintJob) error) (entities.PrintJob, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PrintJob{}, ErrInvalidPrintJobID
	}
	updated, err := u.repo.UpdateFunc(ctx, id, fn)
	if err != nil {
		return entities.PrintJob{}, err
	}
	if updated.ID == "" {
		return entities.PrintJob{}, ErrPrintJobNotFound
	}
	u.logger.Info("[print-job][usecase] job updated", zap.String("job_id", id),
		zap.String("status", string(updated.Status)), zap.String("payment_status", string(updated.PaymentStatus)))
	return updated, nil
}

func defaultString(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
