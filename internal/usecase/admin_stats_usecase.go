package usecase

import (
	"context"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/usecase/interfaces"
)

const newestMakersLimit = 5

type AdminStats struct {
	ActiveMakers       int
	Designers          int
	Clients            int
	RegisteredPrinters int
	OpenJobs           int
	JobsInProgress     int
	CompletedJobs      int
	// GrossVolume sums the price of paid jobs.
	GrossVolume float64
	// PlatformRevenue sums the service fee of paid jobs.
	PlatformRevenue float64
	NewestMakers    []entities.User
}

type IAdminStatsUseCase interface {
	Stats(ctx context.Context) AdminStats
}

type AdminStatsUseCase struct {
	users interfaces.IUserRepository
	jobs  interfaces.IPrintJobRepository
}

var _ IAdminStatsUseCase = (*AdminStatsUseCase)(nil)

func NewAdminStatsUseCase(users interfaces.IUserRepository, jobs interfaces.IPrintJobRepository) *AdminStatsUseCase {
	return &AdminStatsUseCase{users: users, jobs: jobs}
}

func (u *AdminStatsUseCase) Stats(ctx context.Context) AdminStats {
	var st AdminStats
	var makers []entities.User
	for _, user := range u.users.List(ctx) {
		if !user.IsProvider() {
			st.Clients++
			continue
		}
		st.ActiveMakers++
		if user.HasRole(entities.UserRoleProjetista) {
			st.Designers++
		}
		st.RegisteredPrinters += len(user.Printers)
		makers = append(makers, user)
	}

	for _, job := range u.jobs.List(ctx) {
		switch job.Status {
		case entities.PrintJobStatusAberto:
			st.OpenJobs++
		case entities.PrintJobStatusEmAndamento:
			st.JobsInProgress++
		case entities.PrintJobStatusConcluido:
			st.CompletedJobs++
		}
		if job.IsPaid() {
			st.GrossVolume += job.Price
			st.PlatformRevenue += job.ServiceFee
		}
	}
	st.GrossVolume = entities.RoundCents(st.GrossVolume)
	st.PlatformRevenue = entities.RoundCents(st.PlatformRevenue)

	// Registrations are appended, so the tail of the roster is the newest.
	st.NewestMakers = make([]entities.User, 0, newestMakersLimit)
	for i := len(makers) - 1; i >= 0 && len(st.NewestMakers) < newestMakersLimit; i-- {
		st.NewestMakers = append(st.NewestMakers, makers[i])
	}
	return st
}
