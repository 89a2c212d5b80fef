package usecase

import (
	"context"
	"testing"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/domain/seed"
	mock_interfaces "agencia_maker/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAdminStatsUseCase_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	jobs := mock_interfaces.NewMockIPrintJobRepository(ctrl)

	roster := append(seed.Users(), entities.User{ID: "maker-new", Roles: []entities.UserRole{entities.UserRoleScanner}})
	users.EXPECT().List(gomock.Any()).Return(roster)
	jobs.EXPECT().List(gomock.Any()).Return([]entities.PrintJob{
		{ID: "a", Status: entities.PrintJobStatusAberto, PaymentStatus: entities.PaymentStatusPendente, Price: 45, ServiceFee: 6.75},
		{ID: "b", Status: entities.PrintJobStatusEmAndamento, PaymentStatus: entities.PaymentStatusPago, Price: 120, ServiceFee: 18},
		{ID: "c", Status: entities.PrintJobStatusConcluido, PaymentStatus: entities.PaymentStatusPago, Price: 60.10, ServiceFee: 9.02},
	})

	st := NewAdminStatsUseCase(users, jobs).Stats(context.Background())

	assert.Equal(t, 4, st.ActiveMakers)
	assert.Equal(t, 2, st.Designers)
	assert.Equal(t, 1, st.Clients)
	assert.Equal(t, 3, st.RegisteredPrinters)
	assert.Equal(t, 1, st.OpenJobs)
	assert.Equal(t, 1, st.JobsInProgress)
	assert.Equal(t, 1, st.CompletedJobs)
	assert.Equal(t, 180.10, st.GrossVolume)
	assert.Equal(t, 27.02, st.PlatformRevenue)
	if assert.Len(t, st.NewestMakers, 4) {
		assert.Equal(t, "maker-new", st.NewestMakers[0].ID)
	}
}
