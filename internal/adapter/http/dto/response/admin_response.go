package response

import "agencia_maker/internal/usecase"

type AdminStatsResponse struct {
	ActiveMakers       int            `json:"active_makers"`
	Designers          int            `json:"designers"`
	Clients            int            `json:"clients"`
	RegisteredPrinters int            `json:"registered_printers"`
	OpenJobs           int            `json:"open_jobs"`
	JobsInProgress     int            `json:"jobs_in_progress"`
	CompletedJobs      int            `json:"completed_jobs"`
	GrossVolume        float64        `json:"gross_volume"`
	PlatformRevenue    float64        `json:"platform_revenue"`
	NewestMakers       []UserResponse `json:"newest_makers"`
}

func FromAdminStats(s usecase.AdminStats) AdminStatsResponse {
	return AdminStatsResponse{
		ActiveMakers:       s.ActiveMakers,
		Designers:          s.Designers,
		Clients:            s.Clients,
		RegisteredPrinters: s.RegisteredPrinters,
		OpenJobs:           s.OpenJobs,
		JobsInProgress:     s.JobsInProgress,
		CompletedJobs:      s.CompletedJobs,
		GrossVolume:        s.GrossVolume,
		PlatformRevenue:    s.PlatformRevenue,
		NewestMakers:       FromUsers(s.NewestMakers),
	}
}
