package response

import (
	"time"

	"agencia_maker/internal/domain/entities"
)

type PaymentSessionResponse struct {
	SessionID        string                    `json:"session_id"`
	JobID            string                    `json:"job_id"`
	Step             string                    `json:"step"`
	Breakdown        entities.PaymentBreakdown `json:"breakdown"`
	PixCode          string                    `json:"pix_code,omitempty"`
	ProviderChargeID string                    `json:"provider_charge_id,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
	CompletedAt      *time.Time                `json:"completed_at,omitempty"`
}

func FromPaymentSession(s entities.PaymentSession) PaymentSessionResponse {
	return PaymentSessionResponse{
		SessionID:        s.ID,
		JobID:            s.JobID,
		Step:             string(s.Step),
		Breakdown:        s.Breakdown,
		PixCode:          s.PixCode,
		ProviderChargeID: s.ProviderChargeID,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
		CompletedAt:      s.CompletedAt,
	}
}
