package entities

import "time"

// PaymentStep is a state of the simulated PIX checkout.
//
// Allowed transitions:
//   - breakdown -> pix     (charge generated)
//   - pix       -> success (payer reports the transfer)
//
// success is terminal. Closing the checkout discards the session; nothing is
// persisted before success.

type PaymentStep string

const (
	PaymentStepBreakdown PaymentStep = "breakdown"
	PaymentStepPix       PaymentStep = "pix"
	PaymentStepSuccess   PaymentStep = "success"
)

// PaymentBreakdown splits the job total between maker and platform.
type PaymentBreakdown struct {
	Total      float64 `json:"total"`
	ServiceFee float64 `json:"service_fee"`
	MakerValue float64 `json:"maker_value"`
}

// NewPaymentBreakdown uses the fee stored on the job, or derives it with
// feeRate when the job has none.
func NewPaymentBreakdown(job PrintJob, feeRate float64) PaymentBreakdown {
	total := job.Price
	if total < 0 {
		total = 0
	}
	fee := job.ServiceFee
	if fee <= 0 {
		fee = ServiceFeeFor(total, feeRate)
	}
	if fee > total {
		fee = total
	}
	return PaymentBreakdown{
		Total:      RoundCents(total),
		ServiceFee: RoundCents(fee),
		MakerValue: RoundCents(total - fee),
	}
}

type PaymentSession struct {
	ID               string           `json:"id"`
	JobID            string           `json:"job_id"`
	Step             PaymentStep      `json:"step"`
	Breakdown        PaymentBreakdown `json:"breakdown"`
	PixCode          string           `json:"pix_code,omitempty"`
	ProviderChargeID string           `json:"provider_charge_id,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
}

// AttachCharge moves breakdown -> pix. It reports false when the session is
// in any other step.
func (s *PaymentSession) AttachCharge(code, providerChargeID string, now time.Time) bool {
	if s.Step != PaymentStepBreakdown {
		return false
	}
	s.Step = PaymentStepPix
	s.PixCode = code
	s.ProviderChargeID = providerChargeID
	s.UpdatedAt = now
	return true
}

// Confirm moves pix -> success. It reports false when the session is in any
// other step.
func (s *PaymentSession) Confirm(now time.Time) bool {
	if s.Step != PaymentStepPix {
		return false
	}
	s.Step = PaymentStepSuccess
	s.UpdatedAt = now
	s.CompletedAt = &now
	return true
}
