package interfaces

import "context"

type PixChargeRequest struct {
	JobID       string
	Description string
	Amount      float64
	PayerEmail  string
}

type PixCharge struct {
	// Code is the copy-and-paste PIX payload shown to the payer.
	Code             string
	ProviderChargeID string
}

// IPixChargeGateway issues PIX charges. Settlement is not tracked here; the
// payment flow confirms by self-report.
type IPixChargeGateway interface {
	CreatePixCharge(ctx context.Context, req PixChargeRequest) (PixCharge, error)
}
