package entities

import (
	"math"
	"time"
)

// PrintJobStatus represents the production lifecycle of a print job.
//
// Domain notes:
//   - A job is created Aberto.
//   - Payment completion moves it to EmAndamento.
//   - The maker closes it as Concluido.

type PrintJobStatus string

const (
	PrintJobStatusAberto      PrintJobStatus = "Aberto"
	PrintJobStatusEmAndamento PrintJobStatus = "Em andamento"
	PrintJobStatusConcluido   PrintJobStatus = "Concluído"
)

// PaymentStatus is flipped exactly once, Pendente -> Pago, by a completed
// payment session.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "Pendente"
	PaymentStatusPago     PaymentStatus = "Pago"
)

// DefaultServiceFeeRate is the platform share of a job price.
const DefaultServiceFeeRate = 0.15

// PrintJob is a client request for fabrication.
//
// Monetary representation:
//   - Price is the total charged to the client.
//   - ServiceFee is the platform revenue, derived from Price at creation.
//   - The maker receives Price - ServiceFee.
type PrintJob struct {
	ID            string         `json:"id"`
	ClientID      string         `json:"client_id"`
	ClientName    string         `json:"client_name"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Material      string         `json:"material"`
	Color         string         `json:"color"`
	FileURL       string         `json:"file_url,omitempty"`
	Status        PrintJobStatus `json:"status"`
	PaymentStatus PaymentStatus  `json:"payment_status"`
	Price         float64        `json:"price"`
	ServiceFee    float64        `json:"service_fee"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (j PrintJob) IsPaid() bool {
	return j.PaymentStatus == PaymentStatusPago
}

// MakerEarnings is the amount paid out to the maker.
func (j PrintJob) MakerEarnings() float64 {
	return RoundCents(j.Price - j.ServiceFee)
}

// ServiceFeeFor derives the platform fee for a price. The result never
// exceeds price.
func ServiceFeeFor(price, rate float64) float64 {
	if price <= 0 || rate <= 0 {
		return 0
	}
	if rate > 1 {
		rate = 1
	}
	return RoundCents(price * rate)
}

// RoundCents rounds a monetary value to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
