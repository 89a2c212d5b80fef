package response

import (
	"time"

	"agencia_maker/internal/domain/entities"
)

type PrintJobResponse struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"client_id"`
	ClientName    string    `json:"client_name"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Material      string    `json:"material"`
	Color         string    `json:"color"`
	FileURL       string    `json:"file_url,omitempty"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Price         float64   `json:"price"`
	ServiceFee    float64   `json:"service_fee"`
	MakerEarnings float64   `json:"maker_earnings"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromPrintJob(j entities.PrintJob) PrintJobResponse {
	return PrintJobResponse{
		ID:            j.ID,
		ClientID:      j.ClientID,
		ClientName:    j.ClientName,
		Title:         j.Title,
		Description:   j.Description,
		Material:      j.Material,
		Color:         j.Color,
		FileURL:       j.FileURL,
		Status:        string(j.Status),
		PaymentStatus: string(j.PaymentStatus),
		Price:         j.Price,
		ServiceFee:    j.ServiceFee,
		MakerEarnings: j.MakerEarnings(),
		CreatedAt:     j.CreatedAt,
	}
}

func FromPrintJobs(jobs []entities.PrintJob) []PrintJobResponse {
	out := make([]PrintJobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromPrintJob(j))
	}
	return out
}
