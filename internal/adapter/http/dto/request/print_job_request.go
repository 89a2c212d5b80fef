package request

import "agencia_maker/internal/usecase"

type CreatePrintJobRequest struct {
	ClientID    string  `json:"client_id"`
	ClientName  string  `json:"client_name"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Material    string  `json:"material"`
	Color       string  `json:"color"`
	ModelURL    string  `json:"model_url"`
	Price       float64 `json:"price"`
}

func (r CreatePrintJobRequest) ToInput() usecase.SubmitPrintJobInput {
	return usecase.SubmitPrintJobInput{
		ClientID:    r.ClientID,
		ClientName:  r.ClientName,
		Title:       r.Title,
		Description: r.Description,
		Material:    r.Material,
		Color:       r.Color,
		ModelURL:    r.ModelURL,
		Price:       r.Price,
	}
}
