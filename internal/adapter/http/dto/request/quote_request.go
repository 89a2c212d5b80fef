package request

import (
	"strings"

	"agencia_maker/internal/domain/entities"
)

type QuoteRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	ModelURL    string `json:"model_url"`
	Material    string `json:"material"`
	Complexity  string `json:"complexity"`
}

func (r QuoteRequest) ToEntity() entities.QuoteRequest {
	return entities.QuoteRequest{
		Type:        entities.ServiceType(strings.ToLower(strings.TrimSpace(r.Type))),
		Description: r.Description,
		ModelURL:    r.ModelURL,
		Material:    r.Material,
		Complexity:  entities.Complexity(strings.ToLower(strings.TrimSpace(r.Complexity))),
	}
}

type ReverseEngineeringRequest struct {
	Description string `json:"description" binding:"required"`
}
