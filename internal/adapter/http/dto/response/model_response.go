package response

import "agencia_maker/internal/domain/entities"

type ModelSearchResponse struct {
	Query    string                   `json:"query,omitempty"`
	Strategy string                   `json:"strategy"`
	Results  []entities.ExternalModel `json:"results"`
}

func FromModels(query, strategy string, models []entities.ExternalModel) ModelSearchResponse {
	if models == nil {
		models = []entities.ExternalModel{}
	}
	return ModelSearchResponse{Query: query, Strategy: strategy, Results: models}
}
