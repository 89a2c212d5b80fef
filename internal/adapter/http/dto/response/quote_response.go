package response

import (
	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/usecase"
)

type QuoteResponse struct {
	Analysis       string   `json:"analysis"`
	Checklist      []string `json:"checklist"`
	EstimatedPrice *float64 `json:"estimated_price,omitempty"`
}

func FromQuote(q entities.IntelligentQuote) QuoteResponse {
	res := QuoteResponse{Analysis: q.Analysis, Checklist: q.Checklist}
	if res.Checklist == nil {
		res.Checklist = []string{}
	}
	if q.EstimatedPrice > 0 {
		price := q.EstimatedPrice
		res.EstimatedPrice = &price
	}
	return res
}

type ReverseEngineeringResponse struct {
	Analysis string `json:"analysis"`
}

type MakerMatchResponse struct {
	MakerID       string       `json:"maker_id"`
	Justification string       `json:"justification"`
	Maker         UserResponse `json:"maker"`
}

func FromMakerMatches(matches []usecase.MakerMatch) []MakerMatchResponse {
	out := make([]MakerMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, MakerMatchResponse{MakerID: m.MakerID, Justification: m.Justification, Maker: FromUser(m.Maker)})
	}
	return out
}

type QuoteStudioResponse struct {
	Quote   QuoteResponse        `json:"quote"`
	Matches []MakerMatchResponse `json:"matches"`
}

func FromQuoteStudio(r usecase.QuoteStudioResult) QuoteStudioResponse {
	return QuoteStudioResponse{Quote: FromQuote(r.Quote), Matches: FromMakerMatches(r.Matches)}
}
