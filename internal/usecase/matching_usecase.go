package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const maxMakerMatches = 3

var matchingSchema = &interfaces.Schema{
	Type: interfaces.SchemaArray,
	Items: &interfaces.Schema{
		Type: interfaces.SchemaObject,
		Properties: map[string]*interfaces.Schema{
			"makerId":       {Type: interfaces.SchemaString},
			"justification": {Type: interfaces.SchemaString},
		},
		Required: []string{"makerId", "justification"},
	},
}

// MakerMatch is a validated recommendation joined with the maker profile.
type MakerMatch struct {
	entities.MakerRecommendation
	Maker entities.User
}

type IMatchingUseCase interface {
	FindMatchingMakers(ctx context.Context, req entities.QuoteRequest) ([]MakerMatch, error)
}

type MatchingUseCase struct {
	ai     interfaces.IGenerativeClient
	users  interfaces.IUserRepository
	logger *zap.Logger
}

var _ IMatchingUseCase = (*MatchingUseCase)(nil)

func NewMatchingUseCase(ai interfaces.IGenerativeClient, users interfaces.IUserRepository, logger *zap.Logger) *MatchingUseCase {
	return &MatchingUseCase{ai: ai, users: users, logger: logger}
}

// rosterEntry is the subset of a maker profile sent to the model.
type rosterEntry struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Roles       []entities.UserRole `json:"roles"`
	Specialties []string            `json:"specialties"`
	Printers    []entities.Printer  `json:"printers,omitempty"`
	Services    []string            `json:"services,omitempty"`
}

// FindMatchingMakers returns at most three makers. Ids returned by the model
// that are not in the roster are dropped. Failures yield an empty list.
func (u *MatchingUseCase) FindMatchingMakers(ctx context.Context, req entities.QuoteRequest) ([]MakerMatch, error) {
	req, err := normalizeQuoteRequest(req)
	if err != nil {
		return nil, err
	}

	roster := providers(u.users.List(ctx))
	if len(roster) == 0 {
		return []MakerMatch{}, nil
	}

	if u.ai == nil {
		return staticMatches(req, roster), nil
	}

	prompt, err := matchingPrompt(req, roster)
	if err != nil {
		u.logger.Warn("[matching][usecase] failed building prompt", zap.Error(err))
		return []MakerMatch{}, nil
	}
	raw, err := u.ai.GenerateJSON(ctx, prompt, matchingSchema)
	if err != nil {
		u.logger.Warn("[matching][usecase] generative call failed", zap.Error(err))
		return []MakerMatch{}, nil
	}

	var recs []struct {
		MakerID       string `json:"makerId"`
		Justification string `json:"justification"`
	}
	if err := json.Unmarshal(raw, &recs); err != nil {
		u.logger.Warn("[matching][usecase] malformed matching response", zap.Error(err))
		return []MakerMatch{}, nil
	}

	byID := make(map[string]entities.User, len(roster))
	for _, m := range roster {
		byID[m.ID] = m
	}
	seen := make(map[string]bool, len(recs))
	out := make([]MakerMatch, 0, maxMakerMatches)
	for _, r := range recs {
		maker, ok := byID[r.MakerID]
		if !ok {
			u.logger.Warn("[matching][usecase] dropping unknown maker id", zap.String("maker_id", r.MakerID))
			continue
		}
		if seen[r.MakerID] {
			continue
		}
		seen[r.MakerID] = true
		out = append(out, MakerMatch{
			MakerRecommendation: entities.MakerRecommendation{MakerID: r.MakerID, Justification: r.Justification},
			Maker:               maker,
		})
		if len(out) == maxMakerMatches {
			break
		}
	}
	if len(out) == 0 {
		u.logger.Info("[matching][usecase] no makers matched", zap.Int("roster", len(roster)))
	}
	return out, nil
}

func providers(users []entities.User) []entities.User {
	out := make([]entities.User, 0, len(users))
	for _, u := range users {
		if u.IsProvider() {
			out = append(out, u)
		}
	}
	return out
}

func staticMatches(req entities.QuoteRequest, roster []entities.User) []MakerMatch {
	kind := "modelagem"
	if req.Type == entities.ServiceTypePrint {
		kind = "impressão"
	}
	justification := fmt.Sprintf("Este maker possui equipamentos compatíveis e ótima avaliação para projetos de %s.", kind)

	n := min(len(roster), maxMakerMatches)
	out := make([]MakerMatch, 0, n)
	for _, m := range roster[:n] {
		out = append(out, MakerMatch{
			MakerRecommendation: entities.MakerRecommendation{MakerID: m.ID, Justification: justification},
			Maker:               m,
		})
	}
	return out
}

func matchingPrompt(req entities.QuoteRequest, roster []entities.User) (string, error) {
	entries := make([]rosterEntry, 0, len(roster))
	for _, m := range roster {
		entries = append(entries, rosterEntry{
			ID:          m.ID,
			Name:        m.Name,
			Roles:       m.Roles,
			Specialties: m.Specialties,
			Printers:    m.Printers,
			Services:    m.Services,
		})
	}
	rosterJSON, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Você faz a curadoria de makers da Agência Maker.\n")
	fmt.Fprintf(&b, "Pedido do cliente (%s): %s\n", serviceTypeLabel(req.Type), req.Description)
	if req.Material != "" {
		fmt.Fprintf(&b, "Material desejado: %s\n", req.Material)
	}
	if req.ModelURL != "" {
		fmt.Fprintf(&b, "Modelo de referência: %s\n", req.ModelURL)
	}
	b.WriteString("\nMakers disponíveis (JSON):\n")
	b.Write(rosterJSON)
	b.WriteString("\n\nEscolha até 3 makers da lista, do mais indicado ao menos indicado, ")
	b.WriteString("e escreva uma justificativa curta em português para cada um. Use apenas ids da lista.")
	return b.String(), nil
}
