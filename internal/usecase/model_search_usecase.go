package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/domain/seed"
	"agencia_maker/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SearchStrategy string

const (
	SearchStrategyStatic     SearchStrategy = "static"
	SearchStrategyGenerative SearchStrategy = "generative"
)

const maxGeneratedListings = 6

var listingsSchema = &interfaces.Schema{
	Type: interfaces.SchemaArray,
	Items: &interfaces.Schema{
		Type: interfaces.SchemaObject,
		Properties: map[string]*interfaces.Schema{
			"title":  {Type: interfaces.SchemaString},
			"author": {Type: interfaces.SchemaString},
			"source": {Type: interfaces.SchemaString, Description: "Thingiverse, Cults3D, Printables ou MyMiniFactory"},
			"link":   {Type: interfaces.SchemaString},
			"isFree": {Type: interfaces.SchemaBoolean},
		},
		Required: []string{"title", "author", "source", "link", "isFree"},
	},
}

// IModelSearchUseCase looks up printable models on third-party marketplaces.
// All operations are read-only.
type IModelSearchUseCase interface {
	Search(ctx context.Context, query string) []entities.ExternalModel
	Suggested(ctx context.Context) []entities.ExternalModel
	RefreshSuggested(ctx context.Context)
	Strategy() SearchStrategy
}

type ModelSearchUseCase struct {
	ai       interfaces.IGenerativeClient
	images   interfaces.IImageURLBuilder
	strategy SearchStrategy
	logger   *zap.Logger
	now      func() time.Time

	mu          sync.RWMutex
	suggested   []entities.ExternalModel
	refreshedAt time.Time
}

var _ IModelSearchUseCase = (*ModelSearchUseCase)(nil)

// NewModelSearchUseCase falls back to the static strategy when the
// generative one is requested without a client.
func NewModelSearchUseCase(ai interfaces.IGenerativeClient, images interfaces.IImageURLBuilder, strategy SearchStrategy, logger *zap.Logger) *ModelSearchUseCase {
	if strategy != SearchStrategyGenerative || ai == nil {
		strategy = SearchStrategyStatic
	}
	return &ModelSearchUseCase{ai: ai, images: images, strategy: strategy, logger: logger, now: time.Now}
}

func (u *ModelSearchUseCase) Strategy() SearchStrategy {
	return u.strategy
}

func (u *ModelSearchUseCase) Search(ctx context.Context, query string) []entities.ExternalModel {
	query = strings.TrimSpace(query)
	if u.strategy == SearchStrategyGenerative && query != "" {
		prompt := fmt.Sprintf("Liste até %d modelos 3D plausíveis para impressão relacionados a \"%s\", "+
			"como se fossem anúncios reais de Thingiverse, Cults3D, Printables ou MyMiniFactory. "+
			"Inclua título, autor, fonte, link da página da fonte e se é gratuito.", maxGeneratedListings, query)
		if models := u.generate(ctx, prompt); len(models) > 0 {
			return models
		}
	}
	return u.staticSearch(query)
}

// Suggested serves the cached trending list, filling it on first use.
func (u *ModelSearchUseCase) Suggested(ctx context.Context) []entities.ExternalModel {
	u.mu.RLock()
	cached := u.suggested
	u.mu.RUnlock()
	if cached != nil {
		return append([]entities.ExternalModel(nil), cached...)
	}
	u.RefreshSuggested(ctx)

	u.mu.RLock()
	defer u.mu.RUnlock()
	return append([]entities.ExternalModel(nil), u.suggested...)
}

// RefreshSuggested rebuilds the trending cache. Scheduled periodically.
func (u *ModelSearchUseCase) RefreshSuggested(ctx context.Context) {
	var models []entities.ExternalModel
	if u.strategy == SearchStrategyGenerative {
		prompt := fmt.Sprintf("Liste %d modelos 3D populares e em alta para impressão, "+
			"variados entre decoração, utilidades e colecionáveis, como anúncios de Thingiverse, Cults3D, "+
			"Printables ou MyMiniFactory.", maxGeneratedListings)
		models = u.generate(ctx, prompt)
	}
	if len(models) == 0 {
		models = u.staticSuggested()
	}

	u.mu.Lock()
	u.suggested = models
	u.refreshedAt = u.now()
	u.mu.Unlock()
	u.logger.Debug("[search][usecase] suggested models refreshed",
		zap.String("strategy", string(u.strategy)), zap.Int("count", len(models)))
}

func (u *ModelSearchUseCase) RefreshedAt() time.Time {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.refreshedAt
}

func (u *ModelSearchUseCase) staticSearch(query string) []entities.ExternalModel {
	q := strings.ToLower(query)
	out := []entities.ExternalModel{}
	for _, m := range seed.ExternalCatalog() {
		if strings.Contains(strings.ToLower(m.Title), q) || strings.Contains(strings.ToLower(string(m.Source)), q) {
			m.ImageURL = u.images.PlaceholderURL(m.Title)
			out = append(out, m)
		}
	}
	return out
}

func (u *ModelSearchUseCase) staticSuggested() []entities.ExternalModel {
	catalog := seed.ExternalCatalog()
	out := make([]entities.ExternalModel, 0, len(seed.SuggestedCatalogIndexes))
	for _, i := range seed.SuggestedCatalogIndexes {
		m := catalog[i]
		m.ImageURL = u.images.PlaceholderURL(m.Title)
		out = append(out, m)
	}
	return out
}

// generate returns nil on any failure so callers can fall back.
func (u *ModelSearchUseCase) generate(ctx context.Context, prompt string) []entities.ExternalModel {
	raw, err := u.ai.GenerateJSON(ctx, prompt, listingsSchema)
	if err != nil {
		u.logger.Warn("[search][usecase] generative search failed, using static catalog", zap.Error(err))
		return nil
	}
	var listings []struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		Source string `json:"source"`
		Link   string `json:"link"`
		IsFree bool   `json:"isFree"`
	}
	if err := json.Unmarshal(raw, &listings); err != nil {
		u.logger.Warn("[search][usecase] malformed listings, using static catalog", zap.Error(err))
		return nil
	}

	out := make([]entities.ExternalModel, 0, maxGeneratedListings)
	for _, l := range listings {
		source, ok := entities.ParseModelSource(l.Source)
		if !ok || strings.TrimSpace(l.Title) == "" {
			continue
		}
		out = append(out, entities.ExternalModel{
			ID:       uuid.NewString(),
			Title:    l.Title,
			Source:   source,
			Author:   l.Author,
			Link:     l.Link,
			IsFree:   l.IsFree,
			ImageURL: u.images.GeneratedURL(l.Title),
		})
		if len(out) == maxGeneratedListings {
			break
		}
	}
	return out
}
