package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyQuoteRequest  = errors.New("quote request needs a description or a model url")
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidComplexity  = errors.New("invalid complexity")
	ErrEmptyDescription   = errors.New("description is required")
)

const (
	fallbackBasePrice        = 45.00
	fallbackLongDescFactor   = 1.5
	fallbackResinFactor      = 1.8
	fallbackLongDescMinRunes = 50
	reverseEngQuoteRunes     = 30
)

var fallbackChecklist = []string{
	"Verificar necessidade de suportes internos",
	"Checar tolerância dimensional para encaixes",
	"Garantir adesão à mesa (brim/raft)",
	"Inspecionar acabamento superficial pós-impressão",
}

var quoteSchema = &interfaces.Schema{
	Type: interfaces.SchemaObject,
	Properties: map[string]*interfaces.Schema{
		"analysis":       {Type: interfaces.SchemaString, Description: "Análise técnica curta do pedido."},
		"checklist":      {Type: interfaces.SchemaArray, Items: &interfaces.Schema{Type: interfaces.SchemaString}},
		"estimatedPrice": {Type: interfaces.SchemaNumber, Description: "Preço estimado em reais."},
	},
	Required: []string{"analysis", "checklist"},
}

// IQuoteUseCase produces price estimates.
//
// Every external failure degrades to a static estimate: callers only see
// validation errors.
type IQuoteUseCase interface {
	GetIntelligentPrice(ctx context.Context, req entities.QuoteRequest) (entities.IntelligentQuote, error)
	AnalyzeReverseEngineering(ctx context.Context, description string) (string, error)
	// Studio runs the quote and the maker matching concurrently.
	Studio(ctx context.Context, req entities.QuoteRequest) (QuoteStudioResult, error)
}

type QuoteStudioResult struct {
	Quote   entities.IntelligentQuote
	Matches []MakerMatch
}

type QuoteUseCase struct {
	ai       interfaces.IGenerativeClient
	matching IMatchingUseCase
	logger   *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase accepts a nil ai client for offline builds.
func NewQuoteUseCase(ai interfaces.IGenerativeClient, matching IMatchingUseCase, logger *zap.Logger) *QuoteUseCase {
	return &QuoteUseCase{ai: ai, matching: matching, logger: logger}
}

func (u *QuoteUseCase) GetIntelligentPrice(ctx context.Context, req entities.QuoteRequest) (entities.IntelligentQuote, error) {
	req, err := normalizeQuoteRequest(req)
	if err != nil {
		return entities.IntelligentQuote{}, err
	}

	if u.ai == nil {
		u.logger.Debug("[quote][usecase] no generative client, using fallback")
		return FallbackQuote(req), nil
	}

	raw, err := u.ai.GenerateJSON(ctx, quotePrompt(req), quoteSchema)
	if err != nil {
		u.logger.Warn("[quote][usecase] generative call failed, using fallback", zap.Error(err))
		return FallbackQuote(req), nil
	}

	var parsed struct {
		Analysis       string   `json:"analysis"`
		Checklist      []string `json:"checklist"`
		EstimatedPrice *float64 `json:"estimatedPrice"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		u.logger.Warn("[quote][usecase] malformed quote response, using fallback", zap.Error(err))
		return FallbackQuote(req), nil
	}
	if strings.TrimSpace(parsed.Analysis) == "" || (parsed.EstimatedPrice != nil && *parsed.EstimatedPrice < 0) {
		u.logger.Warn("[quote][usecase] quote response failed validation, using fallback")
		return FallbackQuote(req), nil
	}

	quote := entities.IntelligentQuote{Analysis: parsed.Analysis, Checklist: parsed.Checklist}
	if quote.Checklist == nil {
		quote.Checklist = []string{}
	}
	if parsed.EstimatedPrice != nil {
		quote.EstimatedPrice = *parsed.EstimatedPrice
	}
	return quote, nil
}

func (u *QuoteUseCase) AnalyzeReverseEngineering(ctx context.Context, description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", ErrEmptyDescription
	}
	if u.ai == nil {
		return fallbackReverseEngineering(description), nil
	}

	text, err := u.ai.GenerateText(ctx, reverseEngineeringPrompt(description))
	if err != nil {
		u.logger.Warn("[quote][usecase] reverse engineering analysis failed, using fallback", zap.Error(err))
		return fallbackReverseEngineering(description), nil
	}
	return text, nil
}

func (u *QuoteUseCase) Studio(ctx context.Context, req entities.QuoteRequest) (QuoteStudioResult, error) {
	req, err := normalizeQuoteRequest(req)
	if err != nil {
		return QuoteStudioResult{}, err
	}

	var res QuoteStudioResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := u.GetIntelligentPrice(gctx, req)
		res.Quote = q
		return err
	})
	g.Go(func() error {
		if u.matching == nil {
			res.Matches = []MakerMatch{}
			return nil
		}
		m, err := u.matching.FindMatchingMakers(gctx, req)
		res.Matches = m
		return err
	})
	if err := g.Wait(); err != nil {
		return QuoteStudioResult{}, err
	}
	return res, nil
}

// FallbackQuote is the static estimate served whenever the model is
// unavailable: 45.00 scaled by description length and resin material.
func FallbackQuote(req entities.QuoteRequest) entities.IntelligentQuote {
	price := FallbackPrice(req.Description, req.Material)
	material := req.Material
	if material == "" {
		material = "PLA"
	}
	analysis := fmt.Sprintf("Com base na descrição e no material selecionado (%s), estimamos o seguinte:\n\n"+
		"- Tempo de impressão: ~4 a 8 horas\n"+
		"- Peso estimado: ~60g - 120g\n"+
		"- Complexidade: Média\n\n"+
		"Preço Sugerido: R$ %.2f", material, price)

	return entities.IntelligentQuote{
		Analysis:       analysis,
		Checklist:      append([]string(nil), fallbackChecklist...),
		EstimatedPrice: price,
	}
}

func FallbackPrice(description, material string) float64 {
	price := fallbackBasePrice
	if utf8.RuneCountInString(description) > fallbackLongDescMinRunes {
		price *= fallbackLongDescFactor
	}
	if isResin(material) {
		price *= fallbackResinFactor
	}
	return entities.RoundCents(price)
}

// isResin matches "Resina" and its variants ("Resina Padrão", "resina rígida").
func isResin(material string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(material)), "resina")
}

func fallbackReverseEngineering(description string) string {
	excerpt := description
	if utf8.RuneCountInString(excerpt) > reverseEngQuoteRunes {
		excerpt = string([]rune(excerpt)[:reverseEngQuoteRunes])
	}
	return fmt.Sprintf("Análise Preliminar: O projeto descrito (\"%s...\") requer medição precisa com paquímetro ou scanner 3D. "+
		"Recomendamos o uso de material ABS ou PETG devido à provável necessidade de resistência mecânica. "+
		"Complexidade estimada: Média.", excerpt)
}

func normalizeQuoteRequest(req entities.QuoteRequest) (entities.QuoteRequest, error) {
	req.Description = strings.TrimSpace(req.Description)
	req.ModelURL = strings.TrimSpace(req.ModelURL)
	req.Material = strings.TrimSpace(req.Material)

	if req.Type == "" {
		req.Type = entities.ServiceTypePrint
	}
	if !req.Type.Valid() {
		return entities.QuoteRequest{}, ErrInvalidServiceType
	}
	if !req.Complexity.Valid() {
		return entities.QuoteRequest{}, ErrInvalidComplexity
	}
	if req.Description == "" && req.ModelURL == "" {
		return entities.QuoteRequest{}, ErrEmptyQuoteRequest
	}
	if req.Description == "" {
		req.Description = "Impressão de arquivo: " + req.ModelURL
	}
	return req, nil
}

func quotePrompt(req entities.QuoteRequest) string {
	var b strings.Builder
	b.WriteString("Você é um especialista em manufatura aditiva da Agência Maker, uma rede de makers de Rio Verde, GO.\n")
	b.WriteString("Analise o pedido abaixo e responda em português do Brasil.\n\n")
	fmt.Fprintf(&b, "Tipo de serviço: %s\n", serviceTypeLabel(req.Type))
	fmt.Fprintf(&b, "Descrição: %s\n", req.Description)
	if req.ModelURL != "" {
		fmt.Fprintf(&b, "Modelo de referência: %s\n", req.ModelURL)
	}
	if req.Material != "" {
		fmt.Fprintf(&b, "Material: %s\n", req.Material)
	}
	if req.Complexity != "" {
		fmt.Fprintf(&b, "Complexidade informada: %s\n", req.Complexity)
	}
	b.WriteString("\nRetorne uma análise técnica curta (tempo de impressão, peso estimado e complexidade), ")
	b.WriteString("um checklist de verificação de qualidade e um preço estimado em reais (estimatedPrice).")
	return b.String()
}

func reverseEngineeringPrompt(description string) string {
	return "Você é um engenheiro especialista em engenharia reversa para impressão 3D. " +
		"Faça uma análise preliminar curta, em português, do projeto abaixo: método de medição, " +
		"material recomendado e complexidade estimada.\n\nProjeto: " + description
}

func serviceTypeLabel(t entities.ServiceType) string {
	switch t {
	case entities.ServiceTypeDesign:
		return "modelagem 3D"
	case entities.ServiceTypeReverseEng:
		return "engenharia reversa"
	default:
		return "impressão 3D"
	}
}
