package handlers

import (
	"context"
	"net/http"
	"testing"

	"agencia_maker/internal/adapter/http/handlers/mocks"
	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(q usecase.IQuoteUseCase, m usecase.IMatchingUseCase, tracker *usecase.RequestTracker) *gin.Engine {
	h := NewQuoteHandler(q, m)
	r := gin.New()
	r.POST("/v1/quotes", TrackLatest(tracker, "quote"), h.GetQuote)
	r.POST("/v1/quotes/reverse-engineering", h.ReverseEngineering)
	r.POST("/v1/quotes/matches", h.FindMatches)
	r.POST("/v1/quotes/studio", h.Studio)
	return r
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newQuoteRouter(mocks.NewMockIQuoteUseCase(ctrl), nil, usecase.NewRequestTracker())
		if w := perform(r, http.MethodPost, "/v1/quotes", "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty request mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := mocks.NewMockIQuoteUseCase(ctrl)
		q.EXPECT().GetIntelligentPrice(gomock.Any(), gomock.Any()).Return(entities.IntelligentQuote{}, usecase.ErrEmptyQuoteRequest)

		w := perform(newQuoteRouter(q, nil, usecase.NewRequestTracker()), http.MethodPost, "/v1/quotes", `{}`)
		if w.Code != http.StatusBadRequest || decode(t, w)["code"] != "INVALID_QUOTE_INPUT" {
			t.Fatalf("expected 400 INVALID_QUOTE_INPUT, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := mocks.NewMockIQuoteUseCase(ctrl)
		q.EXPECT().GetIntelligentPrice(gomock.Any(), entities.QuoteRequest{Type: entities.ServiceTypeDesign, Description: "vaso"}).
			Return(entities.IntelligentQuote{Analysis: "ok", Checklist: []string{"a"}, EstimatedPrice: 50}, nil)

		w := perform(newQuoteRouter(q, nil, usecase.NewRequestTracker()), http.MethodPost, "/v1/quotes",
			`{"type":"design","description":"vaso"}`, HeaderClientSession, "tab-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
		if decode(t, w)["estimated_price"] != 50.0 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("superseded request returns 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := mocks.NewMockIQuoteUseCase(ctrl)
		tracker := usecase.NewRequestTracker()
		q.EXPECT().GetIntelligentPrice(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ entities.QuoteRequest) (entities.IntelligentQuote, error) {
				// A newer request from the same tab arrives while this one runs.
				_, _, release := tracker.Begin(context.Background(), "tab-1:quote")
				defer release()
				if ctx.Err() == nil {
					t.Fatalf("expected the stale request context to be cancelled")
				}
				return entities.IntelligentQuote{Analysis: "late"}, nil
			})

		w := perform(newQuoteRouter(q, nil, tracker), http.MethodPost, "/v1/quotes",
			`{"description":"vaso"}`, HeaderClientSession, "tab-1")
		if w.Code != http.StatusConflict || decode(t, w)["code"] != "REQUEST_SUPERSEDED" {
			t.Fatalf("expected 409 REQUEST_SUPERSEDED, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestQuoteHandler_ReverseEngineering(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockIQuoteUseCase(ctrl)
	q.EXPECT().AnalyzeReverseEngineering(gomock.Any(), "engrenagem").Return("Use PETG", nil)
	r := newQuoteRouter(q, nil, usecase.NewRequestTracker())

	if w := perform(r, http.MethodPost, "/v1/quotes/reverse-engineering", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	w := perform(r, http.MethodPost, "/v1/quotes/reverse-engineering", `{"description":"engrenagem"}`)
	if w.Code != http.StatusOK || decode(t, w)["analysis"] != "Use PETG" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestQuoteHandler_MatchesAndStudio(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockIQuoteUseCase(ctrl)
	m := mocks.NewMockIMatchingUseCase(ctrl)
	match := usecase.MakerMatch{
		MakerRecommendation: entities.MakerRecommendation{MakerID: "maker-1", Justification: "Ender 3"},
		Maker:               entities.User{ID: "maker-1", Name: "Carlos"},
	}
	m.EXPECT().FindMatchingMakers(gomock.Any(), gomock.Any()).Return([]usecase.MakerMatch{match}, nil)
	q.EXPECT().Studio(gomock.Any(), gomock.Any()).Return(usecase.QuoteStudioResult{
		Quote:   entities.IntelligentQuote{Analysis: "ok"},
		Matches: []usecase.MakerMatch{match},
	}, nil)
	r := newQuoteRouter(q, m, usecase.NewRequestTracker())

	w := perform(r, http.MethodPost, "/v1/quotes/matches", `{"description":"suporte"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = perform(r, http.MethodPost, "/v1/quotes/studio", `{"description":"suporte"}`)
	body := decode(t, w)
	matches, ok := body["matches"].([]any)
	if w.Code != http.StatusOK || !ok || len(matches) != 1 {
		t.Fatalf("unexpected studio response %d %s", w.Code, w.Body.String())
	}
}
