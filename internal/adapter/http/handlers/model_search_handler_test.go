package handlers

import (
	"net/http"
	"testing"

	"agencia_maker/internal/adapter/http/handlers/mocks"
	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestModelSearchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIModelSearchUseCase(ctrl)
	uc.EXPECT().Strategy().Return(usecase.SearchStrategyStatic).AnyTimes()
	uc.EXPECT().Search(gomock.Any(), "vaso").Return([]entities.ExternalModel{{ID: "4", Title: "Voronoi Vase"}})
	uc.EXPECT().Suggested(gomock.Any()).Return(nil)

	h := NewModelSearchHandler(uc)
	r := gin.New()
	r.GET("/v1/models/search", h.Search)
	r.GET("/v1/models/suggested", h.Suggested)

	w := perform(r, http.MethodGet, "/v1/models/search?q=+vaso+", "")
	body := decode(t, w)
	if w.Code != http.StatusOK || body["query"] != "vaso" || body["strategy"] != "static" {
		t.Fatalf("unexpected search response %d %s", w.Code, w.Body.String())
	}
	if results := body["results"].([]any); len(results) != 1 {
		t.Fatalf("expected 1 result, got %v", results)
	}

	body = decode(t, perform(r, http.MethodGet, "/v1/models/suggested", ""))
	if results, ok := body["results"].([]any); !ok || len(results) != 0 {
		t.Fatalf("expected empty results array, got %v", body)
	}
}
