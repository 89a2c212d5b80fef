package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/domain/seed"
	mock_interfaces "agencia_maker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMatchingUseCase_FindMatchingMakers(t *testing.T) {
	req := entities.QuoteRequest{Type: entities.ServiceTypeDesign, Description: "modelar um suporte"}

	t.Run("drops unknown ids and duplicates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		ai := mock_interfaces.NewMockIGenerativeClient(ctrl)
		users.EXPECT().List(gomock.Any()).Return(seed.Users())
		ai.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), matchingSchema).Return(json.RawMessage(`[
			{"makerId":"maker-2","justification":"Projetista experiente"},
			{"makerId":"maker-99","justification":"inventado"},
			{"makerId":"maker-2","justification":"repetido"},
			{"makerId":"maker-1","justification":"Tem Ender 3"}
		]`), nil)

		matches, err := NewMatchingUseCase(ai, users, zap.NewNop()).FindMatchingMakers(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 2 {
			t.Fatalf("expected 2 matches, got %+v", matches)
		}
		if matches[0].MakerID != "maker-2" || matches[0].Maker.Name == "" || matches[1].MakerID != "maker-1" {
			t.Fatalf("unexpected matches %+v", matches)
		}
	})

	t.Run("never recommends clients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		ai := mock_interfaces.NewMockIGenerativeClient(ctrl)
		users.EXPECT().List(gomock.Any()).Return(seed.Users())
		ai.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`[{"makerId":"client-1","justification":"x"}]`), nil)

		matches, _ := NewMatchingUseCase(ai, users, zap.NewNop()).FindMatchingMakers(context.Background(), req)
		if len(matches) != 0 {
			t.Fatalf("expected no matches, got %+v", matches)
		}
	})

	t.Run("model failure yields empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		ai := mock_interfaces.NewMockIGenerativeClient(ctrl)
		users.EXPECT().List(gomock.Any()).Return(seed.Users())
		ai.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		matches, err := NewMatchingUseCase(ai, users, zap.NewNop()).FindMatchingMakers(context.Background(), req)
		if err != nil || matches == nil || len(matches) != 0 {
			t.Fatalf("expected empty non-nil list, got %+v err=%v", matches, err)
		}
	})

	t.Run("static matches without client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		users.EXPECT().List(gomock.Any()).Return(seed.Users())

		matches, err := NewMatchingUseCase(nil, users, zap.NewNop()).FindMatchingMakers(context.Background(), req)
		if err != nil || len(matches) != 3 {
			t.Fatalf("expected 3 static matches, got %+v err=%v", matches, err)
		}
		for _, m := range matches {
			if !m.Maker.IsProvider() || m.Justification == "" {
				t.Fatalf("unexpected match %+v", m)
			}
		}
	})

	t.Run("invalid request", func(t *testing.T) {
		_, err := NewMatchingUseCase(nil, nil, zap.NewNop()).FindMatchingMakers(context.Background(), entities.QuoteRequest{})
		if !errors.Is(err, ErrEmptyQuoteRequest) {
			t.Fatalf("expected ErrEmptyQuoteRequest, got %v", err)
		}
	})
}
