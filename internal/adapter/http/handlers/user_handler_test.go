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

func newUserRouter(uc usecase.IUserUseCase) *gin.Engine {
	h := NewUserHandler(uc)
	r := gin.New()
	r.GET("/v1/users", h.ListUsers)
	r.GET("/v1/users/lookup", h.LookupUser)
	r.GET("/v1/users/:id", h.GetUser)
	r.PUT("/v1/users/:id", h.UpdateUser)
	r.GET("/v1/makers", h.ListMakers)
	r.POST("/v1/makers", h.BecomeMaker)
	r.GET("/v1/roles", h.ListRoles)
	return r
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIUserUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "maker-1").Return(entities.User{ID: "maker-1", Name: "Carlos", Roles: []entities.UserRole{entities.UserRoleMaker}}, nil)

		w := perform(newUserRouter(uc), http.MethodGet, "/v1/users/maker-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decode(t, w)
		if body["name"] != "Carlos" || body["is_maker"] != true {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIUserUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.User{}, usecase.ErrUserNotFound)

		w := perform(newUserRouter(uc), http.MethodGet, "/v1/users/ghost", "")
		if w.Code != http.StatusNotFound || decode(t, w)["code"] != "USER_NOT_FOUND" {
			t.Fatalf("expected 404 USER_NOT_FOUND, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestUserHandler_LookupUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIUserUseCase(ctrl)
	uc.EXPECT().GetByEmail(gomock.Any(), "bad").Return(entities.User{}, usecase.ErrInvalidEmail)

	w := perform(newUserRouter(uc), http.MethodGet, "/v1/users/lookup?email=bad", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUserHandler_BecomeMaker(t *testing.T) {
	t.Run("missing fields rejected before usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIUserUseCase(ctrl)

		w := perform(newUserRouter(uc), http.MethodPost, "/v1/makers", `{"name":"Maria","email":"m@x.com"}`)
		if w.Code != http.StatusBadRequest || decode(t, w)["code"] != "INVALID_USER_INPUT" {
			t.Fatalf("expected 400 INVALID_USER_INPUT, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIUserUseCase(ctrl)
		uc.EXPECT().BecomeMaker(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.BecomeMakerInput) (entities.User, error) {
			if in.Phone != "123" || len(in.Specialties) != 1 {
				t.Fatalf("unexpected input %+v", in)
			}
			return entities.User{ID: "maker-x", Name: in.Name, Roles: []entities.UserRole{entities.UserRoleMaker}}, nil
		})

		w := perform(newUserRouter(uc), http.MethodPost, "/v1/makers",
			`{"name":"Maria","email":"m@x.com","phone":"123","bio":"oi","specialties":["Scanner 3D"]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid specialty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIUserUseCase(ctrl)
		uc.EXPECT().BecomeMaker(gomock.Any(), gomock.Any()).Return(entities.User{}, usecase.ErrInvalidSpecialty)

		w := perform(newUserRouter(uc), http.MethodPost, "/v1/makers",
			`{"name":"Maria","email":"m@x.com","phone":"123","bio":"oi","specialties":["Astronauta"]}`)
		if w.Code != http.StatusBadRequest || decode(t, w)["code"] != "INVALID_MAKER_FORM" {
			t.Fatalf("expected 400 INVALID_MAKER_FORM, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIUserUseCase(ctrl)
	uc.EXPECT().UpdateProfile(gomock.Any(), "maker-1", gomock.Any()).DoAndReturn(
		func(_ any, _ string, p usecase.UserProfilePatch) (entities.User, error) {
			if p.Bio == nil || *p.Bio != "nova" || p.Name != nil {
				t.Fatalf("unexpected patch %+v", p)
			}
			return entities.User{ID: "maker-1", Bio: "nova"}, nil
		})

	w := perform(newUserRouter(uc), http.MethodPut, "/v1/users/maker-1", `{"bio":"nova"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestUserHandler_ListingsAndRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIUserUseCase(ctrl)
	uc.EXPECT().Makers(gomock.Any()).Return([]entities.User{{ID: "maker-1"}, {ID: "maker-2"}})
	uc.EXPECT().Roles().Return(entities.ProviderRoles())
	uc.EXPECT().List(gomock.Any()).Return(nil)
	r := newUserRouter(uc)

	if w := perform(r, http.MethodGet, "/v1/makers", ""); w.Code != http.StatusOK || w.Body.String()[0] != '[' {
		t.Fatalf("unexpected makers response %d %s", w.Code, w.Body.String())
	}
	roles := decode(t, perform(r, http.MethodGet, "/v1/roles", ""))["roles"].([]any)
	if len(roles) != 6 {
		t.Fatalf("expected 6 roles, got %v", roles)
	}
	if w := perform(r, http.MethodGet, "/v1/users", ""); w.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %s", w.Body.String())
	}
}
