package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/domain/seed"
	mock_interfaces "agencia_maker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func validMakerForm() BecomeMakerInput {
	return BecomeMakerInput{
		Name:        "Maria Souza",
		Email:       "maria@example.com",
		Phone:       "(64) 99999-0000",
		Bio:         "Modelagem orgânica e pintura.",
		Specialties: []string{"Projetista (Modelagem 3D)", "Maker (Fabricante)", "pintura e acabamento"},
		Equipment:   "Blender, Bambu X1",
	}
}

func TestUserUseCase_BecomeMaker_Validations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BecomeMakerInput)
		want   error
	}{
		{"missing name", func(in *BecomeMakerInput) { in.Name = " " }, ErrInvalidMakerForm},
		{"missing phone", func(in *BecomeMakerInput) { in.Phone = "" }, ErrInvalidMakerForm},
		{"missing bio", func(in *BecomeMakerInput) { in.Bio = "" }, ErrInvalidMakerForm},
		{"no specialties", func(in *BecomeMakerInput) { in.Specialties = nil }, ErrInvalidMakerForm},
		{"bad email", func(in *BecomeMakerInput) { in.Email = "maria" }, ErrInvalidEmail},
		{"unknown specialty", func(in *BecomeMakerInput) { in.Specialties = []string{"Astronauta"} }, ErrInvalidSpecialty},
		{"client is not a specialty", func(in *BecomeMakerInput) { in.Specialties = []string{"Cliente"} }, ErrInvalidSpecialty},
	}
	uc := NewUserUseCase(nil, zap.NewNop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validMakerForm()
			tc.mutate(&in)
			if _, err := uc.BecomeMaker(context.Background(), in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestUserUseCase_BecomeMaker(t *testing.T) {
	t.Run("new maker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return(seed.Users())
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		u, err := NewUserUseCase(repo, zap.NewNop()).BecomeMaker(context.Background(), validMakerForm())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(u.ID, "maker-") {
			t.Fatalf("unexpected id %q", u.ID)
		}
		wantRoles := []entities.UserRole{entities.UserRoleMaker, entities.UserRoleProjetista, entities.UserRolePintura}
		if len(u.Roles) != len(wantRoles) {
			t.Fatalf("unexpected roles %v", u.Roles)
		}
		for i := range wantRoles {
			if u.Roles[i] != wantRoles[i] {
				t.Fatalf("unexpected roles %v", u.Roles)
			}
		}
		if u.Rating != 5.0 || u.Reviews != 0 || u.Location != "Rio Verde, GO" {
			t.Fatalf("unexpected defaults %+v", u)
		}
		if u.AvatarURL != "https://api.dicebear.com/7.x/avataaars/svg?seed=Maria+Souza" {
			t.Fatalf("unexpected avatar %q", u.AvatarURL)
		}
		if len(u.Services) != 1 || u.Services[0] != "Blender, Bambu X1" {
			t.Fatalf("unexpected services %v", u.Services)
		}
	})

	t.Run("existing email upgrades in place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return(seed.Users())
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) error {
			if u.ID != "client-1" {
				t.Fatalf("expected id reuse, got %q", u.ID)
			}
			return nil
		})

		in := validMakerForm()
		in.Email = "CLIENTE@unirv.edu.br"
		u, err := NewUserUseCase(repo, zap.NewNop()).BecomeMaker(context.Background(), in)
		if err != nil || u.ID != "client-1" || !u.IsProvider() {
			t.Fatalf("unexpected result %+v err=%v", u, err)
		}
	})
}

func TestUserUseCase_Lookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(seed.Users()).AnyTimes()
	repo.EXPECT().GetByID(gomock.Any(), "maker-1").Return(seed.Users()[0], true)
	repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.User{}, false)
	uc := NewUserUseCase(repo, zap.NewNop())
	ctx := context.Background()

	if u, err := uc.GetByID(ctx, "maker-1"); err != nil || u.Name == "" {
		t.Fatalf("unexpected result %+v err=%v", u, err)
	}
	if _, err := uc.GetByID(ctx, "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := uc.GetByID(ctx, ""); !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
	if u, err := uc.GetByEmail(ctx, "ANA.PEREIRA@example.com"); err != nil || u.ID != "maker-2" {
		t.Fatalf("unexpected result %+v err=%v", u, err)
	}
	if _, err := uc.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := uc.GetByEmail(ctx, "broken"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if makers := uc.Makers(ctx); len(makers) != 3 {
		t.Fatalf("expected 3 makers, got %d", len(makers))
	}
	if roles := uc.Roles(); len(roles) != 6 || roles[0] != entities.UserRoleMaker {
		t.Fatalf("unexpected roles %v", roles)
	}
}

func TestUserUseCase_UpdateProfile(t *testing.T) {
	t.Run("applies patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		repo.EXPECT().UpdateFunc(gomock.Any(), "maker-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fn func(*entities.User) error) (entities.User, error) {
				u := seed.Users()[0]
				if err := fn(&u); err != nil {
					return entities.User{}, err
				}
				return u, nil
			})

		bio, price := "  Nova bio ", 99.999
		u, err := NewUserUseCase(repo, zap.NewNop()).UpdateProfile(context.Background(), "maker-1",
			UserProfilePatch{Bio: &bio, BasePrice: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Bio != "Nova bio" || u.BasePrice != 100 || u.Name != "Carlos Silva" {
			t.Fatalf("unexpected user %+v", u)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		blank := " "
		_, err := NewUserUseCase(nil, zap.NewNop()).UpdateProfile(context.Background(), "maker-1", UserProfilePatch{Name: &blank})
		if !errors.Is(err, ErrInvalidUserPayload) {
			t.Fatalf("expected ErrInvalidUserPayload, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		repo.EXPECT().UpdateFunc(gomock.Any(), "ghost", gomock.Any()).Return(entities.User{}, nil)
		_, err := NewUserUseCase(repo, zap.NewNop()).UpdateProfile(context.Background(), "ghost", UserProfilePatch{})
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserUseCase_PromoteCertified(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	repo.EXPECT().UpdateFunc(gomock.Any(), "maker-3", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fn func(*entities.User) error) (entities.User, error) {
			u := seed.Users()[2]
			_ = fn(&u)
			return u, nil
		})

	u, err := NewUserUseCase(repo, zap.NewNop()).PromoteCertified(context.Background(), "maker-3")
	if err != nil || !u.IsCertified {
		t.Fatalf("unexpected result %+v err=%v", u, err)
	}
}
