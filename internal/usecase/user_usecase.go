package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"agencia_maker/internal/domain/entities"
	"agencia_maker/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidMakerForm   = errors.New("name, email, phone, bio and at least one specialty are required")
	ErrInvalidSpecialty   = errors.New("invalid specialty")
	ErrInvalidUserPayload = errors.New("invalid user payload")
)

const (
	newMakerRating   = 5.0
	newMakerLocation = "Rio Verde, GO"
	avatarBaseURL    = "https://api.dicebear.com/7.x/avataaars/svg?seed="
)

type BecomeMakerInput struct {
	Name        string
	Email       string
	Phone       string
	Bio         string
	Specialties []string
	Equipment   string
}

// UserProfilePatch holds optional profile changes; nil fields are kept.
type UserProfilePatch struct {
	Name        *string
	Phone       *string
	Bio         *string
	Location    *string
	AvatarURL   *string
	Specialties *[]string
	Services    *[]string
	Software    *[]string
	BasePrice   *float64
}

type IUserUseCase interface {
	List(ctx context.Context) []entities.User
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	Makers(ctx context.Context) []entities.User
	Roles() []entities.UserRole
	BecomeMaker(ctx context.Context, in BecomeMakerInput) (entities.User, error)
	UpdateProfile(ctx context.Context, id string, patch UserProfilePatch) (entities.User, error)
	PromoteCertified(ctx context.Context, id string) (entities.User, error)
}

type UserUseCase struct {
	repo   interfaces.IUserRepository
	logger *zap.Logger
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, logger: logger}
}

func (u *UserUseCase) List(ctx context.Context) []entities.User {
	return u.repo.List(ctx)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	user, ok := u.repo.GetByID(ctx, id)
	if !ok {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

// GetByEmail backs the development login. Matching ignores case.
func (u *UserUseCase) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return entities.User{}, ErrInvalidEmail
	}
	user, ok := u.findByEmail(ctx, email)
	if !ok {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

// Makers returns every user holding a provider role.
func (u *UserUseCase) Makers(ctx context.Context) []entities.User {
	return providers(u.repo.List(ctx))
}

func (u *UserUseCase) Roles() []entities.UserRole {
	return entities.ProviderRoles()
}

// BecomeMaker registers a provider profile. An existing account with the same
// email keeps its id and avatar and is upgraded in place.
func (u *UserUseCase) BecomeMaker(ctx context.Context, in BecomeMakerInput) (entities.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Bio = strings.TrimSpace(in.Bio)
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Bio == "" || len(in.Specialties) == 0 {
		return entities.User{}, ErrInvalidMakerForm
	}
	if !validEmail(in.Email) {
		return entities.User{}, ErrInvalidEmail
	}

	specialties := make([]string, 0, len(in.Specialties))
	roles := []entities.UserRole{entities.UserRoleMaker}
	for _, raw := range in.Specialties {
		role, ok := entities.ParseUserRole(raw)
		if !ok || role == entities.UserRoleCliente {
			return entities.User{}, ErrInvalidSpecialty
		}
		specialties = append(specialties, string(role))
		if role != entities.UserRoleMaker && !containsRole(roles, role) {
			roles = append(roles, role)
		}
	}

	user := entities.User{
		ID:          "maker-" + uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Roles:       roles,
		AvatarURL:   avatarBaseURL + url.QueryEscape(in.Name),
		Rating:      newMakerRating,
		Location:    newMakerLocation,
		Specialties: specialties,
		Services:    []string{strings.TrimSpace(in.Equipment)},
		Bio:         in.Bio,
	}
	if existing, ok := u.findByEmail(ctx, in.Email); ok {
		user.ID = existing.ID
		if existing.AvatarURL != "" {
			user.AvatarURL = existing.AvatarURL
		}
	}

	if err := u.repo.Save(ctx, user); err != nil {
		u.logger.Error("[user][usecase] save maker failed", zap.String("user_id", user.ID), zap.Error(err))
		return entities.User{}, err
	}
	u.logger.Info("[user][usecase] maker registered", zap.String("user_id", user.ID), zap.Int("roles", len(user.Roles)))
	return user, nil
}

func (u *UserUseCase) UpdateProfile(ctx context.Context, id string, patch UserProfilePatch) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return entities.User{}, ErrInvalidUserPayload
	}
	if patch.BasePrice != nil && *patch.BasePrice < 0 {
		return entities.User{}, ErrInvalidUserPayload
	}

	updated, err := u.repo.UpdateFunc(ctx, id, func(user *entities.User) error {
		applyPatch(user, patch)
		return nil
	})
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	u.logger.Info("[user][usecase] profile updated", zap.String("user_id", id))
	return updated, nil
}

func (u *UserUseCase) PromoteCertified(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	updated, err := u.repo.UpdateFunc(ctx, id, func(user *entities.User) error {
		user.IsCertified = true
		return nil
	})
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) findByEmail(ctx context.Context, email string) (entities.User, bool) {
	for _, user := range u.repo.List(ctx) {
		if strings.EqualFold(user.Email, email) {
			return user, true
		}
	}
	return entities.User{}, false
}

func applyPatch(user *entities.User, p UserProfilePatch) {
	if p.Name != nil {
		user.Name = strings.TrimSpace(*p.Name)
	}
	if p.Phone != nil {
		user.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Bio != nil {
		user.Bio = strings.TrimSpace(*p.Bio)
	}
	if p.Location != nil {
		user.Location = strings.TrimSpace(*p.Location)
	}
	if p.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*p.AvatarURL)
	}
	if p.Specialties != nil {
		user.Specialties = append([]string(nil), (*p.Specialties)...)
	}
	if p.Services != nil {
		user.Services = append([]string(nil), (*p.Services)...)
	}
	if p.Software != nil {
		user.Software = append([]string(nil), (*p.Software)...)
	}
	if p.BasePrice != nil {
		user.BasePrice = entities.RoundCents(*p.BasePrice)
	}
}

func containsRole(roles []entities.UserRole, role entities.UserRole) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t\n")
}
