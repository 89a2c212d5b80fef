package request

import "agencia_maker/internal/usecase"

type BecomeMakerRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required"`
	Phone       string   `json:"phone" binding:"required"`
	Bio         string   `json:"bio" binding:"required"`
	Specialties []string `json:"specialties" binding:"required,min=1"`
	Equipment   string   `json:"equipment"`
}

func (r BecomeMakerRequest) ToInput() usecase.BecomeMakerInput {
	return usecase.BecomeMakerInput{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Bio:         r.Bio,
		Specialties: r.Specialties,
		Equipment:   r.Equipment,
	}
}

// UpdateUserRequest is a partial update: absent fields are left unchanged.
type UpdateUserRequest struct {
	Name        *string   `json:"name"`
	Phone       *string   `json:"phone"`
	Bio         *string   `json:"bio"`
	Location    *string   `json:"location"`
	AvatarURL   *string   `json:"avatar_url"`
	Specialties *[]string `json:"specialties"`
	Services    *[]string `json:"services"`
	Software    *[]string `json:"software"`
	BasePrice   *float64  `json:"base_price"`
}

func (r UpdateUserRequest) ToPatch() usecase.UserProfilePatch {
	return usecase.UserProfilePatch{
		Name:        r.Name,
		Phone:       r.Phone,
		Bio:         r.Bio,
		Location:    r.Location,
		AvatarURL:   r.AvatarURL,
		Specialties: r.Specialties,
		Services:    r.Services,
		Software:    r.Software,
		BasePrice:   r.BasePrice,
	}
}
