package response

import "agencia_maker/internal/domain/entities"

type UserResponse struct {
	entities.User
	PrimaryRole string `json:"primary_role"`
	IsMaker     bool   `json:"is_maker"`
}

func FromUser(u entities.User) UserResponse {
	if u.Roles == nil {
		u.Roles = []entities.UserRole{}
	}
	if u.Specialties == nil {
		u.Specialties = []string{}
	}
	return UserResponse{User: u, PrimaryRole: string(u.PrimaryRole()), IsMaker: u.IsProvider()}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

type RolesResponse struct {
	Roles []string `json:"roles"`
}

func FromRoles(roles []entities.UserRole) RolesResponse {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return RolesResponse{Roles: out}
}
