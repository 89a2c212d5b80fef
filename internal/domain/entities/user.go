package entities

import "strings"

// UserRole is a role tag a user can hold on the platform.
//
// The first role in User.Roles is the primary display role.

type UserRole string

const (
	UserRoleCliente    UserRole = "Cliente"
	UserRoleMaker      UserRole = "Maker (Fabricante)"
	UserRoleProjetista UserRole = "Projetista (Modelagem 3D)"
	UserRoleScanner    UserRole = "Scanner 3D"
	UserRolePintura    UserRole = "Pintura e Acabamento"
	UserRoleEletronica UserRole = "Eletrônica Embarcada"
	UserRoleManutencao UserRole = "Manutenção de Impressoras"
)

// ProviderRoles lists the roles a user can self-select when joining the
// maker network.
func ProviderRoles() []UserRole {
	return []UserRole{
		UserRoleMaker,
		UserRoleProjetista,
		UserRoleScanner,
		UserRolePintura,
		UserRoleEletronica,
		UserRoleManutencao,
	}
}

// ParseUserRole matches a role label case-insensitively.
func ParseUserRole(v string) (UserRole, bool) {
	v = strings.TrimSpace(v)
	for _, r := range append(ProviderRoles(), UserRoleCliente) {
		if strings.EqualFold(string(r), v) {
			return r, true
		}
	}
	return "", false
}

type Printer struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Model         string   `json:"model"`
	MaterialTypes []string `json:"material_types"`
}

type PortfolioItem struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	Title    string `json:"title"`
}

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	MakerID  string  `json:"maker_id"`
}

// User is a platform account. Makers are users holding at least one
// provider role; clients hold only UserRoleCliente.
//
// Storage model: one element of the JSON array kept under the users key.
// Users are never hard-deleted.
type User struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone,omitempty"`
	Roles             []UserRole      `json:"roles"`
	AvatarURL         string          `json:"avatar_url"`
	Rating            float64         `json:"rating"`
	Reviews           int             `json:"reviews"`
	Location          string          `json:"location"`
	Specialties       []string        `json:"specialties"`
	IsCertified       bool            `json:"is_certified,omitempty"`
	Printers          []Printer       `json:"printers,omitempty"`
	Portfolio         []PortfolioItem `json:"portfolio,omitempty"`
	Shop              []Product       `json:"shop,omitempty"`
	Services          []string        `json:"services,omitempty"`
	Software          []string        `json:"software,omitempty"`
	AvgComplexityTime string          `json:"avg_complexity_time,omitempty"`
	BasePrice         float64         `json:"base_price,omitempty"`
	Bio               string          `json:"bio,omitempty"`
}

// PrimaryRole returns the first role, or Cliente for a user without roles.
func (u User) PrimaryRole() UserRole {
	if len(u.Roles) == 0 {
		return UserRoleCliente
	}
	return u.Roles[0]
}

func (u User) HasRole(role UserRole) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsProvider reports whether the user offers any fabrication service.
func (u User) IsProvider() bool {
	for _, r := range u.Roles {
		if r != UserRoleCliente {
			return true
		}
	}
	return false
}
