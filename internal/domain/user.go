package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso
const (
	RoleAdmin       = 1
	RoleManager     = 2
	RoleSalesperson = 3
)

// Status do usuário
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

var roleNames = map[int]string{
	RoleAdmin:       "Admin",
	RoleManager:     "Manager",
	RoleSalesperson: "Salesperson",
}

// RoleName retorna o nome do perfil ("" para perfis desconhecidos)
func RoleName(roleID int) string {
	return roleNames[roleID]
}

func IsValidRole(roleID int) bool {
	_, ok := roleNames[roleID]
	return ok
}

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Status       string     `json:"status"`
	RoleID       int        `json:"role_id"`
	Role         string     `json:"role"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u User) IsActive() bool {
	return u.Status == UserStatusActive && !u.Deleted
}

type UpdateUserRequest struct {
	ID     int     `json:"id"`
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Status *string `json:"status"`
	RoleID *int    `json:"role_id"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserStatus string
	UserRoleID int
	jwt.RegisteredClaims
}

// Session é a identidade de quem está consultando os dados
type Session struct {
	UserID   int    `json:"user_id"`
	UserName string `json:"user_name"`
	RoleID   int    `json:"role_id"`
}

// Session monta a sessão a partir das claims do token
func (c *Claims) Session() Session {
	if c == nil {
		return Session{}
	}
	return Session{UserID: c.UserID, UserName: c.UserName, RoleID: c.UserRoleID}
}

func (s Session) IsAdmin() bool {
	return s.RoleID == RoleAdmin
}

func (s Session) IsManager() bool {
	return s.RoleID == RoleManager
}

// CanViewAdvisor indica se a sessão pode ver os dados (metas, painel) do vendedor
func (s Session) CanViewAdvisor(advisor string) bool {
	return s.IsAdmin() || s.IsManager() || s.UserName == advisor
}

// CanEditGoal indica se a sessão pode alterar a meta do vendedor: somente o próprio
func (s Session) CanEditGoal(advisor string) bool {
	return s.UserName != "" && s.UserName == advisor
}
