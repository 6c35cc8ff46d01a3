package domain

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleOwner      = 3
)

// Claims são as informações do usuário carregadas no token de acesso
type Claims struct {
	UserID          int      `json:"user_id"`
	UserName        string   `json:"user_name"`
	UserEmail       string   `json:"user_email"`
	UserRoleID      int      `json:"user_role_id"`
	UserRestaurants []string `json:"user_restaurants"`
	jwt.RegisteredClaims
}

// CanAccessRestaurant indica se o usuário pode ler os dados do restaurante.
// Administradores e supervisores acessam todos; donos apenas os vinculados.
func (c *Claims) CanAccessRestaurant(restaurantID string) bool {
	if c == nil {
		return false
	}
	if c.UserRoleID == RoleAdmin || c.UserRoleID == RoleSupervisor {
		return true
	}
	return slices.Contains(c.UserRestaurants, restaurantID)
}
