package domain

import "github.com/golang-jwt/jwt/v5"

// Claims é o conteúdo do JWT que autoriza o uso da API.
type Claims struct {
	ClientID string `json:"client_id"`
	RoleID   int    `json:"role_id"`
	jwt.RegisteredClaims
}
