package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica o operador que registra vendas ou dispara rotinas
type Claims struct {
	OperatorName string `json:"name,omitempty"`
	OperatorRole string `json:"role,omitempty"`
	jwt.RegisteredClaims
}
