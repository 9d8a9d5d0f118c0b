// Package token emite e valida os tokens de sessão da API.
//
// A primeira versão do sistema devolvia "token_<id>_<timestamp>", marcado como
// provisório; aqui o token é um JWT HS256 assinado e com expiração.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclui os claims padrão JWT mais os campos da aplicação.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Nome   string `json:"nome"`
}

// Generate gera um token JWT assinado com userID e nome de exibição.
func Generate(secret, userID, nome, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: userID,
		Nome:   nome,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// Parse valida o token e devolve userID e nome.
// Retorna erro se o token for inválido, expirado ou com assinatura incorreta.
func Parse(secret, tokenString string) (userID, nome string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("token: secret vazio")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	return claims.UserID, claims.Nome, nil
}
