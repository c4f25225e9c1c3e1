package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ResetClaims son los claims del token de recuperación de contraseña.
// Solo lleva el email: el token viaja en el enlace enviado por correo.
type ResetClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateResetToken genera un token HS256 firmado con el email embebido,
// válido por expMinutes (el enlace de recuperación caduca con él).
func GenerateResetToken(secret, email, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := ResetClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseResetToken valida el token y devuelve el email embebido.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func ParseResetToken(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &ResetClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*ResetClaims)
	if !ok || !token.Valid || claims.Email == "" {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.Email, nil
}
