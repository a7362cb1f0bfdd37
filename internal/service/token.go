package service

import (
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/raksika249/ecom-auth-service/internal/domain"
)

// Claims assert who logged in and what they may do, nothing else.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.StandardClaims
}

func (s *AuthService) generateToken(user domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: user.Email,
		Role:  user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(s.cfg.TokenTTL).Unix(),
			IssuedAt:  now.Unix(),
		},
	})
	return token.SignedString([]byte(s.cfg.Secret))
}

// ParseToken verifies the signature and expiry and returns the claims.
func (s *AuthService) ParseToken(tokenString string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return Claims{}, err
	}
	if !token.Valid {
		return Claims{}, jwt.ErrSignatureInvalid
	}
	return claims, nil
}
