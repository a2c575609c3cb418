package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"siwarga-http-service/internal/infrastructure/config"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// RegistrarClaims are the JWT claims carried by a signed-in registrar
type RegistrarClaims struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type InterfaceJWTService interface {
	// 1. Sign a token for a registrar account
	GenerateToken(admin *RegistrarIdentity) (string, error)
	// 2. Parse and verify a token
	ParseToken(tokenString string) (*RegistrarClaims, error)
}

// RegistrarIdentity is the subset of an admin account embedded in tokens
type RegistrarIdentity struct {
	ID       string
	Username string
	Role     string
}

type JWTService struct {
	Config *config.Config
}

func NewJWTService(c *config.Config) InterfaceJWTService {
	return &JWTService{Config: c}
}

func (s *JWTService) GenerateToken(admin *RegistrarIdentity) (string, error) {
	now := time.Now()
	claims := RegistrarClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "siwarga-http-service",
			Subject:   admin.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.Config.JWTSecretKey))
}

func (s *JWTService) ParseToken(tokenString string) (*RegistrarClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &RegistrarClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.Config.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*RegistrarClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
