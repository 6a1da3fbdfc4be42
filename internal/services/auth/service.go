// Package auth gates the operator tier. There are no end users: a single
// operator API key (stored bcrypt-hashed in the environment) is exchanged
// for a short-lived JWT that the protected routes require.
package auth

import (
	"errors"
	"time"

	"solsight/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidAPIKey = errors.New("invalid api key")
	ErrInvalidToken  = errors.New("invalid token")
)

type Service interface {
	IssueToken(apiKey string) (string, error)
	ParseToken(tokenString string) (*models.APIClaims, error)
}

type service struct {
	keyHash  []byte
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates an auth service. keyHash is the bcrypt hash of the
// operator API key; secret signs issued tokens.
func NewService(keyHash, secret string, tokenTTL time.Duration) Service {
	return &service{
		keyHash:  []byte(keyHash),
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

func (s *service) IssueToken(apiKey string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.keyHash, []byte(apiKey)); err != nil {
		return "", ErrInvalidAPIKey
	}

	now := time.Now()
	claims := models.APIClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "solsight-api",
			Subject:   "operator",
		},
		Role: "operator",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *service) ParseToken(tokenString string) (*models.APIClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.APIClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*models.APIClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
