package models

import "github.com/golang-jwt/jwt/v5"

// APIClaims is the JWT payload for the operator tier (scan history, cache
// admin). There are no end users; a single operator key gates these routes.
type APIClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}
