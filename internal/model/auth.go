package model

import "github.com/golang-jwt/jwt/v5"

// TeamClaims are JWT claims for team session tokens
type TeamClaims struct {
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName"`
	jwt.RegisteredClaims
}
