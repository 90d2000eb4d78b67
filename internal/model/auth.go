package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are JWT claims binding a client to an intake session
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionResponse is returned when a session is started or reset
type SessionResponse struct {
	Status       string `json:"status"`
	SessionID    string `json:"session_id"`
	SessionToken string `json:"session_token"`
}
