// Package auth guards the API behind a single operator password.
package auth

import (
	"errors"
	"time"
)

const OperatorName = "operator"

var (
	ErrAuthDisabled       = errors.New("authentication is not enabled")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	hash   string
	secret string
	ttl    time.Duration
}

// NewService hashes the operator password once. An empty password disables
// login and every route stays open.
func NewService(password, secret string, ttl time.Duration) (*Service, error) {
	s := &Service{secret: secret, ttl: ttl}
	if password == "" {
		return s, nil
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	s.hash = hash
	return s, nil
}

func (s *Service) Enabled() bool {
	return s != nil && s.hash != ""
}

func (s *Service) Secret() string {
	return s.secret
}

type Token struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Service) Login(password string) (Token, error) {
	if !s.Enabled() {
		return Token{}, ErrAuthDisabled
	}
	if err := CheckPassword(s.hash, password); err != nil {
		return Token{}, ErrInvalidCredentials
	}
	token, err := GenerateToken(s.secret, Claims{Operator: OperatorName}, s.ttl)
	if err != nil {
		return Token{}, err
	}
	return Token{Token: token, ExpiresAt: time.Now().Add(s.ttl).UTC()}, nil
}

// Verify turns a bearer token into the caller it was issued to.
func (s *Service) Verify(token string) (UserContext, error) {
	claims, err := ParseToken(s.secret, token)
	if err != nil {
		return UserContext{}, err
	}
	user := UserContext{Operator: claims.Operator}
	if claims.ExpiresAt != nil {
		user.ExpiresAt = claims.ExpiresAt.Time
	}
	return user, nil
}
