package mocks

import (
	"context"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	// CreateTokenFn allows test cases to mock the CreateToken behavior
	CreateTokenFn func(ctx context.Context, subject string) (string, error)

	// ParseTokenFn allows test cases to mock the ParseToken behavior
	ParseTokenFn func(ctx context.Context, tokenString string) (string, error)

	// Default values used when functions aren't explicitly defined
	Token    string
	Subject  string
	Err      error
	ParseErr error

	// ParseCalls counts ParseToken invocations.
	ParseCalls int
}

// CreateToken implements the auth.TokenService interface
func (m *MockTokenService) CreateToken(ctx context.Context, subject string) (string, error) {
	if m.CreateTokenFn != nil {
		return m.CreateTokenFn(ctx, subject)
	}
	return m.Token, m.Err
}

// ParseToken implements the auth.TokenService interface
func (m *MockTokenService) ParseToken(ctx context.Context, tokenString string) (string, error) {
	m.ParseCalls++
	if m.ParseTokenFn != nil {
		return m.ParseTokenFn(ctx, tokenString)
	}
	return m.Subject, m.ParseErr
}
