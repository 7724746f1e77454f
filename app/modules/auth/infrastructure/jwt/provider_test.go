package authjwt

import (
	"errors"
	"os"
	"testing"
	"time"

	authdomain "github.com/Black-And-White-Club/fantasy-league/app/modules/auth/domain"
)

func TestProvider_GenerateAndValidateToken(t *testing.T) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "test-secret-at-least-32-chars-long!!"
	}
	p := NewProvider(secret, "fantasy-league")

	tests := []struct {
		name        string
		userID      string
		role        authdomain.Role
		ttl         time.Duration
		token       string
		validator   Provider
		expectedErr error
		verify      func(t *testing.T, validated *authdomain.Claims)
	}{
		{
			name:   "success",
			userID: "user-123",
			role:   authdomain.RoleAdmin,
			ttl:    1 * time.Hour,
			verify: func(t *testing.T, validated *authdomain.Claims) {
				if validated.UserID != "user-123" {
					t.Errorf("expected userID user-123, got %s", validated.UserID)
				}
				if validated.Role != authdomain.RoleAdmin {
					t.Errorf("expected role admin, got %s", validated.Role)
				}
				if validated.TokenID == "" {
					t.Error("expected a token id")
				}
			},
		},
		{
			name:        "expired token",
			userID:      "user-123",
			role:        authdomain.RoleEditor,
			ttl:         -1 * time.Hour,
			expectedErr: ErrExpiredToken,
		},
		{
			name:        "invalid signature",
			userID:      "user-123",
			role:        authdomain.RoleViewer,
			ttl:         1 * time.Hour,
			validator:   NewProvider("wrong-secret", "fantasy-league"),
			expectedErr: ErrInvalidSignature,
		},
		{
			name:        "wrong issuer",
			userID:      "user-123",
			role:        authdomain.RoleViewer,
			ttl:         1 * time.Hour,
			validator:   NewProvider(secret, "someone-else"),
			expectedErr: ErrInvalidToken,
		},
		{
			name:        "malformed token",
			token:       "not.a.jwt",
			expectedErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := tt.token
			if token == "" {
				var err error
				token, err = p.GenerateToken(tt.userID, tt.role, tt.ttl)
				if err != nil {
					t.Fatalf("failed to generate token: %v", err)
				}
			}

			validateTarget := p
			if tt.validator != nil {
				validateTarget = tt.validator
			}

			validatedClaims, err := validateTarget.ValidateToken(token)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.verify != nil {
				tt.verify(t, validatedClaims)
			}
		})
	}
}

func TestProvider_GenerateTokenRejectsUnknownRole(t *testing.T) {
	p := NewProvider("secret", "")
	if _, err := p.GenerateToken("u1", authdomain.Role("owner"), time.Hour); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
