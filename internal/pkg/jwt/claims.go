package jwt

import (
	"context"
	"errors"
	"fmt"

	"github.com/evidencija/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

var ErrNoCaller = errors.New("no authenticated caller in context")

// Caller is the identity carried by a verified access token.
type Caller struct {
	UserID string
	Email  string
	Role   user.Role
}

// CallerFromContext extracts the authenticated caller from the request
// context populated by the jwtauth verifier middleware.
func CallerFromContext(ctx context.Context) (Caller, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Caller{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Caller{}, ErrNoCaller
	}

	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)

	return Caller{
		UserID: userID,
		Email:  email,
		Role:   user.Role(roleStr),
	}, nil
}
