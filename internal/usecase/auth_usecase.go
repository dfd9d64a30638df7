package usecase

import (
	"context"

	"canino/internal/domain/entity"
)

// LoginInput carries portal login credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued token pair and the authenticated profile.
type LoginOutput struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Profile      *entity.Profile `json:"profile"`
}

// AuthUsecase defines portal authentication. Accounts are provisioned by
// the school admin; there is no registration flow.
type AuthUsecase interface {
	// Login verifies credentials and issues a token pair. Unknown emails
	// and wrong passwords both fail with invalid-credentials to avoid
	// leaking which emails exist; a correct password on a deactivated
	// account fails with account-inactive.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
