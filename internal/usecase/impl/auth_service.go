package impl

import (
	"context"
	"log/slog"

	domainerrors "canino/internal/domain/errors"
	"canino/internal/domain/repository"
	"canino/internal/domain/service"
	"canino/internal/usecase"

	"github.com/pkg/errors"
)

type authService struct {
	logger       *slog.Logger
	profileRepo  repository.ProfileRepository
	tokenService service.TokenService
	hasher       service.PasswordHasher
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	logger *slog.Logger,
	profileRepo repository.ProfileRepository,
	tokenService service.TokenService,
	hasher service.PasswordHasher,
) usecase.AuthUsecase {
	return &authService{
		logger:       logger,
		profileRepo:  profileRepo,
		tokenService: tokenService,
		hasher:       hasher,
	}
}

// Login verifies credentials and issues a token pair. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	profile, err := s.profileRepo.FindProfileByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	if err := s.hasher.Compare(profile.PasswordHash, input.Password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !profile.Active {
		return nil, domainerrors.ErrAccountInactive
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(profile.ID, []string{string(profile.Role)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	s.logger.Info("Profile logged in",
		slog.String("profile_id", profile.ID.String()),
		slog.String("role", string(profile.Role)),
	)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profile,
	}, nil
}
