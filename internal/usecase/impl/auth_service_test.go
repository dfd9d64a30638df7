package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"canino/internal/domain/entity"
	domainerrors "canino/internal/domain/errors"
	"canino/internal/domain/repository"
	mockRepo "canino/internal/mocks/repository"
	mockSvc "canino/internal/mocks/service"
	"canino/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) (
	usecase.AuthUsecase,
	*mockRepo.MockProfileRepository,
	*mockSvc.MockTokenService,
	*mockSvc.MockPasswordHasher,
) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewAuthService(logger, profileRepo, tokenService, hasher)

	return svc, profileRepo, tokenService, hasher
}

func testProfile(role entity.Role) *entity.Profile {
	return &entity.Profile{
		ID:           uuid.New(),
		Email:        "maria@clubcanino.co",
		FullName:     "María García",
		Role:         role,
		PasswordHash: "$2a$10$hash",
		Active:       true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, profileRepo, tokenService, hasher := createTestAuthService(t)

	ctx := context.Background()
	profile := testProfile(entity.RoleParent)

	profileRepo.EXPECT().FindProfileByEmail(ctx, profile.Email).Return(profile, nil)
	hasher.EXPECT().Compare(profile.PasswordHash, "secret123").Return(nil)
	tokenService.EXPECT().GenerateTokens(profile.ID, []string{"parent"}).Return("access-token", "refresh-token", nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: profile.Email, Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, profile, output.Profile)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, profileRepo, _, _ := createTestAuthService(t)

	ctx := context.Background()

	profileRepo.EXPECT().FindProfileByEmail(ctx, "nadie@clubcanino.co").Return(nil, repository.ErrProfileNotFound)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "nadie@clubcanino.co", Password: "secret123"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, profileRepo, _, hasher := createTestAuthService(t)

	ctx := context.Background()
	profile := testProfile(entity.RoleDriver)

	profileRepo.EXPECT().FindProfileByEmail(ctx, profile.Email).Return(profile, nil)
	hasher.EXPECT().Compare(profile.PasswordHash, "wrong").Return(errors.New("hash mismatch"))

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: profile.Email, Password: "wrong"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	svc, profileRepo, _, hasher := createTestAuthService(t)

	ctx := context.Background()
	profile := testProfile(entity.RoleParent)
	profile.Active = false

	profileRepo.EXPECT().FindProfileByEmail(ctx, profile.Email).Return(profile, nil)
	hasher.EXPECT().Compare(profile.PasswordHash, "secret123").Return(nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: profile.Email, Password: "secret123"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
}
