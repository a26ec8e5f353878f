package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mentalk/internal/domain/entity"
	domainerrors "mentalk/internal/domain/errors"
	"mentalk/internal/domain/repository"
	mockRepo "mentalk/internal/mocks/repository"
	mockSvc "mentalk/internal/mocks/service"
	"mentalk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	memberRepo   *mockRepo.MockMemberRepository
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	memberRepo := mockRepo.NewMockMemberRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		MemberRepo:   memberRepo,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		memberRepo:   memberRepo,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	memberID := uuid.New()
	account := &entity.LocalAccount{
		ID:             uuid.New(),
		MemberID:       memberID,
		Email:          "user@mentalk.com",
		HashedPassword: "hashed_password",
	}
	member := &entity.Member{
		ID:          memberID,
		Name:        "Test Member",
		PhoneNumber: "01012345678",
		Role:        entity.RoleUser,
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "user@mentalk.com").Return(account, nil)
	fx.hasher.EXPECT().Check("password", "hashed_password").Return(true)
	fx.memberRepo.EXPECT().FindByID(ctx, memberID).Return(member, nil)
	fx.tokenService.EXPECT().GenerateToken(memberID, entity.RoleUser).Return("signed-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "user@mentalk.com",
		Password: "password",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, memberID, output.Member.ID)
}

func TestAuthService_Login_EmailNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "unknown@mentalk.com").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "unknown@mentalk.com",
		Password: "password",
	})

	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrEmailNotFound)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.LocalAccount{
		ID:             uuid.New(),
		MemberID:       uuid.New(),
		Email:          "user@mentalk.com",
		HashedPassword: "hashed_password",
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "user@mentalk.com").Return(account, nil)
	fx.hasher.EXPECT().Check("wrong-password", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "user@mentalk.com",
		Password: "wrong-password",
	})

	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
}

func TestAuthService_Login_TokenCreationError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	memberID := uuid.New()
	account := &entity.LocalAccount{
		MemberID:       memberID,
		Email:          "user@mentalk.com",
		HashedPassword: "hashed_password",
	}
	member := &entity.Member{ID: memberID, Role: entity.RoleUser}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "user@mentalk.com").Return(account, nil)
	fx.hasher.EXPECT().Check("password", "hashed_password").Return(true)
	fx.memberRepo.EXPECT().FindByID(ctx, memberID).Return(member, nil)
	fx.tokenService.EXPECT().
		GenerateToken(memberID, entity.RoleUser).
		Return("", errors.New("signing error"))

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "user@mentalk.com",
		Password: "password",
	})

	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrTokenCreationFailed)
}

func TestAuthService_CheckEmailInUse_Taken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().ExistsByEmail(ctx, "user@mentalk.com").Return(true, nil)

	err := fx.service.CheckEmailInUse(ctx, "user@mentalk.com")
	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)
}

func TestAuthService_CheckEmailInUse_Free(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().ExistsByEmail(ctx, "fresh@mentalk.com").Return(false, nil)

	err := fx.service.CheckEmailInUse(ctx, "fresh@mentalk.com")
	require.NoError(t, err)
}

func TestAuthService_IsEmailExists(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().ExistsByEmail(ctx, "user@mentalk.com").Return(true, nil)

	exists, err := fx.service.IsEmailExists(ctx, "user@mentalk.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAuthService_FindEmailByPhoneNumber_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	memberID := uuid.New()
	member := &entity.Member{ID: memberID, PhoneNumber: "01012345678"}
	account := &entity.LocalAccount{MemberID: memberID, Email: "user@mentalk.com"}

	fx.memberRepo.EXPECT().FindByPhoneNumber(ctx, "01012345678").Return(member, nil)
	fx.accountRepo.EXPECT().FindByMemberID(ctx, memberID).Return(account, nil)

	output, err := fx.service.FindEmailByPhoneNumber(ctx, "01012345678")
	require.NoError(t, err)
	assert.Equal(t, "user@mentalk.com", output.Email)
}

func TestAuthService_FindEmailByPhoneNumber_MemberNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.memberRepo.EXPECT().
		FindByPhoneNumber(ctx, "01000000000").
		Return(nil, repository.ErrMemberNotFound)

	output, err := fx.service.FindEmailByPhoneNumber(ctx, "01000000000")
	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
}

func TestAuthService_FindEmailByPhoneNumber_AccountNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	memberID := uuid.New()
	member := &entity.Member{ID: memberID, PhoneNumber: "01012345678"}

	fx.memberRepo.EXPECT().FindByPhoneNumber(ctx, "01012345678").Return(member, nil)
	fx.accountRepo.EXPECT().
		FindByMemberID(ctx, memberID).
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.FindEmailByPhoneNumber(ctx, "01012345678")
	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.LocalAccount{
		ID:             uuid.New(),
		MemberID:       uuid.New(),
		Email:          "user@mentalk.com",
		HashedPassword: "old_hash",
	}

	fx.hasher.EXPECT().Hash("new-password").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().FindByEmail(ctx, "user@mentalk.com").Return(account, nil)
			mockAccountRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.LocalAccount")).
				Run(func(ctx context.Context, updated *entity.LocalAccount) {
					assert.Equal(t, "new_hash", updated.HashedPassword)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{
		Email:       "user@mentalk.com",
		NewPassword: "new-password",
	})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_AccountNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("new-password").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().
				FindByEmail(ctx, "unknown@mentalk.com").
				Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{
		Email:       "unknown@mentalk.com",
		NewPassword: "new-password",
	})

	require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAuthService_ResetPassword_HashError(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("new-password").Return("", errors.New("bcrypt failure"))

	err := fx.service.ResetPassword(ctx, usecase.ResetPasswordInput{
		Email:       "user@mentalk.com",
		NewPassword: "new-password",
	})

	require.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}
