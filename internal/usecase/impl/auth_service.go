// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "mentalk/internal/delivery/context"
	domainerrors "mentalk/internal/domain/errors"
	"mentalk/internal/domain/repository"
	"mentalk/internal/domain/service"
	"mentalk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	memberRepo   repository.MemberRepository
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	MemberRepo   repository.MemberRepository
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		memberRepo:   params.MemberRepo,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckEmailInUse returns ErrEmailAlreadyInUse when the email is already registered.
func (srv *authService) CheckEmailInUse(ctx context.Context, email string) error {
	// Single query operation - use direct repository instance
	exists, err := srv.accountRepo.ExistsByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Error("Failed to check email usage", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to check email usage")
	}

	if exists {
		return domainerrors.ErrEmailAlreadyInUse
	}

	return nil
}

// IsEmailExists reports whether the email belongs to a registered account.
func (srv *authService) IsEmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := srv.accountRepo.ExistsByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Error("Failed to check email existence", slog.String("email", email), slog.Any("error", err))

		return false, errors.Wrap(err, "failed to check email existence")
	}

	return exists, nil
}

// Login orchestrates the member login process.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting member login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrEmailNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.HashedPassword) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidPassword))

		return nil, domainerrors.ErrInvalidPassword.WrapMessage("login failed")
	}

	member, err := srv.memberRepo.FindByID(ctx, account.MemberID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find member for login")
	}

	accessToken, err := srv.tokenService.GenerateToken(member.ID, member.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token during login", slog.Any("memberID", member.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenCreationFailed.WrapMessage("failed to generate access token")
	}
	srv.log(ctx).Debug("Member logged in successfully", slog.Any("memberID", member.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		Member:      member,
	}, nil
}

// FindEmailByPhoneNumber recovers the login email for the member holding the phone number.
func (srv *authService) FindEmailByPhoneNumber(ctx context.Context, phoneNumber string) (*usecase.FindEmailOutput, error) {
	srv.log(ctx).Debug("Finding email by phone number")

	member, err := srv.memberRepo.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound.WrapMessage("no member for phone number")
		}

		return nil, errors.Wrap(err, "failed to find member by phone number")
	}

	account, err := srv.accountRepo.FindByMemberID(ctx, member.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("member has no local account")
		}

		return nil, errors.Wrap(err, "failed to find account by member ID")
	}

	return &usecase.FindEmailOutput{Email: account.Email}, nil
}

// ResetPassword replaces the stored password hash for the account with the given email.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Starting password reset", slog.String("email", input.Email))

	// Hash outside transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during reset", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("password reset failed")
			}

			return errors.Wrap(err, "failed to find account for password reset")
		}

		account.ChangePassword(hashedPassword)

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account password")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute password reset transaction", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}
	srv.log(ctx).Info("Password reset completed", slog.String("email", input.Email))

	return nil
}
