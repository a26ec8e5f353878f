package impl

import (
	"context"
	"log/slog"

	deliverycontext "mentalk/internal/delivery/context"
	"mentalk/internal/domain/entity"
	domainerrors "mentalk/internal/domain/errors"
	"mentalk/internal/domain/repository"
	"mentalk/internal/domain/service"
	"mentalk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// memberService implements the MemberUsecase interface.
type memberService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// MemberServiceParams holds dependencies for memberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewMemberService is the constructor for memberService.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	return &memberService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates the complete member registration process.
// The member lookup, uniqueness checks and both inserts run in one transaction
// so concurrent signups cannot interleave; the unique indexes on email and
// member_id close any remaining race at the storage layer.
func (srv *memberService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	// Hash outside transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	var registeredMember *entity.Member
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.MemberRepo()
		accountRepo := repoFactory.AccountRepo()

		member, err := srv.findOrCreateMember(ctx, memberRepo, input)
		if err != nil {
			return err
		}

		if err := srv.ensureAccountAvailable(ctx, accountRepo, member.ID, input.Email); err != nil {
			return err
		}

		newAccount := &entity.LocalAccount{
			MemberID:       member.ID,
			Email:          input.Email,
			HashedPassword: hashedPassword,
		}

		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.Wrap(err, "failed to create local account during signup")
		}

		registeredMember = member

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute signup transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("memberID", registeredMember.ID))

	return &usecase.SignupOutput{Member: registeredMember}, nil
}

// findOrCreateMember reuses the member already known by phone number, or
// creates a fresh one with the default USER role.
func (srv *memberService) findOrCreateMember(ctx context.Context, memberRepo repository.MemberRepository, input usecase.SignupInput) (*entity.Member, error) {
	member, err := memberRepo.FindByPhoneNumber(ctx, input.PhoneNumber)
	if err == nil {
		srv.log(ctx).Debug("Reusing member found by phone number", slog.Any("memberID", member.ID))

		return member, nil
	}
	if !errors.Is(err, repository.ErrMemberNotFound) {
		return nil, errors.Wrap(err, "failed to find member by phone number")
	}

	newMember := &entity.Member{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Role:        entity.RoleUser,
	}

	if err := memberRepo.Create(ctx, newMember); err != nil {
		return nil, errors.Wrap(err, "failed to create member during signup")
	}

	return newMember, nil
}

// ensureAccountAvailable rejects a signup when the member already owns a local
// account or the email is taken by another one.
func (srv *memberService) ensureAccountAvailable(ctx context.Context, accountRepo repository.AccountRepository, memberID uuid.UUID, email string) error {
	registered, err := accountRepo.ExistsByMemberID(ctx, memberID)
	if err != nil {
		return errors.Wrap(err, "failed to check account registration")
	}
	if registered {
		return domainerrors.ErrAlreadyRegistered.WrapMessage("member already owns a local account")
	}

	emailTaken, err := accountRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to check email usage")
	}
	if emailTaken {
		return domainerrors.ErrEmailAlreadyInUse.WrapMessage("email already registered")
	}

	return nil
}

// PromoteToMentor upgrades the member's role to MENTOR and issues a new access
// token so the client does not keep acting on a stale USER assertion.
func (srv *memberService) PromoteToMentor(ctx context.Context, memberID uuid.UUID) (*usecase.PromoteOutput, error) {
	srv.log(ctx).Info("Promoting member to mentor", slog.Any("memberID", memberID))

	var promotedMember *entity.Member
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.MemberRepo()

		member, err := memberRepo.FindByID(ctx, memberID)
		if err != nil {
			if errors.Is(err, repository.ErrMemberNotFound) {
				return domainerrors.ErrMemberNotFound.WrapMessage("promotion failed")
			}

			return errors.Wrap(err, "failed to find member for promotion")
		}

		member.PromoteToMentor()

		if err := memberRepo.Update(ctx, member); err != nil {
			return errors.Wrap(err, "failed to update member role")
		}

		promotedMember = member

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute promotion transaction", slog.Any("memberID", memberID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute promotion transaction")
	}

	// Generate the new token outside the transaction.
	accessToken, err := srv.tokenService.GenerateToken(promotedMember.ID, promotedMember.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token after promotion", slog.Any("memberID", memberID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenCreationFailed.WrapMessage("failed to generate access token after promotion")
	}
	srv.log(ctx).Info("Member promoted to mentor", slog.Any("memberID", memberID))

	return &usecase.PromoteOutput{
		AccessToken: accessToken,
		Member:      promotedMember,
	}, nil
}
