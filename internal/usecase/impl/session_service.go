package impl

import (
	"context"
	"log/slog"

	deliverycontext "mentalk/internal/delivery/context"
	"mentalk/internal/domain/entity"
	domainerrors "mentalk/internal/domain/errors"
	"mentalk/internal/domain/repository"
	"mentalk/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSession publishes a mentoring session hosted by the authenticated mentor.
// The mentor's role is re-checked against storage so a stale token cannot
// publish after a role change.
func (srv *sessionService) CreateSession(ctx context.Context, input usecase.CreateSessionInput) (*usecase.CreateSessionOutput, error) {
	srv.log(ctx).Info("Creating mentoring session", slog.Any("mentorID", input.MentorID))

	sessionType := entity.SessionType(input.SessionType)
	if !sessionType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown session type")
	}

	var createdSession *entity.MentoringSession
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.MemberRepo()
		sessionRepo := repoFactory.SessionRepo()

		mentor, err := memberRepo.FindByID(ctx, input.MentorID)
		if err != nil {
			if errors.Is(err, repository.ErrMemberNotFound) {
				return domainerrors.ErrMemberNotFound.WrapMessage("mentor not found")
			}

			return errors.Wrap(err, "failed to find mentor")
		}

		if mentor.Role != entity.RoleMentor {
			return domainerrors.ErrForbidden.WrapMessage("member is not a mentor")
		}

		newSession := &entity.MentoringSession{
			MentorID:    mentor.ID,
			SessionType: sessionType,
			Title:       input.Title,
			Content:     input.Content,
		}

		if err := sessionRepo.Create(ctx, newSession); err != nil {
			return errors.Wrap(err, "failed to create mentoring session")
		}

		createdSession = newSession

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute session creation transaction", slog.Any("mentorID", input.MentorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute session creation transaction")
	}

	srv.log(ctx).Debug("Mentoring session created", slog.Any("sessionID", createdSession.ID))

	return &usecase.CreateSessionOutput{Session: createdSession}, nil
}
