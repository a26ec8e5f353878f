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

// eventService implements the EventUsecase interface.
type eventService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// EventServiceParams holds dependencies for eventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEvent publishes an event authored by the authenticated member.
func (srv *eventService) CreateEvent(ctx context.Context, input usecase.CreateEventInput) (*usecase.CreateEventOutput, error) {
	srv.log(ctx).Info("Creating event", slog.Any("mentorID", input.MentorID))

	var createdEvent *entity.Event
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.MemberRepo()
		eventRepo := repoFactory.EventRepo()

		author, err := memberRepo.FindByID(ctx, input.MentorID)
		if err != nil {
			if errors.Is(err, repository.ErrMemberNotFound) {
				return domainerrors.ErrMemberNotFound.WrapMessage("author not found")
			}

			return errors.Wrap(err, "failed to find event author")
		}

		newEvent := &entity.Event{
			MentorID:     author.ID,
			Title:        input.Title,
			Description:  input.Description,
			Content:      input.Content,
			ThumbnailURL: input.ThumbnailURL,
		}

		if err := eventRepo.Create(ctx, newEvent); err != nil {
			return errors.Wrap(err, "failed to create event")
		}

		createdEvent = newEvent

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to execute event creation transaction", slog.Any("mentorID", input.MentorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute event creation transaction")
	}

	srv.log(ctx).Debug("Event created", slog.Any("eventID", createdEvent.ID))

	return &usecase.CreateEventOutput{Event: createdEvent}, nil
}
