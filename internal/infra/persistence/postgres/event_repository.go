package postgres

import (
	"context"

	"mentalk/internal/domain/entity"
	domainerrors "mentalk/internal/domain/errors"
	"mentalk/internal/domain/repository"
	"mentalk/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// Create persists a new event.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMemberNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDataIntegrityViolation.WrapMessage("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:           data.ID,
		MentorID:     data.MentorID,
		Title:        data.Title,
		Description:  data.Description,
		Content:      data.Content,
		ThumbnailURL: data.ThumbnailURL,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
