package postgres

import (
	"context"

	"mentalk/internal/domain/entity"
	domainerrors "mentalk/internal/domain/errors"
	"mentalk/internal/domain/repository"
	"mentalk/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Create persists a new mentoring session.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.MentoringSession) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMemberNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDataIntegrityViolation.WrapMessage("missing required session information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create mentoring session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func fromSessionDomain(data *entity.MentoringSession) *model.MentoringSessionModel {
	if data == nil {
		return nil
	}

	return &model.MentoringSessionModel{
		ID:          data.ID,
		MentorID:    data.MentorID,
		SessionType: data.SessionType.String(),
		Title:       data.Title,
		Content:     data.Content,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
