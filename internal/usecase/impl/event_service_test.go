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
	"mentalk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventServiceFixtures struct {
	service   usecase.EventUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestEventService(t *testing.T) eventServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewEventService(EventServiceParams{
		TxManager: txManager,
		Logger:    logger,
	})

	return eventServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	mentorID := uuid.New()
	author := &entity.Member{ID: mentorID, Role: entity.RoleMentor}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMemberRepo := mockRepo.NewMockMemberRepository(t)
			mockEventRepo := mockRepo.NewMockEventRepository(t)

			mockFactory.EXPECT().MemberRepo().Return(mockMemberRepo)
			mockFactory.EXPECT().EventRepo().Return(mockEventRepo)

			mockMemberRepo.EXPECT().FindByID(ctx, mentorID).Return(author, nil)

			mockEventRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Event")).
				Run(func(ctx context.Context, event *entity.Event) {
					assert.Equal(t, mentorID, event.MentorID)
					event.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.CreateEvent(ctx, usecase.CreateEventInput{
		MentorID:    mentorID,
		Title:       "Mock interview night",
		Description: "Practice interviews with mentors",
		Content:     "Details and schedule",
	})

	require.NoError(t, err)
	assert.Equal(t, mentorID, output.Event.MentorID)
}

func TestEventService_CreateEvent_AuthorNotFound(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	mentorID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMemberRepo := mockRepo.NewMockMemberRepository(t)
			mockEventRepo := mockRepo.NewMockEventRepository(t)

			mockFactory.EXPECT().MemberRepo().Return(mockMemberRepo)
			mockFactory.EXPECT().EventRepo().Return(mockEventRepo)

			mockMemberRepo.EXPECT().
				FindByID(ctx, mentorID).
				Return(nil, repository.ErrMemberNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.CreateEvent(ctx, usecase.CreateEventInput{
		MentorID: mentorID,
		Title:    "Mock interview night",
	})

	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
}
