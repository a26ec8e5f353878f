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

type sessionServiceFixtures struct {
	service   usecase.SessionUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSessionService(SessionServiceParams{
		TxManager: txManager,
		Logger:    logger,
	})

	return sessionServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestSessionService_CreateSession_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	mentorID := uuid.New()
	mentor := &entity.Member{ID: mentorID, Role: entity.RoleMentor}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMemberRepo := mockRepo.NewMockMemberRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().MemberRepo().Return(mockMemberRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockMemberRepo.EXPECT().FindByID(ctx, mentorID).Return(mentor, nil)

			mockSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.MentoringSession")).
				Run(func(ctx context.Context, session *entity.MentoringSession) {
					assert.Equal(t, mentorID, session.MentorID)
					assert.Equal(t, entity.SessionTypeOnline, session.SessionType)
					session.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.CreateSession(ctx, usecase.CreateSessionInput{
		MentorID:    mentorID,
		SessionType: "ONLINE",
		Title:       "Backend career talk",
		Content:     "How to grow as a backend engineer",
	})

	require.NoError(t, err)
	assert.Equal(t, mentorID, output.Session.MentorID)
}

func TestSessionService_CreateSession_UnknownType(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	output, err := fx.service.CreateSession(ctx, usecase.CreateSessionInput{
		MentorID:    uuid.New(),
		SessionType: "HYBRID",
		Title:       "Backend career talk",
	})

	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSessionService_CreateSession_NotMentor(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	memberID := uuid.New()
	member := &entity.Member{ID: memberID, Role: entity.RoleUser}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMemberRepo := mockRepo.NewMockMemberRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().MemberRepo().Return(mockMemberRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockMemberRepo.EXPECT().FindByID(ctx, memberID).Return(member, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.CreateSession(ctx, usecase.CreateSessionInput{
		MentorID:    memberID,
		SessionType: "OFFLINE",
		Title:       "Backend career talk",
	})

	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSessionService_CreateSession_MentorNotFound(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	mentorID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockMemberRepo := mockRepo.NewMockMemberRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().MemberRepo().Return(mockMemberRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockMemberRepo.EXPECT().
				FindByID(ctx, mentorID).
				Return(nil, repository.ErrMemberNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.CreateSession(ctx, usecase.CreateSessionInput{
		MentorID:    mentorID,
		SessionType: "ONLINE",
		Title:       "Backend career talk",
	})

	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
}
