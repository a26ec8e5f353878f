package handler

import (
	"net/http"
	"testing"

	deliverycontext "mentalk/internal/delivery/context"
	"mentalk/internal/domain/entity"
	domainerrors "mentalk/internal/domain/errors"
	mockuc "mentalk/internal/mocks/usecase"
	"mentalk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemberHandler_Signup(t *testing.T) {
	cfg := newHandlerTestConfig()
	mockUC := mockuc.NewMockMemberUsecase(t)
	h := NewMemberHandler(mockUC, cfg, testLogger())

	memberID := uuid.New()
	mockUC.EXPECT().
		Signup(mock.Anything, usecase.SignupInput{
			Name:        "김민수",
			PhoneNumber: "01012345678",
			Email:       "user@mentalk.com",
			Password:    "password",
		}).
		Return(&usecase.SignupOutput{Member: &entity.Member{
			ID:          memberID,
			Name:        "김민수",
			PhoneNumber: "01012345678",
			Role:        entity.RoleUser,
		}}, nil).
		Once()

	c, rec := newJSONContext(http.MethodPost, "/api/members",
		`{"name":"김민수","phoneNumber":"01012345678","email":"user@mentalk.com","password":"password"}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), memberID.String())
	assert.Contains(t, rec.Body.String(), `"role":"USER"`)
	// The hashed password must never leak into the response.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestMemberHandler_Signup_MissingFieldsFailValidation(t *testing.T) {
	cfg := newHandlerTestConfig()
	h := NewMemberHandler(mockuc.NewMockMemberUsecase(t), cfg, testLogger())

	c, _ := newJSONContext(http.MethodPost, "/api/members",
		`{"name":"김민수","email":"user@mentalk.com"}`)

	err := h.Signup(c)
	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMemberHandler_PromoteToMentor_ReissuesCookie(t *testing.T) {
	cfg := newHandlerTestConfig()
	mockUC := mockuc.NewMockMemberUsecase(t)
	h := NewMemberHandler(mockUC, cfg, testLogger())

	memberID := uuid.New()
	mockUC.EXPECT().
		PromoteToMentor(mock.Anything, memberID).
		Return(&usecase.PromoteOutput{
			AccessToken: "mentor-token",
			Member:      &entity.Member{ID: memberID, Role: entity.RoleMentor},
		}, nil).
		Once()

	c, rec := newJSONContext(http.MethodPut, "/api/members/role/mentor", "")
	deliverycontext.SetIdentity(c, memberID, entity.RoleUser)

	require.NoError(t, h.PromoteToMentor(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"MENTOR"`)

	cookie := findCookie(rec, cfg.Cookie.Name)
	require.NotNil(t, cookie)
	assert.Equal(t, "mentor-token", cookie.Value)
}

func TestMemberHandler_PromoteToMentor_Anonymous(t *testing.T) {
	cfg := newHandlerTestConfig()
	h := NewMemberHandler(mockuc.NewMockMemberUsecase(t), cfg, testLogger())

	c, rec := newJSONContext(http.MethodPut, "/api/members/role/mentor", "")

	require.NoError(t, h.PromoteToMentor(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMemberHandler_PromoteToMentor_MemberNotFound(t *testing.T) {
	cfg := newHandlerTestConfig()
	mockUC := mockuc.NewMockMemberUsecase(t)
	h := NewMemberHandler(mockUC, cfg, testLogger())

	memberID := uuid.New()
	mockUC.EXPECT().
		PromoteToMentor(mock.Anything, memberID).
		Return(nil, domainerrors.ErrMemberNotFound).
		Once()

	c, _ := newJSONContext(http.MethodPut, "/api/members/role/mentor", "")
	deliverycontext.SetIdentity(c, memberID, entity.RoleUser)

	err := h.PromoteToMentor(c)
	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
}
