package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mentalk/config"
	deliverycontext "mentalk/internal/delivery/context"
	"mentalk/internal/delivery/http/validator"
	"mentalk/internal/domain/entity"
	domainerrors "mentalk/internal/domain/errors"
	mockuc "mentalk/internal/mocks/usecase"
	"mentalk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHandlerTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cookie = &config.CookieConfig{
		Name:   "access_token",
		Path:   "/",
		MaxAge: 24 * time.Hour,
	}

	return cfg
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	res := rec.Result()
	defer res.Body.Close()

	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	cfg := newHandlerTestConfig()
	mockUC := mockuc.NewMockAuthUsecase(t)
	h := NewAuthHandler(mockUC, cfg, testLogger())

	member := &entity.Member{ID: uuid.New(), Name: "김민수", Role: entity.RoleUser}
	mockUC.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "user@mentalk.com", Password: "password"}).
		Return(&usecase.LoginOutput{AccessToken: "issued-token", Member: member}, nil).
		Once()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"email":"user@mentalk.com","password":"password"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"USER"`)

	cookie := findCookie(rec, cfg.Cookie.Name)
	require.NotNil(t, cookie)
	assert.Equal(t, "issued-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthHandler_Login_InvalidEmailFailsValidation(t *testing.T) {
	cfg := newHandlerTestConfig()
	mockUC := mockuc.NewMockAuthUsecase(t)
	h := NewAuthHandler(mockUC, cfg, testLogger())

	c, _ := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"email":"not-an-email","password":"password"}`)

	err := h.Login(c)
	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Login_UsecaseErrorPropagates(t *testing.T) {
	cfg := newHandlerTestConfig()
	mockUC := mockuc.NewMockAuthUsecase(t)
	h := NewAuthHandler(mockUC, cfg, testLogger())

	mockUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidPassword).
		Once()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login",
		`{"email":"user@mentalk.com","password":"wrong-password"}`)

	err := h.Login(c)
	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
	assert.Nil(t, findCookie(rec, cfg.Cookie.Name))
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	cfg := newHandlerTestConfig()
	h := NewAuthHandler(mockuc.NewMockAuthUsecase(t), cfg, testLogger())

	c, rec := newJSONContext(http.MethodPost, "/api/auth/logout", "")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(rec, cfg.Cookie.Name)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_CheckEmailInUse_Available(t *testing.T) {
	cfg := newHandlerTestConfig()
	mockUC := mockuc.NewMockAuthUsecase(t)
	h := NewAuthHandler(mockUC, cfg, testLogger())

	mockUC.EXPECT().CheckEmailInUse(mock.Anything, "new@mentalk.com").Return(nil).Once()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/email/check",
		`{"email":"new@mentalk.com"}`)

	require.NoError(t, h.CheckEmailInUse(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_CheckEmailInUse_Taken(t *testing.T) {
	cfg := newHandlerTestConfig()
	mockUC := mockuc.NewMockAuthUsecase(t)
	h := NewAuthHandler(mockUC, cfg, testLogger())

	mockUC.EXPECT().
		CheckEmailInUse(mock.Anything, "user@mentalk.com").
		Return(domainerrors.ErrEmailAlreadyInUse).
		Once()

	c, _ := newJSONContext(http.MethodPost, "/api/auth/email/check",
		`{"email":"user@mentalk.com"}`)

	err := h.CheckEmailInUse(c)
	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)
}

func TestAuthHandler_EmailExists(t *testing.T) {
	cfg := newHandlerTestConfig()
	mockUC := mockuc.NewMockAuthUsecase(t)
	h := NewAuthHandler(mockUC, cfg, testLogger())

	mockUC.EXPECT().IsEmailExists(mock.Anything, "user@mentalk.com").Return(true, nil).Once()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/email/exists",
		`{"email":"user@mentalk.com"}`)

	require.NoError(t, h.EmailExists(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"exists":true`)
}

func TestAuthHandler_FindEmail(t *testing.T) {
	cfg := newHandlerTestConfig()
	mockUC := mockuc.NewMockAuthUsecase(t)
	h := NewAuthHandler(mockUC, cfg, testLogger())

	mockUC.EXPECT().
		FindEmailByPhoneNumber(mock.Anything, "01012345678").
		Return(&usecase.FindEmailOutput{Email: "user@mentalk.com"}, nil).
		Once()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/email/find",
		`{"phoneNumber":"01012345678"}`)

	require.NoError(t, h.FindEmail(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"user@mentalk.com"`)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	cfg := newHandlerTestConfig()
	mockUC := mockuc.NewMockAuthUsecase(t)
	h := NewAuthHandler(mockUC, cfg, testLogger())

	mockUC.EXPECT().
		ResetPassword(mock.Anything, usecase.ResetPasswordInput{
			Email:       "user@mentalk.com",
			NewPassword: "new-password",
		}).
		Return(nil).
		Once()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/password/reset",
		`{"email":"user@mentalk.com","newPassword":"new-password"}`)

	require.NoError(t, h.ResetPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_CheckAuth(t *testing.T) {
	cfg := newHandlerTestConfig()
	h := NewAuthHandler(mockuc.NewMockAuthUsecase(t), cfg, testLogger())

	c, rec := newJSONContext(http.MethodGet, "/api/auth/check", "")
	deliverycontext.SetIdentity(c, uuid.New(), entity.RoleMentor)

	require.NoError(t, h.CheckAuth(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"MENTOR"`)
}

func TestAuthHandler_CheckAuth_Anonymous(t *testing.T) {
	cfg := newHandlerTestConfig()
	h := NewAuthHandler(mockuc.NewMockAuthUsecase(t), cfg, testLogger())

	c, rec := newJSONContext(http.MethodGet, "/api/auth/check", "")

	require.NoError(t, h.CheckAuth(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
