package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "mentalk/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleHTTPError_AppError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(domainerrors.ErrEmailAlreadyInUse, c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "ALREADY_EMAIL_IN_USE")
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	err := errors.WithStack(domainerrors.ErrUnauthorized.WrapMessage("authentication required"))
	m.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestHandleHTTPError_ForbiddenIsDistinctFromUnauthorized(t *testing.T) {
	m := newTestErrorMiddleware()

	c, rec := newErrorTestContext()
	m.HandleHTTPError(domainerrors.ErrForbidden.WrapMessage("require 'MENTOR' role"), c)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")

	c, rec = newErrorTestContext()
	m.HandleHTTPError(domainerrors.ErrUnauthorized, c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleHTTPError_AppErrorIsLoggedWithCode(t *testing.T) {
	var logBuf bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logBuf, nil)))
	c, _ := newErrorTestContext()

	m.HandleHTTPError(domainerrors.ErrInvalidPassword.WrapMessage("login failed"), c)

	logged := logBuf.String()
	assert.Contains(t, logged, "INVALID_PASSWORD")
	assert.Contains(t, logged, "status=401")
	assert.Contains(t, logged, "method=GET")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestHandleHTTPError_UnknownErrorIsInternal(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.New("database connection lost"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
