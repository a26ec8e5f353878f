// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"mentalk/config"
	deliverycontext "mentalk/internal/delivery/context"
	"mentalk/internal/delivery/http/response"
	"mentalk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for credential-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type findEmailRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// Login handles the member login request and issues the access token cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	SetAccessTokenCookie(c, h.cfg, output.AccessToken)

	return response.Success(c, http.StatusOK, map[string]string{
		"role": output.Member.Role.String(),
	}, "Login successful")
}

// Logout clears the access token cookie. The token itself stays valid until
// expiry; logout is purely client-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	ClearAccessTokenCookie(c, h.cfg)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// CheckEmailInUse rejects the email when a local account already claims it.
func (h *AuthHandler) CheckEmailInUse(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.CheckEmailInUse(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email is available")
}

// EmailExists reports whether the email belongs to a registered account.
func (h *AuthHandler) EmailExists(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	exists, err := h.uc.IsEmailExists(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"exists": exists}, "")
}

// FindEmail recovers the login email for the member holding the phone number.
func (h *AuthHandler) FindEmail(c echo.Context) error {
	var req findEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid phone number input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.FindEmailByPhoneNumber(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"email": output.Email}, "")
}

// ResetPassword replaces the stored password hash for the account.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Email:       req.Email,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successful")
}

// CheckAuth reports the role of the current identity. Anonymous requests get 401.
func (h *AuthHandler) CheckAuth(c echo.Context) error {
	role, ok := deliverycontext.GetRole(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not authenticated")
	}

	return response.Success(c, http.StatusOK, map[string]string{"role": role.String()}, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
