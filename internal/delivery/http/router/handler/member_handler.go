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

// MemberHandler holds dependencies for member-related handlers.
type MemberHandler struct {
	uc     usecase.MemberUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewMemberHandler is the constructor for MemberHandler, injected by Fx.
func NewMemberHandler(uc usecase.MemberUsecase, cfg *config.Config, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

type signupRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=20"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
}

// Signup handles the member registration request.
func (h *MemberHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Signup(c.Request().Context(), usecase.SignupInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Do not return sensitive data in the response.
	return response.Success(c, http.StatusCreated, map[string]string{
		"memberId": output.Member.ID.String(),
		"name":     output.Member.Name,
		"role":     output.Member.Role.String(),
	}, "Member registered successfully")
}

// PromoteToMentor upgrades the authenticated member to the MENTOR role and
// re-issues the access token cookie so the new role takes effect immediately.
func (h *MemberHandler) PromoteToMentor(c echo.Context) error {
	memberID, ok := deliverycontext.GetMemberID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not authenticated")
	}

	output, err := h.uc.PromoteToMentor(c.Request().Context(), memberID)
	if err != nil {
		return errors.WithStack(err)
	}

	SetAccessTokenCookie(c, h.cfg, output.AccessToken)

	return response.Success(c, http.StatusOK, map[string]string{
		"role": output.Member.Role.String(),
	}, "Promoted to mentor")
}
