package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "mentalk/internal/delivery/context"
	"mentalk/internal/delivery/http/response"
	"mentalk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for mentoring-session handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

type createSessionRequest struct {
	SessionType string `json:"sessionType" validate:"required,oneof=ONLINE OFFLINE"`
	Title       string `json:"title" validate:"required,max=255"`
	Content     string `json:"content" validate:"required"`
}

// CreateSession publishes a mentoring session for the authenticated mentor.
// The mentor id comes from the identity context, never from the request body.
func (h *SessionHandler) CreateSession(c echo.Context) error {
	mentorID, ok := deliverycontext.GetMemberID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not authenticated")
	}

	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateSession(c.Request().Context(), usecase.CreateSessionInput{
		MentorID:    mentorID,
		SessionType: req.SessionType,
		Title:       req.Title,
		Content:     req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"sessionId": output.Session.ID.String(),
	}, "Session created successfully")
}
