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

// EventHandler holds dependencies for event handlers.
type EventHandler struct {
	uc     usecase.EventUsecase
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		uc:     uc,
		logger: logger,
	}
}

type createEventRequest struct {
	Title        string `json:"title" validate:"required,max=255"`
	Description  string `json:"description" validate:"required,max=500"`
	Content      string `json:"content" validate:"required"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url,max=512"`
}

// CreateEvent publishes an event for the authenticated member.
// The author id comes from the identity context, never from the request body.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	mentorID, ok := deliverycontext.GetMemberID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not authenticated")
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateEvent(c.Request().Context(), usecase.CreateEventInput{
		MentorID:     mentorID,
		Title:        req.Title,
		Description:  req.Description,
		Content:      req.Content,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"eventId": output.Event.ID.String(),
	}, "Event created successfully")
}
