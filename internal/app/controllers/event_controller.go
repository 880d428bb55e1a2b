package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/campushub/internal/app/models/dto"
	"github.com/emrek/campushub/internal/app/services"
	"github.com/emrek/campushub/internal/middleware"
)

// EventController handles event related operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// CreateEvent handles new event creation
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	event, err := c.eventService.CreateEvent(ctx.Request.Context(), &req, currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(event, "Event created successfully"))
}

// GetUpcomingEvents handles retrieving events dated now or later
func (c *EventController) GetUpcomingEvents(ctx *gin.Context) {
	events, err := c.eventService.UpcomingEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(events, ""))
}

// GetPastEvents handles retrieving events already held
func (c *EventController) GetPastEvents(ctx *gin.Context) {
	events, err := c.eventService.PastEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(events, ""))
}

// GetMyEvents handles retrieving the user's RSVP'd events
func (c *EventController) GetMyEvents(ctx *gin.Context) {
	events, err := c.eventService.EventsForUser(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(events, ""))
}

// GetEventByID handles retrieving a specific event
func (c *EventController) GetEventByID(ctx *gin.Context) {
	event, err := c.eventService.GetEvent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(event, ""))
}

// RSVP handles RSVP registration
func (c *EventController) RSVP(ctx *gin.Context) {
	event, err := c.eventService.RSVP(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(event, "RSVP confirmed"))
}

// CancelRSVP handles RSVP cancellation
func (c *EventController) CancelRSVP(ctx *gin.Context) {
	event, err := c.eventService.CancelRSVP(ctx.Request.Context(), ctx.Param("id"), currentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(event, "RSVP cancelled"))
}
