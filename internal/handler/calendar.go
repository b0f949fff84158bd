package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"contoso.com/officemock/internal/core/port"
)

type CalendarHandler struct {
	calendar port.Calendar
	validate *validator.Validate
}

type CreateEventRequest struct {
	Title     string   `json:"title" validate:"required"`
	Start     string   `json:"start" validate:"required"`
	End       string   `json:"end"`
	Attendees []string `json:"attendees"`
}

func NewCalendarHandler(calendar port.Calendar, validate *validator.Validate) *CalendarHandler {
	return &CalendarHandler{
		calendar: calendar,
		validate: validate,
	}
}

func (h *CalendarHandler) Register(e *echo.Echo) {
	e.GET("/events", h.list)
	e.GET("/events/today", h.today)
	e.GET("/events/:id", h.get)
	e.POST("/events", h.create)
}

func (h *CalendarHandler) list(c echo.Context) error {
	events := h.calendar.ListEvents()
	return c.JSON(http.StatusOK, echo.Map{
		"events": events,
		"count":  len(events),
	})
}

func (h *CalendarHandler) get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	event, err := h.calendar.GetEvent(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, event)
}

func (h *CalendarHandler) today(c echo.Context) error {
	events, date := h.calendar.TodayEvents()
	return c.JSON(http.StatusOK, echo.Map{
		"events": events,
		"date":   date,
		"count":  len(events),
	})
}

func (h *CalendarHandler) create(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		log.WithError(err).Error("Failed to bind request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title and start time are required"})
	}

	event := h.calendar.CreateEvent(req.Title, req.Start, req.End, req.Attendees)
	return c.JSON(http.StatusCreated, event)
}
