package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"contoso.com/officemock/internal/core/domain"
	"contoso.com/officemock/internal/core/port"
)

type TeamsHandler struct {
	teams    port.Teams
	validate *validator.Validate
}

type PostMessageRequest struct {
	Message string `json:"message" validate:"required"`
	From    string `json:"from"`
}

func NewTeamsHandler(teams port.Teams, validate *validator.Validate) *TeamsHandler {
	return &TeamsHandler{
		teams:    teams,
		validate: validate,
	}
}

func (h *TeamsHandler) Register(e *echo.Echo) {
	e.GET("/teams", h.list)
	e.GET("/teams/:id", h.get)
	e.GET("/teams/:id/messages", h.messages)
	e.POST("/teams/:id/messages", h.postMessage)
	e.GET("/meetings", h.meetings)
	e.GET("/stats", h.stats)
}

func (h *TeamsHandler) list(c echo.Context) error {
	teams := h.teams.ListTeams()
	return c.JSON(http.StatusOK, echo.Map{
		"teams": teams,
		"count": len(teams),
	})
}

func (h *TeamsHandler) get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	team, err := h.teams.GetTeam(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, team)
}

func (h *TeamsHandler) messages(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	messages := h.teams.TeamMessages(id)
	return c.JSON(http.StatusOK, echo.Map{
		"messages": messages,
		"count":    len(messages),
		"team_id":  id,
	})
}

func (h *TeamsHandler) postMessage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req PostMessageRequest
	if err := c.Bind(&req); err != nil {
		log.WithError(err).Error("Failed to bind request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Message content is required"})
	}

	message, err := h.teams.PostMessage(id, req.From, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusCreated, message)
}

func (h *TeamsHandler) meetings(c echo.Context) error {
	meetings := h.teams.ListMeetings()
	return c.JSON(http.StatusOK, echo.Map{
		"meetings": meetings,
		"count":    len(meetings),
	})
}

func (h *TeamsHandler) stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.teams.Stats())
}
