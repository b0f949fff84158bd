package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"contoso.com/officemock/internal/core/port"
)

type OutlookHandler struct {
	mailbox  port.Mailbox
	validate *validator.Validate
}

type SendEmailRequest struct {
	To      string `json:"to" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	From    string `json:"from"`
	Body    string `json:"body"`
}

func NewOutlookHandler(mailbox port.Mailbox, validate *validator.Validate) *OutlookHandler {
	return &OutlookHandler{
		mailbox:  mailbox,
		validate: validate,
	}
}

func (h *OutlookHandler) Register(e *echo.Echo) {
	e.GET("/emails", h.list)
	e.GET("/emails/unread", h.unread)
	e.GET("/emails/important", h.important)
	e.GET("/emails/stats", h.stats)
	e.GET("/emails/:id", h.get)
	e.POST("/emails/send", h.send)
}

func (h *OutlookHandler) list(c echo.Context) error {
	emails, unread := h.mailbox.ListEmails()
	return c.JSON(http.StatusOK, echo.Map{
		"emails":       emails,
		"count":        len(emails),
		"unread_count": unread,
	})
}

func (h *OutlookHandler) get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	email, err := h.mailbox.GetEmail(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, email)
}

func (h *OutlookHandler) unread(c echo.Context) error {
	emails := h.mailbox.UnreadEmails()
	return c.JSON(http.StatusOK, echo.Map{
		"emails": emails,
		"count":  len(emails),
	})
}

func (h *OutlookHandler) important(c echo.Context) error {
	emails := h.mailbox.ImportantEmails()
	return c.JSON(http.StatusOK, echo.Map{
		"emails": emails,
		"count":  len(emails),
	})
}

func (h *OutlookHandler) send(c echo.Context) error {
	var req SendEmailRequest
	if err := c.Bind(&req); err != nil {
		log.WithError(err).Error("Failed to bind request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "To and subject are required"})
	}

	email := h.mailbox.SendEmail(req.From, req.To, req.Subject, req.Body)
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Email sent successfully",
		"email":   email,
	})
}

func (h *OutlookHandler) stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.mailbox.Stats())
}
