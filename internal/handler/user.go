package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"contoso.com/officemock/internal/core/port"
)

type UserHandler struct {
	directory port.Directory
	validate  *validator.Validate
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewUserHandler(directory port.Directory, validate *validator.Validate) *UserHandler {
	return &UserHandler{
		directory: directory,
		validate:  validate,
	}
}

func (h *UserHandler) Register(e *echo.Echo) {
	e.GET("/users", h.list)
	e.GET("/users/:id", h.get)
	e.POST("/users", h.create)
}

func (h *UserHandler) list(c echo.Context) error {
	users := h.directory.ListUsers()
	return c.JSON(http.StatusOK, echo.Map{
		"users": users,
		"count": len(users),
	})
}

func (h *UserHandler) get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.directory.GetUser(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		log.WithError(err).Error("Failed to bind request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name is required"})
	}

	user := h.directory.CreateUser(req.Name, req.Email, req.Role)
	return c.JSON(http.StatusCreated, user)
}
