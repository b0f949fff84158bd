package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"contoso.com/officemock/internal/core/port"
)

type OneDriveHandler struct {
	drive port.Drive
}

func NewOneDriveHandler(drive port.Drive) *OneDriveHandler {
	return &OneDriveHandler{drive: drive}
}

func (h *OneDriveHandler) Register(e *echo.Echo) {
	e.GET("/files", h.listFiles)
	e.GET("/files/shared", h.sharedFiles)
	e.GET("/files/:id", h.getFile)
	e.GET("/folders", h.listFolders)
	e.GET("/storage", h.storage)
}

func (h *OneDriveHandler) listFiles(c echo.Context) error {
	files := h.drive.ListFiles()
	return c.JSON(http.StatusOK, echo.Map{
		"files": files,
		"count": len(files),
	})
}

func (h *OneDriveHandler) getFile(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	file, err := h.drive.GetFile(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, file)
}

func (h *OneDriveHandler) listFolders(c echo.Context) error {
	folders := h.drive.ListFolders()
	return c.JSON(http.StatusOK, echo.Map{
		"folders": folders,
		"count":   len(folders),
	})
}

func (h *OneDriveHandler) sharedFiles(c echo.Context) error {
	files := h.drive.SharedFiles()
	return c.JSON(http.StatusOK, echo.Map{
		"files": files,
		"count": len(files),
	})
}

func (h *OneDriveHandler) storage(c echo.Context) error {
	return c.JSON(http.StatusOK, h.drive.StorageInfo())
}
