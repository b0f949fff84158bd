package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses an integer path parameter. Non-numeric values behave like an
// unmatched route, the way the original integer route converters did.
func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.ErrNotFound
	}
	return id, nil
}
