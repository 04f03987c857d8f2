package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// timeLayout is the wire format for timestamps in responses.
const timeLayout = time.RFC3339

// pathID parses a numeric :id path parameter. Zero is never a valid id.
func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
