package http

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the acting user's public id. Attribution is always an
// explicit parameter below this layer, never ambient state.
const actorHeader = "X-Actor-ID"

func actorID(c echo.Context) string {
	return strings.ToLower(strings.TrimSpace(c.Request().Header.Get(actorHeader)))
}

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
