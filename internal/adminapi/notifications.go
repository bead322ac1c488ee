package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"

	"github.com/talkincode/backoffice/internal/webserver"
)

// registerNotificationRoutes registers the toast feed polled by the UI
func registerNotificationRoutes() {
	webserver.ApiGET("/notifications", listNotifications)
	webserver.ApiDELETE("/notifications", clearNotifications)
}

// listNotifications returns unexpired toasts, newest first. since accepts
// any date layout, e.g. the created_at of the last toast seen.
func listNotifications(c echo.Context) error {
	var since time.Time
	if raw := strings.TrimSpace(c.QueryParam("since")); raw != "" {
		t, err := dateparse.ParseAny(raw)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_SINCE", "Unable to parse since", err.Error())
		}
		since = t
	}
	return ok(c, GetAppContext(c).Notifier().Store().Recent(since))
}

func clearNotifications(c echo.Context) error {
	GetAppContext(c).Notifier().Store().Clear()
	return c.NoContent(http.StatusNoContent)
}
