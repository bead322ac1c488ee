package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/talkincode/backoffice/internal/app"
	"github.com/talkincode/backoffice/internal/webserver"
)

// registerSchedulerRoutes registers background job API routes
func registerSchedulerRoutes() {
	webserver.ApiGET("/system/jobs", ListJobs)
	webserver.ApiPOST("/system/jobs/:name/run", TriggerJob)
}

// ListJobs returns the background jobs with their last and next run
func ListJobs(c echo.Context) error {
	return ok(c, GetAppContext(c).Jobs())
}

// TriggerJob runs a background job immediately
func TriggerJob(c echo.Context) error {
	name := strings.TrimSpace(c.Param("name"))
	appCtx := GetAppContext(c)
	if err := appCtx.RunJobNow(name); errors.Is(err, app.ErrUnknownJob) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Job not found", nil)
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "RUN_FAILED", "Failed to run job", err.Error())
	}
	zap.L().Info("job triggered", zap.String("namespace", "adminapi"), zap.String("job", name))
	return c.NoContent(http.StatusNoContent)
}
