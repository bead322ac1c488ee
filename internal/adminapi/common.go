package adminapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/talkincode/backoffice/internal/app"
	"github.com/talkincode/backoffice/internal/backend"
	"github.com/talkincode/backoffice/internal/catalog"
	"github.com/talkincode/backoffice/internal/domain"
	"github.com/talkincode/backoffice/internal/notify"
	"github.com/talkincode/backoffice/internal/webserver"
)

const (
	defaultPageSize = 20
	maxPageSize     = 500
)

// Response is the success envelope
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ListResponse is the success envelope of paginated lists
type ListResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Meta    ListMeta    `json:"meta"`
}

type ListMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Pages    int   `json:"pages"`
}

// ErrorResponse is the failure envelope
type ErrorResponse struct {
	Success bool        `json:"success"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func fail(c echo.Context, status int, code, msg string, details interface{}) error {
	return c.JSON(status, ErrorResponse{Success: false, Code: code, Message: msg, Details: details})
}

func paged(c echo.Context, data interface{}, total int64, page, pageSize int) error {
	pages := 0
	if pageSize > 0 {
		pages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return c.JSON(http.StatusOK, ListResponse{
		Success: true,
		Data:    data,
		Meta:    ListMeta{Total: total, Page: page, PageSize: pageSize, Pages: pages},
	})
}

// parsePagination reads page and perPage, falling back to the legacy pageSize
func parsePagination(c echo.Context) (int, int) {
	page := 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	raw := c.QueryParam("perPage")
	if raw == "" {
		raw = c.QueryParam("pageSize")
	}
	pageSize := defaultPageSize
	if ps, err := strconv.Atoi(raw); err == nil && ps > 0 {
		pageSize = ps
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func parseIDParam(c echo.Context, name string) (string, error) {
	id := strings.TrimSpace(c.Param(name))
	if id == "" {
		return "", errors.Errorf("missing %s", name)
	}
	return id, nil
}

// GetAppContext returns the application context injected by the web server
func GetAppContext(c echo.Context) app.AppContext {
	return c.Get(webserver.AppContextKey).(app.AppContext)
}

// GetCatalog returns the screen catalog of the running application
func GetCatalog(c echo.Context) *catalog.Catalog {
	return GetAppContext(c).Catalog()
}

func handleValidationError(c echo.Context, err error) error {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid parameters", verrs)
	}
	return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
}

// backendFail maps a backend failure to an HTTP response and raises an error toast
func backendFail(c echo.Context, err error, entity, title string) error {
	GetAppContext(c).Notify(notify.Error(entity, title, err))

	status, code := http.StatusBadGateway, "BACKEND_ERROR"
	switch {
	case errors.Is(err, catalog.ErrNotFound), backend.IsNotFound(err):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case backend.IsRejected(err):
		status, code = http.StatusUnprocessableEntity, "BACKEND_REJECTED"
	}
	msg := err.Error()
	if apiErr, found := backend.AsAPIError(err); found {
		msg = apiErr.Message
	}
	if status >= http.StatusInternalServerError {
		zap.L().Error(title, zap.String("namespace", "adminapi"), zap.String("entity", entity), zap.Error(err))
	}
	return fail(c, status, code, title, msg)
}

// notifySuccess raises a success toast for a completed mutation
func notifySuccess(c echo.Context, entity, title string) {
	GetAppContext(c).Notify(notify.Success(entity, title))
}
