package adminapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/talkincode/backoffice/internal/backend"
	"github.com/talkincode/backoffice/internal/webserver"
)

// uploadFormOverhead covers multipart boundaries and part headers around the file
const uploadFormOverhead = 64 << 10

// registerUploadRoutes registers the image/icon/logo upload proxy
func registerUploadRoutes() {
	var mw []echo.MiddlewareFunc
	if limit := webserver.AppContext().Backend().UploadLimit(); limit > 0 {
		mw = append(mw, middleware.BodyLimit(fmt.Sprintf("%dB", limit+uploadFormOverhead)))
	}
	webserver.ApiPOST("/uploads/:kind", uploadFile, mw...)
}

// uploadFile forwards the multipart field "file" to the backend upload endpoint
func uploadFile(c echo.Context) error {
	kind, err := backend.ParseUploadKind(c.Param("kind"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_KIND", err.Error(), nil)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return fail(c, http.StatusBadRequest, "MISSING_FILE", "Multipart field \"file\" is required", nil)
	}

	client := GetAppContext(c).Backend()
	if err := client.CheckUploadSize(fh.Filename, fh.Size); err != nil {
		return fail(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error(), nil)
	}
	src, err := fh.Open()
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_FILE", "Unable to read uploaded file", err.Error())
	}
	defer src.Close()
	var r io.Reader = src
	if limit := client.UploadLimit(); limit > 0 {
		r = io.LimitReader(src, limit+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_FILE", "Unable to read uploaded file", err.Error())
	}

	res, err := client.Upload(c.Request().Context(), kind, fh.Filename, content)
	if errors.Is(err, backend.ErrTooLarge) {
		return fail(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error(), nil)
	}
	if err != nil {
		return backendFail(c, err, string(kind), "Failed to upload "+string(kind))
	}
	notifySuccess(c, string(kind), entityLabel(string(kind))+" uploaded")
	return ok(c, res)
}
