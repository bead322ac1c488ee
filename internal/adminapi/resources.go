package adminapi

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/talkincode/backoffice/internal/catalog"
	"github.com/talkincode/backoffice/internal/domain"
	"github.com/talkincode/backoffice/internal/webserver"
	"github.com/talkincode/backoffice/pkg/common"
	"github.com/talkincode/backoffice/pkg/tableview"
)

type batchDeletePayload struct {
	IDs []string `json:"ids" validate:"min=1,dive,required"`
}

// screen carries the per-entity hooks of the generic CRUD handlers
type screen[T domain.Entity] struct {
	pick func(*catalog.Catalog) *catalog.Resource[T]
	// prepare normalizes a bound payload before validation
	prepare func(*T)
	// unique returns the value that must not repeat across records, e.g. a slug
	unique     func(T) string
	uniqueCode string
}

// mount registers list, form, export, get, create, update, delete and batch delete
func mount[T domain.Entity](plural string, s screen[T]) {
	base := "/" + plural
	webserver.ApiGET(base, s.list)
	webserver.ApiGET(base+"/form", s.form)
	webserver.ApiGET(base+"/export", s.export)
	webserver.ApiGET(base+"/:id", s.get)
	webserver.ApiPOST(base, s.create)
	webserver.ApiPUT(base+"/:id", s.update)
	webserver.ApiDELETE(base+"/:id", s.delete)
	webserver.ApiDELETE(base, s.deleteMany)
}

// registerResourceRoutes lists the screens for the navigation menu
func registerResourceRoutes() {
	webserver.ApiGET("/resources", listResources)
}

func listResources(c echo.Context) error {
	all := GetCatalog(c).All()
	metas := make([]catalog.Meta, 0, len(all))
	for _, d := range all {
		metas = append(metas, d.Meta())
	}
	return ok(c, metas)
}

// tableQuery reads sort, order and q. An absent order leaves the screen default.
func tableQuery(c echo.Context) tableview.Query {
	q := tableview.Query{
		OrderBy: strings.TrimSpace(c.QueryParam("sort")),
		Filter:  strings.TrimSpace(c.QueryParam("q")),
	}
	if order := strings.TrimSpace(c.QueryParam("order")); order != "" {
		q.Order = tableview.ParseOrder(order)
	}
	return q
}

func (s screen[T]) list(c echo.Context) error {
	res := s.pick(GetCatalog(c))
	page, pageSize := parsePagination(c)
	rows, err := res.Query(c.Request().Context(), tableQuery(c))
	if err != nil {
		return backendFail(c, err, res.API.Name, "Failed to query "+res.API.Plural)
	}
	return paged(c, tableview.Paginate(rows, page, pageSize), int64(len(rows)), page, pageSize)
}

func (s screen[T]) get(c echo.Context) error {
	res := s.pick(GetCatalog(c))
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+res.API.Name+" ID", nil)
	}
	item, err := res.Find(c.Request().Context(), id)
	if err != nil {
		return backendFail(c, err, res.API.Name, "Failed to load "+res.API.Name)
	}
	return ok(c, item)
}

func (s screen[T]) form(c echo.Context) error {
	res := s.pick(GetCatalog(c))
	form, err := res.Form(c.Request().Context())
	if err != nil {
		return backendFail(c, err, res.API.Name, "Failed to load "+res.API.Name+" form")
	}
	return ok(c, form)
}

func (s screen[T]) create(c echo.Context) error {
	res := s.pick(GetCatalog(c))
	item := res.Defaults()
	if err := c.Bind(&item); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse "+res.API.Name+" parameters", err.Error())
	}
	if s.prepare != nil {
		s.prepare(&item)
	}
	if err := res.Validate(item); err != nil {
		return handleValidationError(c, err)
	}
	if clash, err := s.duplicate(c, res, item); err != nil {
		return backendFail(c, err, res.API.Name, "Failed to create "+res.API.Name)
	} else if clash {
		return fail(c, http.StatusConflict, s.uniqueCode, entityLabel(res.API.Name)+" already exists", nil)
	}

	created, err := res.API.Create(c.Request().Context(), item)
	if err != nil {
		return backendFail(c, err, res.API.Name, "Failed to create "+res.API.Name)
	}
	notifySuccess(c, res.API.Name, entityLabel(res.API.Name)+" created")
	return ok(c, created)
}

func (s screen[T]) update(c echo.Context) error {
	res := s.pick(GetCatalog(c))
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+res.API.Name+" ID", nil)
	}

	item, err := res.Find(c.Request().Context(), id)
	if err != nil {
		return backendFail(c, err, res.API.Name, "Failed to update "+res.API.Name)
	}
	// fields present in the body overwrite the stored record
	if err := c.Bind(&item); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse "+res.API.Name+" parameters", err.Error())
	}
	if item.Key() != id {
		return fail(c, http.StatusBadRequest, "ID_MISMATCH", "Body id does not match the URL", nil)
	}
	if s.prepare != nil {
		s.prepare(&item)
	}
	if err := res.Validate(item); err != nil {
		return handleValidationError(c, err)
	}
	if clash, err := s.duplicate(c, res, item); err != nil {
		return backendFail(c, err, res.API.Name, "Failed to update "+res.API.Name)
	} else if clash {
		return fail(c, http.StatusConflict, s.uniqueCode, entityLabel(res.API.Name)+" already exists", nil)
	}

	updated, err := res.API.Update(c.Request().Context(), item)
	if err != nil {
		return backendFail(c, err, res.API.Name, "Failed to update "+res.API.Name)
	}
	notifySuccess(c, res.API.Name, entityLabel(res.API.Name)+" updated")
	return ok(c, updated)
}

func (s screen[T]) delete(c echo.Context) error {
	res := s.pick(GetCatalog(c))
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+res.API.Name+" ID", nil)
	}
	if err := res.API.Delete(c.Request().Context(), id); err != nil {
		return backendFail(c, err, res.API.Name, "Failed to delete "+res.API.Name)
	}
	zap.L().Info(res.API.Name+" deleted", zap.String("namespace", "adminapi"), zap.String("id", id))
	notifySuccess(c, res.API.Name, entityLabel(res.API.Name)+" deleted")
	return ok(c, map[string]interface{}{"id": id})
}

func (s screen[T]) deleteMany(c echo.Context) error {
	res := s.pick(GetCatalog(c))
	var payload batchDeletePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse ids", err.Error())
	}
	payload.IDs = common.TrimAll(payload.IDs)
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}
	if err := res.API.DeleteMany(c.Request().Context(), payload.IDs); err != nil {
		return backendFail(c, err, res.API.Name, "Failed to delete "+res.API.Plural)
	}
	notifySuccess(c, res.API.Name, fmt.Sprintf("%d %s deleted", len(payload.IDs), res.API.Plural))
	return ok(c, map[string]interface{}{"ids": payload.IDs})
}

func (s screen[T]) export(c echo.Context) error {
	res := s.pick(GetCatalog(c))
	format, err := catalog.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_FORMAT", err.Error(), nil)
	}
	var buf bytes.Buffer
	if _, err := res.Export(c.Request().Context(), &buf, format, tableQuery(c)); err != nil {
		return backendFail(c, err, res.API.Name, "Failed to export "+res.API.Plural)
	}
	filename := fmt.Sprintf("%s_%s%s", res.API.Plural, time.Now().Format("20060102_150405"), format.Ext())
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Blob(http.StatusOK, format.ContentType(), buf.Bytes())
}

// entityLabel turns "service-pack" into "Service pack"
func entityLabel(name string) string {
	words := strings.ReplaceAll(name, "-", " ")
	if words == "" {
		return words
	}
	return cases.Upper(language.Und).String(words[:1]) + words[1:]
}

// duplicate reports whether another record already holds item's unique value
func (s screen[T]) duplicate(c echo.Context, res *catalog.Resource[T], item T) (bool, error) {
	if s.unique == nil {
		return false, nil
	}
	want := strings.TrimSpace(s.unique(item))
	if want == "" {
		return false, nil
	}
	rows, err := res.API.List(c.Request().Context())
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row.Key() != item.Key() && strings.EqualFold(strings.TrimSpace(s.unique(row)), want) {
			return true, nil
		}
	}
	return false, nil
}
