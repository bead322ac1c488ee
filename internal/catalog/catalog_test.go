package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/backoffice/config"
	"github.com/talkincode/backoffice/internal/backend"
	"github.com/talkincode/backoffice/internal/domain"
	"github.com/talkincode/backoffice/pkg/tableview"
)

func fakeBackend(t *testing.T, collections map[string]interface{}) *Catalog {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok := collections[strings.TrimPrefix(r.URL.Path, "/")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"error": true, "message": "unknown path"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
	}))
	t.Cleanup(srv.Close)
	return New(backend.NewClient(config.BackendConfig{BaseURL: srv.URL, Timeout: 5}, 0))
}

var sampleCategories = []domain.Category{
	{ID: "1", Title: "Beta", Slug: "beta"},
	{ID: "2", Title: "alpha", Slug: "alpha"},
	{ID: "3", Title: "Gamma", Slug: "gamma"},
}

func titles(rows []domain.Category) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Title
	}
	return out
}

func TestCatalogHasEveryScreen(t *testing.T) {
	c := New(backend.NewClient(config.BackendConfig{BaseURL: "http://127.0.0.1:1"}, 0))
	all := c.All()
	require.Len(t, all, 14)

	d, ok := c.Lookup("service-packs")
	require.True(t, ok)
	assert.Equal(t, "service-pack", d.Meta().Name)

	_, ok = c.Lookup("category")
	assert.True(t, ok)
	_, ok = c.Lookup("invoices")
	assert.False(t, ok)
}

func TestQuerySortsThenFilters(t *testing.T) {
	c := fakeBackend(t, map[string]interface{}{"categories": sampleCategories})

	rows, err := c.Categories.Query(context.Background(), tableview.Query{OrderBy: "title", Order: tableview.Asc})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "Beta", "Gamma"}, titles(rows))

	rows, err = c.Categories.Query(context.Background(), tableview.Query{OrderBy: "title", Filter: "am"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Gamma"}, titles(rows))
}

func TestFind(t *testing.T) {
	c := fakeBackend(t, map[string]interface{}{"categories": sampleCategories})
	got, err := c.Categories.Find(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Gamma", got.Title)

	_, err = c.Categories.Find(context.Background(), "42")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNormalizeFallsBackToDefaultSort(t *testing.T) {
	c := New(backend.NewClient(config.BackendConfig{BaseURL: "http://127.0.0.1:1"}, 0))

	q := c.Posts.Normalize(tableview.Query{OrderBy: "password", Filter: "  news "})
	assert.Equal(t, "published_at", q.OrderBy)
	assert.Equal(t, tableview.Desc, q.Order)
	assert.Equal(t, "news", q.Filter)

	q = c.Prices.Normalize(tableview.Query{OrderBy: "amount", Order: tableview.Desc})
	assert.Equal(t, "amount", q.OrderBy)
	assert.Equal(t, tableview.Desc, q.Order)

	q = c.Prices.Normalize(tableview.Query{})
	assert.Equal(t, "title", q.OrderBy)
	assert.Equal(t, tableview.Asc, q.Order)
}

func TestFormLoadsReferenceOptions(t *testing.T) {
	c := fakeBackend(t, map[string]interface{}{
		"categories": sampleCategories,
		"advantages": []domain.Advantage{{ID: "a1", Title: "24/7 support"}},
	})
	form, err := c.Products.Form(context.Background())
	require.NoError(t, err)

	defaults, ok := form.Defaults.(domain.Product)
	require.True(t, ok)
	assert.Equal(t, domain.ProductDraft, defaults.Status)

	require.Len(t, form.Options["category"], 3)
	assert.Equal(t, Option{Value: "2", Label: "alpha"}, form.Options["category"][0])
	assert.Equal(t, []Option{{Value: "a1", Label: "24/7 support"}}, form.Options["advantages"])
}

func TestFormFailsWhenALoaderFails(t *testing.T) {
	c := fakeBackend(t, map[string]interface{}{"prices": []domain.Price{}})
	_, err := c.ServicePacks.Form(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bonus_services")
}

func TestValidateRunsCheck(t *testing.T) {
	c := New(backend.NewClient(config.BackendConfig{BaseURL: "http://127.0.0.1:1"}, 0))
	err := c.Offices.Validate(domain.Office{City: "Moscow", Address: "Tverskaya 1"})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "phone")
	assert.NoError(t, c.Offices.Validate(domain.Office{City: "Moscow", Address: "Tverskaya 1", Phone: "+7 495 000-00-00"}))
	assert.NoError(t, c.Offices.Validate(domain.Office{City: "Moscow", Address: "Tverskaya 1", Email: "msk@example.net"}))
}

func TestExportCSV(t *testing.T) {
	c := fakeBackend(t, map[string]interface{}{"categories": sampleCategories})
	var buf bytes.Buffer
	n, err := c.Categories.Export(context.Background(), &buf, FormatCSV, tableview.Query{OrderBy: "title"})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id,title,slug,description", lines[0])
	assert.Equal(t, "2,alpha,alpha,", lines[1])
}

func TestExportXLSX(t *testing.T) {
	c := fakeBackend(t, map[string]interface{}{"categories": sampleCategories})
	var buf bytes.Buffer
	n, err := c.Categories.Export(context.Background(), &buf, FormatXLSX, tableview.Query{})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	// xlsx is a zip archive
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "Categories"}, f.GetSheetMap())
	rows := f.GetRows("Categories")
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"id", "title", "slug", "description"}, rows[0])
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)
	f, err = ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, ".xlsx", f.Ext())
	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

