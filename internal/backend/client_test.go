package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/backoffice/config"
	"github.com/talkincode/backoffice/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(config.BackendConfig{BaseURL: srv.URL + "/", Token: "tok", Timeout: 5}, 1024)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestEnvelopeFailed(t *testing.T) {
	cases := []struct {
		name string
		err  interface{}
		want bool
	}{
		{"absent", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"text", "duplicate slug", true},
		{"empty text", "", false},
		{"false text", "false", false},
		{"number", float64(1), true},
		{"zero", float64(0), false},
		{"object", map[string]interface{}{"code": "DUPLICATE"}, true},
		{"empty object", map[string]interface{}{}, true},
		{"array", []interface{}{"bad"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := &Envelope{Error: tc.err}
			assert.Equal(t, tc.want, env.Failed())
		})
	}
}

func TestResourceList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/categories", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"data": []map[string]interface{}{
				{"id": "1", "title": "VPS", "slug": "vps"},
				{"id": "2", "title": "Colocation", "slug": "colo"},
			},
		})
	})
	res := NewResource[domain.Category](c, "category", "categories")
	rows, err := res.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Colocation", rows[1].Title)
}

func TestResourceListNullData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": nil})
	})
	rows, err := NewResource[domain.Partner](c, "partner", "").List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestResourceCreateAndUpdate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var p domain.Price
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		switch r.URL.Path {
		case "/create-price":
			assert.Equal(t, http.MethodPost, r.Method)
			p.ID = "new-id"
			writeJSON(w, http.StatusOK, map[string]interface{}{"data": p})
		case "/update-price":
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "new-id", p.ID)
			// backend acknowledges without echoing the record
			writeJSON(w, http.StatusOK, map[string]interface{}{"message": "updated"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	res := NewResource[domain.Price](c, "price", "prices")
	created, err := res.Create(context.Background(), domain.Price{Title: "Monthly", Amount: 100, Currency: "RUB", Period: "month"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)

	created.Amount = 120
	updated, err := res.Update(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, 120.0, updated.Amount)
}

func TestResourceDeletePayloads(t *testing.T) {
	var paths, bodies []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		b, _ := io.ReadAll(r.Body)
		paths = append(paths, r.URL.Path)
		bodies = append(bodies, strings.TrimSpace(string(b)))
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": nil})
	})
	res := NewResource[domain.Office](c, "office", "offices")
	require.NoError(t, res.Delete(context.Background(), "o1"))
	require.NoError(t, res.DeleteMany(context.Background(), []string{"o2", "o3"}))
	require.NoError(t, res.DeleteMany(context.Background(), nil))

	assert.Equal(t, []string{"/delete-office", "/delete-offices"}, paths)
	assert.JSONEq(t, `{"id":"o1"}`, bodies[0])
	assert.JSONEq(t, `{"ids":["o2","o3"]}`, bodies[1])
}

func TestErrorFlagInSuccessResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"error": true, "message": "slug already taken"})
	})
	_, err := NewResource[domain.Page](c, "page", "pages").Create(context.Background(), domain.Page{Title: "About"})
	require.Error(t, err)
	assert.True(t, IsRejected(err))
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "slug already taken", apiErr.Message)
	assert.Contains(t, err.Error(), "create page")
}

func TestErrorObjectInSuccessResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"error":   map[string]string{"code": "DUPLICATE"},
			"message": "slug taken",
		})
	})
	_, err := NewResource[domain.Page](c, "page", "pages").Create(context.Background(), domain.Page{Title: "About"})
	require.Error(t, err)
	assert.True(t, IsRejected(err))
	apiErr, _ := AsAPIError(err)
	assert.Equal(t, "slug taken", apiErr.Message)
}

func TestHTTPFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"message": "no such endpoint"})
	})
	_, err := NewResource[domain.Post](c, "post", "posts").List(context.Background())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsRejected(err))
	apiErr, _ := AsAPIError(err)
	assert.Equal(t, "no such endpoint", apiErr.Message)
}

func TestMalformedSuccessBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	})
	_, err := NewResource[domain.QaA](c, "qaa", "").List(context.Background())
	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, KindHTTP, apiErr.Kind)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewClient(config.BackendConfig{BaseURL: srv.URL, Timeout: 1}, 0)
	err := c.Ping(context.Background())
	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, KindTransport, apiErr.Kind)
}

func TestUpload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload-logo", r.URL.Path)
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "logo.png", header.Filename)
		assert.Equal(t, "PNGDATA", string(content))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"data": map[string]string{"url": "https://cdn.example.net/logo.png", "filename": "logo.png"},
		})
	})
	res, err := c.Upload(context.Background(), UploadLogo, "/tmp/logo.png", []byte("PNGDATA"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.net/logo.png", res.URL)

	_, err = c.Upload(context.Background(), UploadImage, "big.jpg", make([]byte, 2048))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestParseUploadKind(t *testing.T) {
	k, err := ParseUploadKind(" Icon ")
	require.NoError(t, err)
	assert.Equal(t, UploadIcon, k)
	_, err = ParseUploadKind("video")
	assert.Error(t, err)
}
