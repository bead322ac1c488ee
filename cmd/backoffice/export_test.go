package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/backoffice/config"
	"github.com/talkincode/backoffice/internal/backend"
	"github.com/talkincode/backoffice/internal/catalog"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"error": "permission denied"})
		case "/partners":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": []map[string]string{
				{"id": "1", "name": "Zeta Telecom"}, {"id": "2", "name": "acme"},
			}})
		default:
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": []interface{}{}})
		}
	}))
	t.Cleanup(srv.Close)
	return catalog.New(backend.NewClient(config.BackendConfig{BaseURL: srv.URL, Timeout: 5}, 0))
}

func TestExportAll(t *testing.T) {
	cat := newCatalog(t)
	dir := t.TempDir()

	results, err := exportResources(context.Background(), cat.All(), exportOptions{format: "csv", dir: dir, workers: 3})
	require.NoError(t, err)
	require.Len(t, results, 14)

	for _, r := range results {
		if r.Plural == "users" {
			assert.Error(t, r.Err)
			assert.NoFileExists(t, r.Path)
			continue
		}
		require.NoError(t, r.Err, r.Plural)
		assert.FileExists(t, r.Path)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "partners.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "2,acme"))
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	_, err := exportResources(context.Background(), nil, exportOptions{format: "pdf", dir: t.TempDir()})
	assert.Error(t, err)
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	cfgFile = ""
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "base_url:")
}

func TestExportCommandNeedsTarget(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"export"})
	assert.Error(t, cmd.Execute())
}
