package app

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/backoffice/config"
	"github.com/talkincode/backoffice/internal/notify"
)

func newTestApp(t *testing.T, baseURL string) *Application {
	t.Helper()
	cfg := config.DefaultAppConfig()
	cfg.System.Location = "UTC"
	cfg.Backend.BaseURL = baseURL
	a := NewApplication(cfg)
	require.NoError(t, a.Init(cfg))
	return a
}

func TestInitWiresComponents(t *testing.T) {
	a := newTestApp(t, "http://127.0.0.1:1")
	assert.NotNil(t, a.Backend())
	assert.NotNil(t, a.Catalog())
	assert.NotNil(t, a.Notifier())
	assert.True(t, a.BackendHealthy())
}

func TestInitRejectsBadUploadLimit(t *testing.T) {
	cfg := config.DefaultAppConfig()
	cfg.Backend.UploadLimit = "lots"
	assert.Error(t, NewApplication(cfg).Init(cfg))
}

func TestBackendProbeReportsTransitions(t *testing.T) {
	var down atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if down.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"status":"ok"}}`))
	}))
	defer srv.Close()

	a := newTestApp(t, srv.URL)
	store := a.Notifier().Store()

	a.SchedBackendProbe()
	assert.True(t, a.BackendHealthy())
	assert.Equal(t, 0, store.Len())

	down.Store(true)
	a.SchedBackendProbe()
	a.SchedBackendProbe()
	assert.False(t, a.BackendHealthy())
	require.Equal(t, 1, store.Len())
	assert.Equal(t, notify.LevelError, store.Recent(time.Time{})[0].Level)

	down.Store(false)
	a.SchedBackendProbe()
	assert.True(t, a.BackendHealthy())
	assert.Equal(t, 2, store.Len())
}

func TestPruneToasts(t *testing.T) {
	a := newTestApp(t, "http://127.0.0.1:1")
	old := notify.Info("page", "stale", "")
	old.CreatedAt = time.Now().Add(-time.Hour)
	a.Notifier().Store().Add(old)
	a.Notify(notify.Success("page", "fresh"))

	a.SchedPruneToasts()
	assert.Equal(t, 1, a.Notifier().Store().Len())
}

func TestStartJobsAndRelease(t *testing.T) {
	a := newTestApp(t, "http://127.0.0.1:1")
	a.StartJobs()
	require.NotNil(t, a.Scheduler())
	assert.Len(t, a.Scheduler().Entries(), 2)

	jobs := a.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, JobBackendProbe, jobs[0].Name)
	assert.False(t, jobs[1].NextRun.IsZero())
	a.Release()
}

func TestRunJobNow(t *testing.T) {
	a := newTestApp(t, "http://127.0.0.1:1")
	stale := notify.Info("post", "stale", "")
	stale.CreatedAt = time.Now().Add(-time.Hour)
	a.Notifier().Store().Add(stale)

	require.NoError(t, a.RunJobNow(JobPruneToasts))
	assert.Equal(t, 0, a.Notifier().Store().Len())

	err := a.RunJobNow("reindex")
	assert.ErrorIs(t, err, ErrUnknownJob)
}
