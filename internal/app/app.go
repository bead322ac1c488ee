package app

import (
	"sync/atomic"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/talkincode/backoffice/config"
	"github.com/talkincode/backoffice/internal/backend"
	"github.com/talkincode/backoffice/internal/catalog"
	"github.com/talkincode/backoffice/internal/notify"
)

type Application struct {
	appConfig *config.AppConfig
	client    *backend.Client
	catalog   *catalog.Catalog
	notifier  *notify.Notifier
	sched     *cron.Cron
	jobs      map[string]*job
	healthy   atomic.Bool
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ BackendProvider   = (*Application)(nil)
	_ NotifierProvider  = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Backend() *backend.Client {
	return a.client
}

func (a *Application) Catalog() *catalog.Catalog {
	return a.catalog
}

func (a *Application) Notifier() *notify.Notifier {
	return a.notifier
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

func (a *Application) BackendHealthy() bool {
	return a.healthy.Load()
}

func (a *Application) Notify(t notify.Toast) {
	if a.notifier != nil {
		a.notifier.Publish(t)
	}
}

// Init sets up logging, the backend client, the screen catalog and the
// notification bus. Background jobs are started separately by StartJobs.
func (a *Application) Init(cfg *config.AppConfig) error {
	a.appConfig = cfg
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	InitLogger(cfg)

	limit, err := cfg.UploadLimitBytes()
	if err != nil {
		return err
	}
	a.client = backend.NewClient(cfg.Backend, limit)
	a.catalog = catalog.New(a.client)
	a.notifier = notify.NewNotifier(notify.NewStore(notify.DefaultCapacity, notify.DefaultTTL))
	// assume reachable until the first probe says otherwise
	a.healthy.Store(true)

	zap.L().Info("backend configured",
		zap.String("namespace", "app"),
		zap.String("base_url", a.client.BaseURL()),
		zap.Int("resources", len(a.catalog.All())))
	return nil
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		<-a.sched.Stop().Done()
	}
	_ = zap.L().Sync()
}
