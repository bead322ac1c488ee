package app

import (
	"github.com/robfig/cron/v3"

	"github.com/talkincode/backoffice/config"
	"github.com/talkincode/backoffice/internal/backend"
	"github.com/talkincode/backoffice/internal/catalog"
	"github.com/talkincode/backoffice/internal/notify"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// BackendProvider provides the REST client and the screens built on it
type BackendProvider interface {
	Backend() *backend.Client
	Catalog() *catalog.Catalog
	// BackendHealthy reports the result of the last health probe
	BackendHealthy() bool
}

// NotifierProvider provides toast publishing
type NotifierProvider interface {
	Notifier() *notify.Notifier
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
	// Jobs lists the background jobs with their last and next run
	Jobs() []JobInfo
	// RunJobNow triggers a background job immediately by name
	RunJobNow(name string) error
}

// AppContext combines all provider interfaces for full application context
// Handlers should depend on specific providers or this combined interface
type AppContext interface {
	ConfigProvider
	BackendProvider
	NotifierProvider
	SchedulerProvider

	// Notify publishes a toast to every subscriber
	Notify(t notify.Toast)
}
