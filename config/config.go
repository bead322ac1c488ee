package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/labstack/gommon/bytes"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// SysConfig system configuration
type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

// WebConfig admin web server configuration
type WebConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	ReadTimeout  int    `yaml:"read_timeout"`  // seconds
	WriteTimeout int    `yaml:"write_timeout"` // seconds
}

// BackendConfig describes the REST backend every screen talks to
type BackendConfig struct {
	BaseURL     string `yaml:"base_url"`
	Token       string `yaml:"token"`        // optional static API token, sent as Bearer
	Timeout     int    `yaml:"timeout"`      // seconds, 0 keeps the http client default
	UploadLimit string `yaml:"upload_limit"` // human readable, e.g. 10MB
}

// LogConfig logging configuration
type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

// AppConfig backoffice application configuration
type AppConfig struct {
	System  SysConfig     `yaml:"system"`
	Web     WebConfig     `yaml:"web"`
	Backend BackendConfig `yaml:"backend"`
	Logger  LogConfig     `yaml:"logger"`
}

// GetLogDir returns the log directory under workdir
func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

// GetExportDir returns the directory used by the export command
func (c *AppConfig) GetExportDir() string {
	return path.Join(c.System.Workdir, "export")
}

// UploadLimitBytes parses Backend.UploadLimit, 0 means unlimited
func (c *AppConfig) UploadLimitBytes() (int64, error) {
	if strings.TrimSpace(c.Backend.UploadLimit) == "" {
		return 0, nil
	}
	return bytes.Parse(c.Backend.UploadLimit)
}

// Validate checks the fields the service cannot start without
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	if !strings.HasPrefix(c.Backend.BaseURL, "http://") && !strings.HasPrefix(c.Backend.BaseURL, "https://") {
		return fmt.Errorf("backend.base_url must be an http(s) url: %q", c.Backend.BaseURL)
	}
	if c.Web.Port <= 0 || c.Web.Port > 65535 {
		return fmt.Errorf("web.port out of range: %d", c.Web.Port)
	}
	if _, err := c.UploadLimitBytes(); err != nil {
		return fmt.Errorf("backend.upload_limit: %w", err)
	}
	return nil
}

// DefaultAppConfig returns the built-in configuration
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "Backoffice",
			Location: "Europe/Moscow",
			Workdir:  "/var/backoffice",
			Debug:    false,
		},
		Web: WebConfig{
			Host:         "0.0.0.0",
			Port:         1880,
			ReadTimeout:  30,
			WriteTimeout: 60,
		},
		Backend: BackendConfig{
			BaseURL:     "http://127.0.0.1:8080",
			Timeout:     15,
			UploadLimit: "10MB",
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/backoffice/logs/backoffice.log",
		},
	}
}

// LoadConfig reads the yaml file at cfile (when present) over the defaults,
// then applies BACKOFFICE_* environment overrides.
func LoadConfig(cfile string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if cfile != "" {
		data, err := os.ReadFile(cfile)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfile, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfile, err)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	setEnvString("BACKOFFICE_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvString("BACKOFFICE_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvBool("BACKOFFICE_SYSTEM_DEBUG", &cfg.System.Debug)

	setEnvString("BACKOFFICE_WEB_HOST", &cfg.Web.Host)
	setEnvInt("BACKOFFICE_WEB_PORT", &cfg.Web.Port)

	setEnvString("BACKOFFICE_BACKEND_URL", &cfg.Backend.BaseURL)
	setEnvString("BACKOFFICE_BACKEND_TOKEN", &cfg.Backend.Token)
	setEnvInt("BACKOFFICE_BACKEND_TIMEOUT", &cfg.Backend.Timeout)
	setEnvString("BACKOFFICE_BACKEND_UPLOAD_LIMIT", &cfg.Backend.UploadLimit)

	setEnvString("BACKOFFICE_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBool("BACKOFFICE_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvString("BACKOFFICE_LOGGER_FILENAME", &cfg.Logger.Filename)
}

func setEnvString(name string, val *string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*val = v
	}
}

func setEnvInt(name string, val *int) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		// decimal only, "010" is 10 not octal
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*val = i
		}
	}
}

func setEnvBool(name string, val *bool) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		if b, err := cast.ToBoolE(v); err == nil {
			*val = b
		}
	}
}
