package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/talkincode/backoffice/config"
	"github.com/talkincode/backoffice/internal/adminapi"
	"github.com/talkincode/backoffice/internal/app"
	"github.com/talkincode/backoffice/internal/webserver"
)

var cfgFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "backoffice",
		Short:         "Hosting and telecom back-office API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (yaml)")
	root.AddCommand(newServeCmd(), newExportCmd(), newConfigCmd())
	return root
}

func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the admin API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			application := app.NewApplication(cfg)
			if err := application.Init(cfg); err != nil {
				return err
			}
			defer application.Release()
			application.StartJobs()

			webserver.Init(application)
			adminapi.Init()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := webserver.Listen(ctx); err != nil {
				zap.S().Errorf("web server error %s", err.Error())
				return err
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
