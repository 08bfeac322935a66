package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	borutoserver "github.com/Danik911/Boruto-server/internal"
	"github.com/Danik911/Boruto-server/internal/config"
	"github.com/Danik911/Boruto-server/internal/logging"
	"github.com/Danik911/Boruto-server/internal/repositories"
	"github.com/Danik911/Boruto-server/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "boruto-server",
		Short: "Serve the Boruto heroes catalog over HTTP",
		Long: `boruto-server serves a fixed catalog of Boruto heroes as paginated JSON
and supports case-insensitive search by name.`,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfig(v, configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "Config file (default: ./boruto-server.yaml)")
	flags.String("address", config.DefaultAddress, "Address to listen on")
	flags.Duration("shutdown-timeout", config.DefaultShutdownTimeout, "Time allowed for in-flight requests on shutdown")
	flags.String("images-dir", "", "Directory served under /images (disabled when empty)")
	flags.String("pagination-mode", "fixed", "Heroes pagination: fixed (5 static pages) or limit")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.Bool("log-pretty", false, "Human-readable console logs")
	flags.Bool("metrics", true, "Expose Prometheus metrics on /metrics")

	config.SetViperDefaults(v)
	bindings := map[string]string{
		"server.address":          "address",
		"server.shutdown_timeout": "shutdown-timeout",
		"server.images_dir":       "images-dir",
		"heroes.pagination_mode":  "pagination-mode",
		"logging.level":           "log-level",
		"logging.pretty":          "log-pretty",
		"metrics.enabled":         "metrics",
	}
	for key, flag := range bindings {
		// BindPFlag only fails for a nil flag.
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
	return cmd
}

func readConfig(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(config.EnvKeyReplacer)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(config.ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func run(ctx context.Context, cfg config.Config) error {
	logging.Setup(logging.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
		Output: os.Stderr,
	})
	logger := logging.NewLogger("main")
	gin.SetMode(gin.ReleaseMode)

	heroRepo := repositories.NewDefaultHeroRepository()
	heroService := services.NewDefaultHeroService(heroRepo)
	server := borutoserver.NewServer(heroService, cfg)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit.Done():
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info().Msg("server exited")
	return nil
}
