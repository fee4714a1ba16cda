package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/edea-dev/msweb/pkg/clog"
	"github.com/edea-dev/msweb/pkg/config"
	"github.com/edea-dev/msweb/pkg/msapi"
	"github.com/edea-dev/msweb/pkg/state"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:   "msweb",
	Short: "Serve the measurement tracker pages",
	Long: `msweb serves the page data for the measurement tracker UI. Pages are loaded
from the backend REST API on behalf of the caller identified by the X-WebAuth-*
headers, and /api/* is proxied to the backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		dotenvPath, _ := cmd.Flags().GetString("dotenv")
		if dotenvPath == "" {
			dotenvPath = os.Getenv(config.KeyDotenvPath)
		}

		config.SetConfig(config.NewDotenvConfig(dotenvPath))
		if err := config.Load(); err != nil {
			log.Fatalf("Unable to load configuration: %s", err)
		}

		settings, err := config.LoadSettings(config.GetConfig())
		if err != nil {
			log.Fatalf("Invalid configuration: %s", err)
		}

		if port, _ := cmd.Flags().GetString("port"); port != "" {
			settings.Port = port
		}

		if err := run(cmd.Context(), settings); err != nil {
			log.Fatalf("msweb: %s", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("dotenv", "", "dotenv file to load settings from (default $"+config.KeyDotenvPath+")")
	rootCmd.Flags().StringP("port", "p", "", "port to listen on (overrides "+config.KeyPort+")")
}

func run(ctx context.Context, settings config.Settings) error {
	logHandler, err := clog.Setup(os.Stdout, settings.LogLevel)
	if err != nil {
		return err
	}
	defer logHandler.Close()

	store, closeStore, err := newStore(ctx, settings)
	if err != nil {
		return err
	}
	defer closeStore()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	setupRoutes(e, RouteOpts{
		settings:   settings,
		fetch:      msapi.NewClient(settings.APIURL(), settings.APITimeout),
		store:      store,
		logHandler: logHandler,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Listening on :%s, api %s", settings.Port, settings.APIURL())
		errCh <- e.Start(":" + settings.Port)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Infof("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}

// newStore connects to redis when an address is configured and otherwise keeps
// state in memory.
func newStore(ctx context.Context, settings config.Settings) (state.Store, func(), error) {
	if settings.RedisAddr == "" {
		log.Infof("Using in memory state")
		return state.NewMemoryStore(), func() {}, nil
	}

	store, err := state.ConnectRedisStore(ctx, settings.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	log.Infof("Using redis state at %s", settings.RedisAddr)
	return store, func() { _ = store.Close() }, nil
}
