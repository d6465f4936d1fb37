package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"reminder-app/reminder/routes"
)

func webCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "web",
		Short: "Serve the CRUD web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.Close()

			router, err := routes.NewWebRouter(a.cfg, a.db, a.services, a.logger)
			if err != nil {
				return err
			}
			return a.serve("web", a.cfg.WebAddr, router)
		},
	}
}

func kioskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kiosk",
		Short: "Serve the kiosk rotation display",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer a.Close()

			router, err := routes.NewKioskRouter(a.cfg, a.db, a.services, a.logger, routes.KioskOptions{
				DefaultUser: a.cfg.KioskDefaultUser,
				Refresh:     a.cfg.RefreshInterval(),
			})
			if err != nil {
				return err
			}
			return a.serve("kiosk", a.cfg.KioskAddr, router)
		},
	}
}

// serve runs handler until SIGINT or SIGTERM, then shuts down gracefully.
func (a *app) serve(name, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().Str("server", name).Str("addr", addr).Msg("setting up http server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error().Err(err).Str("server", name).Msg("failed to listen and serve http")
			return err
		}
		return nil
	case <-quit:
	}

	a.logger.Info().Str("server", name).Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		a.logger.Error().Err(err).Msg("failed to shutdown http server")
		return err
	}
	a.logger.Info().Str("server", name).Msg("shut down http server")
	return nil
}
