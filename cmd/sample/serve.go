package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sunbreeze/sunbreeze"
)

func serveCmd() *cobra.Command {
	var (
		addr       string
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the development server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := sunbreeze.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = sunbreeze.LoadConfig(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debug
			}

			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			}))

			app, err := newApp(append(cfg.Options(), sunbreeze.WithLogger(logger))...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			if err := app.ListenAndServe(ctx, cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8000", "Address to listen on")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug mode")

	return cmd
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := newApp(sunbreeze.WithLogger(discardLogger()))
			if err != nil {
				return err
			}
			for _, ri := range app.Router().Routes() {
				name := ri.Name
				if name == "" {
					name = "-"
				}
				fmt.Printf("%-28s %-24s %s\n", ri.Pattern, strings.Join(ri.Methods, ","), name)
			}
			return nil
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
