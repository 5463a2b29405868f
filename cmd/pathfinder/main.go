// SPDX-License-Identifier: MIT

// Command pathfinder computes single-source shortest paths.
//
// With graph_file set in the configuration it reads the graph, prints the
// result table and exits. Otherwise it serves POST /shortest-path.
//
//	pathfinder -config ./config/local.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/pathfinder/converters"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/internal/config"
	"github.com/katalvlaran/pathfinder/internal/http-server/handler/shortestpath"
	"github.com/katalvlaran/pathfinder/internal/http-server/middleware/slogger"
	"github.com/katalvlaran/pathfinder/internal/lib/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	logWriter := io.Writer(os.Stdout)
	if cfg.Env != logger.EnvLocal {
		logWriter = os.Stderr
	}
	lg, err := logger.New(cfg.Env, logWriter)
	if err != nil {
		log.Fatal(err)
	}
	lg.Info("starting pathfinder", slog.String("env", cfg.Env), slog.String("mode", cfg.Mode))

	if cfg.GraphFile != "" {
		if err = runFile(cfg, lg, os.Stdout); err != nil {
			lg.Error("computation failed", logger.Err(err))
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err = serve(ctx, cfg, lg); err != nil {
		lg.Error("server stopped", logger.Err(err))
		os.Exit(1)
	}
}

// runFile loads cfg.GraphFile, runs the configured engine and writes the
// result table to w. Files ending in .json are read as JSON adjacency,
// everything else as the adjacency text format.
func runFile(cfg *config.Config, lg *slog.Logger, w io.Writer) error {
	const op = "main.runFile"

	g, err := loadGraph(cfg.GraphFile, !cfg.Undirected)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	lg.Debug("graph loaded",
		slog.String("file", cfg.GraphFile),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("arcs", g.EdgeCount()),
	)

	mode, err := dijkstra.ParseMode(cfg.Mode)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	opts := []dijkstra.Option{
		dijkstra.Source(cfg.Source),
		dijkstra.WithMode(mode),
		dijkstra.WithLogger(lg),
	}
	if cfg.Target != "" {
		opts = append(opts, dijkstra.WithTarget(cfg.Target))
	}
	if cfg.ReturnPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}

	res, err := dijkstra.Dijkstra(g, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return converters.FormatResult(w, res)
}

func loadGraph(path string, directed bool) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return converters.ReadJSON(f, core.WithDirected(directed))
	}

	return converters.ParseAdjacency(f, directed)
}

// newRouter wires middleware and routes.
func newRouter(cfg *config.Config, lg *slog.Logger) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(slogger.New(lg))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(middleware.Heartbeat("/ping"))

	router.Post("/shortest-path", shortestpath.New(lg, cfg))

	return router
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// within cfg.Timeout.
func serve(ctx context.Context, cfg *config.Config, lg *slog.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      newRouter(cfg, lg),
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("server started", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
