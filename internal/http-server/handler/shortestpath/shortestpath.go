// SPDX-License-Identifier: MIT

// Package shortestpath serves POST /shortest-path: the client sends a graph
// and a source vertex and receives distances, the unreachable set and,
// optionally, one route per reachable vertex.
package shortestpath

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/internal/config"
	resp "github.com/katalvlaran/pathfinder/internal/lib/api/response"
	"github.com/katalvlaran/pathfinder/internal/lib/logger"
	customValidator "github.com/katalvlaran/pathfinder/internal/lib/validator"
)

// Request is the POST body.
type Request struct {
	Graph       map[string]map[string]float64 `json:"graph" validate:"required"`
	Source      string                        `json:"source" validate:"required"`
	Target      string                        `json:"target,omitempty"`
	Mode        string                        `json:"mode,omitempty" validate:"omitempty,oneof=heap reference crosscheck"`
	ReturnPath  bool                          `json:"return_path,omitempty"`
	Undirected  bool                          `json:"undirected,omitempty"`
	MaxDistance *float64                      `json:"max_distance,omitempty" validate:"omitempty,gte=0"`
}

// Response is the success body. Distances only lists reachable vertices,
// so every value is finite.
type Response struct {
	RunID       string              `json:"run_id"`
	Source      string              `json:"source"`
	Mode        string              `json:"mode"`
	Distances   map[string]float64  `json:"distances"`
	Unreachable []string            `json:"unreachable"`
	Routes      map[string][]string `json:"routes,omitempty"`
	Order       []string            `json:"order"`
	Partial     bool                `json:"partial,omitempty"`
}

// New returns the handler. cfg.Env decides whether internal error details
// reach the client and cfg.MaxBodyBytes caps the request body.
func New(log *slog.Logger, cfg *config.Config) http.HandlerFunc {
	valid := customValidator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "http-server.handler.shortestpath.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxBodyBytes)
		defer r.Body.Close()

		var req Request
		err := render.DecodeJSON(r.Body, &req)
		if errors.Is(err, io.EOF) {
			log.Error("request body is empty")

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("empty request"))

			return
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Info("request body too large", slog.Int64("limit", tooLarge.Limit))

			render.Status(r, http.StatusRequestEntityTooLarge)
			render.JSON(w, r, resp.Error(fmt.Sprintf("request body too large: limit %d bytes", tooLarge.Limit)))

			return
		}
		if err != nil {
			log.Error("error while decoding JSON", logger.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error(fmt.Sprintf("invalid JSON: %s", err)))

			return
		}

		if err = valid.Struct(&req); err != nil {
			var validateErr validator.ValidationErrors
			if !errors.As(err, &validateErr) {
				errorHandler(w, r, cfg, fmt.Errorf("%s: validate: %w", op, err))
				return
			}
			log.Debug("invalid request", logger.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.ValidationError(validateErr))

			return
		}

		res, err := run(r, req)
		if err != nil {
			if isClientError(err) {
				log.Info("rejected request", logger.Err(err))

				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, resp.Error(err.Error()))

				return
			}
			log.Error("shortest path failed", logger.Err(err))
			errorHandler(w, r, cfg, fmt.Errorf("%s: %w", op, err))

			return
		}

		out := Response{
			RunID:       uuid.NewString(),
			Source:      res.Source,
			Mode:        res.Mode.String(),
			Distances:   res.Distances,
			Unreachable: res.Unreachable,
			Routes:      res.Routes,
			Order:       res.Order,
			Partial:     res.Partial,
		}
		if out.Unreachable == nil {
			out.Unreachable = []string{}
		}
		log.Info("shortest path computed",
			slog.String("run_id", out.RunID),
			slog.Int("settled", len(out.Distances)),
			slog.Int("unreachable", len(out.Unreachable)),
		)

		render.JSON(w, r, out)
	}
}

// run builds the graph and dispatches to the requested engine.
func run(r *http.Request, req Request) (*dijkstra.Result, error) {
	mode, err := dijkstra.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	g, err := core.FromAdjacency(req.Graph, core.WithDirected(!req.Undirected))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dijkstra.ErrInvalidGraph, err)
	}

	opts := []dijkstra.Option{dijkstra.Source(req.Source)}
	if req.Target != "" {
		opts = append(opts, dijkstra.WithTarget(req.Target))
	}
	if req.ReturnPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	if req.MaxDistance != nil {
		opts = append(opts, dijkstra.WithMaxDistance(*req.MaxDistance))
	}

	if mode == dijkstra.ModeCrossCheck {
		return dijkstra.CrossCheck(r.Context(), g, opts...)
	}

	return dijkstra.Dijkstra(g, append(opts, dijkstra.WithMode(mode))...)
}

// isClientError reports errors caused by the request content.
func isClientError(err error) bool {
	for _, target := range []error{
		dijkstra.ErrUnknownMode,
		dijkstra.ErrInvalidGraph,
		dijkstra.ErrEmptySource,
		dijkstra.ErrVertexNotFound,
		dijkstra.ErrTargetNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// errorHandler reports a server-side failure. Outside prod the error text is
// returned to the caller; in prod only the status line.
func errorHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config, err error) {
	if cfg.Env != logger.EnvProd {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, resp.Error(err.Error()))

		return
	}
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
