package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/FlagBrew/digidex/internal/handlers/digimon"
	"github.com/FlagBrew/digidex/internal/handlers/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/lrstanley/chix"
)

func httpServer(ctx context.Context) *http.Server {
	chix.DefaultAPIPrefix = "/api/"

	r := chi.NewRouter()

	r.Use(
		chix.UseContextIP,
		middleware.RequestID,
		chix.UseStructuredLogger(logger),
		chix.UseDebug(cli.Debug),
		chix.UseRecoverer,
		middleware.Compress(5),
		middleware.Maybe(middleware.StripSlashes, func(r *http.Request) bool {
			return !strings.HasPrefix(r.URL.Path, "/debug/")
		}),
		chix.UseNextURL,
	)

	if cli.Debug {
		r.Mount("/debug", middleware.Profiler())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		chix.JSON(w, r, http.StatusOK, chix.M{
			"status":  "ok",
			"loading": cat.Loading(),
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(100, time.Minute))

		digimon.NewHandler(cat).Route(r)
		r.Route("/sessions", session.NewHandler(cat, sessions).Route)
	})

	return &http.Server{
		Addr:    net.JoinHostPort(cfg.HTTP.ListeningAddr, fmt.Sprint(cfg.HTTP.Port)),
		Handler: r,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
		// Some sane defaults.
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}
