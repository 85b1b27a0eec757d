// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and the middleware chain for the
// community site.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"communitysite/internal/handlers"
	"communitysite/internal/middleware"
)

// pages are the slash-terminated page routes. Requests without the
// trailing slash are redirected.
var pages = []string{"/blog/", "/learning-resources/", "/upcoming-talks/"}

// New creates and returns the configured Chi router. static is served
// under /static/. limiter may be nil to disable rate limiting.
func New(public *handlers.Public, static fs.FS, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check, never rate limited.
	r.Get("/health", healthHandler)

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		r.Use(chimw.Compress(5, "text/html", "text/css", "image/svg+xml"))

		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

		r.Get("/", public.Homepage)
		r.Get("/blog/", public.BlogIndex)
		r.Get("/blog/{slug}/", public.BlogPost)
		r.Get("/learning-resources/", public.LearningResources)
		r.Get("/upcoming-talks/", public.UpcomingTalks)

		for _, p := range pages {
			r.Get(p[:len(p)-1], addSlash)
		}
		r.Get("/blog/{slug}", addSlash)
	})

	r.NotFound(public.NotFound)

	return r
}

// addSlash redirects to the same path with a trailing slash, keeping the
// query string so the menu state survives.
func addSlash(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Path + "/"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
