// Package http adapts a classification result into an http.Handler.
//
// It is the reference realization of the "router/layout component" boundary:
// layout-wrapped routes and resource screens mount inside the layout chrome,
// bare routes mount at the root, and the shared menu registry is exposed as
// JSON for the navigation UI. The adapter only composes a handler; serving
// it is the caller's business.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atriumhq/atrium/internal/logging"
	"github.com/atriumhq/atrium/pkg/classify"
	"github.com/atriumhq/atrium/pkg/menu"
)

// Layout wraps the routed screens in persistent chrome (navigation,
// header). The default layout is a pass-through.
type Layout func(next http.Handler) http.Handler

// Router builds handlers from classification results.
type Router struct {
	layout   Layout
	registry *menu.Registry
	logger   *slog.Logger
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithLayout sets the chrome wrapper for layout-bound screens.
func WithLayout(layout Layout) RouterOption {
	return func(r *Router) {
		r.layout = layout
	}
}

// WithMenu exposes the registry's hierarchical menu at GET /menu.
func WithMenu(registry *menu.Registry) RouterOption {
	return func(r *Router) {
		r.registry = registry
	}
}

// WithLogger sets a structured logger for mount events.
func WithLogger(logger *slog.Logger) RouterOption {
	return func(r *Router) {
		r.logger = logger
	}
}

// NewRouter creates a router with the given options.
func NewRouter(opts ...RouterOption) *Router {
	r := &Router{
		layout: func(next http.Handler) http.Handler { return next },
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handler assembles the routed admin from a classification result. While
// the result is loading or empty every in-layout path serves a placeholder;
// bare routes are reachable regardless (a login screen must render before
// the tree resolves).
func (r *Router) Handler(res *classify.Result) http.Handler {
	mux := chi.NewRouter()

	for _, el := range res.BareRoutes {
		path := "/" + el.Name
		mux.Mount(path, screen(el.Content))
		r.logger.Debug("bare route mounted", "path", path)
	}

	if r.registry != nil {
		mux.Get("/menu", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(r.registry.Tree()); err != nil {
				r.logger.Error("failed to encode menu", "error", err)
			}
		})
	}

	status := res.Status()
	if status != classify.StatusReady {
		mux.NotFound(placeholder(status))
		return mux
	}

	inner := chi.NewRouter()
	for _, entry := range res.Resources {
		name := entry.Element.Name
		inner.Mount("/"+name, resourceScreens(entry))
		r.logger.Debug("resource mounted", "name", name, "path", entry.Path.String())
	}
	for _, entry := range res.LayoutRoutes {
		name := entry.Element.Name
		inner.Mount("/"+name, screen(entry.Element.Content))
		r.logger.Debug("route mounted", "name", name, "path", entry.Path.String())
	}

	mux.Mount("/", r.layout(inner))
	return mux
}

// resourceScreens expands a resource into its standard list/detail routes.
// Declared content overrides both screens.
func resourceScreens(entry classify.ResourceEntry) http.Handler {
	if h, ok := entry.Element.Content.(http.Handler); ok {
		return h
	}
	name := entry.Element.Name
	sub := chi.NewRouter()
	sub.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]any{"resource": name, "screen": "list"})
	})
	sub.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]any{"resource": name, "screen": "detail", "id": chi.URLParam(req, "id")})
	})
	return sub
}

func screen(content any) http.Handler {
	if h, ok := content.(http.Handler); ok {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if content == nil {
			http.Error(w, "no content declared", http.StatusNotFound)
			return
		}
		fmt.Fprint(w, content)
	})
}

func placeholder(status classify.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		writeJSONTo(w, map[string]any{"status": string(status)})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	writeJSONTo(w, v)
}

func writeJSONTo(w http.ResponseWriter, v any) {
	_ = json.NewEncoder(w).Encode(v)
}
