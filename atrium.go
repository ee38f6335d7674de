package atrium

import (
	"log/slog"

	"github.com/atriumhq/atrium/internal/logging"
	"github.com/atriumhq/atrium/pkg/classify"
	"github.com/atriumhq/atrium/pkg/element"
	"github.com/atriumhq/atrium/pkg/menu"
	"github.com/atriumhq/atrium/pkg/observability"
)

// Admin is the root component of the framework. It owns the classification
// state and the menu registrar, and exposes the classified buckets to the
// router and layout.
//
// All mutation happens on the caller's render loop; Admin itself does no
// locking (the menu Registry it owns is independently safe for concurrent
// readers).
type Admin struct {
	state     *classify.State
	registry  *menu.Registry
	registrar *menu.Registrar
	metrics   *observability.Metrics
	filter    menu.FilterFunc
	logger    *slog.Logger
	result    *classify.Result
}

// Option defines a functional option for configuring the Admin.
type Option func(*Admin)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Admin) {
		a.logger = logger
	}
}

// WithRegistry mounts onto an existing menu registry instead of owning a
// fresh one. Useful when several admin roots share one navigation menu.
func WithRegistry(registry *menu.Registry) Option {
	return func(a *Admin) {
		a.registry = registry
	}
}

// WithMenuFilter replaces the standard menu inclusion predicate
// (menu.Visible, which drops entries that opted out of menu display).
func WithMenuFilter(filter menu.FilterFunc) Option {
	return func(a *Admin) {
		a.filter = filter
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(a *Admin) {
		a.metrics = m
	}
}

// New initializes an Admin root.
func New(opts ...Option) *Admin {
	a := &Admin{
		state:  classify.NewState(),
		filter: menu.Visible,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.registry == nil {
		a.registry = menu.NewRegistry()
	}

	registrarOpts := []menu.RegistrarOption{
		menu.WithFilter(a.filter),
		menu.WithLogger(a.logger),
	}
	if a.metrics != nil {
		registrarOpts = append(registrarOpts, menu.WithRecorder(a.metrics))
	}
	a.registrar = menu.NewRegistrar(a.registry, registrarOpts...)
	return a
}

// Mount classifies children and synchronizes the menu registry with the
// result. Mounting an identical tree (same element pointers in the same
// positions) reuses the previous classification; the menu sync still runs
// so record metadata stays fresh.
func (a *Admin) Mount(children ...*element.Element) *classify.Result {
	res := a.state.Classify(children)
	if res != a.result {
		a.result = res
		a.logger.Debug("tree classified",
			"resources", len(res.Resources),
			"layout_routes", len(res.LayoutRoutes),
			"bare_routes", len(res.BareRoutes),
			"status", string(res.Status()),
		)
		if a.metrics != nil {
			a.metrics.ClassifyRun()
		}
	}
	a.registrar.Sync(menu.Entries(res))
	return res
}

// Result returns the latest classification, or nil before the first Mount.
func (a *Admin) Result() *classify.Result {
	return a.result
}

// Routes returns the layout-wrapped route entries from the latest
// classification, or nil before the first Mount.
func (a *Admin) Routes() []classify.RouteEntry {
	if a.result == nil {
		return nil
	}
	return a.result.LayoutRoutes
}

// Resources returns the resource entries from the latest classification,
// or nil before the first Mount.
func (a *Admin) Resources() []classify.ResourceEntry {
	if a.result == nil {
		return nil
	}
	return a.result.Resources
}

// Status derives the render status from the latest classification. Before
// the first Mount the admin reports loading.
func (a *Admin) Status() classify.Status {
	if a.result == nil {
		return classify.StatusLoading
	}
	return a.result.Status()
}

// Menu returns the shared navigation registry.
func (a *Admin) Menu() *menu.Registry {
	return a.registry
}

// Close unregisters everything this admin contributed to the menu.
func (a *Admin) Close() {
	a.registrar.Close()
}
