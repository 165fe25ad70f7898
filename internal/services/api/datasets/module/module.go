// Package module wires datasets into the API using modkit
package module

import (
	"net/http"

	modkit "analyses/internal/modkit"
	"analyses/internal/modkit/httpkit"
	str "analyses/internal/platform/strings"
	datasetshttp "analyses/internal/services/api/datasets/http"
	datasetsrepo "analyses/internal/services/api/datasets/repo"
	datasetssvc "analyses/internal/services/api/datasets/service"
)

// Module implements the datasets module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *datasetssvc.Service
}

// New constructs the datasets module (reads DATA_ROOT from module config)
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("datasets"),
		modkit.WithPrefix("/datasets"),
	}, opts...)...)

	store := datasetsrepo.NewDisk(deps.Cfg.MayString("DATA_ROOT", "./data"))
	svc := datasetssvc.New(store)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Reader: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		datasetshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
