// Package module wires the feed API into HTTP via modkit
package module

import (
	"net/http"

	"driftlog/internal/modkit"
	"driftlog/internal/modkit/httpkit"
	"driftlog/internal/platform/strings"

	"driftlog/internal/services/api/feed/domain"
	feedhttp "driftlog/internal/services/api/feed/http"
	"driftlog/internal/services/api/feed/service"

	sleepdom "driftlog/internal/services/api/sleep/domain"
	socialdom "driftlog/internal/services/api/social/domain"
	identdom "driftlog/internal/services/ident/domain"
)

// Ports declares the injected ports the feed composes, plus its own service
// port for cross-module lookups
type Ports struct {
	Social  socialdom.ServicePort
	Sleep   sleepdom.ServicePort
	Ident   identdom.ReaderPort
	Service domain.ServicePort
}

// Module implements the feed module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *service.Service
}

// New constructs the feed module. It requires the social, sleep and ident
// ports to be injected via WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("feed"),
		modkit.WithPrefix("/sleep/feed"),
	}, opts...)...)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Social == nil || injected.Sleep == nil || injected.Ident == nil {
		panic("feed module requires Social, Sleep and Ident ports")
	}

	svc := service.New(injected.Social, injected.Sleep, injected.Ident, deps.Clock)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	injected.Service = svc
	m.ports = injected

	external := b.Register
	m.register = func(r httpkit.Router) {
		feedhttp.Register(r, m.svc)
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

// Name is the module name
func (m *Module) Name() string { return strings.MustString(m.name, "module name") }

// Prefix is the module route prefix
func (m *Module) Prefix() string { return strings.MustPrefix(m.prefix) }

// Middlewares is the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
