// Package api provides the HTTP API for the application
package api

import (
	"context"

	"driftlog/internal/platform/clock"
	"driftlog/internal/platform/config"
	"driftlog/internal/platform/logger"
	phttp "driftlog/internal/platform/net/http"
	"driftlog/internal/platform/store"

	"driftlog/internal/modkit"
	"driftlog/internal/modkit/httpkit"
	"driftlog/internal/modkit/module"
	"driftlog/internal/modkit/repokit"
	"driftlog/internal/modkit/swaggerkit"

	feedmod "driftlog/internal/services/api/feed/module"
	metamod "driftlog/internal/services/api/meta/module"
	sleepmod "driftlog/internal/services/api/sleep/module"
	socialmod "driftlog/internal/services/api/social/module"

	identrepo "driftlog/internal/services/ident/repo"
	identsvc "driftlog/internal/services/ident/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Clock          clock.Clock
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:   opt.Config,
		PG:    opt.Store.PG,
		Clock: opt.Clock,
	}
	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}

	// identity backs both request verification and feed name enrichment
	ident := identsvc.New(repokit.TxRunner(deps.PG), identrepo.NewPG())

	sleep := sleepmod.New(deps)
	social := socialmod.New(deps)

	feed := feedmod.New(deps, modkit.WithPorts(feedmod.Ports{
		Social: module.MustPortsOf[socialmod.Ports](social).Service,
		Sleep:  module.MustPortsOf[sleepmod.Ports](sleep).Service,
		Ident:  ident,
	}))

	// feed before sleep so /sleep/feed wins over /sleep/{id}
	mods := []module.Module{feed, sleep, social}

	authPort := httpkit.NewPortFunc(func(ctx context.Context, userID string) (string, error) {
		u, err := ident.ByID(ctx, userID)
		if err != nil {
			return "", err
		}
		return u.ID, nil
	})

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		// probes stay reachable without an identity header
		metamod.New(deps).MountRoutes(api)

		httpkit.Protected(api, authPort, func(sec httpkit.Router) {
			for _, m := range mods {
				// register each module's ports under its own name (for cross-module lookups)
				module.Register(m.Name(), m.Ports())

				// mount module routes under its Prefix()
				m.MountRoutes(sec)
			}
		})
	})
}
