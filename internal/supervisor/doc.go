// Footprints - Building Footprint Features API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/footprints

/*
Package supervisor runs the long-lived services of the footprints server under
a suture v4 supervisor tree.

	RootSupervisor ("footprints")
	├── StoreSupervisor ("store-layer")
	│   └── StoreMonitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The store layer only observes the database; a failing monitor never restarts
the HTTP server. Supervisor events are logged through sutureslog and the
zerolog-backed slog handler from the logging package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddStoreService(services.NewStoreMonitorService(store, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)
*/
package supervisor
