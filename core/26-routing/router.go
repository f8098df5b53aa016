package routing

import (
	"sort"

	port "github.com/tokenize-x/ibc-core/core/05-port"
)

// Router is the static PortId -> IBCModule binding table (spec §4.6). Port
// binding happens once, at chain wiring time; the router itself never
// mutates after construction in normal operation, only during setup.
type Router struct {
	routes map[string]port.IBCModule
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{routes: make(map[string]port.IBCModule)}
}

// AddRoute binds portID to module. It panics on a duplicate binding, the
// same as ibc-go's Router.AddRoute: a double-bind is a wiring bug caught at
// app startup, not a runtime condition to recover from.
func (r *Router) AddRoute(portID string, module port.IBCModule) *Router {
	if _, ok := r.routes[portID]; ok {
		panic(ErrModuleExists.Wrapf("port %s", portID))
	}
	r.routes[portID] = module
	return r
}

// LookupModule implements the channel keeper's ModuleLookup interface.
func (r *Router) LookupModule(portID string) (port.IBCModule, bool) {
	m, ok := r.routes[portID]
	return m, ok
}

// HasRoute reports whether a port is bound.
func (r *Router) HasRoute(portID string) bool {
	_, ok := r.routes[portID]
	return ok
}

// Ports returns every bound port id in lexicographic order. Used only for
// diagnostics/genesis export; never consumed by commitment-affecting logic.
func (r *Router) Ports() []string {
	ids := make([]string, 0, len(r.routes))
	for id := range r.routes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
