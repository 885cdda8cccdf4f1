// Package observability provides hooks for metrics, tracing and logging.
//
// Libraries emit events through the registered hooks; the defaults are no-ops
// so instrumentation stays optional and free of backend dependencies. The
// application registers real implementations once at startup:
//
//	func main() {
//	    observability.SetControlHooks(&myControlHooks{})
//	    observability.SetCatalogHooks(&myCatalogHooks{})
//	    // ... run application
//	}
//
// and libraries call them at the points of interest:
//
//	observability.Catalog().OnFetchStart(ctx, source)
//	// ... fetch ...
//	observability.Catalog().OnFetchComplete(ctx, source, n, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Control Hooks
// =============================================================================

// ControlHooks receives events from blend controls. Control events carry no
// context because the state machine is driven synchronously by pointer input.
type ControlHooks interface {
	// OnDragStart records a pointer-down that grabbed the cursor at (x, y).
	OnDragStart(controlID string, x, y float64)

	// OnDragEnd records the end of a drag; reason is "up", "leave" or "cancel".
	OnDragEnd(controlID string, reason string)

	// OnRecompute records a recomputed distribution with the given entry count.
	OnRecompute(controlID string, x, y float64, entries int)
}

// =============================================================================
// Catalog Hooks
// =============================================================================

// CatalogHooks receives events from style catalog loading.
type CatalogHooks interface {
	OnFetchStart(ctx context.Context, source string)
	OnFetchComplete(ctx context.Context, source string, styles int, duration time.Duration, err error)

	// OnCacheHit and OnCacheMiss record lookups in the catalog response cache.
	OnCacheHit(ctx context.Context, key string)
	OnCacheMiss(ctx context.Context, key string)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the catalog HTTP server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path, requestID string)

	// OnResponse records the response status and handling time.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopControlHooks is a no-op implementation of ControlHooks.
type NoopControlHooks struct{}

func (NoopControlHooks) OnDragStart(string, float64, float64)      {}
func (NoopControlHooks) OnDragEnd(string, string)                  {}
func (NoopControlHooks) OnRecompute(string, float64, float64, int) {}

// NoopCatalogHooks is a no-op implementation of CatalogHooks.
type NoopCatalogHooks struct{}

func (NoopCatalogHooks) OnFetchStart(context.Context, string) {}
func (NoopCatalogHooks) OnFetchComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopCatalogHooks) OnCacheHit(context.Context, string)  {}
func (NoopCatalogHooks) OnCacheMiss(context.Context, string) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)               {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	controlHooks ControlHooks = NoopControlHooks{}
	catalogHooks CatalogHooks = NoopCatalogHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
	hooksMu      sync.RWMutex
)

// SetControlHooks registers custom control hooks. Nil is ignored.
func SetControlHooks(h ControlHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		controlHooks = h
	}
}

// SetCatalogHooks registers custom catalog hooks. Nil is ignored.
func SetCatalogHooks(h CatalogHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		catalogHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks. Nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Control returns the registered control hooks.
func Control() ControlHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return controlHooks
}

// Catalog returns the registered catalog hooks.
func Catalog() CatalogHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return catalogHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults. Intended for tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	controlHooks = NoopControlHooks{}
	catalogHooks = NoopCatalogHooks{}
	httpHooks = NoopHTTPHooks{}
}
