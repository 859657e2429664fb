package easel

import (
	"sort"
	"sync"
)

// Factory is a function that creates a new, unconfigured surface.
// Factories are registered via Register and called by the drawing
// constructors, which then configure the surface with Begin.
type Factory func() Surface

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register registers a surface factory for the given drawing kind.
// This function is typically called from init() in backend packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    easel.Register(easel.KindPDF, func() easel.Surface {
//	        return &Surface{}
//	    })
//	}
//
// Register panics if:
//   - factory is nil
//   - a factory for the same kind is already registered
//
// This ensures that duplicate registrations are caught early during
// program initialization rather than silently overwriting backends.
func Register(kind string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("easel: Register factory is nil")
	}
	if _, dup := factories[kind]; dup {
		panic("easel: Register called twice for " + kind)
	}
	factories[kind] = factory
	Logger().Debug("easel: registered drawing kind", "kind", kind)
}

// Unregister removes a drawing kind from the registry.
// This is primarily useful for testing to clean up between tests.
// If the kind is not registered, this is a no-op.
func Unregister(kind string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, kind)
}

// NewSurface creates a new surface for the given drawing kind.
// The kind must match a previously registered backend.
//
// Example:
//
//	import _ "github.com/easelgfx/easel/backend/pdf" // Register "pdf"
//
//	surface, err := easel.NewSurface(easel.KindPDF)
//	if err != nil {
//	    // Handle error - kind not registered
//	}
//
// Returns an *UnknownKindError if the kind is not registered.
// The error message includes a hint about forgotten imports.
func NewSurface(kind string) (Surface, error) {
	registryMu.RLock()
	factory, ok := factories[kind]
	registryMu.RUnlock()

	if !ok {
		return nil, &UnknownKindError{Kind: kind}
	}
	return factory(), nil
}

// MustSurface creates a new surface by kind, panicking on error.
// This is useful when backend availability is guaranteed.
//
// Example:
//
//	surface := easel.MustSurface(easel.KindRecord)
func MustSurface(kind string) Surface {
	s, err := NewSurface(kind)
	if err != nil {
		panic(err)
	}
	return s
}

// Kinds returns a sorted list of registered drawing kinds.
// The list is sorted alphabetically for consistent output.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]string, 0, len(factories))
	for kind := range factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// IsRegistered checks if a drawing kind is registered.
func IsRegistered(kind string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[kind]
	return ok
}
