package ports

import "github.com/chronolens/pluginhost/domain/entities"

// CapabilityCatalog maps recognized specifier shapes to host source files.
type CapabilityCatalog interface {
	// Lookup matches a normalized specifier against the catalog. It returns
	// a hit only if the capability's host-tree path currently exists on
	// disk; a miss is never an error, callers continue with other strategies.
	Lookup(normalized string) (entities.HostCapability, bool)

	// Names returns the fixed capability names, sorted.
	Names() []string
}
