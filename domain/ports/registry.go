package ports

import "github.com/chronolens/pluginhost/domain/entities"

// ModuleRegistry is the session-scoped map from virtual identifiers to
// resolution targets. Registration is idempotent: the same (importer,
// specifier) pair always yields the identifier minted on first encounter.
type ModuleRegistry interface {
	// GetOrCreate registers id/target for the pair on first encounter and
	// returns the registered identifier. id and target must be pure
	// functions of (importerPath, specifier), so repeated calls converge.
	GetOrCreate(importerPath, specifier string, id entities.VirtualModuleID, target entities.ResolutionTarget) entities.VirtualModuleID

	// Resolve looks up a previously registered identifier.
	Resolve(id entities.VirtualModuleID) (entities.ResolutionTarget, bool)
}
