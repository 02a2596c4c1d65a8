// Package registry holds the session-scoped virtual module registry.
package registry

import (
	"sync"

	"github.com/chronolens/pluginhost/domain/entities"
	"github.com/chronolens/pluginhost/domain/ports"
)

// Registry implements ports.ModuleRegistry. One instance lives per
// development session; entries persist until the process exits, bounded by
// the number of distinct (importer, specifier) pairs ever resolved.
//
// The host's request handling is cooperative and single-threaded, so no
// coordination is strictly required; sync.Map keeps the registry safe
// anyway if an outer layer ever serves requests concurrently. Races on the
// same pair are harmless because id and target are pure functions of the
// pair: both racers store the same value.
type Registry struct {
	pairs   sync.Map // pairKey -> entities.VirtualModuleID
	targets sync.Map // entities.VirtualModuleID -> entities.ResolutionTarget
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

var _ ports.ModuleRegistry = (*Registry)(nil)

// pairKey joins importer and specifier with a separator that cannot occur
// in either.
func pairKey(importerPath, specifier string) string {
	return importerPath + "\x00" + specifier
}

// GetOrCreate registers id/target for the pair on first encounter and
// returns the registered identifier.
func (r *Registry) GetOrCreate(importerPath, specifier string, id entities.VirtualModuleID, target entities.ResolutionTarget) entities.VirtualModuleID {
	stored, _ := r.pairs.LoadOrStore(pairKey(importerPath, specifier), id)
	registered := stored.(entities.VirtualModuleID)
	r.targets.LoadOrStore(registered, target)
	return registered
}

// Resolve looks up a previously registered identifier.
func (r *Registry) Resolve(id entities.VirtualModuleID) (entities.ResolutionTarget, bool) {
	v, ok := r.targets.Load(id)
	if !ok {
		return entities.ResolutionTarget{}, false
	}
	return v.(entities.ResolutionTarget), true
}

// Len reports how many virtual modules are registered, for diagnostics.
func (r *Registry) Len() int {
	n := 0
	r.targets.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
