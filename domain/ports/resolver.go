package ports

import "github.com/chronolens/pluginhost/domain/entities"

// SpecifierResolver decides what an import inside extension code refers to:
// a host capability, a sibling file, a deferred bare dependency, or a
// synthesized stub.
type SpecifierResolver interface {
	// Resolve handles one specifier found in the file at importerPath.
	// It never fails for a well-formed importer path; unresolvable relative
	// imports degrade to a stub outcome.
	Resolve(importerPath, specifier string) (entities.ResolutionOutcome, error)
}
