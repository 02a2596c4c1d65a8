// Package resolver decides what each import inside extension code refers
// to: a host capability, a sibling file in the same extension, a deferred
// bare dependency, or a synthesized stub.
package resolver

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chronolens/pluginhost/application/normalize"
	"github.com/chronolens/pluginhost/domain/entities"
	"github.com/chronolens/pluginhost/domain/ports"
)

// resolverConfig holds configuration for the Resolver.
type resolverConfig struct {
	registry       ports.ModuleRegistry
	catalog        ports.CapabilityCatalog
	files          ports.FileChecker
	extensionsRoot string
	logger         *slog.Logger
}

func defaultResolverConfig() resolverConfig {
	return resolverConfig{
		files: ports.FileCheckerFunc(func(path string) bool {
			info, err := os.Stat(path)
			return err == nil && info.Mode().IsRegular()
		}),
		logger: slog.Default(),
	}
}

// ResolverOption configures a Resolver instance.
type ResolverOption func(*resolverConfig)

// WithRegistry sets the session's virtual module registry. Required.
func WithRegistry(r ports.ModuleRegistry) ResolverOption {
	return func(c *resolverConfig) {
		c.registry = r
	}
}

// WithCatalog sets the host capability catalog. Without one, every
// non-bare specifier goes straight to relative resolution.
func WithCatalog(cat ports.CapabilityCatalog) ResolverOption {
	return func(c *resolverConfig) {
		c.catalog = cat
	}
}

// WithFileChecker sets the existence probe. Tests inject fakes here.
func WithFileChecker(fc ports.FileChecker) ResolverOption {
	return func(c *resolverConfig) {
		c.files = fc
	}
}

// WithExtensionsRoot sets the extensions installation root. Required;
// resolved sibling files must stay inside it.
func WithExtensionsRoot(root string) ResolverOption {
	return func(c *resolverConfig) {
		c.extensionsRoot = root
	}
}

// WithLogger sets the resolver's logger.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(c *resolverConfig) {
		c.logger = l
	}
}

// Resolver implements ports.SpecifierResolver.
type Resolver struct {
	config resolverConfig
}

// NewResolver creates a Resolver with the given options.
func NewResolver(opts ...ResolverOption) (*Resolver, error) {
	cfg := defaultResolverConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		return nil, fmt.Errorf("resolver: module registry is required")
	}
	if cfg.extensionsRoot == "" {
		return nil, fmt.Errorf("resolver: extensions root is required")
	}
	return &Resolver{config: cfg}, nil
}

var _ ports.SpecifierResolver = (*Resolver)(nil)

// Resolve handles one specifier found in the file at importerPath.
// Strategy order, first match wins: bare defers, then the capability
// catalog, then a file relative to the importer, then a stub. Unresolvable
// relative imports never fail the caller; they degrade to a stub.
func (r *Resolver) Resolve(importerPath, specifier string) (entities.ResolutionOutcome, error) {
	if importerPath == "" || !filepath.IsAbs(importerPath) {
		return entities.ResolutionOutcome{}, fmt.Errorf("resolver: importer path must be absolute, got %q", importerPath)
	}

	spec := entities.ImportSpecifier{
		Raw:        specifier,
		Normalized: normalize.Specifier(specifier),
		Kind:       entities.ClassifySpecifier(specifier),
	}

	// Bare packages are resolved exactly once by the host's ordinary
	// dependency mechanism; intervening here would create divergent
	// duplicate copies of shared libraries.
	if spec.Kind == entities.SpecifierBare {
		return entities.DeferredOutcome(), nil
	}

	// Already-synthesized identifiers pass through unchanged.
	if spec.Kind == entities.SpecifierVirtual {
		id := entities.VirtualModuleID(spec.Raw)
		if target, ok := r.config.registry.Resolve(id); ok {
			return entities.VirtualOutcome(id, target), nil
		}
		return entities.DeferredOutcome(), nil
	}

	if r.config.catalog != nil {
		if hit, ok := r.config.catalog.Lookup(spec.Normalized); ok {
			target := entities.HostCapabilityTarget(hit.Path)
			id := r.config.registry.GetOrCreate(importerPath, spec.Raw, hit.VirtualID(), target)
			return entities.VirtualOutcome(id, target), nil
		}
	}

	// Alias and rooted spellings that miss the catalog are left to the
	// host; only relative imports continue to sibling resolution.
	if spec.Kind != entities.SpecifierRelative {
		return entities.DeferredOutcome(), nil
	}

	if path, ok := r.locateSibling(importerPath, spec.Raw); ok {
		rel, err := filepath.Rel(r.config.extensionsRoot, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			target := entities.RealFileTarget(path)
			id := r.config.registry.GetOrCreate(importerPath, spec.Raw,
				entities.ExtensionAssetID(filepath.ToSlash(rel)), target)
			return entities.VirtualOutcome(id, target), nil
		}
		r.config.logger.Warn("relative import escapes the extensions root, substituting stub",
			"importer", importerPath, "specifier", spec.Raw, "resolved", path)
	} else {
		r.config.logger.Warn("unresolved relative import, substituting stub",
			"importer", importerPath, "specifier", spec.Raw)
	}

	target := entities.StubTarget(spec.Raw)
	id := r.config.registry.GetOrCreate(importerPath, spec.Raw, entities.StubID(spec.Raw), target)
	return entities.VirtualOutcome(id, target), nil
}

// locateSibling resolves specifier against the importer's directory,
// probing the exact path first and then the known source extensions.
func (r *Resolver) locateSibling(importerPath, specifier string) (string, bool) {
	base := filepath.Join(filepath.Dir(importerPath), filepath.FromSlash(specifier))
	candidates := make([]string, 0, len(entities.ScriptExtensions)+1)
	candidates = append(candidates, base)
	for _, ext := range entities.ScriptExtensions {
		candidates = append(candidates, base+ext)
	}
	for _, c := range candidates {
		if r.config.files.Exists(c) {
			return c, true
		}
	}
	return "", false
}
