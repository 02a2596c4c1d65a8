// Package rewrite provides the default code transformer: it scans extension
// source for import specifiers, resolves each through the specifier
// resolver, and rewrites resolvable ones to virtual-module URLs. The host
// application may inject its own transformer instead; this one keeps the
// development flow complete without external tooling.
package rewrite

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/chronolens/pluginhost/domain/entities"
	"github.com/chronolens/pluginhost/domain/ports"
)

// DefaultServePrefix is where the code server exposes virtual modules.
const DefaultServePrefix = "/plugins/-/v/"

// transformerConfig holds configuration for the Transformer.
type transformerConfig struct {
	resolver       ports.SpecifierResolver
	extensionsRoot string
	servePrefix    string
	logger         *slog.Logger
}

func defaultTransformerConfig() transformerConfig {
	return transformerConfig{
		servePrefix: DefaultServePrefix,
		logger:      slog.Default(),
	}
}

// TransformerOption configures a Transformer instance.
type TransformerOption func(*transformerConfig)

// WithResolver sets the specifier resolver. Required.
func WithResolver(r ports.SpecifierResolver) TransformerOption {
	return func(c *transformerConfig) {
		c.resolver = r
	}
}

// WithExtensionsRoot sets the extensions installation root, used to map
// virtual asset identifiers back to importer paths. Required.
func WithExtensionsRoot(root string) TransformerOption {
	return func(c *transformerConfig) {
		c.extensionsRoot = root
	}
}

// WithServePrefix overrides the URL prefix rewritten specifiers point at.
func WithServePrefix(prefix string) TransformerOption {
	return func(c *transformerConfig) {
		c.servePrefix = prefix
	}
}

// WithLogger sets the transformer's logger.
func WithLogger(l *slog.Logger) TransformerOption {
	return func(c *transformerConfig) {
		c.logger = l
	}
}

// Transformer implements ports.CodeTransformer by specifier rewriting.
type Transformer struct {
	config transformerConfig
}

// NewTransformer creates a Transformer with the given options.
func NewTransformer(opts ...TransformerOption) (*Transformer, error) {
	cfg := defaultTransformerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.resolver == nil {
		return nil, fmt.Errorf("rewrite: specifier resolver is required")
	}
	if cfg.extensionsRoot == "" {
		return nil, fmt.Errorf("rewrite: extensions root is required")
	}
	return &Transformer{config: cfg}, nil
}

var _ ports.CodeTransformer = (*Transformer)(nil)

// Transform rewrites every resolvable import specifier in source to the
// URL of its virtual module. Deferred (bare) specifiers are left exactly
// as written. Only extension assets are rewritten; host capability and
// stub sources pass through untouched.
func (t *Transformer) Transform(ctx context.Context, id entities.VirtualModuleID, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	importer, ok := t.importerPathFor(id)
	if !ok {
		return source, nil
	}

	spans := scanSpecifiers(source)
	if len(spans) == 0 {
		return source, nil
	}

	// Splice back to front so earlier offsets stay valid.
	out := source
	for i := len(spans) - 1; i >= 0; i-- {
		sp := spans[i]
		outcome, err := t.config.resolver.Resolve(importer, sp.text)
		if err != nil {
			return "", fmt.Errorf("rewrite: resolving %q in %s: %w", sp.text, id, err)
		}
		if outcome.Deferred {
			continue
		}
		replacement := t.config.servePrefix + url.PathEscape(outcome.ID.String())
		out = out[:sp.start] + replacement + out[sp.end:]
	}

	t.config.logger.Debug("transformed extension source",
		"module", id, "imports", len(spans))
	return out, nil
}

// importerPathFor maps a virtual asset identifier back to its on-disk
// path. Other identifier kinds are not importers we rewrite.
func (t *Transformer) importerPathFor(id entities.VirtualModuleID) (string, bool) {
	if !id.IsExtensionAsset() {
		return "", false
	}
	rel := strings.TrimPrefix(id.String(), entities.PrefixExtensionAsset)
	return filepath.Join(t.config.extensionsRoot, filepath.FromSlash(rel)), true
}
