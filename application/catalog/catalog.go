// Package catalog maps recognized import specifier shapes to host-provided
// modules: the shared state store, formatting and toast helpers, and a fixed
// set of common UI primitives.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chronolens/pluginhost/domain/entities"
	"github.com/chronolens/pluginhost/domain/ports"
)

// sourceProbeExtensions are tried, in order, when checking whether a
// capability's backing file exists.
var sourceProbeExtensions = []string{".ts", ".tsx"}

// entry is one fixed capability: its name, its host-tree location relative
// to the host source root, and whether it is a UI primitive (which selects
// the "@ui/" alias instead of "@app/").
type entry struct {
	name string
	rel  string
	ui   bool
}

// capabilityTable enumerates everything extensions may import from the host.
// The list is fixed for a host release; there is no runtime registration.
var capabilityTable = []entry{
	{name: "appStore", rel: "src/stores/appStore"},
	{name: "format", rel: "src/utils/format"},
	{name: "toast", rel: "src/utils/toast"},
	{name: "Button", rel: "src/components/ui/Button", ui: true},
	{name: "Card", rel: "src/components/ui/Card", ui: true},
	{name: "Dialog", rel: "src/components/ui/Dialog", ui: true},
	{name: "Input", rel: "src/components/ui/Input", ui: true},
	{name: "Select", rel: "src/components/ui/Select", ui: true},
	{name: "Badge", rel: "src/components/ui/Badge", ui: true},
	{name: "Tooltip", rel: "src/components/ui/Tooltip", ui: true},
	{name: "Spinner", rel: "src/components/ui/Spinner", ui: true},
}

// catalogConfig holds configuration for the Catalog.
type catalogConfig struct {
	hostRoot string
	files    ports.FileChecker
}

func defaultCatalogConfig() catalogConfig {
	return catalogConfig{
		files: ports.FileCheckerFunc(func(path string) bool {
			info, err := os.Stat(path)
			return err == nil && info.Mode().IsRegular()
		}),
	}
}

// CatalogOption configures a Catalog instance.
type CatalogOption func(*catalogConfig)

// WithHostRoot sets the host application's source root directory.
func WithHostRoot(root string) CatalogOption {
	return func(c *catalogConfig) {
		c.hostRoot = root
	}
}

// WithFileChecker sets the existence probe. Tests inject fakes here.
func WithFileChecker(fc ports.FileChecker) CatalogOption {
	return func(c *catalogConfig) {
		c.files = fc
	}
}

// Catalog implements ports.CapabilityCatalog over the fixed table.
// Spellings are precomputed at construction; existence is re-checked on
// every lookup so the catalog tracks the live host tree.
type Catalog struct {
	config    catalogConfig
	spellings map[string]entry // normalized spelling -> capability
	names     []string         // sorted
}

// NewCatalog creates a Catalog with the given options. The host root is
// required; everything else has defaults.
func NewCatalog(opts ...CatalogOption) (*Catalog, error) {
	cfg := defaultCatalogConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hostRoot == "" {
		return nil, fmt.Errorf("catalog: host root is required")
	}

	spellings := make(map[string]entry)
	names := make([]string, 0, len(capabilityTable))
	for _, e := range capabilityTable {
		for _, s := range spellingsFor(e) {
			spellings[s] = e
		}
		names = append(names, e.name)
	}
	sort.Strings(names)

	return &Catalog{config: cfg, spellings: spellings, names: names}, nil
}

// spellingsFor enumerates the accepted ways to write an import of e:
// root-absolute, one- and two-level relative, and the bare alias.
func spellingsFor(e entry) []string {
	sub := strings.TrimPrefix(e.rel, "src/")
	alias := "@app/" + sub
	if e.ui {
		alias = "@ui/" + e.name
	}
	return []string{
		"/" + e.rel,
		"../" + sub,
		"../../" + sub,
		alias,
	}
}

// Lookup matches a normalized specifier against the table. A hit is
// returned only if the backing host file currently exists; the check runs
// per call, never cached. A miss is not an error.
func (c *Catalog) Lookup(normalized string) (entities.HostCapability, bool) {
	e, ok := c.spellings[normalized]
	if !ok {
		return entities.HostCapability{}, false
	}
	base := filepath.Join(c.config.hostRoot, filepath.FromSlash(e.rel))
	for _, ext := range sourceProbeExtensions {
		if path := base + ext; c.config.files.Exists(path) {
			return entities.HostCapability{Name: e.name, Path: path}, true
		}
	}
	return entities.HostCapability{}, false
}

// Probe looks a capability up by name rather than by import spelling, with
// the same live existence check as Lookup. The CLI uses it to report which
// capabilities are currently backed by host files.
func (c *Catalog) Probe(name string) (entities.HostCapability, bool) {
	for _, e := range capabilityTable {
		if e.name != name {
			continue
		}
		base := filepath.Join(c.config.hostRoot, filepath.FromSlash(e.rel))
		for _, ext := range sourceProbeExtensions {
			if path := base + ext; c.config.files.Exists(path) {
				return entities.HostCapability{Name: e.name, Path: path}, true
			}
		}
		break
	}
	return entities.HostCapability{}, false
}

// Names returns the fixed capability names, sorted.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}
