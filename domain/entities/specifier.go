package entities

import "strings"

// SpecifierKind classifies an import specifier as written in extension code.
type SpecifierKind int

const (
	// SpecifierBare is a package-style import ("react", "date-fns/format").
	SpecifierBare SpecifierKind = iota

	// SpecifierRelative is a path import ("./widget", "../lib/colors.ts").
	SpecifierRelative

	// SpecifierRooted is an absolute path import ("/src/components/ui/Button").
	SpecifierRooted

	// SpecifierAlias uses one of the host's import aliases ("@app/stores/appStore",
	// "@ui/Button"). Aliases are part of the host tree's import convention, so they
	// are resolved against the capability catalog rather than deferred.
	SpecifierAlias

	// SpecifierVirtual is an identifier this runtime synthesized earlier.
	SpecifierVirtual
)

// HostAliasPrefixes are the import aliases the host application configures for
// its own source tree. Extensions may use them to reach host capabilities.
var HostAliasPrefixes = []string{"@app/", "@ui/"}

// String returns the kind name for logging.
func (k SpecifierKind) String() string {
	switch k {
	case SpecifierBare:
		return "bare"
	case SpecifierRelative:
		return "relative"
	case SpecifierRooted:
		return "rooted"
	case SpecifierAlias:
		return "alias"
	case SpecifierVirtual:
		return "virtual"
	default:
		return "unknown"
	}
}

// ImportSpecifier is one import as encountered inside extension code.
type ImportSpecifier struct {
	// Raw is the specifier text exactly as written.
	Raw string

	// Normalized is the canonical comparison form (uniform separators,
	// known source extensions stripped).
	Normalized string

	// Kind is the structural classification of Raw.
	Kind SpecifierKind
}

// ClassifySpecifier determines the structural kind of a raw specifier.
func ClassifySpecifier(raw string) SpecifierKind {
	switch {
	case strings.HasPrefix(raw, PrefixHostCapability),
		strings.HasPrefix(raw, PrefixExtensionAsset),
		strings.HasPrefix(raw, PrefixStub):
		return SpecifierVirtual
	case strings.HasPrefix(raw, "./"), strings.HasPrefix(raw, "../"),
		raw == ".", raw == "..":
		return SpecifierRelative
	case strings.HasPrefix(raw, "/"):
		return SpecifierRooted
	default:
		for _, alias := range HostAliasPrefixes {
			if strings.HasPrefix(raw, alias) {
				return SpecifierAlias
			}
		}
		return SpecifierBare
	}
}
