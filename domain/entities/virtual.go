package entities

import "strings"

// Virtual module identifier prefixes. Identifiers are session-stable: the same
// (importer, specifier) pair always maps to the same identifier until the
// development session ends.
const (
	// PrefixHostCapability identifies a module backed by the host source tree.
	PrefixHostCapability = "plugin-host:"

	// PrefixExtensionAsset identifies a file inside an extension's own
	// installation directory. The remainder is the path relative to the
	// extensions root, always with a leading slash.
	PrefixExtensionAsset = "plugin-asset:/"

	// PrefixStub identifies a synthesized placeholder for an import that
	// could not be resolved. The remainder is the original specifier text.
	PrefixStub = "plugin-stub:"
)

// VirtualModuleID is a synthesized identifier standing in for a resolution
// result. IDs are created on first resolution of an (importer, specifier)
// pair and never mutated afterwards.
type VirtualModuleID string

// HostCapabilityID builds the virtual identifier for a host capability.
// ext carries the dot ("Button", ".tsx" -> "plugin-host:Button.tsx").
func HostCapabilityID(name, ext string) VirtualModuleID {
	return VirtualModuleID(PrefixHostCapability + name + ext)
}

// ExtensionAssetID builds the virtual identifier for a file under the
// extensions root. rel must use forward slashes and no leading slash.
func ExtensionAssetID(rel string) VirtualModuleID {
	return VirtualModuleID(PrefixExtensionAsset + strings.TrimPrefix(rel, "/"))
}

// StubID builds the virtual identifier for an unresolvable import,
// preserving the original specifier text.
func StubID(rawSpecifier string) VirtualModuleID {
	return VirtualModuleID(PrefixStub + rawSpecifier)
}

// IsHostCapability reports whether the identifier names a host capability.
func (id VirtualModuleID) IsHostCapability() bool {
	return strings.HasPrefix(string(id), PrefixHostCapability)
}

// IsExtensionAsset reports whether the identifier names an extension file.
func (id VirtualModuleID) IsExtensionAsset() bool {
	return strings.HasPrefix(string(id), PrefixExtensionAsset)
}

// IsStub reports whether the identifier names a synthesized stub.
func (id VirtualModuleID) IsStub() bool {
	return strings.HasPrefix(string(id), PrefixStub)
}

// String returns the identifier text.
func (id VirtualModuleID) String() string {
	return string(id)
}
