package entities

import "path/filepath"

// HostCapability is one host-provided module extensions may import by
// convention: the shared state store, formatting helpers, or a common UI
// primitive.
type HostCapability struct {
	// Name is the capability's fixed name ("appStore", "Button").
	Name string `json:"name"`

	// Path is the resolved host-tree source file backing the capability.
	Path string `json:"path"`
}

// VirtualID returns the session-stable identifier for the capability,
// keeping the backing file's extension so downstream transforms see the
// right source flavor.
func (c HostCapability) VirtualID() VirtualModuleID {
	return HostCapabilityID(c.Name, filepath.Ext(c.Path))
}
