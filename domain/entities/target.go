package entities

// TargetKind discriminates the resolution target union.
type TargetKind int

const (
	// TargetRealFile is a file inside the importing extension's directory.
	TargetRealFile TargetKind = iota

	// TargetHostCapability is a module inside the host source tree.
	TargetHostCapability

	// TargetStub is a synthesized placeholder for an unresolvable import.
	TargetStub
)

// String returns the kind name for logging.
func (k TargetKind) String() string {
	switch k {
	case TargetRealFile:
		return "real-file"
	case TargetHostCapability:
		return "host-capability"
	case TargetStub:
		return "stub"
	default:
		return "unknown"
	}
}

// ResolutionTarget is what a virtual module identifier stands for.
// Exactly one of Path or Specifier is meaningful, selected by Kind:
// real files and host capabilities carry an on-disk path, stubs carry
// the original specifier text the placeholder was synthesized for.
type ResolutionTarget struct {
	Kind      TargetKind
	Path      string
	Specifier string
}

// RealFileTarget binds a virtual module to a file in the extension directory.
func RealFileTarget(path string) ResolutionTarget {
	return ResolutionTarget{Kind: TargetRealFile, Path: path}
}

// HostCapabilityTarget binds a virtual module to a host source file.
func HostCapabilityTarget(path string) ResolutionTarget {
	return ResolutionTarget{Kind: TargetHostCapability, Path: path}
}

// StubTarget binds a virtual module to a synthesized placeholder.
func StubTarget(originalSpecifier string) ResolutionTarget {
	return ResolutionTarget{Kind: TargetStub, Specifier: originalSpecifier}
}

// ResolutionOutcome is the result of resolving one import specifier.
// A deferred outcome means the specifier was left for the host's ordinary
// dependency mechanism; otherwise ID names a registered virtual module.
type ResolutionOutcome struct {
	Deferred bool
	ID       VirtualModuleID
	Target   ResolutionTarget
}

// DeferredOutcome reports that the resolver did not intervene.
func DeferredOutcome() ResolutionOutcome {
	return ResolutionOutcome{Deferred: true}
}

// VirtualOutcome reports a registered virtual module.
func VirtualOutcome(id VirtualModuleID, target ResolutionTarget) ResolutionOutcome {
	return ResolutionOutcome{ID: id, Target: target}
}
