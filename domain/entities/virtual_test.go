package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVirtualIDConstructors(t *testing.T) {
	assert.Equal(t, VirtualModuleID("plugin-host:Button.tsx"), HostCapabilityID("Button", ".tsx"))
	assert.Equal(t, VirtualModuleID("plugin-asset:/acme/timer/frontend/a.ts"), ExtensionAssetID("acme/timer/frontend/a.ts"))
	// A leading slash in rel must not double up.
	assert.Equal(t, VirtualModuleID("plugin-asset:/acme/timer/frontend/a.ts"), ExtensionAssetID("/acme/timer/frontend/a.ts"))
	assert.Equal(t, VirtualModuleID("plugin-stub:./missing"), StubID("./missing"))
}

func TestVirtualIDPredicates(t *testing.T) {
	host := HostCapabilityID("format", ".ts")
	asset := ExtensionAssetID("acme/timer/frontend/a.ts")
	stub := StubID("@app/nope")

	assert.True(t, host.IsHostCapability())
	assert.False(t, host.IsExtensionAsset())
	assert.False(t, host.IsStub())

	assert.True(t, asset.IsExtensionAsset())
	assert.False(t, asset.IsHostCapability())

	assert.True(t, stub.IsStub())
	assert.False(t, stub.IsExtensionAsset())
}
