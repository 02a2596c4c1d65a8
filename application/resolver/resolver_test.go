package resolver

import (
	"path/filepath"
	"testing"

	"github.com/chronolens/pluginhost/application/catalog"
	"github.com/chronolens/pluginhost/domain/entities"
	"github.com/chronolens/pluginhost/host/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// fakeChecker reports existence from a fixed set of paths.
type fakeChecker map[string]bool

func (f fakeChecker) Exists(path string) bool {
	return f[filepath.ToSlash(path)]
}

const (
	extRoot  = "/data/chronolens/extensions"
	importer = extRoot + "/acme/timer/frontend/index.tsx"
)

func newTestResolver(t *testing.T, files fakeChecker) (*Resolver, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	cat, err := catalog.NewCatalog(
		catalog.WithHostRoot("/host"),
		catalog.WithFileChecker(files),
	)
	require.NoError(t, err)
	r, err := NewResolver(
		WithRegistry(reg),
		WithCatalog(cat),
		WithFileChecker(files),
		WithExtensionsRoot(extRoot),
	)
	require.NoError(t, err)
	return r, reg
}

func TestNewResolver_RequiredOptions(t *testing.T) {
	_, err := NewResolver()
	require.Error(t, err)

	_, err = NewResolver(WithRegistry(registry.New()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extensions root")
}

func TestResolve_BareAlwaysDefers(t *testing.T) {
	r, reg := newTestResolver(t, fakeChecker{})

	for _, spec := range []string{"react", "date-fns/format", "@tanstack/react-query"} {
		out, err := r.Resolve(importer, spec)
		require.NoError(t, err)
		assert.True(t, out.Deferred, "bare specifier %q must defer", spec)
	}
	assert.Equal(t, 0, reg.Len(), "deferring must not register virtual modules")
}

func TestResolve_HostCapability(t *testing.T) {
	files := fakeChecker{"/host/src/utils/format.ts": true}
	r, reg := newTestResolver(t, files)

	out, err := r.Resolve(importer, "../utils/format")
	require.NoError(t, err)
	require.False(t, out.Deferred)
	assert.Equal(t, entities.VirtualModuleID("plugin-host:format.ts"), out.ID)
	assert.Equal(t, entities.TargetHostCapability, out.Target.Kind)
	assert.Equal(t, "/host/src/utils/format.ts", filepath.ToSlash(out.Target.Path))
	assert.Equal(t, 1, reg.Len())
}

func TestResolve_UIPrimitiveAlias(t *testing.T) {
	files := fakeChecker{"/host/src/components/ui/Button.tsx": true}
	r, _ := newTestResolver(t, files)

	out, err := r.Resolve(importer, "@ui/Button")
	require.NoError(t, err)
	require.False(t, out.Deferred)
	assert.Equal(t, entities.VirtualModuleID("plugin-host:Button.tsx"), out.ID)
}

func TestResolve_NormalizesBeforeCatalogLookup(t *testing.T) {
	files := fakeChecker{"/host/src/components/ui/Button.tsx": true}
	r, _ := newTestResolver(t, files)

	// The explicit extension is normalized away before the catalog sees
	// the specifier, so both spellings land on the same capability.
	for _, spec := range []string{"@ui/Button", "@ui/Button.tsx"} {
		out, err := r.Resolve(importer, spec)
		require.NoError(t, err)
		require.False(t, out.Deferred, "spelling %q must reach the catalog", spec)
		assert.Equal(t, entities.VirtualModuleID("plugin-host:Button.tsx"), out.ID)
	}
}

func TestResolve_SiblingFile(t *testing.T) {
	widget := extRoot + "/acme/timer/frontend/widget.tsx"
	files := fakeChecker{widget: true}
	r, _ := newTestResolver(t, files)

	out, err := r.Resolve(importer, "./widget")
	require.NoError(t, err)
	require.False(t, out.Deferred)
	assert.Equal(t, entities.TargetRealFile, out.Target.Kind)
	assert.Equal(t, widget, filepath.ToSlash(out.Target.Path))
	assert.Equal(t, entities.VirtualModuleID("plugin-asset:/acme/timer/frontend/widget.tsx"), out.ID)
}

func TestResolve_SiblingWithExplicitExtension(t *testing.T) {
	chart := extRoot + "/acme/timer/frontend/lib/chart.ts"
	files := fakeChecker{chart: true}
	r, _ := newTestResolver(t, files)

	out, err := r.Resolve(importer, "./lib/chart.ts")
	require.NoError(t, err)
	require.False(t, out.Deferred)
	assert.Equal(t, chart, filepath.ToSlash(out.Target.Path))
}

func TestResolve_MissingRelativeBecomesStub(t *testing.T) {
	r, _ := newTestResolver(t, fakeChecker{})

	out, err := r.Resolve(importer, "./does-not-exist")
	require.NoError(t, err, "unresolvable imports must not fail the caller")
	require.False(t, out.Deferred)
	assert.Equal(t, entities.TargetStub, out.Target.Kind)
	assert.Equal(t, "./does-not-exist", out.Target.Specifier)
	assert.Equal(t, entities.VirtualModuleID("plugin-stub:./does-not-exist"), out.ID)
}

func TestResolve_EscapingRelativeBecomesStub(t *testing.T) {
	outside := "/data/chronolens/secrets.ts"
	files := fakeChecker{outside: true}
	r, _ := newTestResolver(t, files)

	out, err := r.Resolve(importer, "../../../../secrets")
	require.NoError(t, err)
	require.False(t, out.Deferred)
	assert.Equal(t, entities.TargetStub, out.Target.Kind,
		"files outside the extensions root must never become real-file targets")
}

func TestResolve_RootedAndAliasMissesDefer(t *testing.T) {
	r, reg := newTestResolver(t, fakeChecker{})

	for _, spec := range []string{"/src/secret/thing", "@app/internal/db", "@ui/Nonexistent"} {
		out, err := r.Resolve(importer, spec)
		require.NoError(t, err)
		assert.True(t, out.Deferred, "catalog miss for %q should defer", spec)
	}
	assert.Equal(t, 0, reg.Len())
}

func TestResolve_Idempotent(t *testing.T) {
	files := fakeChecker{"/host/src/stores/appStore.ts": true}
	r, reg := newTestResolver(t, files)

	first, err := r.Resolve(importer, "@app/stores/appStore")
	require.NoError(t, err)
	second, err := r.Resolve(importer, "@app/stores/appStore")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, reg.Len())
}

func TestResolve_VirtualPassthrough(t *testing.T) {
	files := fakeChecker{"/host/src/utils/toast.ts": true}
	r, _ := newTestResolver(t, files)

	out, err := r.Resolve(importer, "../utils/toast")
	require.NoError(t, err)

	again, err := r.Resolve(importer, out.ID.String())
	require.NoError(t, err)
	assert.Equal(t, out.ID, again.ID)
	assert.Equal(t, out.Target, again.Target)
}

func TestResolve_MalformedImporter(t *testing.T) {
	r, _ := newTestResolver(t, fakeChecker{})

	_, err := r.Resolve("relative/importer.tsx", "./widget")
	require.Error(t, err)

	_, err = r.Resolve("", "./widget")
	require.Error(t, err)
}

func TestResolve_IdempotencePropertyBased(t *testing.T) {
	widget := extRoot + "/acme/timer/frontend/widget.tsx"
	files := fakeChecker{
		widget:                         true,
		"/host/src/utils/format.ts":    true,
		"/host/src/stores/appStore.ts": true,
	}
	r, _ := newTestResolver(t, files)

	specs := []string{"react", "./widget", "./missing", "../utils/format", "@app/stores/appStore", "/src/elsewhere"}
	rapid.Check(t, func(t *rapid.T) {
		spec := rapid.SampledFrom(specs).Draw(t, "spec")

		a, err := r.Resolve(importer, spec)
		require.NoError(t, err)
		b, err := r.Resolve(importer, spec)
		require.NoError(t, err)

		assert.Equal(t, a.Deferred, b.Deferred)
		assert.Equal(t, a.ID, b.ID)
		assert.Equal(t, a.Target, b.Target)
	})
}
