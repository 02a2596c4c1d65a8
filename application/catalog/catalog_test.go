package catalog

import (
	"path/filepath"
	"testing"

	"github.com/chronolens/pluginhost/domain/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChecker reports existence from a fixed set of paths.
type fakeChecker map[string]bool

func (f fakeChecker) Exists(path string) bool {
	return f[filepath.ToSlash(path)]
}

func newTestCatalog(t *testing.T, files fakeChecker) *Catalog {
	t.Helper()
	c, err := NewCatalog(
		WithHostRoot("/host"),
		WithFileChecker(ports.FileChecker(files)),
	)
	require.NoError(t, err)
	return c
}

func TestNewCatalog_RequiresHostRoot(t *testing.T) {
	_, err := NewCatalog()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host root")
}

func TestLookup_Spellings(t *testing.T) {
	files := fakeChecker{
		"/host/src/stores/appStore.ts":     true,
		"/host/src/utils/format.ts":        true,
		"/host/src/components/ui/Button.tsx": true,
	}
	c := newTestCatalog(t, files)

	tests := []struct {
		name       string
		normalized string
		wantName   string
		wantPath   string
	}{
		{"store root absolute", "/src/stores/appStore", "appStore", "/host/src/stores/appStore.ts"},
		{"store one level up", "../stores/appStore", "appStore", "/host/src/stores/appStore.ts"},
		{"store two levels up", "../../stores/appStore", "appStore", "/host/src/stores/appStore.ts"},
		{"store alias", "@app/stores/appStore", "appStore", "/host/src/stores/appStore.ts"},
		{"format helper", "../utils/format", "format", "/host/src/utils/format.ts"},
		{"ui primitive alias", "@ui/Button", "Button", "/host/src/components/ui/Button.tsx"},
		{"ui primitive relative", "../components/ui/Button", "Button", "/host/src/components/ui/Button.tsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := c.Lookup(tt.normalized)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, hit.Name)
			assert.Equal(t, tt.wantPath, filepath.ToSlash(hit.Path))
		})
	}
}

func TestLookup_Misses(t *testing.T) {
	files := fakeChecker{
		"/host/src/stores/appStore.ts": true,
	}
	c := newTestCatalog(t, files)

	tests := []struct {
		name       string
		normalized string
	}{
		{"unknown capability", "../stores/otherStore"},
		{"bare package", "react"},
		{"sibling file", "./widget"},
		{"known name but file missing", "../utils/toast"},
		{"raw with extension not normalized", "../stores/appStore.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := c.Lookup(tt.normalized)
			assert.False(t, ok)
		})
	}
}

func TestLookup_ExistenceRecheckedPerCall(t *testing.T) {
	files := fakeChecker{}
	c := newTestCatalog(t, files)

	_, ok := c.Lookup("@ui/Button")
	assert.False(t, ok)

	// The file appears on disk between calls; the catalog must see it.
	files["/host/src/components/ui/Button.tsx"] = true
	hit, ok := c.Lookup("@ui/Button")
	require.True(t, ok)
	assert.Equal(t, "Button", hit.Name)
}

func TestProbe_ByName(t *testing.T) {
	files := fakeChecker{
		"/host/src/utils/format.ts": true,
	}
	c := newTestCatalog(t, files)

	hit, ok := c.Probe("format")
	require.True(t, ok)
	assert.Equal(t, "/host/src/utils/format.ts", filepath.ToSlash(hit.Path))

	_, ok = c.Probe("toast")
	assert.False(t, ok)

	_, ok = c.Probe("nonexistent")
	assert.False(t, ok)
}

func TestNames_SortedAndFixed(t *testing.T) {
	c := newTestCatalog(t, fakeChecker{})
	names := c.Names()
	assert.Equal(t, []string{
		"Badge", "Button", "Card", "Dialog", "Input",
		"Select", "Spinner", "Tooltip", "appStore", "format", "toast",
	}, names)
}

func TestEntrySchema(t *testing.T) {
	schema, err := EntrySchema()
	require.NoError(t, err)
	assert.Contains(t, string(schema), `"name"`)
	assert.Contains(t, string(schema), `"path"`)
}
