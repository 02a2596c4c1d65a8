package stubgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSynthesize(t *testing.T) {
	tests := []struct {
		name      string
		specifier string
		contains  []string
	}{
		{
			name:      "data hook gets hook export",
			specifier: "../hooks/useActivities",
			contains:  []string{"export function useActivities()", "data: []", "isLoading: false", "error: null"},
		},
		{
			name:      "data hook without use prefix gains it",
			specifier: "./hooks/activities",
			contains:  []string{"export function useActivities()"},
		},
		{
			name:      "api binding gets aggregate and default",
			specifier: "../api/client",
			contains:  []string{"export const api = {};", "export default {};"},
		},
		{
			name:      "services binding",
			specifier: "../../services/tracker",
			contains:  []string{"export const api = {};"},
		},
		{
			name:      "hook-named file outside hooks dir",
			specifier: "./useTimer",
			contains:  []string{"export function useTimer()", "isLoading: false"},
		},
		{
			name:      "generic fallback exports base filename",
			specifier: "./helpers/colors",
			contains:  []string{"export const colors = {};", "export default colors;"},
		},
		{
			name:      "generic with extension stripped",
			specifier: "./theme-tokens.ts",
			contains:  []string{"export const themeTokens = {};"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Synthesize(tt.specifier)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	assert.Equal(t, Synthesize("./useTimer"), Synthesize("./useTimer"))
}

func TestSynthesize_HooksRuleWinsOverHookName(t *testing.T) {
	// Both the data-hooks rule and the hook-named-file rule would match;
	// order says data-hooks wins, and both emit the same hook shape.
	got := Synthesize("../hooks/useSettings")
	assert.Contains(t, got, "export function useSettings()")
}

func TestDefaultRules_Order(t *testing.T) {
	rules := DefaultRules()
	require.Len(t, rules, 4)
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"data-hooks", "service-bindings", "hook-named-file", "generic"}, names)

	// The fallback must match anything.
	assert.True(t, rules[3].Matches(ParseSpec("")))
	assert.True(t, rules[3].Matches(ParseSpec("./whatever")))
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"colors", "colors"},
		{"theme-tokens", "themeTokens"},
		{"my_helper", "myHelper"},
		{"3d-utils", "_3dUtils"},
		{"", "stub"},
		{"---", "stub"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Identifier(tt.in), "Identifier(%q)", tt.in)
	}
}

func TestSynthesize_AlwaysProducesAnExport(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.String().Draw(t, "raw")
		got := Synthesize(raw)
		assert.True(t, strings.Contains(got, "export "),
			"stub for %q should export something: %q", raw, got)
	})
}
