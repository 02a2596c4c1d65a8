// Package stubgen synthesizes inert placeholder modules for imports that
// could not be resolved. Rather than failing a whole extension at load time
// because an optional helper is missing, the runtime substitutes a module
// whose exports look empty and not-loading to the consuming code.
package stubgen

import (
	"fmt"
	"strings"
	"unicode"
)

// Rule pairs a predicate with a generator. Rules are pure functions of the
// specifier and are tried in order; the first match produces the stub body.
type Rule struct {
	// Name identifies the rule in logs and tests.
	Name string

	// Matches reports whether this rule applies to the specifier.
	Matches func(spec Spec) bool

	// Generate produces the stub module source.
	Generate func(spec Spec) string
}

// Spec is the parsed form of an unresolved specifier handed to rules.
type Spec struct {
	// Raw is the original specifier text.
	Raw string

	// Segments are the slash-separated path segments of Raw.
	Segments []string

	// Base is the final segment with any extension removed.
	Base string
}

// ParseSpec splits a raw specifier for rule evaluation.
func ParseSpec(raw string) Spec {
	s := strings.ReplaceAll(raw, "\\", "/")
	segments := strings.Split(strings.Trim(s, "/"), "/")
	base := segments[len(segments)-1]
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return Spec{Raw: raw, Segments: segments, Base: base}
}

// Synthesize produces the placeholder module body for an unresolved
// specifier. Pure: the same specifier always yields the same text.
func Synthesize(originalSpecifier string) string {
	spec := ParseSpec(originalSpecifier)
	for _, rule := range DefaultRules() {
		if rule.Matches(spec) {
			return rule.Generate(spec)
		}
	}
	// The generic rule matches everything; unreachable.
	return genericStub(spec)
}

// DefaultRules returns the ordered rule list: data-fetching hooks, backend
// service bindings, hook-named files, then the generic fallback.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "data-hooks",
			Matches:  func(s Spec) bool { return hasSegment(s, "hooks") },
			Generate: hookStubFor,
		},
		{
			Name: "service-bindings",
			Matches: func(s Spec) bool {
				return hasSegment(s, "api") || hasSegment(s, "services")
			},
			Generate: func(s Spec) string {
				return "export const api = {};\nexport default {};\n"
			},
		},
		{
			Name:     "hook-named-file",
			Matches:  func(s Spec) bool { return isHookName(s.Base) },
			Generate: hookStubFor,
		},
		{
			Name:     "generic",
			Matches:  func(s Spec) bool { return true },
			Generate: genericStub,
		},
	}
}

func hasSegment(s Spec, name string) bool {
	// The final segment is the module itself, not a directory marker.
	for _, seg := range s.Segments[:max(len(s.Segments)-1, 0)] {
		if seg == name {
			return true
		}
	}
	return false
}

// isHookName reports whether name follows the React hook convention:
// a "use" prefix followed by an upper-case letter.
func isHookName(name string) bool {
	if !strings.HasPrefix(name, "use") || len(name) < 4 {
		return false
	}
	return unicode.IsUpper(rune(name[3]))
}

// hookStubFor emits a single hook returning an empty, settled query shape.
func hookStubFor(s Spec) string {
	name := s.Base
	if !isHookName(name) {
		name = "use" + capitalize(Identifier(name))
	}
	return fmt.Sprintf("export function %s() {\n  return { data: [], isLoading: false, error: null };\n}\n", name)
}

func genericStub(s Spec) string {
	name := Identifier(s.Base)
	return fmt.Sprintf("export const %s = {};\nexport default %s;\n", name, name)
}

// Identifier derives a JavaScript identifier from a base filename:
// non-alphanumeric runs become camel-case boundaries, and a leading digit
// gets an underscore prefix.
func Identifier(base string) string {
	var b strings.Builder
	upperNext := false
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			if upperNext {
				b.WriteRune(unicode.ToUpper(r))
				upperNext = false
			} else {
				b.WriteRune(r)
			}
		default:
			if b.Len() > 0 {
				upperNext = true
			}
		}
	}
	out := b.String()
	if out == "" {
		return "stub"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
