package rewrite

import (
	"regexp"
	"sort"
)

// span is one quoted specifier found in source text, by byte offsets.
type span struct {
	start int
	end   int
	text  string
}

// specifierPatterns recognize the places import specifiers appear in
// script source: dynamic import(), static import ... from, re-exports,
// and side-effect imports. This is a string scan, not a parser; a
// specifier-looking string inside a comment is scanned too, which is
// acceptable for a development server.
var specifierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bimport\s*\(\s*['"]([^'"\n]+)['"]\s*\)`),
	regexp.MustCompile(`\bimport\s+[^'";]*?\bfrom\s*['"]([^'"\n]+)['"]`),
	regexp.MustCompile(`\bexport\s+[^'";]*?\bfrom\s*['"]([^'"\n]+)['"]`),
	regexp.MustCompile(`\bimport\s*['"]([^'"\n]+)['"]`),
}

// scanSpecifiers returns every import specifier in source with its byte
// range, sorted by position and deduplicated.
func scanSpecifiers(source string) []span {
	var spans []span
	seen := make(map[int]bool)
	for _, pat := range specifierPatterns {
		for _, m := range pat.FindAllStringSubmatchIndex(source, -1) {
			start, end := m[2], m[3]
			if start < 0 || seen[start] {
				continue
			}
			seen[start] = true
			spans = append(spans, span{start: start, end: end, text: source[start:end]})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	return spans
}
