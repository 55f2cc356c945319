package models

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FilterPolicy decide qué archivos entran a la revisión según dos listas
// de globs. La lista de exclusión siempre gana sobre la de inclusión.
type FilterPolicy struct {
	Allow []string
	Deny  []string
}

// NewFilterPolicy construye la política a partir de listas separadas por coma.
// Una lista de inclusión vacía equivale a permitir todo.
func NewFilterPolicy(allowList, denyList string) FilterPolicy {
	allow := splitPatterns(allowList)
	if len(allow) == 0 {
		allow = []string{"**"}
	}
	return FilterPolicy{
		Allow: allow,
		Deny:  splitPatterns(denyList),
	}
}

// ShouldReview retorna true si el path matchea algún glob de inclusión
// y ninguno de exclusión.
func (f FilterPolicy) ShouldReview(path string) bool {
	for _, pattern := range f.Deny {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return false
		}
	}
	for _, pattern := range f.Allow {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

func splitPatterns(list string) []string {
	var patterns []string
	for _, p := range strings.Split(list, ",") {
		if cleaned := strings.TrimSpace(p); cleaned != "" {
			patterns = append(patterns, cleaned)
		}
	}
	return patterns
}
