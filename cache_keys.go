// SPDX-License-Identifier: MIT
// Copyright (c) 2026 DocForge
// Source: github.com/docforge/mdxdoc

package mdxdoc

import "strings"

// typePlaceholder is substituted for blank type expressions in property tables.
const typePlaceholder = "unknown"

// TypeInfo is the cached analysis of one literal type expression.
type TypeInfo struct {
	// Raw is the trimmed source type expression.
	Raw string
	// Display is the normalized expression used in rendered output.
	Display string
	// Optional reports whether the expression carries an optional marker suffix.
	Optional bool
	// Union reports whether the expression is a top-level union of alternatives.
	Union bool
}

// typeAnalysisCache memoizes type expression analysis behind an LRU cache.
type typeAnalysisCache struct {
	cache *lruCache
}

// newTypeAnalysisCache returns a type analysis cache with fixed capacity.
func newTypeAnalysisCache(capacity int, enabled bool) *typeAnalysisCache {
	return &typeAnalysisCache{cache: newLRUCache(capacity, enabled)}
}

// Analyze returns cached or freshly computed analysis for one type expression.
//
// Keys are the trimmed literal expression, exact and case-sensitive.
func (analysis *typeAnalysisCache) Analyze(expression string) TypeInfo {
	key := strings.TrimSpace(expression)
	if cached, ok := analysis.cache.Get(key); ok {
		return cached.(TypeInfo)
	}

	info := analyzeTypeExpression(key)
	analysis.cache.Set(key, info)
	return info
}

// analyzeTypeExpression normalizes one trimmed type expression.
func analyzeTypeExpression(expression string) TypeInfo {
	info := TypeInfo{Raw: expression}

	display := expression
	if strings.HasSuffix(display, "?") {
		info.Optional = true
		display = strings.TrimSpace(strings.TrimSuffix(display, "?"))
	}

	if display == "" {
		display = typePlaceholder
	}

	info.Union = topLevelUnion(display)
	info.Display = display
	return info
}

// topLevelUnion reports whether expression contains a union separator outside brackets.
func topLevelUnion(expression string) bool {
	depth := 0
	for _, r := range expression {
		switch r {
		case '<', '(', '[', '{':
			depth++
		case '>', ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case '|':
			if depth == 0 {
				return true
			}
		}
	}

	return false
}

// ResolveFunc performs real reference resolution against the API model.
type ResolveFunc func(context *APIItem, reference string) (*APIItem, bool)

// referenceResolution is one cached resolution outcome, including failures.
type referenceResolution struct {
	target   *APIItem
	resolved bool
}

// referenceCache memoizes symbolic reference resolution behind an LRU cache.
type referenceCache struct {
	cache *lruCache
}

// newReferenceCache returns a reference resolution cache with fixed capacity.
func newReferenceCache(capacity int, enabled bool) *referenceCache {
	return &referenceCache{cache: newLRUCache(capacity, enabled)}
}

// Resolve returns cached or freshly resolved target for one reference.
//
// Keys are the composite of context identity and raw reference text, which is
// cheaper than serializing the full context and unique for one API model.
// Resolution is idempotent under repeated identical keys within one run.
func (references *referenceCache) Resolve(context *APIItem, reference string, resolve ResolveFunc) (*APIItem, bool) {
	key := context.Identity() + "\x00" + reference
	if cached, ok := references.cache.Get(key); ok {
		outcome := cached.(referenceResolution)
		return outcome.target, outcome.resolved
	}

	if resolve == nil {
		references.cache.Set(key, referenceResolution{})
		return nil, false
	}

	target, ok := resolve(context, reference)
	references.cache.Set(key, referenceResolution{target: target, resolved: ok})
	return target, ok
}
