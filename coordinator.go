// SPDX-License-Identifier: MIT
// Copyright (c) 2026 DocForge
// Source: github.com/docforge/mdxdoc

package mdxdoc

import (
	"fmt"
	"sync"
)

const (
	// defaultTypeAnalysisCapacity bounds the type analysis cache by default.
	defaultTypeAnalysisCapacity = 1000
	// defaultReferenceCapacity bounds the reference resolution cache by default.
	defaultReferenceCapacity = 500
)

// CacheOptions configures one cache inside the coordinator.
type CacheOptions struct {
	// MaxSize is the cache capacity; 0 selects the cache default.
	MaxSize int
	// Disabled turns the cache into an always-miss pass-through.
	Disabled bool
}

// CoordinatorOptions configures a cache coordinator.
type CoordinatorOptions struct {
	// Disabled turns both caches into always-miss pass-throughs.
	Disabled bool
	// TypeAnalysis configures the type analysis cache.
	TypeAnalysis CacheOptions
	// ReferenceResolution configures the reference resolution cache.
	ReferenceResolution CacheOptions
	// EnableStats turns aggregate statistics tracking on.
	EnableStats bool
}

// isZero reports whether options carry only default values.
func (options CoordinatorOptions) isZero() bool {
	return options == CoordinatorOptions{}
}

// DefaultCoordinatorOptions returns the default preset: 1000/500 with stats.
func DefaultCoordinatorOptions() CoordinatorOptions {
	return CoordinatorOptions{
		TypeAnalysis:        CacheOptions{MaxSize: defaultTypeAnalysisCapacity},
		ReferenceResolution: CacheOptions{MaxSize: defaultReferenceCapacity},
		EnableStats:         true,
	}
}

// DevelopmentCoordinatorOptions returns the development preset: 500/200 with stats.
func DevelopmentCoordinatorOptions() CoordinatorOptions {
	return CoordinatorOptions{
		TypeAnalysis:        CacheOptions{MaxSize: 500},
		ReferenceResolution: CacheOptions{MaxSize: 200},
		EnableStats:         true,
	}
}

// ProductionCoordinatorOptions returns the production preset: 2000/1000 without stats.
func ProductionCoordinatorOptions() CoordinatorOptions {
	return CoordinatorOptions{
		TypeAnalysis:        CacheOptions{MaxSize: 2000},
		ReferenceResolution: CacheOptions{MaxSize: 1000},
		EnableStats:         false,
	}
}

// CoordinatorStats aggregates counters across both coordinator caches.
type CoordinatorStats struct {
	// TypeAnalysis is the type analysis cache snapshot.
	TypeAnalysis CacheStats
	// ReferenceResolution is the reference resolution cache snapshot.
	ReferenceResolution CacheStats
	// HitRate is total hits over total lookups across both caches.
	HitRate float64
	// StatsEnabled reports whether aggregate tracking is turned on.
	StatsEnabled bool
}

// Coordinator owns the type analysis and reference resolution caches.
//
// Construct one per generation run with NewCoordinator, or share one across
// runs through SharedCoordinator.
type Coordinator struct {
	typeAnalysis *typeAnalysisCache
	references   *referenceCache
	enableStats  bool
	options      CoordinatorOptions
}

// NewCoordinator returns an isolated coordinator configured by options.
func NewCoordinator(options CoordinatorOptions) *Coordinator {
	typeCapacity := options.TypeAnalysis.MaxSize
	if typeCapacity <= 0 {
		typeCapacity = defaultTypeAnalysisCapacity
	}

	referenceCapacity := options.ReferenceResolution.MaxSize
	if referenceCapacity <= 0 {
		referenceCapacity = defaultReferenceCapacity
	}

	return &Coordinator{
		typeAnalysis: newTypeAnalysisCache(typeCapacity, !options.Disabled && !options.TypeAnalysis.Disabled),
		references:   newReferenceCache(referenceCapacity, !options.Disabled && !options.ReferenceResolution.Disabled),
		enableStats:  options.EnableStats,
		options:      options,
	}
}

// AnalyzeType returns cached type expression analysis.
func (coordinator *Coordinator) AnalyzeType(expression string) TypeInfo {
	return coordinator.typeAnalysis.Analyze(expression)
}

// ResolveReference returns cached symbolic reference resolution.
func (coordinator *Coordinator) ResolveReference(context *APIItem, reference string, resolve ResolveFunc) (*APIItem, bool) {
	return coordinator.references.Resolve(context, reference, resolve)
}

// ClearAll empties both caches and zeroes their counters.
func (coordinator *Coordinator) ClearAll() {
	coordinator.typeAnalysis.cache.Clear()
	coordinator.references.cache.Clear()
}

// Stats returns aggregate statistics across both caches.
//
// The aggregate hit rate is total hits over total lookups, not an average of
// per-cache rates.
func (coordinator *Coordinator) Stats() CoordinatorStats {
	stats := CoordinatorStats{
		TypeAnalysis:        coordinator.typeAnalysis.cache.Stats(),
		ReferenceResolution: coordinator.references.cache.Stats(),
		StatsEnabled:        coordinator.enableStats,
	}

	hits := stats.TypeAnalysis.Hits + stats.ReferenceResolution.Hits
	total := hits + stats.TypeAnalysis.Misses + stats.ReferenceResolution.Misses
	if total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}

	return stats
}

var (
	sharedMu          sync.Mutex
	sharedCoordinator *Coordinator
)

// SharedCoordinator returns the lazily constructed process-wide coordinator.
//
// The first call constructs it from options. Later calls return the same
// instance; passing non-default options different from the original ones is a
// configuration error. Prefer caller-owned NewCoordinator instances; the
// shared accessor exists for tools wiring one coordinator through independent
// generation passes.
func SharedCoordinator(options CoordinatorOptions) (*Coordinator, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedCoordinator == nil {
		if options.isZero() {
			options = DefaultCoordinatorOptions()
		}

		sharedCoordinator = NewCoordinator(options)
		return sharedCoordinator, nil
	}

	if !options.isZero() && options != sharedCoordinator.options {
		return nil, fmt.Errorf("%w: got %+v, want %+v", ErrCoordinatorConflict, options, sharedCoordinator.options)
	}

	return sharedCoordinator, nil
}

// ResetSharedCoordinator discards the process-wide coordinator instance.
func ResetSharedCoordinator() {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	sharedCoordinator = nil
}
