// SPDX-License-Identifier: MIT
// Copyright (c) 2026 DocForge
// Source: github.com/docforge/mdxdoc

package mdxdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinatorPresets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		options       CoordinatorOptions
		typeCapacity  int
		referenceSize int
		stats         bool
	}{
		{name: "default", options: DefaultCoordinatorOptions(), typeCapacity: 1000, referenceSize: 500, stats: true},
		{name: "development", options: DevelopmentCoordinatorOptions(), typeCapacity: 500, referenceSize: 200, stats: true},
		{name: "production", options: ProductionCoordinatorOptions(), typeCapacity: 2000, referenceSize: 1000, stats: false},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			coordinator := NewCoordinator(testCase.options)
			stats := coordinator.Stats()
			assert.Equal(t, testCase.typeCapacity, stats.TypeAnalysis.Capacity)
			assert.Equal(t, testCase.referenceSize, stats.ReferenceResolution.Capacity)
			assert.Equal(t, testCase.stats, stats.StatsEnabled)
			assert.True(t, stats.TypeAnalysis.Enabled, "presets must never disable caches")
			assert.True(t, stats.ReferenceResolution.Enabled, "presets must never disable caches")
		})
	}
}

func TestCoordinatorAggregateHitRateUsesTotals(t *testing.T) {
	t.Parallel()

	coordinator := NewCoordinator(DefaultCoordinatorOptions())

	// Type analysis: 1 miss then 3 hits (per-cache rate 0.75).
	for i := 0; i < 4; i++ {
		coordinator.AnalyzeType("string")
	}

	// Reference resolution: 2 misses (per-cache rate 0).
	coordinator.ResolveReference(nil, "a.B", nil)
	coordinator.ResolveReference(nil, "c.D", nil)

	stats := coordinator.Stats()
	require.Equal(t, uint64(3), stats.TypeAnalysis.Hits)
	require.Equal(t, uint64(1), stats.TypeAnalysis.Misses)
	require.Equal(t, uint64(2), stats.ReferenceResolution.Misses)

	// Total hits over total lookups, not the 0.375 average of per-cache rates.
	assert.InDelta(t, 0.5, stats.HitRate, 1e-9)
}

func TestCoordinatorClearAll(t *testing.T) {
	t.Parallel()

	coordinator := NewCoordinator(DefaultCoordinatorOptions())
	coordinator.AnalyzeType("string")
	coordinator.ResolveReference(nil, "a.B", func(_ *APIItem, _ string) (*APIItem, bool) {
		return &APIItem{Name: "B"}, true
	})

	coordinator.ClearAll()

	stats := coordinator.Stats()
	assert.Zero(t, stats.TypeAnalysis.Size)
	assert.Zero(t, stats.ReferenceResolution.Size)
	assert.Zero(t, stats.HitRate)
}

func TestCoordinatorDisabledCachesPassThrough(t *testing.T) {
	t.Parallel()

	coordinator := NewCoordinator(CoordinatorOptions{Disabled: true})
	coordinator.AnalyzeType("string")
	coordinator.AnalyzeType("string")

	stats := coordinator.Stats()
	assert.Zero(t, stats.TypeAnalysis.Hits, "disabled cache must always miss")
	assert.Equal(t, uint64(2), stats.TypeAnalysis.Misses)
}

func TestSharedCoordinatorReturnsSameInstance(t *testing.T) {
	ResetSharedCoordinator()
	t.Cleanup(ResetSharedCoordinator)

	first, err := SharedCoordinator(CoordinatorOptions{})
	require.NoError(t, err)

	second, err := SharedCoordinator(CoordinatorOptions{})
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSharedCoordinatorConflictingOptionsFail(t *testing.T) {
	ResetSharedCoordinator()
	t.Cleanup(ResetSharedCoordinator)

	_, err := SharedCoordinator(DefaultCoordinatorOptions())
	require.NoError(t, err)

	_, err = SharedCoordinator(ProductionCoordinatorOptions())
	require.ErrorIs(t, err, ErrCoordinatorConflict)
}

func TestSharedCoordinatorMatchingOptionsSucceed(t *testing.T) {
	ResetSharedCoordinator()
	t.Cleanup(ResetSharedCoordinator)

	first, err := SharedCoordinator(DevelopmentCoordinatorOptions())
	require.NoError(t, err)

	second, err := SharedCoordinator(DevelopmentCoordinatorOptions())
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSharedCoordinatorResetAllowsReconfiguration(t *testing.T) {
	ResetSharedCoordinator()
	t.Cleanup(ResetSharedCoordinator)

	first, err := SharedCoordinator(DefaultCoordinatorOptions())
	require.NoError(t, err)

	ResetSharedCoordinator()

	second, err := SharedCoordinator(ProductionCoordinatorOptions())
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}
