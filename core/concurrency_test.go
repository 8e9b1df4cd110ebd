// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/core"
)

// ringNames returns "N0".."N{n-1}".
func ringNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("N%d", i)
	}

	return names
}

// TestConcurrentAddRoad ensures concurrent AddRoad calls on distinct pairs
// all land in the matrix.
func TestConcurrentAddRoad(t *testing.T) {
	const num = 100
	names := ringNames(num)
	g, err := core.NewGraph(names)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(i int) {
			defer wg.Done()
			// ring: Ni—N(i+1)
			require.NoError(t, g.AddRoad(names[i], names[(i+1)%num], int64(i+1)))
		}(i)
	}
	wg.Wait()

	require.Equal(t, num, g.RoadCount())
	require.Len(t, g.Roads(), num)
}

// TestConcurrentSnapshotAndAddRoad mixes writers and snapshot readers; every
// snapshot must be internally symmetric even while roads are being added.
func TestConcurrentSnapshotAndAddRoad(t *testing.T) {
	const num = 30
	names := ringNames(num)
	g, err := core.NewGraph(names)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2 * num)
	for i := 0; i < num; i++ {
		go func(i int) {
			defer wg.Done()
			_ = g.AddRoad(names[i], names[(i+7)%num], int64(i))
		}(i)
		go func() {
			defer wg.Done()
			s := g.Snapshot()
			for a := 0; a < s.Len(); a++ {
				for b := 0; b < s.Len(); b++ {
					if s.Weight(a, b) != s.Weight(b, a) {
						t.Errorf("asymmetric snapshot at (%d,%d)", a, b)

						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
