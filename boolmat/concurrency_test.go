// SPDX-License-Identifier: MIT

// Package boolmat_test verifies the documented external-serialization
// contract: Matrix has no internal locking, and one packed byte carries the
// state of up to four logical cells, so even writes to logically distinct
// cells must be serialized by the caller. Run with -race.
package boolmat_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/quadbool/boolmat"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestExternalSerialization_SharedPackedCell mutates the four logical cells
// sharing packed coordinate (0,0) from four goroutines behind a caller-held
// mutex. Each goroutine toggles its cell an even number of times and finally
// sets it true, so the deterministic end state is all four cells true.
func TestExternalSerialization_SharedPackedCell(t *testing.T) {
	m, err := boolmat.New(6)
	require.NoError(t, err)

	// One coordinate per domain, all backed by the same packed byte.
	shared := [][2]int{{0, 0}, {3, 0}, {0, 3}, {3, 3}}
	const rounds = 100

	var mu sync.Mutex
	var g errgroup.Group
	for _, xy := range shared {
		x, y := xy[0], xy[1]
		g.Go(func() error {
			for r := 0; r < rounds; r++ {
				mu.Lock()
				if err := m.Toggle(x, y); err != nil {
					mu.Unlock()

					return err
				}
				if err := m.Toggle(x, y); err != nil {
					mu.Unlock()

					return err
				}
				mu.Unlock()
			}
			mu.Lock()
			defer mu.Unlock()

			return m.SetTrue(x, y)
		})
	}
	require.NoError(t, g.Wait())

	for _, xy := range shared {
		v, err := m.Get(xy[0], xy[1])
		require.NoError(t, err)
		require.Truef(t, v, "cell (%d,%d)", xy[0], xy[1])
	}
	// Nothing outside the shared packed cell was touched.
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			want := (x == 0 || x == 3) && (y == 0 || y == 3)
			v, err := m.Get(x, y)
			require.NoError(t, err)
			require.Equalf(t, want, v, "cell (%d,%d)", x, y)
		}
	}
}

// TestExternalSerialization_DisjointPackedCells runs concurrent writers on
// coordinates that map to distinct packed bytes, still behind a shared lock,
// and checks every writer's final value landed.
func TestExternalSerialization_DisjointPackedCells(t *testing.T) {
	const size = 64
	m, err := boolmat.New(size)
	require.NoError(t, err)

	var mu sync.Mutex
	var g errgroup.Group
	for x := 0; x < size; x += 2 {
		x := x
		g.Go(func() error {
			for y := 0; y < size; y++ {
				mu.Lock()
				if err := m.Set(x, y, y%2 == 0); err != nil {
					mu.Unlock()

					return err
				}
				mu.Unlock()
			}

			return nil
		})
	}
	require.NoError(t, g.Wait())

	for x := 0; x < size; x += 2 {
		for y := 0; y < size; y++ {
			v, err := m.Get(x, y)
			require.NoError(t, err)
			require.Equalf(t, y%2 == 0, v, "cell (%d,%d)", x, y)
		}
	}
}
