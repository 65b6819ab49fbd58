// SPDX-License-Identifier: MIT

package rational_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/krelu/rational"
	"github.com/stretchr/testify/require"
)

// TestArenaRelease checks Release clears every owned vector exactly once.
func TestArenaRelease(t *testing.T) {
	a := rational.NewArena()
	v := rational.NewVec(3)
	w := rational.FromInts(1, 2)
	require.NoError(t, a.Adopt(v, w))
	require.Equal(t, 2, a.Len())

	a.Release()
	require.Zero(t, a.Len())
	require.Nil(t, v[0])
	require.Equal(t, "[<released>, <released>]", w.String())

	a.Release() // idempotent
	require.ErrorIs(t, a.Adopt(rational.NewVec(1)), rational.ErrReleased)
}

// TestArenaConcurrentAdopt registers vectors from several goroutines.
func TestArenaConcurrentAdopt(t *testing.T) {
	a := rational.NewArena()
	defer a.Release()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = a.Adopt(rational.NewVec(2))
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 400, a.Len())
}
