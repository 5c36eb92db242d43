package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, Split(0, 4))
	})

	t.Run("small input is one tile", func(t *testing.T) {
		tiles := Split(100, 8)
		require.Len(t, tiles, 1)
		assert.Equal(t, Tile{0, 100}, tiles[0])
	})

	t.Run("limited by workers", func(t *testing.T) {
		n := 10 * MinTile
		tiles := Split(n, 3)
		require.Len(t, tiles, 3)
		assert.Equal(t, 0, tiles[0].Lo)
		assert.Equal(t, n, tiles[2].Hi)
		for i := 1; i < len(tiles); i++ {
			assert.Equal(t, tiles[i-1].Hi, tiles[i].Lo)
		}
	})

	t.Run("limited by tile size", func(t *testing.T) {
		tiles := Split(2*MinTile+1, 64)
		assert.Len(t, tiles, 3)
		for _, tile := range tiles {
			assert.Positive(t, tile.Len())
		}
	})
}

func TestFor_VisitsEveryIndexOnce(t *testing.T) {
	n := 5*MinTile + 17
	hits := make([]int32, n)

	For(n, 4, func(tile Tile) {
		for i := tile.Lo; i < tile.Hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times", i, h)
		}
	}
}

func TestMap_PreservesTileOrder(t *testing.T) {
	n := 4 * MinTile
	los := Map(n, 4, func(tile Tile) int { return tile.Lo })

	require.Len(t, los, 4)
	for i := 1; i < len(los); i++ {
		assert.Less(t, los[i-1], los[i])
	}
}

func TestWorkers(t *testing.T) {
	assert.Equal(t, 3, Workers(3))
	assert.Positive(t, Workers(0))
}
