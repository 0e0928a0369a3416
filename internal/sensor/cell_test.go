package sensor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellStoreLoad(t *testing.T) {
	c := NewCell()
	assert.Zero(t, c.Load())
	assert.True(t, c.LastUpdate().IsZero())

	c.Store(1.25)
	assert.Equal(t, 1.25, c.Load())
	assert.Equal(t, uint64(1), c.Writes())
	assert.False(t, c.LastUpdate().IsZero())

	c.Store(0.5)
	assert.Equal(t, 0.5, c.Load(), "last write wins")
	assert.Equal(t, uint64(2), c.Writes())
}

func TestCellAccept(t *testing.T) {
	c := NewCell()

	require.True(t, c.Accept("0.8\n", 2.5))
	assert.Equal(t, 0.8, c.Load())

	assert.False(t, c.Accept("garbage", 2.5))
	assert.False(t, c.Accept("9.9", 2.5))
	assert.Equal(t, 0.8, c.Load(), "rejected lines keep the previous value")
	assert.Equal(t, uint64(1), c.Writes())
}

func TestCellConcurrentAccess(t *testing.T) {
	c := NewCell()
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			c.Store(float64(i%25) / 10)
		}
	}()

	for i := 0; i < 1000; i++ {
		v := c.Load()
		require.True(t, v >= 0 && v <= 2.4, "torn read %f", v)
	}
	wg.Wait()
	assert.Equal(t, uint64(1000), c.Writes())
}
