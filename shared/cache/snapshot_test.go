package cache_test

import (
	"testing"
	"time"

	"hostel/shared/cache"

	"github.com/stretchr/testify/assert"
)

func TestMemorySnapshot(t *testing.T) {
	snapshot := cache.NewMemorySnapshot[[]string](time.Minute)

	_, found := snapshot.Get("rooms")
	assert.False(t, found)

	snapshot.Set("rooms", []string{"101", "102"})

	value, found := snapshot.Get("rooms")
	assert.True(t, found)
	assert.Equal(t, []string{"101", "102"}, value)

	snapshot.Invalidate()

	_, found = snapshot.Get("rooms")
	assert.False(t, found)
}

func TestMemorySnapshot_Expires(t *testing.T) {
	snapshot := cache.NewMemorySnapshot[int](20 * time.Millisecond)
	snapshot.Set("count", 3)

	assert.Eventually(t, func() bool {
		_, found := snapshot.Get("count")

		return !found
	}, time.Second, 10*time.Millisecond)
}

func TestNoopSnapshot(t *testing.T) {
	for _, snapshot := range []cache.Snapshot[int]{cache.NewNoopSnapshot[int](), cache.NewMemorySnapshot[int](0)} {
		snapshot.Set("count", 3)

		_, found := snapshot.Get("count")
		assert.False(t, found)

		snapshot.Invalidate()
	}
}
