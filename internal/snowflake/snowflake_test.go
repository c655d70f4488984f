package snowflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIDStrictlyIncreasing(t *testing.T) {
	g, err := New(WithWorkerID(1))
	require.NoError(t, err)

	seen := make(map[int64]struct{}, 100000)
	var prev int64
	for i := 0; i < 100000; i++ {
		id := g.NextID()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d at iteration %d", id, prev, i)
		}
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id %d at iteration %d", id, i)
		}
		seen[id] = struct{}{}
		prev = id
	}
}

func TestNextIDPanicsOnClockRegression(t *testing.T) {
	g, err := New(WithWorkerID(1))
	require.NoError(t, err)

	ts := int64(Epoch + 1000)
	g.now = func() int64 { return ts }
	g.NextID()

	ts -= 5
	assert.Panics(t, func() { g.NextID() })
}

func TestNextIDWaitsOnSequenceWrap(t *testing.T) {
	g, err := New(WithWorkerID(1))
	require.NoError(t, err)

	ts := int64(Epoch + 1000)
	calls := 0
	g.now = func() int64 {
		calls++
		// advance the clock only after the wrapped sequence starts polling
		if calls > sequenceMask+2 {
			return ts + 1
		}
		return ts
	}

	var prev int64
	for i := 0; i <= sequenceMask+1; i++ {
		id := g.NextID()
		require.Greater(t, id, prev)
		prev = id
	}
	require.EqualValues(t, ts+1, g.lastTimestamp)
}

func TestLayout(t *testing.T) {
	g, err := New(WithWorkerID(3), WithDatacenterID(2))
	require.NoError(t, err)

	ts := int64(Epoch + 42)
	g.now = func() int64 { return ts }

	id := g.NextID()
	assert.EqualValues(t, 42, id>>timestampShift)
	assert.EqualValues(t, 2, (id>>datacenterIDShift)&MaxDatacenterID)
	assert.EqualValues(t, 3, (id>>workerIDShift)&MaxWorkerID)
	assert.EqualValues(t, 0, id&sequenceMask)
}

func TestNewRejectsOutOfRangeIDs(t *testing.T) {
	_, err := New(WithWorkerID(MaxWorkerID + 1))
	assert.Error(t, err)

	_, err = New(WithWorkerID(1), WithDatacenterID(-1))
	assert.Error(t, err)
}

func TestDerivedWorkerIDInRange(t *testing.T) {
	g, err := New()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, g.WorkerID(), int64(0))
	assert.LessOrEqual(t, g.WorkerID(), int64(MaxWorkerID))
}
