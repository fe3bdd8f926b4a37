package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	st := NewMemoryStore()

	var out payload
	ok, err := st.Get(SlotStats, &out)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.Set(SlotStats, payload{Name: "reader", Count: 3}))

	ok, err = st.Get(SlotStats, &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload{Name: "reader", Count: 3}, out)
}

func TestMemoryStoreLastWriteWins(t *testing.T) {
	st := NewMemoryStore()
	require.NoError(t, st.Set(SlotTasks, payload{Count: 1}))
	require.NoError(t, st.Set(SlotTasks, payload{Count: 2}))

	var out payload
	ok, err := st.Get(SlotTasks, &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, out.Count)
}

func TestMemoryStoreSlotsIndependent(t *testing.T) {
	st := NewMemoryStore()
	require.NoError(t, st.Set(SlotSessions, payload{Count: 7}))

	var out payload
	ok, err := st.Get(SlotActivities, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreMalformedValueTreatedAsAbsent(t *testing.T) {
	st := NewMemoryStore()
	require.NoError(t, st.Set(SlotSyllabus, "just a string"))

	// shape mismatch falls back to the absent path, not an error
	var out payload
	ok, err := st.Get(SlotSyllabus, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}
