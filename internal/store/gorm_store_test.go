package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Entry{}))
	return NewGormStore(db)
}

func TestGormStoreRoundTrip(t *testing.T) {
	st := newTestGormStore(t)

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

func TestGormStoreLastWriteWins(t *testing.T) {
	st := newTestGormStore(t)
	require.NoError(t, st.Set(SlotTasks, payload{Count: 1}))
	require.NoError(t, st.Set(SlotTasks, payload{Count: 2}))

	var out payload
	ok, err := st.Get(SlotTasks, &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, out.Count)

	// the upsert rewrites the row in place
	var rows int64
	require.NoError(t, st.DB.Model(&Entry{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestGormStoreMalformedValueTreatedAsAbsent(t *testing.T) {
	st := newTestGormStore(t)
	require.NoError(t, st.DB.Create(&Entry{Key: SlotSyllabus, Value: "{not json"}).Error)

	var out payload
	ok, err := st.Get(SlotSyllabus, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}
