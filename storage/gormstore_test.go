package storage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var storeDBCounter int

func setupStore(t *testing.T) *GormStore {
	t.Helper()
	storeDBCounter++
	dsn := fmt.Sprintf("file:store_test_%d?mode=memory&cache=shared", storeDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	store := NewGormStore(db)
	assert.NoError(t, store.Migrate())
	return store
}

func TestReadMissingKey(t *testing.T) {
	store := setupStore(t)

	_, err := store.Read("never_written")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := setupStore(t)

	assert.NoError(t, store.Write("cartel_inventory_khalifa", []byte(`[{"id":"esp2"}]`), "tab-1"))

	value, err := store.Read("cartel_inventory_khalifa")
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":"esp2"}]`, string(value))

	// A second write replaces the whole value.
	assert.NoError(t, store.Write("cartel_inventory_khalifa", []byte(`[]`), "tab-1"))
	value, err = store.Read("cartel_inventory_khalifa")
	assert.NoError(t, err)
	assert.Equal(t, `[]`, string(value))
}

func TestSubscriberNotifiedOfForeignWrites(t *testing.T) {
	store := setupStore(t)

	var notified []string
	store.Subscribe("k", "tab-1", func(key, writerID string) {
		notified = append(notified, writerID)
	})

	assert.NoError(t, store.Write("k", []byte("v1"), "tab-2"))
	assert.Equal(t, []string{"tab-2"}, notified)
}

func TestWriterNeverHearsOwnWrite(t *testing.T) {
	store := setupStore(t)

	calls := 0
	store.Subscribe("k", "tab-1", func(key, writerID string) {
		calls++
	})

	assert.NoError(t, store.Write("k", []byte("v1"), "tab-1"))
	assert.Zero(t, calls)
}

func TestSubscriptionIsExactKey(t *testing.T) {
	store := setupStore(t)

	calls := 0
	store.Subscribe("cartel_inventory_khalifa", "tab-1", func(key, writerID string) {
		calls++
	})

	assert.NoError(t, store.Write("cartel_inventory_marina", []byte("v"), "tab-2"))
	assert.Zero(t, calls)

	assert.NoError(t, store.Write("cartel_inventory_khalifa", []byte("v"), "tab-2"))
	assert.Equal(t, 1, calls)
}

func TestResubscribeReplaces(t *testing.T) {
	store := setupStore(t)

	first, second := 0, 0
	store.Subscribe("k", "tab-1", func(key, writerID string) { first++ })
	store.Subscribe("k", "tab-1", func(key, writerID string) { second++ })

	assert.NoError(t, store.Write("k", []byte("v"), "tab-2"))
	assert.Zero(t, first)
	assert.Equal(t, 1, second)
}

func TestUnsubscribe(t *testing.T) {
	store := setupStore(t)

	calls := 0
	store.Subscribe("k", "tab-1", func(key, writerID string) { calls++ })
	store.Unsubscribe("k", "tab-1")

	assert.NoError(t, store.Write("k", []byte("v"), "tab-2"))
	assert.Zero(t, calls)
}
