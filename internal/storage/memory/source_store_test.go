package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitcoin-metrics-lab/internal/domain"
	"bitcoin-metrics-lab/internal/storage"
)

func sampleTable(name string) *domain.RawTable {
	t := domain.NewRawTable(name)
	t.Dates = []time.Time{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	t.Columns["x"] = []float64{1}
	t.ColumnOrder = []string{"x"}
	return t
}

func TestSourceStore_PutAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewSourceStore()

	err := store.Put(ctx, sampleTable("coinmetrics"))
	require.NoError(t, err)

	got, err := store.Get(ctx, "coinmetrics")
	require.NoError(t, err)
	assert.Equal(t, "coinmetrics", got.Name)
	assert.Equal(t, []float64{1}, got.Columns["x"])
}

func TestSourceStore_InsertDuplicate(t *testing.T) {
	ctx := context.Background()
	store := NewSourceStore()

	require.NoError(t, store.Put(ctx, sampleTable("a")))
	err := store.Put(ctx, sampleTable("a"))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestSourceStore_GetMissing(t *testing.T) {
	_, err := NewSourceStore().Get(context.Background(), "absent")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSourceStore_InvalidInput(t *testing.T) {
	ctx := context.Background()
	store := NewSourceStore()

	assert.ErrorIs(t, store.Put(ctx, nil), storage.ErrInvalidInput)
	assert.ErrorIs(t, store.Put(ctx, domain.NewRawTable("")), storage.ErrInvalidInput)
}

func TestSourceStore_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewSourceStore()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, store.Put(ctx, sampleTable(name)))
	}

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].Name)
	assert.Equal(t, "a", list[1].Name)
	assert.Equal(t, "b", list[2].Name)
}

func TestSourceStore_CopyOnRead(t *testing.T) {
	ctx := context.Background()
	store := NewSourceStore()
	require.NoError(t, store.Put(ctx, sampleTable("a")))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	got.Columns["x"][0] = 99

	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, float64(1), again.Columns["x"][0])
}
