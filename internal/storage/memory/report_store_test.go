package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitcoin-metrics-lab/internal/cycles"
	"bitcoin-metrics-lab/internal/domain"
	"bitcoin-metrics-lab/internal/storage"
)

func sampleReport(t *testing.T, price float64) *storage.Report {
	t.Helper()
	dates := []time.Time{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	frame, err := domain.NewFrame(dates)
	require.NoError(t, err)
	require.NoError(t, frame.Set(domain.ColPriceUSD, []float64{price}))
	return &storage.Report{
		GeneratedAt: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
		Frame:       frame,
		Cycles: map[cycles.Family]*cycles.Table{
			cycles.FamilyDrawdown: {
				Family: cycles.FamilyDrawdown,
				Points: []cycles.Point{{ElapsedDays: 0, Value: 0, Era: "2020"}},
			},
		},
	}
}

func TestReportStore_LatestBeforeSave(t *testing.T) {
	_, err := NewReportStore().Latest(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestReportStore_SaveInvalid(t *testing.T) {
	ctx := context.Background()
	store := NewReportStore()

	assert.ErrorIs(t, store.Save(ctx, nil), storage.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(ctx, &storage.Report{}), storage.ErrInvalidInput)
}

func TestReportStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewReportStore()

	require.NoError(t, store.Save(ctx, sampleReport(t, 100)))
	require.NoError(t, store.Save(ctx, sampleReport(t, 200)))

	got, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(200), got.Frame.At(domain.ColPriceUSD, 0))
}

func TestReportStore_CopyOnRead(t *testing.T) {
	ctx := context.Background()
	store := NewReportStore()
	require.NoError(t, store.Save(ctx, sampleReport(t, 100)))

	got, err := store.Latest(ctx)
	require.NoError(t, err)
	require.NoError(t, got.Frame.Set(domain.ColPriceUSD, []float64{-1}))
	got.Cycles[cycles.FamilyDrawdown].Points[0].Value = -1

	again, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(100), again.Frame.At(domain.ColPriceUSD, 0))
	assert.Equal(t, float64(0), again.Cycles[cycles.FamilyDrawdown].Points[0].Value)
}
