package selector

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HerbHall/drivepick/internal/testutil"
	"github.com/HerbHall/drivepick/pkg/models"
)

type fakeSource struct {
	drives []models.Drive
	err    error
	calls  int
}

func (f *fakeSource) Drives(_ context.Context) ([]models.Drive, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.drives, nil
}

func TestEngine_Select(t *testing.T) {
	src := &fakeSource{drives: testutil.SampleDrives()}
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	e := NewEngine("inventory", src, testutil.Logger(), metrics)

	assert.Equal(t, "inventory", e.Name())

	got, err := e.Select(context.Background(), testutil.SampleManufacturers)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, []string{
		`500 ГБ 2.5" SATA накопитель Samsung 870 EVO`,
		`480 ГБ 2.5" SATA накопитель WD Green`,
	}, got.Matches)
	assert.Equal(t, 1, src.calls)

	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.selections.WithLabelValues("inventory", "ok")))
	assert.Equal(t, 0.0, promtest.ToFloat64(metrics.selections.WithLabelValues("inventory", "error")))
}

func TestEngine_SelectReloadsSource(t *testing.T) {
	src := &fakeSource{drives: []models.Drive{
		testutil.NewDrive(testutil.WithModel("Samsung A"), testutil.WithAvailability(models.Unavailable)),
	}}
	e := NewEngine("inventory", src, testutil.Logger(), nil)

	got, err := e.Select(context.Background(), []string{"Samsung"})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Count)

	src.drives[0].Availability = models.Available
	got, err = e.Select(context.Background(), []string{"Samsung"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Samsung A"}, got.Matches)
	assert.Equal(t, 2, src.calls)
}

func TestEngine_SelectEmptySource(t *testing.T) {
	e := NewEngine("inventory", &fakeSource{}, testutil.Logger(), nil)

	got, err := e.Select(context.Background(), []string{""})
	require.NoError(t, err)
	assert.NotNil(t, got.Matches)
	assert.Empty(t, got.Matches)
	assert.Equal(t, 0, got.Count)
}

func TestEngine_SelectSourceError(t *testing.T) {
	boom := errors.New("disk on fire")
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	e := NewEngine("sysfs", &fakeSource{err: boom}, testutil.Logger(), metrics)

	_, err := e.Select(context.Background(), []string{"WD"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "load sysfs drives")

	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.selections.WithLabelValues("sysfs", "error")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Observe("builtin", models.EmptySelection(), nil)
		m.Observe("builtin", models.Selection{}, errors.New("x"))
	})
}

func TestMetrics_MatchHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.Observe("builtin", models.Selection{Matches: []string{"a", "b", "c"}, Count: 3}, nil)
	m.Observe("builtin", models.EmptySelection(), nil)

	count, err := promtest.GatherAndCount(reg, "drivepick_selection_matches")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one histogram series for the builtin source")
	assert.Equal(t, 2.0, promtest.ToFloat64(m.selections.WithLabelValues("builtin", "ok")))
}
