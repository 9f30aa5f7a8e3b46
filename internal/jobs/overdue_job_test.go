package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"delivery-platform/internal/domain"
	"delivery-platform/internal/logx"
	testlog "delivery-platform/internal/testutil"
)

type stubOverdue struct {
	deliveries []domain.Delivery
	err        error
	gotCutoff  time.Time
}

func (s *stubOverdue) ListOverdue(_ context.Context, cutoff time.Time) ([]domain.Delivery, error) {
	s.gotCutoff = cutoff
	return s.deliveries, s.err
}

func TestOverdue_ReportsWithCutoff(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	started := now.Add(-2 * time.Hour)
	courierID := int64(7)

	lister := &stubOverdue{deliveries: []domain.Delivery{
		{ID: "dlv_1", OrderID: "order_1", StartTime: &started, CourierID: &courierID},
		{ID: "dlv_2", OrderID: "order_2"},
	}}
	rec := testlog.New()
	job := NewOverdueJob(lister, time.Hour, rec.Logger())
	job.now = func() time.Time { return now }

	job.runOnce(context.Background())

	require.True(t, lister.gotCutoff.Equal(now.Add(-time.Hour)))

	var warnings []testlog.Entry
	for _, e := range rec.Entries() {
		if e.Level == "warn" && e.Msg == "delivery overdue" {
			warnings = append(warnings, e)
		}
	}
	require.Len(t, warnings, 2)
}

func TestOverdue_ScanErrorOnlyLogged(t *testing.T) {
	t.Parallel()

	lister := &stubOverdue{err: errors.New("db down")}
	rec := testlog.New()
	job := NewOverdueJob(lister, time.Hour, rec.Logger())

	job.runOnce(context.Background())

	var sawError bool
	for _, e := range rec.Entries() {
		if e.Level == "error" && e.Msg == "overdue scan failed" {
			sawError = true
		}
	}
	require.True(t, sawError)
}

func TestJobManager_StartAndStopAll(t *testing.T) {
	t.Parallel()

	dispatch := NewDispatchJob(&stubPending{}, &stubAssigner{}, &stubMatcher{},
		55.75, 37.61, "*/30 * * * * *", logx.Nop())
	overdue := NewOverdueJob(&stubOverdue{}, time.Hour, logx.Nop())

	m := NewJobManager(dispatch, overdue)
	require.NoError(t, m.StartAll())
	m.StopAll()
}
