package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegas-mcp/backend/internal/dates"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2024-03-15",
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "first of month",
			input: "2024-01-01",
			want:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "missing leading zeros", input: "2024-3-5", wantErr: true},
		{name: "wrong separator", input: "2024/03/15", wantErr: true},
		{name: "month out of range", input: "2024-13-01", wantErr: true},
		{name: "day out of range", input: "2024-02-30", wantErr: true},
		{name: "not a date", input: "yesterday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "trailing garbage", input: "2024-03-15T00:00:00Z", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dates.ParseDay(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSingleDay(t *testing.T) {
	r, err := dates.SingleDay("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), r.End)
}

func TestSingleDay_MonthBoundary(t *testing.T) {
	r, err := dates.SingleDay("2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), r.End)
}

func TestSpan(t *testing.T) {
	r, err := dates.Span("2024-03-01", "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), r.Start)
	// End day is inclusive, so the interval extends to the next midnight.
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), r.End)
}

func TestSpan_SameDay(t *testing.T) {
	r, err := dates.Span("2024-03-15", "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, r.End.Sub(r.Start))
}

func TestSpan_StartAfterEnd(t *testing.T) {
	_, err := dates.Span("2024-03-16", "2024-03-15")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after end date")
}

func TestToday(t *testing.T) {
	now := time.Date(2024, 3, 15, 23, 45, 12, 0, time.FixedZone("UTC+5", 5*3600))
	r := dates.Today(now)
	// 23:45 UTC+5 is 18:45 UTC, still March 15 in UTC.
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), r.End)
}

func TestOptionalSpan(t *testing.T) {
	t.Run("neither means all-time", func(t *testing.T) {
		r, err := dates.OptionalSpan("", "")
		require.NoError(t, err)
		assert.Nil(t, r)
	})

	t.Run("both", func(t *testing.T) {
		r, err := dates.OptionalSpan("2024-03-01", "2024-03-02")
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), r.Start)
	})

	t.Run("only start rejected", func(t *testing.T) {
		_, err := dates.OptionalSpan("2024-03-01", "")
		assert.Error(t, err)
	})

	t.Run("only end rejected", func(t *testing.T) {
		_, err := dates.OptionalSpan("", "2024-03-01")
		assert.Error(t, err)
	})
}

func TestDayOrSpan(t *testing.T) {
	tests := []struct {
		name             string
		date, start, end string
		wantErr          bool
	}{
		{name: "single date", date: "2024-03-15"},
		{name: "range", start: "2024-03-01", end: "2024-03-15"},
		{name: "nothing", wantErr: true},
		{name: "date plus range", date: "2024-03-15", start: "2024-03-01", end: "2024-03-15", wantErr: true},
		{name: "date plus start", date: "2024-03-15", start: "2024-03-01", wantErr: true},
		{name: "start only", start: "2024-03-01", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dates.DayOrSpan(tt.date, tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, dates.ErrAmbiguousParams)
				return
			}
			assert.NoError(t, err)
		})
	}
}
