package admission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheck_Boundaries(t *testing.T) {
	start := time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		delta   time.Duration
		wantErr error
	}{
		{"one minute early", -1 * time.Minute, ErrTooEarly},
		{"exactly on time", 0, nil},
		{"edge of window", 60 * time.Minute, nil},
		{"one minute past window", 61 * time.Minute, ErrExpired},
		{"far too early", -24 * time.Hour, ErrTooEarly},
		{"mid window", 30 * time.Minute, nil},
		{"long expired", 3 * time.Hour, ErrExpired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Check(start, start.Add(tc.delta))
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestCheck_SubMinuteGranularity(t *testing.T) {
	start := time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC)

	// The delta is measured in whole minutes, so 30 seconds before the
	// start still counts as minute zero and is admitted, while 60m30s
	// past the start still counts as minute 60.
	assert.NoError(t, Check(start, start.Add(-30*time.Second)))
	assert.NoError(t, Check(start, start.Add(60*time.Minute+30*time.Second)))
	assert.ErrorIs(t, Check(start, start.Add(-61*time.Second)), ErrTooEarly)
	assert.ErrorIs(t, Check(start, start.Add(61*time.Minute)), ErrExpired)
}

func TestScheduledStart(t *testing.T) {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	got, err := ScheduledStart(date, "09:30")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC), got)

	// Date components other than the day are ignored.
	noon := time.Date(2025, time.March, 10, 12, 45, 11, 0, time.UTC)
	got, err = ScheduledStart(noon, "23:59")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC), got)
}

func TestScheduledStart_InvalidTime(t *testing.T) {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	for _, bad := range []string{"", "9:3", "25:00", "12:61", "noon", "09:30 AM"} {
		_, err := ScheduledStart(date, bad)
		assert.Error(t, err, "wall time %q should be rejected", bad)
	}
}
