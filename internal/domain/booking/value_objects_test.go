//go:build unit

package booking_test

import (
	"testing"
	"time"

	"nomaddesk/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlot(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("parses wall clock times", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(date, "09:30", "11:00")
		require.NoError(t, err)

		assert.Equal(t, 570, slot.StartMinutes())
		assert.Equal(t, 660, slot.EndMinutes())
		assert.Equal(t, "09:30", slot.StartTime())
		assert.Equal(t, "11:00", slot.EndTime())
		assert.Equal(t, 90*time.Minute, slot.Duration())
	})

	t.Run("normalizes the date to midnight", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(date.Add(13*time.Hour+27*time.Minute), "09:00", "10:00")
		require.NoError(t, err)
		assert.Equal(t, date, slot.Date())
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		base, err := booking.NewTimeSlot(date, "10:00", "12:00")
		require.NoError(t, err)

		cases := []struct {
			name     string
			start    string
			end      string
			overlaps bool
		}{
			{name: "identical slot", start: "10:00", end: "12:00", overlaps: true},
			{name: "contained slot", start: "10:30", end: "11:30", overlaps: true},
			{name: "overlapping head", start: "09:00", end: "10:30", overlaps: true},
			{name: "overlapping tail", start: "11:30", end: "13:00", overlaps: true},
			{name: "back to back before", start: "08:00", end: "10:00", overlaps: false},
			{name: "back to back after", start: "12:00", end: "14:00", overlaps: false},
			{name: "fully before", start: "07:00", end: "08:00", overlaps: false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				other, err := booking.NewTimeSlot(date, tc.start, tc.end)
				require.NoError(t, err)
				assert.Equal(t, tc.overlaps, base.Overlaps(other))
				assert.Equal(t, tc.overlaps, other.Overlaps(base))
			})
		}
	})

	t.Run("different days never overlap", func(t *testing.T) {
		a, err := booking.NewTimeSlot(date, "10:00", "12:00")
		require.NoError(t, err)
		b, err := booking.NewTimeSlot(date.AddDate(0, 0, 1), "10:00", "12:00")
		require.NoError(t, err)

		assert.False(t, a.Overlaps(b))
	})

	t.Run("reconstruct round trips minute offsets", func(t *testing.T) {
		slot := booking.ReconstructTimeSlot(date, 600, 720)
		assert.Equal(t, "10:00", slot.StartTime())
		assert.Equal(t, "12:00", slot.EndTime())
	})
}

func TestGroupSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := booking.DefaultGroupSettings()
		assert.False(t, s.AllowParticipantInvites)
		assert.False(t, s.RequireApproval)
		assert.True(t, s.SendReminders)
	})
}

func TestTags(t *testing.T) {
	t.Run("trims and drops blanks", func(t *testing.T) {
		tags, err := booking.NewTags([]string{" design ", "", "  ", "weekly"})
		require.NoError(t, err)
		assert.Equal(t, []string{"design", "weekly"}, tags.Values())
	})
}
