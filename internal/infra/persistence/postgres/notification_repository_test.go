package postgres

import (
	"testing"
	"time"

	"canino/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNotificationDomain_DedupDateKeepsLocalCalendarDay(t *testing.T) {
	bogota := time.FixedZone("UTC-5", -5*60*60)
	karachi := time.FixedZone("UTC+5", 5*60*60)

	cases := []struct {
		name         string
		scheduledFor time.Time
		wantDay      string
	}{
		{
			name:         "late evening west of UTC stays on its own day",
			scheduledFor: time.Date(2026, 8, 28, 23, 0, 0, 0, bogota),
			wantDay:      "2026-08-28",
		},
		{
			name:         "early morning east of UTC stays on its own day",
			scheduledFor: time.Date(2026, 8, 28, 2, 0, 0, 0, karachi),
			wantDay:      "2026-08-28",
		},
		{
			name:         "utc noon",
			scheduledFor: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
			wantDay:      "2026-08-28",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			notification := &entity.ScheduledNotification{
				ID:           uuid.New(),
				UserID:       uuid.New(),
				TemplateKey:  "vaccine_due",
				ScheduledFor: tc.scheduledFor,
				Status:       entity.NotificationStatusPending,
			}

			notificationM, err := fromNotificationDomain(notification)
			require.NoError(t, err)

			assert.Equal(t, tc.wantDay, notificationM.ScheduledDate.Format("2006-01-02"))

			// NotificationExists formats its date the same way, so the insert
			// key and the existence check agree across UTC midnight.
			assert.Equal(t, tc.wantDay, dedupDate(tc.scheduledFor).Format("2006-01-02"))
		})
	}
}
