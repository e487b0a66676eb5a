package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusclubs/clubhub/internal/db/models"
	"github.com/campusclubs/clubhub/internal/db/testdb"
	"github.com/campusclubs/clubhub/internal/event"
	"github.com/campusclubs/clubhub/internal/membership"
)

var now = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC) //nolint:gochecknoglobals

func ptr[T any](v T) *T { return &v }

func titles(events []event.DTO) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Title)
	}

	return out
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	svc := event.NewService(db, membership.NewService(db)).WithClock(func() time.Time { return now })
	chess := testdb.Club(t, db, "Chess")

	tests := []struct {
		name    string
		club    uint64
		in      event.CreateInput
		wantErr error
	}{
		{
			name: "valid",
			club: chess.ID,
			in: event.CreateInput{
				Title:   "  Blitz night ",
				StartAt: now.Add(24 * time.Hour),
				EndAt:   now.Add(26 * time.Hour),
			},
		},
		{
			name:    "blank title",
			club:    chess.ID,
			in:      event.CreateInput{Title: "   ", StartAt: now, EndAt: now.Add(time.Hour)},
			wantErr: event.ErrTitleRequired,
		},
		{
			name:    "ends before start",
			club:    chess.ID,
			in:      event.CreateInput{Title: "Blitz", StartAt: now, EndAt: now.Add(-time.Hour)},
			wantErr: event.ErrInvalidTimeRange,
		},
		{
			name:    "ends at start",
			club:    chess.ID,
			in:      event.CreateInput{Title: "Blitz", StartAt: now, EndAt: now},
			wantErr: event.ErrInvalidTimeRange,
		},
		{
			name:    "missing club",
			club:    404,
			in:      event.CreateInput{Title: "Blitz", StartAt: now, EndAt: now.Add(time.Hour)},
			wantErr: event.ErrClubNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Create(ctx, tt.club, tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotZero(t, got.ID)
			assert.Equal(t, "Blitz night", got.Title)
			assert.True(t, got.IsPublished)
			assert.Equal(t, time.UTC, got.StartAt.Location())
		})
	}
}

func TestCreateConvertsToUTC(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	svc := event.NewService(db, membership.NewService(db))
	chess := testdb.Club(t, db, "Chess")

	berlin := time.FixedZone("CEST", 2*60*60)
	start := time.Date(2026, 5, 1, 18, 0, 0, 0, berlin)

	got, err := svc.Create(ctx, chess.ID, event.CreateInput{Title: "Open board", StartAt: start, EndAt: start.Add(time.Hour)})
	require.NoError(t, err)

	stored, err := svc.Get(ctx, got.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 1, 16, 0, 0, 0, time.UTC), stored.StartAt)
}

func TestListings(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	members := membership.NewService(db)
	svc := event.NewService(db, members).WithClock(func() time.Time { return now })

	alice := testdb.User(t, db, "alice")
	chess := testdb.Club(t, db, "Chess")
	drama := testdb.Club(t, db, "Drama")

	_, _, err := members.Join(ctx, alice.ID, chess.ID)
	require.NoError(t, err)

	testdb.Event(t, db, chess.ID, "past", now.Add(-48*time.Hour))
	testdb.Event(t, db, chess.ID, "in three days", now.Add(72*time.Hour))
	testdb.Event(t, db, chess.ID, "tomorrow", now.Add(24*time.Hour))
	testdb.Event(t, db, chess.ID, "in a month", now.Add(30*24*time.Hour))
	testdb.Event(t, db, drama.ID, "rehearsal", now.Add(24*time.Hour))
	gone := testdb.Event(t, db, chess.ID, "cancelled", now.Add(48*time.Hour))
	testdb.SoftDelete(t, db, &models.Event{}, gone.ID)

	byClub, err := svc.ListByClub(ctx, chess.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"past", "tomorrow", "in three days", "in a month"}, titles(byClub))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "in a month", all[0].Title)
	assert.Len(t, all, 5)

	upcoming, err := svc.Upcoming(ctx, alice.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"tomorrow", "in three days"}, titles(upcoming))

	upcoming, err = svc.Upcoming(ctx, alice.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"tomorrow"}, titles(upcoming))

	upcoming, err = svc.Upcoming(ctx, alice.ID, 365)
	require.NoError(t, err)
	assert.Equal(t, []string{"tomorrow", "in three days", "in a month"}, titles(upcoming))

	_, err = svc.Upcoming(ctx, alice.ID, 366)
	require.ErrorIs(t, err, event.ErrInvalidDays)

	bob := testdb.User(t, db, "bob")
	upcoming, err = svc.Upcoming(ctx, bob.ID, 14)
	require.NoError(t, err)
	assert.Empty(t, upcoming)

	upcoming, err = svc.WithDefaultDays(2).Upcoming(ctx, alice.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"tomorrow"}, titles(upcoming))

	upcoming, err = svc.WithDefaultDays(1000).Upcoming(ctx, alice.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"tomorrow", "in three days"}, titles(upcoming))
}

func TestPatchAndDelete(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	svc := event.NewService(db, membership.NewService(db)).WithClock(func() time.Time { return now })

	chess := testdb.Club(t, db, "Chess")
	drama := testdb.Club(t, db, "Drama")
	e := testdb.Event(t, db, chess.ID, "Blitz", now.Add(24*time.Hour))

	require.NoError(t, svc.Patch(ctx, chess.ID, e.ID, event.PatchInput{Location: ptr("  Library ")}))

	got, err := svc.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Library", got.Location)
	assert.Equal(t, "Blitz", got.Title)
	assert.True(t, got.IsPublished)

	require.NoError(t, svc.Patch(ctx, chess.ID, e.ID, event.PatchInput{IsPublished: ptr(false)}))

	got, err = svc.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPublished)
	assert.Equal(t, "Library", got.Location)

	require.NoError(t, svc.Patch(ctx, chess.ID, e.ID, event.PatchInput{IsPublished: ptr(true)}))

	got, err = svc.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPublished)

	err = svc.Patch(ctx, chess.ID, e.ID, event.PatchInput{Title: ptr(" ")})
	require.ErrorIs(t, err, event.ErrTitleRequired)

	err = svc.Patch(ctx, chess.ID, e.ID, event.PatchInput{EndAt: ptr(now)})
	require.ErrorIs(t, err, event.ErrInvalidTimeRange)

	err = svc.Patch(ctx, drama.ID, e.ID, event.PatchInput{Title: ptr("Hijack")})
	require.ErrorIs(t, err, event.ErrEventNotFound)

	require.ErrorIs(t, svc.Delete(ctx, drama.ID, e.ID), event.ErrEventNotFound)
	require.NoError(t, svc.Delete(ctx, chess.ID, e.ID))
	require.ErrorIs(t, svc.Delete(ctx, chess.ID, e.ID), event.ErrEventNotFound)

	_, err = svc.Get(ctx, e.ID)
	require.ErrorIs(t, err, event.ErrEventNotFound)

	var row models.Event
	require.NoError(t, db.Where("id = ?", e.ID).First(&row).Error)
	assert.True(t, row.IsDeleted)
	assert.False(t, row.IsActive)
}
