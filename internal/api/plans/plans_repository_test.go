package plans

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/locallist-builder/internal/types"
)

var planColumnNames = []string{
	"id", "name", "city", "type", "description", "image_url", "duration_days",
	"trip_context", "is_public", "is_showcase", "created_by", "created_at", "updated_at",
}

var stopColumnNames = append([]string{
	"id", "day_number", "order_index", "time_block", "suggested_arrival", "suggested_duration_min", "travel_from_previous",
	"place_id", "name", "category", "subcategory", "neighborhood", "city",
}, "latitude", "longitude", "why_this_place", "best_for", "suitable_for",
	"best_time", "price_range", "photos", "google_place_id", "google_rating", "google_review_count",
	"source", "status", "created_at", "updated_at")

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(i int) *int { return &i }

func planRow(id uuid.UUID, name string, public, showcase bool, createdBy *uuid.UUID) []any {
	var creator any
	if createdBy != nil {
		creator = createdBy
	}
	return []any{
		id, name, "Miami", "ai", "AI-generated plan: test", "", 2,
		[]byte(`{"city":"Miami"}`), public, showcase, creator, fixedTime, fixedTime,
	}
}

func stopRow(id uuid.UUID, day, order int, travel []byte, placeName string) []any {
	var travelV any
	if travel != nil {
		travelV = travel
	}
	return []any{
		id, day, order, "morning", "09:00", intPtr(60), travelV,
		uuid.New(), placeName, "coffee", "", "Brickell", "Miami",
		nil, nil, "Good coffee", nil, nil,
		"morning", "$", nil, "", nil, nil,
		"curated", "published", fixedTime, fixedTime,
	}
}

func TestPostgresPlansRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresPlansRepo(mock, discardLogger())
	id := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM plans WHERE is_public = TRUE AND city = \$1 AND is_showcase = TRUE ORDER BY created_at LIMIT \$2`).
		WithArgs("Miami", 50).
		WillReturnRows(pgxmock.NewRows(planColumnNames).AddRow(planRow(id, "Showcase", true, true, nil)...))

	plans, err := repo.List(context.Background(), types.PlanFilter{City: "Miami", ShowcaseOnly: true, Limit: 50})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, id, plans[0].ID)
	assert.True(t, plans[0].IsShowcase)
	assert.JSONEq(t, `{"city":"Miami"}`, string(plans[0].TripContext))
	assert.Nil(t, plans[0].CreatedByID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPlansRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresPlansRepo(mock, discardLogger())
	ctx := context.Background()

	owner := uuid.New()
	found, missing := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM plans WHERE id = \$1`).
		WithArgs(found).
		WillReturnRows(pgxmock.NewRows(planColumnNames).AddRow(planRow(found, "Mine", false, false, &owner)...))
	mock.ExpectQuery(`SELECT (.+) FROM plans WHERE id = \$1`).
		WithArgs(missing).
		WillReturnRows(pgxmock.NewRows(planColumnNames))

	plan, err := repo.GetByID(ctx, found)
	require.NoError(t, err)
	require.NotNil(t, plan.CreatedByID)
	assert.Equal(t, owner, *plan.CreatedByID)
	assert.False(t, plan.IsPublic)

	_, err = repo.GetByID(ctx, missing)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPlansRepo_ListStops(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresPlansRepo(mock, discardLogger())
	planID := uuid.New()
	first, second := uuid.New(), uuid.New()

	rows := pgxmock.NewRows(stopColumnNames).
		AddRow(stopRow(first, 1, 0, nil, "Morning Brew")...).
		AddRow(stopRow(second, 1, 1, []byte(`{"distance_km":1.5,"duration_min":18,"mode":"walk"}`), "Lunch Spot")...)

	mock.ExpectQuery(`SELECT (.+) FROM plan_stops ps JOIN places p ON p.id = ps.place_id WHERE ps.plan_id = \$1 ORDER BY ps.day_number, ps.order_index`).
		WithArgs(planID).
		WillReturnRows(rows)

	stops, err := repo.ListStops(context.Background(), planID)
	require.NoError(t, err)
	require.Len(t, stops, 2)

	assert.Nil(t, stops[0].TravelFromPrevious)
	assert.Equal(t, "Morning Brew", stops[0].Place.Name)
	require.NotNil(t, stops[1].TravelFromPrevious)
	assert.Equal(t, types.TravelSegment{DistanceKm: 1.5, DurationMin: 18, Mode: types.TravelModeWalk}, *stops[1].TravelFromPrevious)
	require.NotNil(t, stops[1].SuggestedDurationMin)
	assert.Equal(t, 60, *stops[1].SuggestedDurationMin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPlansRepo_CreatePlanWithStops(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	plan := types.Plan{
		Name:         "Weekend Plan",
		City:         "Miami",
		Type:         types.PlanTypeAI,
		Description:  "AI-generated plan: weekend",
		DurationDays: 2,
		TripContext:  json.RawMessage(`{"days":2}`),
		CreatedByID:  &owner,
	}
	stops := []types.ScheduledStop{
		{PlaceID: uuid.New(), DayNumber: 1, OrderIndex: 0, TimeBlock: "morning", SuggestedArrival: "09:00", SuggestedDurationMin: 60},
		{PlaceID: uuid.New(), DayNumber: 1, OrderIndex: 1, TimeBlock: "lunch", SuggestedArrival: "12:00", SuggestedDurationMin: 90,
			TravelFromPrevious: &types.TravelSegment{DistanceKm: 1.5, DurationMin: 18, Mode: types.TravelModeWalk}},
	}

	t.Run("commits plan and stops", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewPostgresPlansRepo(mock, discardLogger())

		newID := uuid.New()
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO plans (.+) RETURNING id, created_at, updated_at`).
			WithArgs("Weekend Plan", "Miami", "ai", "AI-generated plan: weekend", 2, []byte(`{"days":2}`), false, false, &owner).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID, fixedTime, fixedTime))
		mock.ExpectExec(`INSERT INTO plan_stops`).
			WithArgs(newID, stops[0].PlaceID, 1, 0, "morning", "09:00", 60, []byte(nil)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`INSERT INTO plan_stops`).
			WithArgs(newID, stops[1].PlaceID, 1, 1, "lunch", "12:00", 90, []byte(`{"distance_km":1.5,"duration_min":18,"mode":"walk"}`)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		stored, err := repo.CreatePlanWithStops(ctx, plan, stops)
		require.NoError(t, err)
		assert.Equal(t, newID, stored.ID)
		assert.Equal(t, fixedTime, stored.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when a stop fails", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewPostgresPlansRepo(mock, discardLogger())

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO plans`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(uuid.New(), fixedTime, fixedTime))
		mock.ExpectExec(`INSERT INTO plan_stops`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(errors.New("fk violation"))
		mock.ExpectRollback()

		_, err = repo.CreatePlanWithStops(ctx, plan, stops)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fk violation")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
