package plans

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/locallist-builder/internal/types"
)

// MockPlansRepository is a mock implementation of Repository
type MockPlansRepository struct {
	mock.Mock
}

func (m *MockPlansRepository) List(ctx context.Context, filter types.PlanFilter) ([]types.Plan, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Plan), args.Error(1)
}

func (m *MockPlansRepository) GetByID(ctx context.Context, id uuid.UUID) (*types.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Plan), args.Error(1)
}

func (m *MockPlansRepository) ListStops(ctx context.Context, planID uuid.UUID) ([]types.PlanStop, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.PlanStop), args.Error(1)
}

func (m *MockPlansRepository) CreatePlanWithStops(ctx context.Context, plan types.Plan, stops []types.ScheduledStop) (*types.Plan, error) {
	args := m.Called(ctx, plan, stops)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Plan), args.Error(1)
}

func setupPlansServiceTest() (*ServiceImpl, *MockPlansRepository) {
	repo := new(MockPlansRepository)
	return NewPlansService(repo, discardLogger()), repo
}

func TestServiceImpl_ListPlans(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()

	tests := []struct {
		name         string
		filter       types.PlanFilter
		userID       *uuid.UUID
		wantShowcase bool
	}{
		{"anonymous sees showcase only", types.PlanFilter{}, nil, true},
		{"identified sees all public", types.PlanFilter{}, &user, false},
		{"identified asking for showcase", types.PlanFilter{ShowcaseOnly: true}, &user, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := setupPlansServiceTest()
			repo.On("List", mock.Anything, types.PlanFilter{ShowcaseOnly: tt.wantShowcase, Limit: DefaultLimit}).
				Return([]types.Plan{{Name: "P"}}, nil).Once()

			resp, err := service.ListPlans(ctx, tt.filter, tt.userID)
			require.NoError(t, err)
			assert.Equal(t, 1, resp.Total)
			repo.AssertExpectations(t)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		service, repo := setupPlansServiceTest()
		repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
		_, err := service.ListPlans(ctx, types.PlanFilter{}, nil)
		assert.Error(t, err)
	})
}

func TestServiceImpl_GetPlan(t *testing.T) {
	ctx := context.Background()
	owner, stranger := uuid.New(), uuid.New()
	planID := uuid.New()

	privatePlan := &types.Plan{ID: planID, Name: "Secret", IsPublic: false, CreatedByID: &owner}
	stops := []types.PlanStop{
		{DayNumber: 2, OrderIndex: 0, TimeBlock: "morning"},
		{DayNumber: 1, OrderIndex: 1, TimeBlock: "lunch"},
		{DayNumber: 1, OrderIndex: 0, TimeBlock: "morning"},
	}

	t.Run("owner sees private plan grouped by day", func(t *testing.T) {
		service, repo := setupPlansServiceTest()
		repo.On("GetByID", mock.Anything, planID).Return(privatePlan, nil).Once()
		repo.On("ListStops", mock.Anything, planID).Return(stops, nil).Once()

		detail, err := service.GetPlan(ctx, planID, &owner)
		require.NoError(t, err)
		require.Len(t, detail.Days, 2)
		assert.Equal(t, 1, detail.Days[0].DayNumber)
		assert.Equal(t, []string{"morning", "lunch"}, []string{detail.Days[0].Stops[0].TimeBlock, detail.Days[0].Stops[1].TimeBlock})
		assert.Equal(t, 2, detail.Days[1].DayNumber)
		assert.Equal(t, "Secret", detail.Name)
	})

	t.Run("others get not found", func(t *testing.T) {
		for _, caller := range []*uuid.UUID{nil, &stranger} {
			service, repo := setupPlansServiceTest()
			repo.On("GetByID", mock.Anything, planID).Return(privatePlan, nil).Once()

			_, err := service.GetPlan(ctx, planID, caller)
			assert.ErrorIs(t, err, types.ErrNotFound)
			repo.AssertNotCalled(t, "ListStops", mock.Anything, mock.Anything)
		}
	})

	t.Run("public plan visible to anyone", func(t *testing.T) {
		service, repo := setupPlansServiceTest()
		repo.On("GetByID", mock.Anything, planID).Return(&types.Plan{ID: planID, IsPublic: true}, nil).Once()
		repo.On("ListStops", mock.Anything, planID).Return([]types.PlanStop{}, nil).Once()

		detail, err := service.GetPlan(ctx, planID, nil)
		require.NoError(t, err)
		assert.Empty(t, detail.Days)
	})

	t.Run("missing plan", func(t *testing.T) {
		service, repo := setupPlansServiceTest()
		repo.On("GetByID", mock.Anything, planID).Return(nil, types.ErrNotFound).Once()
		_, err := service.GetPlan(ctx, planID, &owner)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestGroupStopsByDay_DoesNotMutateInput(t *testing.T) {
	stops := []types.PlanStop{
		{DayNumber: 3, OrderIndex: 0},
		{DayNumber: 1, OrderIndex: 0},
	}
	days := GroupStopsByDay(stops)
	require.Len(t, days, 2)
	assert.Equal(t, []int{1, 3}, []int{days[0].DayNumber, days[1].DayNumber})
	assert.Equal(t, 3, stops[0].DayNumber)
}
