package nutrition_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/coachbit/backend/internal/nutrition"
)

func lunchPlan() *nutrition.Plan {
	return &nutrition.Plan{
		Title: "Cut 2200",
		Weeks: []nutrition.Week{
			{Days: []nutrition.Day{{
				Name: "Monday",
				Meals: []nutrition.Meal{
					{Name: "Lunch", Foods: []nutrition.MealFood{
						{
							Name:     "Chicken Breast",
							Quantity: 100,
							Unit:     "g",
							Macros:   nutrition.FoodMacros{Calories: 165, Protein: 31, Fat: 3.6},
						},
					}},
				},
			}}},
		},
	}
}

func updateQuantityOp(t *testing.T, foodName string, quantity float64) nutrition.Operation {
	t.Helper()
	changes, err := json.Marshal(map[string]float64{"quantity": quantity})
	require.NoError(t, err)
	return nutrition.Operation{
		Action:  nutrition.ActionUpdateFood,
		Target:  nutrition.Target{FoodName: foodName},
		Changes: changes,
	}
}

func TestService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("applies_and_saves_with_version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repoMock := NewMockplansRepo(ctrl)
		svc := nutrition.NewService(repoMock, nil)

		plan := lunchPlan()
		repoMock.EXPECT().
			Get(gomock.Any(), "plan-1").
			Return(plan, int64(9), nil)
		repoMock.EXPECT().
			Save(gomock.Any(), "plan-1", plan, int64(9)).
			Return(nil)

		result, err := svc.Apply(ctx, "plan-1", []nutrition.Operation{
			updateQuantityOp(t, "chicken", 200),
		}, nutrition.TargetContext{})
		require.NoError(t, err)
		assert.Equal(t, 1, result.AppliedCount)
		require.NotNil(t, result.Plan)

		day := result.Plan.Weeks[0].Days[0]
		assert.Equal(t, 330, day.Meals[0].Foods[0].Macros.Calories)
		assert.Equal(t, 330, day.TotalCalories)
	})

	t.Run("all_failed_skips_save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repoMock := NewMockplansRepo(ctrl)
		svc := nutrition.NewService(repoMock, nil)

		repoMock.EXPECT().
			Get(gomock.Any(), "plan-1").
			Return(lunchPlan(), int64(1), nil)

		_, err := svc.Apply(ctx, "plan-1", []nutrition.Operation{
			updateQuantityOp(t, "tofu", 200),
		}, nutrition.TargetContext{})
		require.ErrorIs(t, err, nutrition.ErrTargetNotFound)
	})

	t.Run("plan_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repoMock := NewMockplansRepo(ctrl)
		svc := nutrition.NewService(repoMock, nil)

		repoMock.EXPECT().
			Get(gomock.Any(), "nope").
			Return(nil, int64(0), nutrition.ErrPlanNotFound)

		_, err := svc.Apply(ctx, "nope", []nutrition.Operation{
			updateQuantityOp(t, "chicken", 200),
		}, nutrition.TargetContext{})
		require.ErrorIs(t, err, nutrition.ErrPlanNotFound)
	})

	t.Run("concurrent_modification_surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repoMock := NewMockplansRepo(ctrl)
		svc := nutrition.NewService(repoMock, nil)

		repoMock.EXPECT().
			Get(gomock.Any(), "plan-1").
			Return(lunchPlan(), int64(3), nil)
		repoMock.EXPECT().
			Save(gomock.Any(), "plan-1", gomock.Any(), int64(3)).
			Return(nutrition.ErrConcurrentModification)

		_, err := svc.Apply(ctx, "plan-1", []nutrition.Operation{
			updateQuantityOp(t, "chicken", 200),
		}, nutrition.TargetContext{})
		require.ErrorIs(t, err, nutrition.ErrConcurrentModification)
	})

	t.Run("no_operations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repoMock := NewMockplansRepo(ctrl)
		svc := nutrition.NewService(repoMock, nil)

		_, err := svc.Apply(ctx, "plan-1", nil, nutrition.TargetContext{})
		require.ErrorIs(t, err, nutrition.ErrInvalidInput)
	})
}
