package integration_testing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachbit/backend/internal/nutrition"
	"github.com/coachbit/backend/internal/workout"
)

func Test_Server(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	suite, err := newSuite(ctx)
	if err != nil {
		t.Skipf("docker not available, skipping integration suite: %s", err)
	}
	defer suite.cleanup()
	require.NotNil(t, suite.server)

	// let the listeners come up
	time.Sleep(500 * time.Millisecond)

	httpClient := &http.Client{Timeout: 10 * time.Second}

	t.Run("workout program lifecycle", func(t *testing.T) {
		program := workout.Program{
			Title: "Push Pull Legs",
			Weeks: []workout.Week{{
				Days: []workout.Day{{
					Name: "Push",
					Exercises: []workout.Exercise{{
						ID:   "bench_press",
						Name: "Barbell Bench Press",
						SetGroups: []workout.SetGroup{{
							BaseSet: workout.Set{Reps: 8, Weight: 80},
							Sets: []workout.Set{
								{SetNumber: 1, Reps: 8, Weight: 80},
								{SetNumber: 2, Reps: 8, Weight: 80},
								{SetNumber: 3, Reps: 8, Weight: 80},
							},
						}},
					}},
				}},
			}},
		}

		programID := createDocument(t, httpClient, "/programs", program)

		// bump weight on every set via a baseSet change
		modifyBody := map[string]any{
			"action": "update_setgroup",
			"target": map[string]any{
				"weekIndex":    0,
				"dayIndex":     0,
				"exerciseName": "bench",
			},
			"changes": map[string]any{"weight": 85},
		}
		var modifyResp workout.ModifyResponse
		doJSON(t, httpClient, "POST", "/programs/"+programID+"/modify", modifyBody, http.StatusOK, &modifyResp)
		require.True(t, modifyResp.Success)
		require.Equal(t, 1, modifyResp.ModifiedCount)
		require.NotNil(t, modifyResp.Program)

		sets := modifyResp.Program.Weeks[0].Days[0].Exercises[0].SetGroups[0].Sets
		require.Len(t, sets, 3)
		for _, set := range sets {
			assert.Equal(t, 85.0, set.Weight)
		}

		var fetched workout.Program
		doJSON(t, httpClient, "GET", "/programs/"+programID, nil, http.StatusOK, &fetched)
		assert.Equal(t, 85.0, fetched.Weeks[0].Days[0].Exercises[0].SetGroups[0].Sets[0].Weight)
	})

	t.Run("nutrition plan rescale", func(t *testing.T) {
		plan := nutrition.Plan{
			Title: "Cut 2200",
			Weeks: []nutrition.Week{{
				Days: []nutrition.Day{{
					Name: "Monday",
					Meals: []nutrition.Meal{{
						Name: "Lunch",
						Foods: []nutrition.MealFood{{
							FoodID:   "chicken_breast",
							Name:     "Chicken Breast",
							Quantity: 100,
							Unit:     "g",
							Macros:   nutrition.FoodMacros{Calories: 165, Protein: 31, Fat: 3.6},
						}},
					}},
				}},
			}},
		}

		planID := createDocument(t, httpClient, "/plans", plan)

		modifyBody := map[string]any{
			"action": "update_food",
			"target": map[string]any{
				"weekIndex": 0,
				"dayIndex":  0,
				"mealName":  "lunch",
				"foodName":  "chicken",
			},
			"changes": map[string]any{"quantity": 200},
		}
		var modifyResp nutrition.ModifyResponse
		doJSON(t, httpClient, "POST", "/plans/"+planID+"/modify", modifyBody, http.StatusOK, &modifyResp)
		require.True(t, modifyResp.Success)
		require.NotNil(t, modifyResp.Plan)

		food := modifyResp.Plan.Weeks[0].Days[0].Meals[0].Foods[0]
		assert.Equal(t, 330, food.Macros.Calories)
		assert.Equal(t, 62.0, food.Macros.Protein)

		day := modifyResp.Plan.Weeks[0].Days[0]
		assert.Equal(t, 330, day.TotalCalories)
	})

	t.Run("catalog search", func(t *testing.T) {
		resp, err := httpClient.Get(serverEndpoint + "/catalog/exercises?q=press")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var entries []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
		assert.Len(t, entries, 2)
	})

	t.Run("delete program", func(t *testing.T) {
		program := workout.Program{
			Title: gofakeit.Sentence(3),
			Weeks: []workout.Week{{
				Days: []workout.Day{{
					Name: gofakeit.Word(),
					Exercises: []workout.Exercise{{
						Name: gofakeit.Name(),
						SetGroups: []workout.SetGroup{{
							BaseSet: workout.Set{Reps: 10, Weight: 60},
							Sets:    []workout.Set{{SetNumber: 1, Reps: 10, Weight: 60}},
						}},
					}},
				}},
			}},
		}

		programID := createDocument(t, httpClient, "/programs", program)
		doJSON(t, httpClient, "DELETE", "/programs/"+programID, nil, http.StatusOK, nil)
		doJSON(t, httpClient, "GET", "/programs/"+programID, nil, http.StatusNotFound, nil)
	})

	t.Run("modify unknown program", func(t *testing.T) {
		modifyBody := map[string]any{
			"action":  "update_exercise",
			"target":  map[string]any{"weekIndex": 0, "dayIndex": 0, "exerciseIndex": 0},
			"changes": map[string]any{"name": "nope"},
		}
		doJSON(t, httpClient, "POST", "/programs/no-such-id/modify", modifyBody, http.StatusNotFound, nil)
	})
}

func createDocument(t *testing.T, client *http.Client, path string, doc any) string {
	t.Helper()
	var created struct {
		ID string `json:"id"`
	}
	doJSON(t, client, "POST", path, doc, http.StatusCreated, &created)
	require.NotEmpty(t, created.ID)
	return created.ID
}

func doJSON(t *testing.T, client *http.Client, method, path string, body any, expectedStatus int, out any) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, expectedStatus, resp.StatusCode, fmt.Sprintf("%s %s", method, path))

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
}
