package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalritmo/gymlog/internal/session"
)

// staticTokens is a TokenSource backed by a fixed token, or by
// session.ErrNoSession when the token is empty.
type staticTokens struct {
	token string
}

func (s staticTokens) Current() (*session.Session, error) {
	if s.token == "" {
		return nil, session.ErrNoSession
	}
	return &session.Session{Token: s.token}, nil
}

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api", staticTokens{token: token}, 5*time.Second)
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		assert.Equal(t, "/api/workouts", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	})

	sets, err := client.Workouts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sets)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClientFailsLocallyWithoutSession(t *testing.T) {
	called := false
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.Workouts(context.Background())
	require.ErrorIs(t, err, session.ErrNoSession)
	assert.False(t, called, "no HTTP request may be sent without a session")
}

func TestClientHealthSkipsAuth(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.Health(context.Background()))
}

func TestClientNormalizesErrors(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid token\n"))
	})

	_, err := client.Workouts(context.Background())
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid token", apiErr.Body)
}

func TestCreateWorkoutPayload(t *testing.T) {
	serie := 2
	var got map[string]any
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/workouts", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":42,"exercise_id":7,"weight":80,"reps":8}`))
	})

	set, err := client.CreateWorkout(context.Background(), CreateWorkoutRequest{
		ExerciseID: 7,
		Weight:     80,
		Reps:       8,
		Serie:      &serie,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, set.ID)

	assert.Equal(t, float64(7), got["exercise_id"])
	assert.Equal(t, float64(2), got["serie"])
	// Unset optional fields stay off the wire entirely.
	_, hasSeconds := got["seconds"]
	assert.False(t, hasSeconds)
	_, hasObs := got["observations"]
	assert.False(t, hasObs)
}

func TestUpdateSessionSendsExplicitZero(t *testing.T) {
	zero := 0
	var got map[string]any
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/workout-sessions/3", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":3,"effort":0}`))
	})

	_, err := client.UpdateWorkoutSession(context.Background(), 3, UpdateSessionRequest{Effort: &zero})
	require.NoError(t, err)

	// Clearing a rating must send effort:0, not omit the field.
	v, ok := got["effort"]
	require.True(t, ok)
	assert.Equal(t, float64(0), v)
	_, hasMood := got["mood"]
	assert.False(t, hasMood)
}

func TestExercisesFilterParams(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/exercises", r.URL.Path)
		assert.Equal(t, "press", r.URL.Query().Get("search"))
		assert.Equal(t, "chest", r.URL.Query().Get("muscle_group"))
		assert.Empty(t, r.URL.Query().Get("equipment"))
		_, _ = w.Write([]byte(`[{"id":1,"name":"Bench Press"}]`))
	})

	exercises, err := client.Exercises(context.Background(), ExerciseFilter{
		Search:      "press",
		MuscleGroup: "chest",
	})
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Bench Press", exercises[0].Name)
}

func TestDeleteWorkoutEmptyResponse(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/workouts/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.DeleteWorkout(context.Background(), 9))
}

func TestMyStats(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/me/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{"total_workouts":120,"total_sessions":30,"workout_days":28,"avg_effort":2.1,"avg_mood":2.6}`))
	})

	stats, err := client.MyStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, stats.TotalWorkouts)
	assert.Equal(t, 30, stats.TotalSessions)
	assert.Equal(t, 28, stats.WorkoutDays)
	assert.InDelta(t, 2.1, stats.AvgEffort, 0.001)
}
