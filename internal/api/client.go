package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goalritmo/gymlog/internal/models"
	"github.com/goalritmo/gymlog/internal/session"
)

// TokenSource supplies the bearer token for authenticated calls.
// *session.Store satisfies it.
type TokenSource interface {
	Current() (*session.Session, error)
}

// Client talks to the Gym Journal REST backend. It is a thin translation
// layer: typed method in, authenticated HTTP request out, normalized error
// back. It holds no workout state of its own.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// NewClient creates a client for the given base URL (ending in /api).
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateWorkoutRequest is the payload for POST /workouts.
type CreateWorkoutRequest struct {
	ExerciseID   int     `json:"exercise_id"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	Serie        *int    `json:"serie,omitempty"`
	Seconds      *int    `json:"seconds,omitempty"`
	Observations *string `json:"observations,omitempty"`
}

// CreateSessionRequest is the payload for POST /workout-sessions.
type CreateSessionRequest struct {
	SessionDate time.Time `json:"session_date"`
	SessionName string    `json:"session_name"`
}

// UpdateSessionRequest is the payload for PUT /workout-sessions/{id}.
// Pointer fields distinguish "leave unchanged" from explicit zero values,
// which matters for clearing a rating back to 0.
type UpdateSessionRequest struct {
	SessionName *string `json:"session_name,omitempty"`
	Effort      *int    `json:"effort,omitempty"`
	Mood        *int    `json:"mood,omitempty"`
}

// ExerciseFilter narrows GET /exercises.
type ExerciseFilter struct {
	Search      string
	MuscleGroup string
	Equipment   string
}

func (f ExerciseFilter) values() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.MuscleGroup != "" {
		v.Set("muscle_group", f.MuscleGroup)
	}
	if f.Equipment != "" {
		v.Set("equipment", f.Equipment)
	}
	return v
}

// do issues one request. Authenticated calls fail locally with
// session.ErrNoSession before any HTTP happens.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any, requireAuth bool) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if requireAuth {
		sess, err := c.tokens.Current()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", method, path, err)
	}
	return nil
}

// Health probes the backend without auth.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil, false)
}

func (c *Client) Workouts(ctx context.Context) ([]models.WorkoutSet, error) {
	var sets []models.WorkoutSet
	if err := c.do(ctx, http.MethodGet, "/workouts", nil, nil, &sets, true); err != nil {
		return nil, err
	}
	return sets, nil
}

func (c *Client) CreateWorkout(ctx context.Context, req CreateWorkoutRequest) (*models.WorkoutSet, error) {
	var set models.WorkoutSet
	if err := c.do(ctx, http.MethodPost, "/workouts", nil, req, &set, true); err != nil {
		return nil, err
	}
	return &set, nil
}

func (c *Client) UpdateWorkout(ctx context.Context, id int, req CreateWorkoutRequest) (*models.WorkoutSet, error) {
	var set models.WorkoutSet
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/workouts/%d", id), nil, req, &set, true); err != nil {
		return nil, err
	}
	return &set, nil
}

func (c *Client) DeleteWorkout(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/workouts/%d", id), nil, nil, nil, true)
}

func (c *Client) WorkoutSessions(ctx context.Context) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	if err := c.do(ctx, http.MethodGet, "/workout-sessions", nil, nil, &sessions, true); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *Client) CreateWorkoutSession(ctx context.Context, req CreateSessionRequest) (*models.WorkoutSession, error) {
	var sess models.WorkoutSession
	if err := c.do(ctx, http.MethodPost, "/workout-sessions", nil, req, &sess, true); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (c *Client) UpdateWorkoutSession(ctx context.Context, id int, req UpdateSessionRequest) (*models.WorkoutSession, error) {
	var sess models.WorkoutSession
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/workout-sessions/%d", id), nil, req, &sess, true); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (c *Client) Exercises(ctx context.Context, filter ExerciseFilter) ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := c.do(ctx, http.MethodGet, "/exercises", filter.values(), nil, &exercises, true); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (c *Client) Exercise(ctx context.Context, id int) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/exercises/%d", id), nil, nil, &exercise, true); err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (c *Client) Equipment(ctx context.Context) ([]models.Equipment, error) {
	var equipment []models.Equipment
	if err := c.do(ctx, http.MethodGet, "/equipment", nil, nil, &equipment, true); err != nil {
		return nil, err
	}
	return equipment, nil
}

func (c *Client) EquipmentByID(ctx context.Context, id int) (*models.Equipment, error) {
	var item models.Equipment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/equipment/%d", id), nil, nil, &item, true); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/me", nil, nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) MyStats(ctx context.Context) (*models.UserStats, error) {
	var stats models.UserStats
	if err := c.do(ctx, http.MethodGet, "/me/stats", nil, nil, &stats, true); err != nil {
		return nil, err
	}
	return &stats, nil
}
