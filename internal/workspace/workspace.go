// Package workspace owns the in-memory workout collections. Views receive
// the data read-only and mutate it only through the methods here, which
// call the backend first and touch local state only after the server
// confirms. That keeps the aggregator's inputs consistent and avoids
// showing a false success.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/goalritmo/gymlog/internal/api"
	"github.com/goalritmo/gymlog/internal/history"
	"github.com/goalritmo/gymlog/internal/models"
	"github.com/goalritmo/gymlog/internal/session"
	"github.com/goalritmo/gymlog/internal/store"
)

// ErrQueuedOffline reports that the backend was unreachable and the
// submission went to the local pending queue instead of being lost.
var ErrQueuedOffline = errors.New("backend unreachable, submission queued locally")

// API is the slice of the gateway client the workspace needs.
type API interface {
	Workouts(ctx context.Context) ([]models.WorkoutSet, error)
	CreateWorkout(ctx context.Context, req api.CreateWorkoutRequest) (*models.WorkoutSet, error)
	DeleteWorkout(ctx context.Context, id int) error
	WorkoutSessions(ctx context.Context) ([]models.WorkoutSession, error)
	CreateWorkoutSession(ctx context.Context, req api.CreateSessionRequest) (*models.WorkoutSession, error)
	UpdateWorkoutSession(ctx context.Context, id int, req api.UpdateSessionRequest) (*models.WorkoutSession, error)
	Exercises(ctx context.Context, filter api.ExerciseFilter) ([]models.Exercise, error)
}

// Compile-time check: the real client satisfies the interface.
var _ API = (*api.Client)(nil)

// RatingField selects which session rating a rating action targets.
type RatingField string

const (
	FieldEffort RatingField = "effort"
	FieldMood   RatingField = "mood"
)

// SubmitRequest is a fully-resolved entry form payload.
type SubmitRequest struct {
	ExerciseID   int
	Weight       float64
	Reps         int
	Serie        *int
	Seconds      *int
	Observations *string
}

// Workspace is the topmost authenticated owner of the sets and sessions
// collections plus the exercise catalog used to resolve names.
type Workspace struct {
	api   API
	cache *store.Store // nil disables the local fallback

	sets      []models.WorkoutSet
	sessions  []models.WorkoutSession
	exercises []models.Exercise

	// stale is set when the data came from the local cache instead of
	// the backend.
	stale bool
}

// New creates a workspace. The cache store may be nil.
func New(apiClient API, cache *store.Store) *Workspace {
	return &Workspace{api: apiClient, cache: cache}
}

// Refresh fetches both collections from the backend. When the backend is
// unreachable it falls back to the cached snapshot and marks the data
// stale; auth and server errors are returned as-is.
func (w *Workspace) Refresh(ctx context.Context) error {
	sessions, err := w.api.WorkoutSessions(ctx)
	if err != nil {
		if isUnreachable(err) && w.loadFromCache() {
			logrus.WithError(err).Warn("backend unreachable, serving cached history")
			return nil
		}
		return err
	}
	sets, err := w.api.Workouts(ctx)
	if err != nil {
		return err
	}

	w.sessions = sessions
	w.sets = sets
	w.stale = false

	if w.cache != nil {
		if err := w.cache.CacheSessions(sessions); err != nil {
			logrus.WithError(err).Warn("failed to cache sessions")
		}
		if err := w.cache.CacheSets(sets); err != nil {
			logrus.WithError(err).Warn("failed to cache sets")
		}
	}
	return nil
}

func (w *Workspace) loadFromCache() bool {
	if w.cache == nil {
		return false
	}
	sessions, err := w.cache.LoadSessions()
	if err != nil {
		return false
	}
	sets, err := w.cache.LoadSets()
	if err != nil {
		return false
	}
	w.sessions = sessions
	w.sets = sets
	w.stale = true
	return true
}

// LoadCatalog fetches the exercise catalog used to resolve exercise ids.
// Falls back to the cached copy when the backend is unreachable so sets
// can still be entered and queued offline.
func (w *Workspace) LoadCatalog(ctx context.Context) error {
	exercises, err := w.api.Exercises(ctx, api.ExerciseFilter{})
	if err != nil {
		if isUnreachable(err) && w.cache != nil {
			cached, cacheErr := w.cache.LoadExercises()
			if cacheErr == nil && len(cached) > 0 {
				logrus.WithError(err).Warn("backend unreachable, serving cached catalog")
				w.exercises = cached
				return nil
			}
		}
		return err
	}
	w.exercises = exercises
	if w.cache != nil {
		if err := w.cache.CacheExercises(exercises); err != nil {
			logrus.WithError(err).Warn("failed to cache catalog")
		}
	}
	return nil
}

// Stale reports whether the collections came from the local cache.
func (w *Workspace) Stale() bool { return w.stale }

// Sets returns the owned WorkoutSet collection. Read-only for callers.
func (w *Workspace) Sets() []models.WorkoutSet { return w.sets }

// Sessions returns the owned WorkoutSession collection. Read-only for callers.
func (w *Workspace) Sessions() []models.WorkoutSession { return w.sessions }

// Exercises returns the loaded catalog. Read-only for callers.
func (w *Workspace) Exercises() []models.Exercise { return w.exercises }

// ExerciseByID resolves a catalog entry.
func (w *Workspace) ExerciseByID(id int) (*models.Exercise, bool) {
	for i := range w.exercises {
		if w.exercises[i].ID == id {
			return &w.exercises[i], true
		}
	}
	return nil, false
}

// Days returns the aggregated history view model.
func (w *Workspace) Days() []history.WorkoutDay {
	return history.BuildWorkoutDays(w.sessions, w.sets)
}

// DaysOn returns the view model filtered to one calendar date.
func (w *Workspace) DaysOn(date *time.Time) []history.WorkoutDay {
	return history.FilterByDate(w.Days(), date)
}

// SubmitSet persists one set. The session for today is created lazily the
// first time a set lands on a calendar day without one. If the backend is
// unreachable the submission is queued locally and ErrQueuedOffline is
// returned.
func (w *Workspace) SubmitSet(ctx context.Context, req SubmitRequest) (*models.WorkoutSet, error) {
	exercise, ok := w.ExerciseByID(req.ExerciseID)
	if !ok {
		return nil, fmt.Errorf("exercise %d not found in catalog", req.ExerciseID)
	}

	if _, err := w.ensureSessionToday(ctx); err != nil {
		if isUnreachable(err) {
			return nil, w.queueOffline(req, exercise.Name, err)
		}
		return nil, err
	}

	set, err := w.api.CreateWorkout(ctx, api.CreateWorkoutRequest{
		ExerciseID:   req.ExerciseID,
		Weight:       req.Weight,
		Reps:         req.Reps,
		Serie:        req.Serie,
		Seconds:      req.Seconds,
		Observations: req.Observations,
	})
	if err != nil {
		if isUnreachable(err) {
			return nil, w.queueOffline(req, exercise.Name, err)
		}
		return nil, err
	}

	// Append the canonical record the server returned, never the local draft.
	w.sets = append(w.sets, *set)
	return set, nil
}

func (w *Workspace) queueOffline(req SubmitRequest, exerciseName string, cause error) error {
	if w.cache == nil {
		return cause
	}
	logrus.WithError(cause).Warn("backend unreachable, queueing submission locally")
	if err := w.cache.Enqueue(store.PendingWorkout{
		ExerciseID:   req.ExerciseID,
		ExerciseName: exerciseName,
		Weight:       req.Weight,
		Reps:         req.Reps,
		Serie:        req.Serie,
		Seconds:      req.Seconds,
		Observations: req.Observations,
	}); err != nil {
		return fmt.Errorf("queueing submission: %w", err)
	}
	return ErrQueuedOffline
}

// ensureSessionToday returns today's session, creating it on first use.
func (w *Workspace) ensureSessionToday(ctx context.Context) (*models.WorkoutSession, error) {
	today := models.DayKey(time.Now())
	for i := range w.sessions {
		if w.sessions[i].Day() == today {
			return &w.sessions[i], nil
		}
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	created, err := w.api.CreateWorkoutSession(ctx, api.CreateSessionRequest{
		SessionDate: midnight,
		SessionName: "Daily workout",
	})
	if err != nil {
		return nil, err
	}
	w.sessions = append(w.sessions, *created)
	return created, nil
}

// DeleteSet removes a set after server confirmation. No optimistic delete.
func (w *Workspace) DeleteSet(ctx context.Context, id int) error {
	if err := w.api.DeleteWorkout(ctx, id); err != nil {
		return err
	}
	for i := range w.sets {
		if w.sets[i].ID == id {
			w.sets = append(w.sets[:i], w.sets[i+1:]...)
			break
		}
	}
	return nil
}

// RenameSession updates a session's user-editable label.
func (w *Workspace) RenameSession(ctx context.Context, sessionID int, name string) error {
	updated, err := w.api.UpdateWorkoutSession(ctx, sessionID, api.UpdateSessionRequest{
		SessionName: &name,
	})
	if err != nil {
		return err
	}
	w.replaceSession(*updated)
	return nil
}

// ApplyRating applies an effort or mood rating action with the
// toggle-to-clear rule: re-applying the current value clears it to 0.
func (w *Workspace) ApplyRating(ctx context.Context, sessionID int, field RatingField, value int) error {
	sess, ok := w.sessionByID(sessionID)
	if !ok {
		return fmt.Errorf("session %d not found", sessionID)
	}

	var req api.UpdateSessionRequest
	switch field {
	case FieldEffort:
		next := history.ToggleRating(sess.Effort, value)
		req.Effort = &next
	case FieldMood:
		next := history.ToggleRating(sess.Mood, value)
		req.Mood = &next
	default:
		return fmt.Errorf("unknown rating field %q", field)
	}

	updated, err := w.api.UpdateWorkoutSession(ctx, sessionID, req)
	if err != nil {
		return err
	}
	w.replaceSession(*updated)
	return nil
}

// Sync drains the offline pending queue against the backend, oldest first.
// It stops at the first failure so order is preserved for the next attempt.
func (w *Workspace) Sync(ctx context.Context) (pushed int, err error) {
	if w.cache == nil {
		return 0, nil
	}
	pending, err := w.cache.Pending()
	if err != nil {
		return 0, fmt.Errorf("reading pending queue: %w", err)
	}

	for _, p := range pending {
		if _, err := w.ensureSessionToday(ctx); err != nil {
			return pushed, err
		}
		set, err := w.api.CreateWorkout(ctx, api.CreateWorkoutRequest{
			ExerciseID:   p.ExerciseID,
			Weight:       p.Weight,
			Reps:         p.Reps,
			Serie:        p.Serie,
			Seconds:      p.Seconds,
			Observations: p.Observations,
		})
		if err != nil {
			return pushed, err
		}
		w.sets = append(w.sets, *set)
		if err := w.cache.Dequeue(p.ID); err != nil {
			return pushed, fmt.Errorf("dequeueing submission: %w", err)
		}
		pushed++
	}
	return pushed, nil
}

func (w *Workspace) sessionByID(id int) (*models.WorkoutSession, bool) {
	for i := range w.sessions {
		if w.sessions[i].ID == id {
			return &w.sessions[i], true
		}
	}
	return nil, false
}

func (w *Workspace) replaceSession(updated models.WorkoutSession) {
	for i := range w.sessions {
		if w.sessions[i].ID == updated.ID {
			w.sessions[i] = updated
			return
		}
	}
	w.sessions = append(w.sessions, updated)
}

// isUnreachable distinguishes transport failures (candidates for the local
// fallback) from auth errors and real server responses.
func isUnreachable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, session.ErrNoSession) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if _, ok := api.IsAPIError(err); ok {
		return false
	}
	return true
}
