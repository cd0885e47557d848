// Package store is the local fallback persistence: a best-effort sqlite
// cache of the remote collections plus a queue of submissions made while
// the backend was unreachable. The remote API stays the source of truth;
// cached contents may silently diverge from the server.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goalritmo/gymlog/internal/models"
)

// PendingWorkout is a set submission queued while offline, drained by
// 'gymlog sync'.
type PendingWorkout struct {
	ID           uint      `gorm:"primarykey"`
	ExerciseID   int       `gorm:"not null"`
	ExerciseName string    `gorm:"not null"`
	Weight       float64   `gorm:"not null"`
	Reps         int       `gorm:"not null"`
	Serie        *int
	Seconds      *int
	Observations *string
	QueuedAt     time.Time
}

// Store owns the cache database connection. Callers hold a single instance
// and pass it down; there is no package-level connection.
type Store struct {
	db *gorm.DB
}

// Open opens (and migrates) the cache database under the data dir.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(dataDir, "cache.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.WorkoutSet{},
		&models.WorkoutSession{},
		&models.Exercise{},
		&PendingWorkout{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// CacheSets replaces the cached WorkoutSet snapshot.
func (s *Store) CacheSets(sets []models.WorkoutSet) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.WorkoutSet{}).Error; err != nil {
			return err
		}
		if len(sets) == 0 {
			return nil
		}
		return tx.CreateInBatches(sets, 100).Error
	})
}

// CacheSessions replaces the cached WorkoutSession snapshot.
func (s *Store) CacheSessions(sessions []models.WorkoutSession) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.WorkoutSession{}).Error; err != nil {
			return err
		}
		if len(sessions) == 0 {
			return nil
		}
		return tx.CreateInBatches(sessions, 100).Error
	})
}

// CacheExercises replaces the cached exercise catalog.
func (s *Store) CacheExercises(exercises []models.Exercise) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		if len(exercises) == 0 {
			return nil
		}
		return tx.CreateInBatches(exercises, 100).Error
	})
}

// LoadSets returns the cached WorkoutSet snapshot.
func (s *Store) LoadSets() ([]models.WorkoutSet, error) {
	var sets []models.WorkoutSet
	if err := s.db.Order("created_at").Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

// LoadSessions returns the cached WorkoutSession snapshot.
func (s *Store) LoadSessions() ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	if err := s.db.Order("session_date").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// LoadExercises returns the cached exercise catalog.
func (s *Store) LoadExercises() ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := s.db.Order("name").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

// Enqueue stores a submission that could not reach the backend.
func (s *Store) Enqueue(p PendingWorkout) error {
	if p.QueuedAt.IsZero() {
		p.QueuedAt = time.Now()
	}
	return s.db.Create(&p).Error
}

// Pending returns queued submissions oldest first.
func (s *Store) Pending() ([]PendingWorkout, error) {
	var pending []PendingWorkout
	if err := s.db.Order("queued_at").Find(&pending).Error; err != nil {
		return nil, err
	}
	return pending, nil
}

// Dequeue removes a queued submission after it has been pushed.
func (s *Store) Dequeue(id uint) error {
	return s.db.Delete(&PendingWorkout{}, id).Error
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
