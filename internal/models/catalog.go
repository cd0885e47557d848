package models

import (
	"time"
)

// Exercise is a catalog entry. The catalog is browsed, never mutated.
type Exercise struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	MuscleGroup      string    `json:"muscle_group"`
	PrimaryMuscles   []string  `json:"primary_muscles" gorm:"serializer:json"`
	SecondaryMuscles []string  `json:"secondary_muscles" gorm:"serializer:json"`
	Equipment        string    `json:"equipment"`
	VideoURL         *string   `json:"video_url"`
	CreatedAt        time.Time `json:"created_at"`
}

// Equipment is a catalog entry for a machine or free-weight item.
type Equipment struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Observations *string   `json:"observations"`
	ImageURL     *string   `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}
