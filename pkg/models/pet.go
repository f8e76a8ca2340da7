package models

import "time"

type Pet struct {
	ID        int        `db:"id" json:"id" goqu:"skipinsert"`
	Name      string     `db:"name" json:"name"`
	Species   string     `db:"species" json:"species"`
	Age       int        `db:"age" json:"age"`
	Tag       string     `db:"tag" json:"tag"`
	AdoptedAt *time.Time `db:"adopted_at" json:"adopted_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

type CreatePetRequest struct {
	Name    string `json:"name" binding:"required"`
	Species string `json:"species" binding:"required"`
	Age     int    `json:"age"`
	Tag     string `json:"tag" binding:"required"`
}

type PetStats struct {
	Total        int       `json:"total"`
	SpeciesCount int       `json:"species_count"`
	AverageAge   float64   `json:"average_age"`
	OldestEntry  time.Time `json:"oldest_entry"`
	NewestEntry  time.Time `json:"newest_entry"`
}
