// Package mazeapi provides structures and utilities for maze generation requests and responses.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// GenerateRequest represents a request to generate a new maze.
type GenerateRequest struct {
	Width  int    `json:"width" binding:"required"`
	Height int    `json:"height" binding:"required"`
	Seed   *int64 `json:"seed"`
}

// MazeResponse represents a stored maze.
type MazeResponse struct {
	ID        uuid.UUID `json:"id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Seed      int64     `json:"seed"`
	Walks     int       `json:"walks"`
	Rows      []string  `json:"rows"`
	CreatedAt time.Time `json:"created_at"`
}

func newMazeResponse(m *dmn.Maze) *MazeResponse {
	return &MazeResponse{
		ID:        m.ID,
		Width:     m.Width,
		Height:    m.Height,
		Seed:      m.Seed,
		Walks:     m.Walks,
		Rows:      m.Rows,
		CreatedAt: m.CreatedAt,
	}
}
