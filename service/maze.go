package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 1001
	imageKeyFmt         = "maze:image:%s:%s"
)

var (
	ErrDimensionTooLarge = errors.New("maze dimension exceeds the configured maximum")
	ErrMazeNotFound      = errors.New("maze not found")
	ErrMissingDependency = errors.New("maze service dependency is missing")
)

// MazeService generates perfect mazes, persists them and serves their images.
type MazeService struct {
	repo         i.MazeRepo
	cache        i.ImageCache
	logger       i.Logger
	maxDimension int
	now          func() time.Time
}

// Config holds the dependencies of a MazeService.
type Config struct {
	Repo         i.MazeRepo
	Cache        i.ImageCache
	Logger       i.Logger
	MaxDimension int // Largest accepted width or height; defaults to 1001
}

// NewMazeService creates a MazeService from c.
func NewMazeService(c *Config) (*MazeService, error) {
	if c == nil || c.Repo == nil || c.Cache == nil || c.Logger == nil {
		return nil, ErrMissingDependency
	}

	maxDimension := c.MaxDimension
	if maxDimension <= 0 {
		maxDimension = defaultMaxDimension
	}

	return &MazeService{
		repo:         c.Repo,
		cache:        c.Cache,
		logger:       c.Logger,
		maxDimension: maxDimension,
		now:          time.Now,
	}, nil
}

// Generate builds, verifies and stores a width x height maze.
func (s *MazeService) Generate(ctx context.Context, width, height int, seed *int64) (*dmn.Maze, error) {
	if width > s.maxDimension || height > s.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d above %d", ErrDimensionTooLarge, width, height, s.maxDimension)
	}

	sd := s.now().UnixNano()
	if seed != nil {
		sd = *seed
	}

	m, err := maze.NewWithContext(ctx, width, height, &maze.Options{
		Rand:   rand.New(rand.NewSource(sd)),
		Logger: s.logger,
	})
	if err != nil {
		s.logger.Warning(fmt.Sprintf("generating %dx%d maze with seed %d: %s", width, height, sd, err))
		return nil, err
	}

	if err := m.Verify(); err != nil {
		s.logger.Error(fmt.Sprintf("generated maze failed verification: %s", err))
		return nil, err
	}

	record := dmn.NewMaze(m, sd)
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("saving maze %s: %s", record.ID, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("generated maze %s: %dx%d, seed %d, %d walks", record.ID, width, height, sd, record.Walks))
	return record, nil
}

// ByID returns the stored maze with the given ID.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, i.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMazeNotFound, id)
		}
		return nil, err
	}
	return record, nil
}

// Image returns the stored maze rendered in format f, rendering and caching
// it on the first request. Concurrent first requests render once.
func (s *MazeService) Image(ctx context.Context, id uuid.UUID, f render.Format) ([]byte, error) {
	key := fmt.Sprintf(imageKeyFmt, id, f)
	if data, ok := s.cached(ctx, key); ok {
		return data, nil
	}

	unlock, err := s.cache.Lock(ctx, key)
	if err != nil {
		s.logger.Error(fmt.Sprintf("obtaining render lock for %s: %s", key, err))
		return nil, err
	}
	defer unlock()

	if data, ok := s.cached(ctx, key); ok {
		return data, nil
	}

	record, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := record.Validate(); err != nil {
		s.logger.Error(fmt.Sprintf("stored maze %s is malformed: %s", id, err))
		return nil, err
	}

	var buf bytes.Buffer
	if err := render.Encode(&buf, record.View(), f); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, buf.Bytes()); err != nil {
		s.logger.Warning(fmt.Sprintf("caching %s: %s", key, err))
	}

	s.logger.Info(fmt.Sprintf("rendered maze %s as %s", id, f))
	return buf.Bytes(), nil
}

// cached reads key from the cache; cache failures count as misses.
func (s *MazeService) cached(ctx context.Context, key string) ([]byte, bool) {
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("reading %s from cache: %s", key, err))
		return nil, false
	}
	return data, ok
}
