package repo

import (
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMazeDocument(t *testing.T) {
	m := &dmn.Maze{
		ID:        uuid.New(),
		Width:     3,
		Height:    3,
		Seed:      42,
		Walks:     0,
		Rows:      []string{"###", "#.#", "###"},
		CreatedAt: time.Date(2025, 2, 8, 10, 0, 0, 0, time.UTC),
	}

	t.Run("Survives a BSON round trip", func(t *testing.T) {
		raw, err := bson.Marshal(toDocument(m))
		require.NoError(t, err)

		var doc mazeDocument
		require.NoError(t, bson.Unmarshal(raw, &doc))
		assert.Equal(t, m.ID.String(), doc.ID)

		back, err := doc.toDomain()
		require.NoError(t, err)
		assert.Equal(t, m, back)
	})

	t.Run("Rejects a malformed ID", func(t *testing.T) {
		doc := toDocument(m)
		doc.ID = "not-a-uuid"
		_, err := doc.toDomain()
		assert.Error(t, err)
	})
}
