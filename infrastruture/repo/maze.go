package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	saveTimeout   = time.Second
	lookupTimeout = 2 * time.Second
)

// mazeDocument is the MongoDB shape of a stored maze.
type mazeDocument struct {
	ID        string    `bson:"_id"`
	Width     int       `bson:"width"`
	Height    int       `bson:"height"`
	Seed      int64     `bson:"seed"`
	Walks     int       `bson:"walks"`
	Rows      []string  `bson:"rows"`
	CreatedAt time.Time `bson:"createdAt"`
}

func toDocument(m *dmn.Maze) mazeDocument {
	return mazeDocument{
		ID:        m.ID.String(),
		Width:     m.Width,
		Height:    m.Height,
		Seed:      m.Seed,
		Walks:     m.Walks,
		Rows:      m.Rows,
		CreatedAt: m.CreatedAt,
	}
}

func (d mazeDocument) toDomain() (*dmn.Maze, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &dmn.Maze{
		ID:        id,
		Width:     d.Width,
		Height:    d.Height,
		Seed:      d.Seed,
		Walks:     d.Walks,
		Rows:      d.Rows,
		CreatedAt: d.CreatedAt,
	}, nil
}

// MazeRepo handles the persistence of generated mazes.
type MazeRepo struct {
	collection *mongo.Collection
}

var _ i.MazeRepo = &MazeRepo{}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts a maze, replacing any stored maze with the same ID.
func (r *MazeRepo) Save(ctx context.Context, m *dmn.Maze) error {
	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	doc := toDocument(m)
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a maze by its ID.
// Returns i.ErrNotFound if no maze has the ID.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	var doc mazeDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, i.ErrNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return doc.toDomain()
}
