package dogRepo

import (
	"context"
	"fmt"
	"time"

	"groomery/database"
	"groomery/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDogRepo implements DogRepository using MongoDB.
type MongoDogRepo struct {
	coll *mongo.Collection
}

// NewMongoDogRepo creates a new instance of DogRepository using MongoDB.
func NewMongoDogRepo() DogRepository {
	coll := database.MongoClient.Database("groomery").Collection("dogs")
	repo := &MongoDogRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "ownerId", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a dog by its unique ID.
func (r *MongoDogRepo) GetByID(id string) (*models.Dog, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var dog models.Dog
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&dog); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch dog with id %s: %w", id, err)
	}
	return &dog, nil
}

// GetAll retrieves all dogs, newest first.
func (r *MongoDogRepo) GetAll() ([]models.Dog, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve dogs: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeDogs(ctx, cursor)
}

// GetByOwner retrieves all dogs belonging to a customer.
func (r *MongoDogRepo) GetByOwner(ownerID string) ([]models.Dog, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve dogs for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	return decodeDogs(ctx, cursor)
}

// Create inserts a new dog record.
func (r *MongoDogRepo) Create(dog *models.Dog) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, dog); err != nil {
		return fmt.Errorf("failed to create dog: %w", err)
	}
	return nil
}

// Update replaces an existing dog record.
func (r *MongoDogRepo) Update(dog *models.Dog) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": dog.ID}, bson.M{"$set": dog})
	if err != nil {
		return fmt.Errorf("failed to update dog %s: %w", dog.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("dog %s not found", dog.ID)
	}
	return nil
}

// Delete removes a dog record by its ID.
func (r *MongoDogRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete dog %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("dog %s not found", id)
	}
	return nil
}

// Count returns the total number of dogs.
func (r *MongoDogRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count dogs: %w", err)
	}
	return count, nil
}

func decodeDogs(ctx context.Context, cursor *mongo.Cursor) ([]models.Dog, error) {
	var dogs []models.Dog
	for cursor.Next(ctx) {
		var d models.Dog
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode dog: %w", err)
		}
		dogs = append(dogs, d)
	}
	return dogs, nil
}
