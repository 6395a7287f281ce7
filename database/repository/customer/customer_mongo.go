package customerRepo

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

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo creates a new instance of CustomerRepository using MongoDB.
func NewMongoCustomerRepo() CustomerRepository {
	coll := database.MongoClient.Database("groomery").Collection("customers")
	repo := &MongoCustomerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCustomerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a customer by its unique ID.
func (r *MongoCustomerRepo) GetByID(id string) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var customer models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch customer with id %s: %w", id, err)
	}
	return &customer, nil
}

// GetAll retrieves all customers, newest first.
func (r *MongoCustomerRepo) GetAll() ([]models.Customer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	for cursor.Next(ctx) {
		var c models.Customer
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// Create inserts a new customer record.
func (r *MongoCustomerRepo) Create(customer *models.Customer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update replaces an existing customer record.
func (r *MongoCustomerRepo) Update(customer *models.Customer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": customer.ID}, bson.M{"$set": customer})
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("customer %s not found", customer.ID)
	}
	return nil
}

// Delete removes a customer record by its ID.
func (r *MongoCustomerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("customer %s not found", id)
	}
	return nil
}

// Count returns the total number of customers.
func (r *MongoCustomerRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}
