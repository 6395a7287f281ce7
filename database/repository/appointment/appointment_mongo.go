package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	coll := database.MongoClient.Database("groomery").Collection("appointments")
	repo := &MongoAppointmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
// The dogId+dateTime compound index backs per-dog overlap checks.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "dogId", Value: 1}, {Key: "dateTime", Value: 1}}},
		{Keys: bson.D{{Key: "dateTime", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// filterQuery builds the Mongo query document for a Filter.
func filterQuery(filter Filter) bson.M {
	query := bson.M{}
	if filter.CustomerID != "" {
		query["customerId"] = filter.CustomerID
	}
	if filter.DogID != "" {
		query["dogId"] = filter.DogID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Start != nil || filter.End != nil {
		rangeQuery := bson.M{}
		if filter.Start != nil {
			rangeQuery["$gte"] = *filter.Start
		}
		if filter.End != nil {
			rangeQuery["$lt"] = *filter.End
		}
		query["dateTime"] = rangeQuery
	}
	return query
}

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// GetAll retrieves appointments matching the filter, sorted ascending by dateTime.
func (r *MongoAppointmentRepo) GetAll(filter Filter) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dateTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filterQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAppointments(ctx, cursor)
}

// GetActiveExcept retrieves active appointments excluding the given ID.
func (r *MongoAppointmentRepo) GetActiveExcept(excludeID, dogID string) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{
		"id":     bson.M{"$ne": excludeID},
		"status": bson.M{"$nin": []string{models.StatusCancelled, models.StatusCompleted}},
	}
	if dogID != "" {
		query["dogId"] = dogID
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve active appointments: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAppointments(ctx, cursor)
}

// GetActiveInRange retrieves active appointments starting within [start, end).
func (r *MongoAppointmentRepo) GetActiveInRange(start, end time.Time) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{
		"dateTime": bson.M{"$gte": start, "$lt": end},
		"status":   bson.M{"$nin": []string{models.StatusCancelled, models.StatusCompleted}},
	}
	opts := options.Find().SetSort(bson.D{{Key: "dateTime", Value: 1}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments in range: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAppointments(ctx, cursor)
}

// Create inserts a new appointment record.
func (r *MongoAppointmentRepo) Create(appt *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// Update replaces an existing appointment record.
func (r *MongoAppointmentRepo) Update(appt *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": appt.ID}, bson.M{"$set": appt})
	if err != nil {
		return fmt.Errorf("failed to update appointment %s: %w", appt.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", appt.ID)
	}
	return nil
}

// Delete removes an appointment record by its ID.
func (r *MongoAppointmentRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}

// Count returns the number of appointments matching the filter.
func (r *MongoAppointmentRepo) Count(filter Filter) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, filterQuery(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}

func decodeAppointments(ctx context.Context, cursor *mongo.Cursor) ([]models.Appointment, error) {
	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}
