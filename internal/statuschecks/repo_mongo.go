package statuschecks

import (
	"context"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection holding status checks.
const CollectionName = "status_checks"

// MongoRepo stores status checks as documents {id, client_name, timestamp}.
// The driver-assigned _id orders documents by insertion.
type MongoRepo struct {
	Coll *mongo.Collection
}

// NewMongoRepo binds the repo to the status_checks collection of database.
func NewMongoRepo(client *mongo.Client, database string) *MongoRepo {
	return &MongoRepo{Coll: client.Database(database).Collection(CollectionName)}
}

func (r *MongoRepo) Insert(ctx context.Context, check StatusCheck) error {
	_, err := r.Coll.InsertOne(ctx, check)
	return err
}

func (r *MongoRepo) List(ctx context.Context, limit int) ([]StatusCheck, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.D{{Key: "_id", Value: 0}})
	cursor, err := r.Coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	checks := make([]StatusCheck, 0)
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, err
	}
	slices.Reverse(checks)
	for i := range checks {
		checks[i].Timestamp = checks[i].Timestamp.UTC()
	}
	return checks, nil
}

// Ping reports whether the deployment is reachable.
func (r *MongoRepo) Ping(ctx context.Context) error {
	return r.Coll.Database().Client().Ping(ctx, nil)
}
