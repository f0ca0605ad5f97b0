package partners

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, partner Partner) error
	List(ctx context.Context) ([]Partner, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, partner Partner) error {
	_, err := r.col.InsertOne(ctx, partner)
	return err
}

func (r *MongoRepository) List(ctx context.Context) ([]Partner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Partner, 0)
	for cursor.Next(ctx) {
		var partner Partner
		if err := cursor.Decode(&partner); err != nil {
			return nil, err
		}
		items = append(items, partner)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
