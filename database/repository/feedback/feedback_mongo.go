package feedbackRepo

import (
	"context"
	"fmt"
	"time"

	"localspot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFeedbackRepo implements FeedbackRepository using MongoDB.
type MongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo creates a new instance of FeedbackRepository using MongoDB.
func NewMongoFeedbackRepo(db *mongo.Database) FeedbackRepository {
	return &MongoFeedbackRepo{coll: db.Collection("feedback")}
}

func (r *MongoFeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, feedback); err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *MongoFeedbackRepo) GetAll(ctx context.Context) ([]models.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve feedback: %w", err)
	}
	defer cursor.Close(ctx)
	var items []models.Feedback
	for cursor.Next(ctx) {
		var f models.Feedback
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode feedback: %w", err)
		}
		items = append(items, f)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return items, nil
}

func (r *MongoFeedbackRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}
	return count, nil
}
