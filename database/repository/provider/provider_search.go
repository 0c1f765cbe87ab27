package providerRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"localspot/models"

	"go.mongodb.org/mongo-driver/bson"
)

// queryClause builds the free-text OR clause: case-insensitive substring on
// name and description, exact element match on services. The query is quoted
// so regex metacharacters match literally.
func queryClause(query string) bson.M {
	quoted := regexp.QuoteMeta(query)
	return bson.M{"$or": []bson.M{
		{"name": bson.M{"$regex": quoted, "$options": "i"}},
		{"description": bson.M{"$regex": quoted, "$options": "i"}},
		{"services": query},
	}}
}

// Search returns active providers matching the filter. All given constraints
// are combined with AND; inactive providers never match.
func (r *MongoProviderRepo) Search(ctx context.Context, f SearchFilter) ([]models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"isActive": true}
	if f.CategoryID != "" {
		filter["categoryId"] = f.CategoryID
	}
	if f.Location != "" {
		filter["address"] = bson.M{"$regex": regexp.QuoteMeta(f.Location), "$options": "i"}
	}
	if f.Query != "" {
		filter["$and"] = []bson.M{queryClause(f.Query)}
	}

	opts := ratingSort()
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("provider search query failed: %w", err)
	}
	return decodeAll(ctx, cursor)
}

// Suggest runs the lightweight autocomplete match: the same free-text clause
// as Search, no category or location constraint, capped to limit.
func (r *MongoProviderRepo) Suggest(ctx context.Context, query string, limit int64) ([]models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := queryClause(query)
	filter["isActive"] = true

	opts := ratingSort().SetLimit(limit)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("provider suggest query failed: %w", err)
	}
	return decodeAll(ctx, cursor)
}
