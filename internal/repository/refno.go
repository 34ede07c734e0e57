package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IRefNoGenerator produces unique business-facing reference numbers.
type IRefNoGenerator interface {
	Next(ctx context.Context) (string, error)
}

// CounterRefNoGenerator draws sequence values from a counters
// collection, one document per sequence key, incremented atomically.
type CounterRefNoGenerator struct {
	collection *mongo.Collection
	key        string
	prefix     string
}

func NewRefNoGenerator(db *mongo.Database, key, prefix string) IRefNoGenerator {
	return &CounterRefNoGenerator{
		collection: db.Collection("counters"),
		key:        key,
		prefix:     prefix,
	}
}

// Next reserves the next sequence value and formats it. The upsert
// creates the counter document on first use; the single findAndModify
// keeps concurrent callers from ever sharing a value.
func (g *CounterRefNoGenerator) Next(ctx context.Context) (string, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := g.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": g.key},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return "", fmt.Errorf("failed to reserve reference number: %w", err)
	}
	return fmt.Sprintf("%s-%05d", g.prefix, counter.Seq), nil
}
