package database

import (
	"context"

	"ladle_passport/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexSpec описывает один индекс коллекции.
type IndexSpec struct {
	Keys   bson.D
	Unique bool
	Sparse bool
}

// EnsureIndexes создаёт индексы коллекции (идемпотентно).
func EnsureIndexes(ctx context.Context, collection *mongo.Collection, specs []IndexSpec) {
	if len(specs) == 0 {
		return
	}

	models := make([]mongo.IndexModel, 0, len(specs))
	for _, spec := range specs {
		opts := options.Index().SetUnique(spec.Unique).SetSparse(spec.Sparse)
		models = append(models, mongo.IndexModel{
			Keys:    spec.Keys,
			Options: opts,
		})
	}

	if _, err := collection.Indexes().CreateMany(ctx, models); err != nil {
		logger.GetAppLogger().WithError(err).Warnf("Failed to create indexes for collection %s", collection.Name())
		return
	}
	logger.GetAppLogger().Debugf("Ensured indexes for collection %s", collection.Name())
}
