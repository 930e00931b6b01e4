// File: database/repository/shop/indexes.go
package shopRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the shop_schedules collection.
func (r *mongoShopScheduleRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// One schedule document per shop.
		{
			Keys:    bson.D{{Key: "shopId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_shop_id"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create shop schedule indexes: %w", err)
	}
	return nil
}
