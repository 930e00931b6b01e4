// File: database/repository/shop/crud.go
package shopRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotwise/models"
)

// GetSchedule loads a shop's schedule document. A shop with no stored
// document gets a fresh empty schedule: all days closed, no special ranges.
func (r *mongoShopScheduleRepo) GetSchedule(ctx context.Context, shopID string) (*models.ShopSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"shopId": shopID}
	var doc models.ShopSchedule
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewShopSchedule(shopID), nil
	}
	if err != nil {
		return nil, err
	}
	if doc.Availability == nil {
		doc.Availability = models.WeeklyAvailability{}
	}
	if doc.SpecialDates == nil {
		doc.SpecialDates = models.SpecialDates{}
	}
	return &doc, nil
}

// SaveSchedule replaces the shop's schedule document, creating it on first save.
func (r *mongoShopScheduleRepo) SaveSchedule(ctx context.Context, doc *models.ShopSchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc.UpdatedAt = time.Now()
	filter := bson.M{"shopId": doc.ShopID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, filter, doc, opts)
	return err
}

// DeleteSchedule removes a shop's schedule document.
func (r *mongoShopScheduleRepo) DeleteSchedule(ctx context.Context, shopID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"shopId": shopID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
