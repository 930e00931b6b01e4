// File: database/repository/shop/interface.go
package shopRepo

import (
	"context"

	"slotwise/database"
	"slotwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ShopScheduleRepository is the persistence collaborator for shop schedules.
// The engine edits in-memory copies and only comes here on load and explicit
// save; save failures propagate to the caller, which retries manually.
type ShopScheduleRepository interface {
	GetSchedule(ctx context.Context, shopID string) (*models.ShopSchedule, error)
	SaveSchedule(ctx context.Context, doc *models.ShopSchedule) error
	DeleteSchedule(ctx context.Context, shopID string) error
}

type mongoShopScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoShopScheduleRepo constructs a new MongoDB ShopScheduleRepository.
func NewMongoShopScheduleRepo() ShopScheduleRepository {
	db := database.MongoClient.Database("slotwise")
	return &mongoShopScheduleRepo{
		coll: db.Collection("shop_schedules"),
	}
}
