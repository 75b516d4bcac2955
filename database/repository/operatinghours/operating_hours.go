package operatingHoursRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ricardopjr1/petshop-backend/database"
	"github.com/ricardopjr1/petshop-backend/models"
)

// OperatingHoursRepository reads the raw operating-hours rows for a business.
type OperatingHoursRepository interface {
	ListActiveByWeekday(ctx context.Context, businessID, weekdayName string) ([]models.OperatingHourRow, error)
}

type mongoOperatingHoursRepo struct {
	coll *mongo.Collection
}

// NewMongoOperatingHoursRepo constructs the MongoDB-backed repository.
func NewMongoOperatingHoursRepo() OperatingHoursRepository {
	return &mongoOperatingHoursRepo{
		coll: database.DB().Collection("operating_hours"),
	}
}

func (r *mongoOperatingHoursRepo) ListActiveByWeekday(ctx context.Context, businessID, weekdayName string) ([]models.OperatingHourRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"businessId": businessID, "weekday": weekdayName, "active": true}
	opts := options.Find().SetSort(bson.M{"startTime": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.OperatingHourRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
