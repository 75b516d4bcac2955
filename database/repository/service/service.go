package serviceRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ricardopjr1/petshop-backend/database"
	"github.com/ricardopjr1/petshop-backend/models"
)

// ServiceRepository reads a business's grooming-service catalog. The whole
// catalog is fetched once per availability request so the engine can resolve
// appointments in memory instead of querying per row.
type ServiceRepository interface {
	ListByBusiness(ctx context.Context, businessID string) ([]models.Service, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs the MongoDB-backed repository.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{
		coll: database.DB().Collection("services"),
	}
}

func (r *mongoServiceRepo) ListByBusiness(ctx context.Context, businessID string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"businessId": businessID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}
