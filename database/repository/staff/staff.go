package staffRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ricardopjr1/petshop-backend/database"
)

// StaffRepository exposes the only staff fact the engine needs: how many
// employees of a business hold a given role.
type StaffRepository interface {
	CountByRole(ctx context.Context, businessID, role string) (int, error)
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs the MongoDB-backed repository.
func NewMongoStaffRepo() StaffRepository {
	return &mongoStaffRepo{
		coll: database.DB().Collection("staff"),
	}
}

func (r *mongoStaffRepo) CountByRole(ctx context.Context, businessID, role string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"businessId": businessID, "role": role})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
