package models

// Service is one entry of a business's grooming-service catalog.
type Service struct {
	ID              string `bson:"id" json:"id"`
	BusinessID      string `bson:"businessId" json:"businessId"`
	Name            string `bson:"name" json:"name"`
	DurationMinutes int    `bson:"durationMinutes" json:"durationMinutes"`
}
