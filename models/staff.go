package models

// Staff is a business employee with a single capability label. The
// availability engine only ever consumes role counts, never identities.
type Staff struct {
	ID         string `bson:"id" json:"id"`
	BusinessID string `bson:"businessId" json:"businessId"`
	Name       string `bson:"name" json:"name"`
	Role       string `bson:"role" json:"role"`
}
