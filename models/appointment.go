package models

// Appointment is an existing booking as stored. It references its service by
// name and carries date and start time as strings ("2006-01-02" / "HH:MM").
type Appointment struct {
	ID          string `bson:"id" json:"id"`
	BusinessID  string `bson:"businessId" json:"businessId"`
	Date        string `bson:"date" json:"date"`
	Time        string `bson:"time" json:"time"`
	ServiceName string `bson:"serviceName" json:"serviceName"`
}
