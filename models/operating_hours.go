package models

import "time"

// OperatingHourRow is one raw operating-hours record for a business weekday.
// Start and end times are stored as "HH:MM" or "HH:MM:SS" strings; validation
// and normalization happen in the availability engine, not here.
type OperatingHourRow struct {
	ID         string `bson:"id" json:"id"`
	BusinessID string `bson:"businessId" json:"businessId"`
	Weekday    string `bson:"weekday" json:"weekday"` // e.g. "Segunda-Feira"
	StartTime  string `bson:"startTime" json:"startTime"`
	EndTime    string `bson:"endTime" json:"endTime"`
	Active     bool   `bson:"active" json:"active"`
}

// WeekdayNames maps Go weekdays to the Portuguese day names used as keys in
// the operating-hours collection.
var WeekdayNames = map[time.Weekday]string{
	time.Monday:    "Segunda-Feira",
	time.Tuesday:   "Terça-Feira",
	time.Wednesday: "Quarta-Feira",
	time.Thursday:  "Quinta-Feira",
	time.Friday:    "Sexta-Feira",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}
