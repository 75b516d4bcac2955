package models

import "time"

// AvailabilityRequest carries the parameters of one availability query. It is
// built once per API call and never mutated afterwards. Date identifies the
// requested calendar day; only its year/month/day are meaningful, the engine
// re-anchors it in the business time zone.
type AvailabilityRequest struct {
	BusinessID string
	Date       time.Time
	ServiceIDs []string
}
