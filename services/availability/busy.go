package availability

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ricardopjr1/petshop-backend/models"
	"github.com/ricardopjr1/petshop-backend/utils"
)

// BusyInterval is the span during which one existing appointment occupies one
// unit of a capability's staff capacity. Intervals are half-open: an
// appointment ending at 10:30 does not collide with one starting at 10:30.
type BusyInterval struct {
	Start    time.Time
	End      time.Time
	SourceID string
}

// ServiceIndex is the pre-fetched service catalog of one business, indexed
// for the two lookups the engine needs: requested services come in by ID,
// existing appointments reference their service by name.
type ServiceIndex struct {
	byID   map[string]models.Service
	byName map[string]models.Service
}

func NewServiceIndex(services []models.Service) *ServiceIndex {
	ix := &ServiceIndex{
		byID:   make(map[string]models.Service, len(services)),
		byName: make(map[string]models.Service, len(services)),
	}
	for _, svc := range services {
		ix.byID[svc.ID] = svc
		ix.byName[strings.ToLower(svc.Name)] = svc
	}
	return ix
}

func (ix *ServiceIndex) ByID(id string) (models.Service, bool) {
	svc, ok := ix.byID[id]
	return svc, ok
}

func (ix *ServiceIndex) ByName(name string) (models.Service, bool) {
	svc, ok := ix.byName[strings.ToLower(name)]
	return svc, ok
}

// BuildBusyIntervals converts existing appointments into busy intervals for
// the booking's required capability. Appointments that need a different
// capability draw on a different staff pool and are invisible here.
// Appointments with vanished services, bad times, or non-positive durations
// are skipped one at a time; a corrupt row never aborts the day.
func BuildBusyIntervals(
	date time.Time,
	loc *time.Location,
	required Capability,
	appointments []models.Appointment,
	index *ServiceIndex,
	resolver *RoleResolver,
) []BusyInterval {
	logger := utils.GetLogger()

	var busy []BusyInterval
	for _, appt := range appointments {
		if appt.Time == "" || appt.ServiceName == "" {
			logger.Warn("skipping appointment with missing time or service",
				zap.String("appointmentId", appt.ID))
			continue
		}

		svc, ok := index.ByName(appt.ServiceName)
		if !ok {
			logger.Warn("skipping appointment referencing unknown service",
				zap.String("appointmentId", appt.ID),
				zap.String("serviceName", appt.ServiceName))
			continue
		}

		if resolver.RequiredCapability(svc.Name) != required {
			continue
		}

		if svc.DurationMinutes <= 0 {
			logger.Warn("skipping appointment with non-positive service duration",
				zap.String("appointmentId", appt.ID),
				zap.Int("durationMinutes", svc.DurationMinutes))
			continue
		}

		startTod, err := ParseTimeOfDay(appt.Time)
		if err != nil {
			logger.Warn("skipping appointment with unparseable time",
				zap.String("appointmentId", appt.ID), zap.Error(err))
			continue
		}

		start := Combine(date, startTod, loc)
		end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)
		busy = append(busy, BusyInterval{Start: start, End: end, SourceID: appt.ID})
	}
	return busy
}
