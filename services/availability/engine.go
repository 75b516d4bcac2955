package availability

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/ricardopjr1/petshop-backend/models"
	"github.com/ricardopjr1/petshop-backend/utils"
)

// Snapshot carries everything the engine reads, fetched by the caller before
// the call. The engine never re-fetches mid-computation; identical snapshots
// always produce identical output.
type Snapshot struct {
	OperatingHours []models.OperatingHourRow
	Services       []models.Service
	Appointments   []models.Appointment

	// StaffCapacity resolves how many staff of the business hold a
	// capability. Called exactly once, before scanning starts.
	StaffCapacity func(Capability) (int, error)
}

// Engine computes bookable start times for a requested service block.
type Engine interface {
	ComputeAvailability(req models.AvailabilityRequest, snap Snapshot, now time.Time) ([]string, error)
}

// DefaultAvailabilityEngine is the production engine. It is a pure
// computation over the snapshot: no internal state, safe for concurrent use.
type DefaultAvailabilityEngine struct {
	Resolver    *RoleResolver
	Zone        *time.Location
	Granularity time.Duration
}

func NewDefaultAvailabilityEngine(resolver *RoleResolver, zone *time.Location, granularity time.Duration) *DefaultAvailabilityEngine {
	if granularity <= 0 {
		granularity = DefaultGranularity
	}
	return &DefaultAvailabilityEngine{
		Resolver:    resolver,
		Zone:        zone,
		Granularity: granularity,
	}
}

// ComputeAvailability runs the full pipeline: validate the request, normalize
// operating hours, resolve services and the required capability, build busy
// intervals, scan. An empty slice with a nil error is a fully booked day, not
// a failure.
func (e *DefaultAvailabilityEngine) ComputeAvailability(
	req models.AvailabilityRequest,
	snap Snapshot,
	now time.Time,
) ([]string, error) {
	logger := utils.GetLogger()

	if len(req.ServiceIDs) == 0 {
		return nil, NewAvailabilityError(CodeEmptyServices, "at least one service must be requested")
	}

	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, e.Zone)
	nowLocal := now.In(e.Zone)
	today := DayStart(nowLocal, e.Zone)

	if date.Before(today) {
		return nil, NewAvailabilityError(CodePastDate,
			fmt.Sprintf("cannot compute availability for past date %s", date.Format("2006-01-02")))
	}

	windows := BuildWindows(snap.OperatingHours)
	if len(windows) == 0 {
		return nil, NewAvailabilityError(CodeNoOperatingHours,
			"business has no valid operating hours on the requested day")
	}

	index := NewServiceIndex(snap.Services)
	totalMinutes := 0
	caps := make([]Capability, 0, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		svc, ok := index.ByID(id)
		if !ok {
			return nil, NewAvailabilityError(CodeUnknownService,
				fmt.Sprintf("service %q not found for business %s", id, req.BusinessID))
		}
		if svc.DurationMinutes <= 0 {
			return nil, NewAvailabilityError(CodeInvalidServiceDuration,
				fmt.Sprintf("service %q has non-positive duration %d", id, svc.DurationMinutes))
		}
		totalMinutes += svc.DurationMinutes
		caps = append(caps, e.Resolver.RequiredCapability(svc.Name))
	}

	required, err := e.Resolver.MostDemanding(caps)
	if err != nil {
		return nil, NewAvailabilityError(CodeInternal, err.Error())
	}

	capacity, err := snap.StaffCapacity(required)
	if err != nil {
		return nil, NewAvailabilityError(CodeInternal,
			fmt.Sprintf("staff capacity lookup failed: %v", err))
	}
	if capacity <= 0 {
		return nil, NewAvailabilityError(CodeNoStaffForCapability,
			fmt.Sprintf("no staff with capability %q", required))
	}

	busy := BuildBusyIntervals(date, e.Zone, required, snap.Appointments, index, e.Resolver)

	var notBefore time.Time
	if date.Equal(today) {
		notBefore = nowLocal
	}

	totalDuration := time.Duration(totalMinutes) * time.Minute
	seen := make(map[string]struct{})
	var slots []string
	for _, window := range windows {
		for _, s := range ScanInterval(window, date, e.Zone, totalDuration, busy, capacity, e.Granularity, notBefore) {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			slots = append(slots, s)
		}
	}
	sort.Strings(slots)

	logger.Debug("availability computed",
		zap.String("businessId", req.BusinessID),
		zap.String("date", date.Format("2006-01-02")),
		zap.String("capability", string(required)),
		zap.Int("staffCapacity", capacity),
		zap.Int("busyIntervals", len(busy)),
		zap.Int("slots", len(slots)))

	return slots, nil
}
