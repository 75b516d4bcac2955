package availability

import (
	"sort"

	"go.uber.org/zap"

	"github.com/ricardopjr1/petshop-backend/models"
	"github.com/ricardopjr1/petshop-backend/utils"
)

// OperatingInterval is one open period of the business day. Start is strictly
// before End; intervals within a day need not be contiguous.
type OperatingInterval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// BuildWindows normalizes raw operating-hour rows into sorted intervals.
// Rows that fail to parse or have start >= end are dropped with a warning;
// one bad row must not take the whole day offline. An empty result means the
// business is closed that day, which the engine reports as such.
func BuildWindows(rows []models.OperatingHourRow) []OperatingInterval {
	logger := utils.GetLogger()

	var windows []OperatingInterval
	for _, row := range rows {
		start, err := ParseTimeOfDay(row.StartTime)
		if err != nil {
			logger.Warn("skipping operating-hour row with bad start time",
				zap.String("rowId", row.ID), zap.Error(err))
			continue
		}
		end, err := ParseTimeOfDay(row.EndTime)
		if err != nil {
			logger.Warn("skipping operating-hour row with bad end time",
				zap.String("rowId", row.ID), zap.Error(err))
			continue
		}
		if !start.Before(end) {
			logger.Warn("skipping operating-hour row with start >= end",
				zap.String("rowId", row.ID),
				zap.String("start", row.StartTime),
				zap.String("end", row.EndTime))
			continue
		}
		windows = append(windows, OperatingInterval{Start: start, End: end})
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Start.Before(windows[j].Start)
	})
	return windows
}
