package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ricardopjr1/petshop-backend/models"
)

func TestBuildWindows(t *testing.T) {
	rows := []models.OperatingHourRow{
		{ID: "afternoon", StartTime: "13:30", EndTime: "18:00"},
		{ID: "morning", StartTime: "08:00", EndTime: "12:00"},
	}

	windows := BuildWindows(rows)

	assert.Equal(t, []OperatingInterval{
		{Start: TimeOfDay{Hour: 8}, End: TimeOfDay{Hour: 12}},
		{Start: TimeOfDay{Hour: 13, Minute: 30}, End: TimeOfDay{Hour: 18}},
	}, windows)
}

func TestBuildWindowsDropsInvalidRows(t *testing.T) {
	tests := []struct {
		name string
		rows []models.OperatingHourRow
		want int
	}{
		{
			name: "unparseable start",
			rows: []models.OperatingHourRow{
				{ID: "bad", StartTime: "nove horas", EndTime: "12:00"},
				{ID: "ok", StartTime: "09:00", EndTime: "12:00"},
			},
			want: 1,
		},
		{
			name: "unparseable end",
			rows: []models.OperatingHourRow{
				{ID: "bad", StartTime: "09:00", EndTime: ""},
			},
			want: 0,
		},
		{
			name: "start equals end",
			rows: []models.OperatingHourRow{
				{ID: "bad", StartTime: "09:00", EndTime: "09:00"},
			},
			want: 0,
		},
		{
			name: "start after end",
			rows: []models.OperatingHourRow{
				{ID: "bad", StartTime: "18:00", EndTime: "09:00"},
				{ID: "ok", StartTime: "09:00", EndTime: "18:00"},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, BuildWindows(tt.rows), tt.want)
		})
	}
}

func TestBuildWindowsEmptyInput(t *testing.T) {
	assert.Empty(t, BuildWindows(nil))
	assert.Empty(t, BuildWindows([]models.OperatingHourRow{}))
}

func TestBuildWindowsAcceptsSecondsPrecision(t *testing.T) {
	windows := BuildWindows([]models.OperatingHourRow{
		{ID: "row", StartTime: "08:00:00", EndTime: "12:30:00"},
	})

	assert.Equal(t, []OperatingInterval{
		{Start: TimeOfDay{Hour: 8}, End: TimeOfDay{Hour: 12, Minute: 30}},
	}, windows)
}
