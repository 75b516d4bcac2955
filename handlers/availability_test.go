package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardopjr1/petshop-backend/models"
	"github.com/ricardopjr1/petshop-backend/services/availability"
)

type stubHoursRepo struct {
	rows        []models.OperatingHourRow
	err         error
	gotWeekday  string
	gotBusiness string
}

func (s *stubHoursRepo) ListActiveByWeekday(_ context.Context, businessID, weekdayName string) ([]models.OperatingHourRow, error) {
	s.gotBusiness = businessID
	s.gotWeekday = weekdayName
	return s.rows, s.err
}

type stubServiceRepo struct {
	services []models.Service
	err      error
}

func (s *stubServiceRepo) ListByBusiness(context.Context, string) ([]models.Service, error) {
	return s.services, s.err
}

type stubStaffRepo struct {
	count   int
	err     error
	gotRole string
}

func (s *stubStaffRepo) CountByRole(_ context.Context, _, role string) (int, error) {
	s.gotRole = role
	return s.count, s.err
}

type stubAppointmentRepo struct {
	appointments []models.Appointment
	err          error
}

func (s *stubAppointmentRepo) ListByDate(context.Context, string, string) ([]models.Appointment, error) {
	return s.appointments, s.err
}

type handlerFixture struct {
	hours        *stubHoursRepo
	services     *stubServiceRepo
	staff        *stubStaffRepo
	appointments *stubAppointmentRepo
	router       *gin.Engine
}

func newFixture(t *testing.T) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	zone, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	f := &handlerFixture{
		hours: &stubHoursRepo{rows: []models.OperatingHourRow{
			{ID: "oh1", StartTime: "09:00", EndTime: "12:00", Active: true},
		}},
		services: &stubServiceRepo{services: []models.Service{
			{ID: "svc-tosa", Name: "Tosa Higiênica", DurationMinutes: 60},
			{ID: "svc-banho", Name: "Banho Completo", DurationMinutes: 30},
		}},
		staff:        &stubStaffRepo{count: 1},
		appointments: &stubAppointmentRepo{},
	}

	engine := availability.NewDefaultAvailabilityEngine(
		availability.NewRoleResolver(nil), zone, availability.DefaultGranularity)
	handler := NewAvailabilityHandler(
		engine, f.hours, f.services, f.staff, f.appointments, nil, zone, 0)

	f.router = gin.New()
	f.router.GET("/api/horarios-disponiveis", handler.GetAvailableSlots)
	return f
}

func (f *handlerFixture) get(t *testing.T, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// futureMonday is far enough out that the requests are never "today".
const futureMonday = "2030-01-07"

func TestGetAvailableSlotsOK(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/api/horarios-disponiveis?data="+futureMonday+"&servicoIds=svc-tosa&empresaId=pet-1")

	require.Equal(t, http.StatusOK, rec.Code)
	var slots []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slots))
	assert.Equal(t, []string{
		"09:00", "09:15", "09:30", "09:45",
		"10:00", "10:15", "10:30", "10:45", "11:00",
	}, slots)

	// The repos were queried for the right business and weekday, and staff
	// capacity was resolved for the groomer role.
	assert.Equal(t, "pet-1", f.hours.gotBusiness)
	assert.Equal(t, "Segunda-Feira", f.hours.gotWeekday)
	assert.Equal(t, "Groomer", f.staff.gotRole)
}

func TestGetAvailableSlotsMissingParams(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		url  string
	}{
		{name: "no params", url: "/api/horarios-disponiveis"},
		{name: "missing date", url: "/api/horarios-disponiveis?servicoIds=svc-tosa&empresaId=pet-1"},
		{name: "missing services", url: "/api/horarios-disponiveis?data=" + futureMonday + "&empresaId=pet-1"},
		{name: "missing business", url: "/api/horarios-disponiveis?data=" + futureMonday + "&servicoIds=svc-tosa"},
		{name: "blank service ids", url: "/api/horarios-disponiveis?data=" + futureMonday + "&servicoIds=%2C%2C&empresaId=pet-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.get(t, tt.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetAvailableSlotsBadDate(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/api/horarios-disponiveis?data=07-01-2030&servicoIds=svc-tosa&empresaId=pet-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailableSlotsPastDate(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/api/horarios-disponiveis?data=2020-01-06&servicoIds=svc-tosa&empresaId=pet-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailableSlotsStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*handlerFixture)
		url        string
		wantStatus int
	}{
		{
			name:       "closed day",
			mutate:     func(f *handlerFixture) { f.hours.rows = nil },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown service",
			url:        "/api/horarios-disponiveis?data=" + futureMonday + "&servicoIds=svc-nope&empresaId=pet-1",
			mutate:     func(*handlerFixture) {},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "no staff",
			mutate:     func(f *handlerFixture) { f.staff.count = 0 },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "storage failure",
			mutate:     func(f *handlerFixture) { f.services.err = context.DeadlineExceeded },
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mutate(f)
			url := tt.url
			if url == "" {
				url = "/api/horarios-disponiveis?data=" + futureMonday + "&servicoIds=svc-tosa&empresaId=pet-1"
			}
			rec := f.get(t, url)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestGetAvailableSlotsFullyBookedReturnsEmptyList(t *testing.T) {
	f := newFixture(t)
	f.hours.rows = []models.OperatingHourRow{
		{ID: "oh1", StartTime: "09:00", EndTime: "10:00", Active: true},
	}
	f.appointments.appointments = []models.Appointment{
		{ID: "a1", Date: futureMonday, Time: "09:00", ServiceName: "Tosa Higiênica"},
	}

	rec := f.get(t, "/api/horarios-disponiveis?data="+futureMonday+"&servicoIds=svc-tosa&empresaId=pet-1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
