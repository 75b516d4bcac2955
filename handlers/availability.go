package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	appointmentRepo "github.com/ricardopjr1/petshop-backend/database/repository/appointment"
	operatingHoursRepo "github.com/ricardopjr1/petshop-backend/database/repository/operatinghours"
	serviceRepo "github.com/ricardopjr1/petshop-backend/database/repository/service"
	staffRepo "github.com/ricardopjr1/petshop-backend/database/repository/staff"
	"github.com/ricardopjr1/petshop-backend/models"
	"github.com/ricardopjr1/petshop-backend/services/availability"
	"github.com/ricardopjr1/petshop-backend/utils"
)

// AvailabilityHandler wires the availability engine to its collaborators: it
// fetches the day's snapshot from the repositories, invokes the engine once,
// and maps engine errors to HTTP status codes.
type AvailabilityHandler struct {
	Engine       availability.Engine
	Hours        operatingHoursRepo.OperatingHoursRepository
	Services     serviceRepo.ServiceRepository
	Staff        staffRepo.StaffRepository
	Appointments appointmentRepo.AppointmentRepository
	Cache        *redis.Client
	Zone         *time.Location
	CacheTTL     time.Duration
}

func NewAvailabilityHandler(
	engine availability.Engine,
	hours operatingHoursRepo.OperatingHoursRepository,
	services serviceRepo.ServiceRepository,
	staff staffRepo.StaffRepository,
	appointments appointmentRepo.AppointmentRepository,
	cache *redis.Client,
	zone *time.Location,
	cacheTTL time.Duration,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		Engine:       engine,
		Hours:        hours,
		Services:     services,
		Staff:        staff,
		Appointments: appointments,
		Cache:        cache,
		Zone:         zone,
		CacheTTL:     cacheTTL,
	}
}

// GetAvailableSlots handles GET /api/horarios-disponiveis. Route path and
// query parameter names (data, servicoIds, empresaId) are the ones the
// existing frontend already calls.
func (h *AvailabilityHandler) GetAvailableSlots(c *gin.Context) {
	logger := utils.GetLogger().With(zap.String("requestId", uuid.New().String()))

	dateStr := c.Query("data")
	serviceIDsStr := c.Query("servicoIds")
	businessID := c.Query("empresaId")

	var missing []string
	for _, p := range []struct{ name, value string }{
		{"data", dateStr}, {"servicoIds", serviceIDsStr}, {"empresaId", businessID},
	} {
		if p.value == "" {
			missing = append(missing, p.name)
		}
	}
	if len(missing) > 0 {
		utils.JSONError(c, http.StatusBadRequest,
			fmt.Sprintf("missing required parameters: %s", strings.Join(missing, ", ")), "")
		return
	}

	var serviceIDs []string
	for _, id := range strings.Split(serviceIDsStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			serviceIDs = append(serviceIDs, id)
		}
	}
	if len(serviceIDs) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "servicoIds contains no valid service ids", "")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, h.Zone)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date format, want YYYY-MM-DD", "")
		return
	}

	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("avail:%s:%s:%s", businessID, dateStr, strings.Join(serviceIDs, ","))
	if h.Cache != nil {
		if raw, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached []string
			if json.Unmarshal([]byte(raw), &cached) == nil {
				logger.Debug("availability served from cache", zap.String("key", cacheKey))
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	snap, err := h.fetchSnapshot(ctx, businessID, dateStr, date.Weekday())
	if err != nil {
		logger.Error("failed to fetch availability snapshot", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load scheduling data", "")
		return
	}

	req := models.AvailabilityRequest{
		BusinessID: businessID,
		Date:       date,
		ServiceIDs: serviceIDs,
	}

	slots, err := h.Engine.ComputeAvailability(req, snap, time.Now())
	if err != nil {
		logger.Warn("availability computation failed",
			zap.String("businessId", businessID),
			zap.String("date", dateStr),
			zap.Error(err))
		utils.JSONError(c, statusForAvailabilityError(err), availabilityErrorMessage(err), "")
		return
	}

	if slots == nil {
		slots = []string{}
	}

	if h.Cache != nil && h.CacheTTL > 0 {
		if payload, err := json.Marshal(slots); err == nil {
			if err := h.Cache.Set(ctx, cacheKey, payload, h.CacheTTL).Err(); err != nil {
				logger.Warn("failed to cache availability result", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, slots)
}

// fetchSnapshot loads operating hours, services, and appointments
// concurrently, plus a lazy staff-count lookup, so the engine sees one
// immutable snapshot and issues no storage calls of its own.
func (h *AvailabilityHandler) fetchSnapshot(
	ctx context.Context,
	businessID, dateStr string,
	weekday time.Weekday,
) (availability.Snapshot, error) {
	var snap availability.Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := h.Hours.ListActiveByWeekday(gctx, businessID, models.WeekdayNames[weekday])
		snap.OperatingHours = rows
		return err
	})
	g.Go(func() error {
		services, err := h.Services.ListByBusiness(gctx, businessID)
		snap.Services = services
		return err
	})
	g.Go(func() error {
		appointments, err := h.Appointments.ListByDate(gctx, businessID, dateStr)
		snap.Appointments = appointments
		return err
	})
	if err := g.Wait(); err != nil {
		return availability.Snapshot{}, err
	}

	snap.StaffCapacity = func(capability availability.Capability) (int, error) {
		return h.Staff.CountByRole(ctx, businessID, string(capability))
	}
	return snap, nil
}

func statusForAvailabilityError(err error) int {
	switch availability.ErrorCode(err) {
	case availability.CodePastDate, availability.CodeEmptyServices:
		return http.StatusBadRequest
	case availability.CodeNoOperatingHours, availability.CodeUnknownService, availability.CodeNoStaffForCapability:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func availabilityErrorMessage(err error) string {
	switch availability.ErrorCode(err) {
	case availability.CodePastDate:
		return "Não é possível agendar para datas passadas."
	case availability.CodeNoOperatingHours:
		return "Estabelecimento fechado ou sem horário no dia selecionado."
	case availability.CodeUnknownService:
		return "Um ou mais serviços selecionados não foram encontrados."
	case availability.CodeNoStaffForCapability:
		return "Sem profissionais disponíveis para os serviços selecionados."
	case availability.CodeEmptyServices:
		return "Nenhum serviço selecionado."
	default:
		return "Erro interno inesperado. Tente novamente."
	}
}
