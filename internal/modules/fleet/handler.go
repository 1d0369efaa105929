package fleet

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"carrental/internal/middleware"
	"carrental/internal/modules/auth"
	"carrental/internal/pkg/response"
	"carrental/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	vehicles := v1.Group("/vehicles")
	{
		vehicles.GET("", h.ListVehicles)
		vehicles.GET("/:id", h.GetVehicle)
		vehicles.POST("", h.AddVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)
	}
}

// ListVehicles handles GET /vehicles?start_date=&end_date= — without
// dates the whole fleet, with both dates only vehicles free over the
// inclusive range.
func (h *Handler) ListVehicles(c *gin.Context) {
	start, ok := parseDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end_date")
	if !ok {
		return
	}

	vehicles, err := h.service.ListVehicles(c.Request.Context(), start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vehicles": vehicles})
}

func (h *Handler) GetVehicle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	v, err := h.service.GetVehicle(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vehicle": v})
}

func (h *Handler) AddVehicle(c *gin.Context) {
	actorID, ok := middleware.RequireActorID(c)
	if !ok {
		return
	}

	var payload VehiclePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(payload); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid vehicle payload", fields)
		return
	}

	v, err := h.service.AddVehicle(c.Request.Context(), actorID, payload)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"vehicle": v})
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	actorID, ok := middleware.RequireActorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload VehiclePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.UpdateVehicle(c.Request.Context(), actorID, id, payload)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vehicle": v})
}

func (h *Handler) DeleteVehicle(c *gin.Context) {
	actorID, ok := middleware.RequireActorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteVehicle(c.Request.Context(), actorID, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, auth.ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrVehicleNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehicle not found")
	case errors.Is(err, auth.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, auth.ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID")
		return 0, false
	}
	return id, true
}

func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", name+" must be formatted as YYYY-MM-DD")
		return nil, false
	}
	return &t, true
}
