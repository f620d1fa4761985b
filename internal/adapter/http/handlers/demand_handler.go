package handlers

import (
	"errors"
	request "moyo_dispatch/internal/adapter/http/dto/request"
	response "moyo_dispatch/internal/adapter/http/dto/response"
	"moyo_dispatch/internal/adapter/http/middleware"
	"moyo_dispatch/internal/usecase"
	"moyo_dispatch/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWaterPayload = pkg.NewDomainErrorSimple("INVALID_WATER_REQUEST", "Invalid water request payload", http.StatusBadRequest)
)

// DemandHandler handles HTTP requests for the demand point lifecycle.
type DemandHandler struct {
	usecase   usecase.IDemandUseCase
	suppliers usecase.ISupplierUseCase
}

func NewDemandHandler(uc usecase.IDemandUseCase, suppliers usecase.ISupplierUseCase) *DemandHandler {
	return &DemandHandler{usecase: uc, suppliers: suppliers}
}

func (h *DemandHandler) RequestWater(c *gin.Context) {
	var payload request.WaterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWaterPayload.HTTPStatus, errInvalidWaterPayload.ToHTTPError())
		return
	}

	loc, hasCoord := payload.ResolveLocation()
	demand, err := h.usecase.RequestWater(c.Request.Context(), usecase.RequestWaterInput{
		UserID:   middleware.UserID(c),
		Location: loc,
		HasCoord: hasCoord,
		Area:     payload.Area,
		Urgency:  payload.ResolveUrgency(),
		Liters:   payload.Liters,
		Phone:    payload.Phone,
	})
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDemand(demand))
}

func (h *DemandHandler) ListDemands(c *gin.Context) {
	demands, err := h.usecase.List(c.Request.Context(), c.Query("urgency"), c.Query("status"))
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDemands(demands))
}

func (h *DemandHandler) GetDemand(c *gin.Context) {
	demand, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDemand(demand))
}

func (h *DemandHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStats(stats))
}

// MarkOnTheWay lets the calling supplier take a pending request. The
// supplier identity is resolved from the caller's approved application.
func (h *DemandHandler) MarkOnTheWay(c *gin.Context) {
	app, err := h.suppliers.ApprovedByUserID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	demand, err := h.usecase.MarkOnTheWay(c.Request.Context(), c.Param("id"), usecase.EnRouteSupplier{
		ID:           app.ID,
		Name:         app.Name,
		VehiclePlate: app.VehiclePlate,
	})
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDemand(demand))
}

func (h *DemandHandler) MarkSupplied(c *gin.Context) {
	if _, err := h.suppliers.ApprovedByUserID(c.Request.Context(), middleware.UserID(c)); err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	demand, err := h.usecase.MarkSupplied(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDemand(demand))
}

func (h *DemandHandler) GetTracking(c *gin.Context) {
	tracking, err := h.usecase.Tracking(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTracking(tracking))
}

func mapDemandError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDemandID), errors.Is(err, usecase.ErrInvalidUrgency),
		errors.Is(err, usecase.ErrInvalidStatusFilter), errors.Is(err, usecase.ErrInvalidSupplier):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDemandNotFound):
		return pkg.NewDomainErrorSimple("DEMAND_NOT_FOUND", "Demand point not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Demand status cannot move that way", http.StatusConflict)
	case errors.Is(err, usecase.ErrSupplierNotApproved), errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_APPROVED", "Approved supplier application required", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
