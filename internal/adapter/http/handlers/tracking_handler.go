package handlers

import (
	"errors"
	request "moyo_dispatch/internal/adapter/http/dto/request"
	response "moyo_dispatch/internal/adapter/http/dto/response"
	"moyo_dispatch/internal/adapter/http/middleware"
	"moyo_dispatch/internal/domain/geo"
	"moyo_dispatch/internal/usecase"
	"moyo_dispatch/pkg"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPositionPayload = pkg.NewDomainErrorSimple("INVALID_POSITION_INPUT", "Invalid live position payload", http.StatusBadRequest)
	errInvalidHouseholdCoord  = pkg.NewDomainErrorSimple("INVALID_COORDINATE", "Invalid household coordinate", http.StatusBadRequest)
)

// TrackingHandler handles HTTP requests for live positions and map views.
type TrackingHandler struct {
	usecase   usecase.ITrackingUseCase
	suppliers usecase.ISupplierUseCase
}

func NewTrackingHandler(uc usecase.ITrackingUseCase, suppliers usecase.ISupplierUseCase) *TrackingHandler {
	return &TrackingHandler{usecase: uc, suppliers: suppliers}
}

// UpdateLivePosition records the calling supplier's current coordinate.
// Only approved suppliers may share a position.
func (h *TrackingHandler) UpdateLivePosition(c *gin.Context) {
	app, err := h.suppliers.ApprovedByUserID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.LivePositionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPositionPayload.HTTPStatus, errInvalidPositionPayload.ToHTTPError())
		return
	}
	loc, ok := payload.ResolveLocation()
	if !ok {
		c.JSON(errInvalidPositionPayload.HTTPStatus, errInvalidPositionPayload.ToHTTPError())
		return
	}

	pos, err := h.usecase.SetLivePosition(c.Request.Context(), app, loc)
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLivePosition(pos))
}

func (h *TrackingHandler) ClearLivePosition(c *gin.Context) {
	app, err := h.suppliers.ApprovedByUserID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.ClearLivePosition(c.Request.Context(), app.ID); err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TrackingHandler) ListLiveSuppliers(c *gin.Context) {
	positions, err := h.usecase.LiveSuppliersForMap(c.Request.Context())
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLivePositions(positions))
}

// GetMapView returns all markers with a fitted viewport. An optional
// lat/lng query pair adds the caller's household to the fit.
func (h *TrackingHandler) GetMapView(c *gin.Context) {
	var household *geo.Coordinate
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" || lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat != nil || errLng != nil {
			c.JSON(errInvalidHouseholdCoord.HTTPStatus, errInvalidHouseholdCoord.ToHTTPError())
			return
		}
		household = &geo.Coordinate{Lat: lat, Lng: lng}
	}

	view, err := h.usecase.MapView(c.Request.Context(), household)
	if err != nil {
		appErr := mapTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMapView(view))
}

func mapTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCoordinate), errors.Is(err, usecase.ErrInvalidSupplierID),
		errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSupplierNotApproved), errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_APPROVED", "Approved supplier application required", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
