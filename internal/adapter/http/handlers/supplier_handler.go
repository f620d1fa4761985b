package handlers

import (
	"context"
	"errors"
	request "moyo_dispatch/internal/adapter/http/dto/request"
	response "moyo_dispatch/internal/adapter/http/dto/response"
	"moyo_dispatch/internal/adapter/http/middleware"
	"moyo_dispatch/internal/domain/entities"
	"moyo_dispatch/internal/usecase"
	"moyo_dispatch/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidApplicationPayload = pkg.NewDomainErrorSimple("INVALID_APPLICATION_INPUT", "Invalid supplier application payload", http.StatusBadRequest)
)

// SupplierHandler handles HTTP requests for the supplier registry.
type SupplierHandler struct {
	usecase usecase.ISupplierUseCase
}

func NewSupplierHandler(uc usecase.ISupplierUseCase) *SupplierHandler {
	return &SupplierHandler{usecase: uc}
}

func (h *SupplierHandler) Apply(c *gin.Context) {
	var payload request.SupplierApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.Apply(c.Request.Context(), usecase.ApplyInput{
		UserID:       middleware.UserID(c),
		Name:         payload.Name,
		NationalID:   payload.NationalID,
		VehiclePlate: payload.VehiclePlate,
		Email:        middleware.Email(c),
		TankerPhoto:  payload.TankerPhoto,
	})
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromApplication(app))
}

// GetMyApplication returns the calling user's own application.
func (h *SupplierHandler) GetMyApplication(c *gin.Context) {
	app, err := h.usecase.GetByUserID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApplication(app))
}

// ListApprovedSuppliers is the public directory of approved suppliers.
func (h *SupplierHandler) ListApprovedSuppliers(c *gin.Context) {
	apps, err := h.usecase.ListApproved(c.Request.Context())
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApplications(apps))
}

func (h *SupplierHandler) ListApplications(c *gin.Context) {
	apps, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApplications(apps))
}

func (h *SupplierHandler) ApproveApplication(c *gin.Context) {
	h.patchApplicationStatus(c, h.usecase.Approve)
}

func (h *SupplierHandler) SuspendApplication(c *gin.Context) {
	h.patchApplicationStatus(c, h.usecase.Suspend)
}

func (h *SupplierHandler) patchApplicationStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.SupplierApplication, error),
) {
	app, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSupplierError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApplication(app))
}

func mapSupplierError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidApplicationID), errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidName), errors.Is(err, usecase.ErrInvalidNationalID),
		errors.Is(err, usecase.ErrInvalidVehiclePlate), errors.Is(err, usecase.ErrInvalidTankerPhoto):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrApplicationAlreadyExists):
		return pkg.NewDomainErrorSimple("APPLICATION_ALREADY_EXISTS", "An application already exists for this user", http.StatusConflict)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Supplier application not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSupplierNotApproved):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_APPROVED", "Approved supplier application required", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
