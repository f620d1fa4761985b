package routes

import (
	"context"
	"log"
	"time"

	"moyo_dispatch/internal/adapter/http/handlers"
	"moyo_dispatch/internal/adapter/http/middleware"
	"moyo_dispatch/internal/domain/entities"
	"moyo_dispatch/internal/domain/geo"
	"moyo_dispatch/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	PathDemands   = "/demands"
	PathSuppliers = "/suppliers"
	PathTracking  = "/tracking"
)

func addMoyoRoutes(
	rg *gin.RouterGroup,
	auth gin.HandlerFunc,
	demandHandler *handlers.DemandHandler,
	supplierHandler *handlers.SupplierHandler,
	trackingHandler *handlers.TrackingHandler,
) {
	demands := rg.Group(PathDemands)
	{
		demands.GET("", demandHandler.ListDemands)
		demands.GET("/stats", demandHandler.GetStats)
		demands.GET("/:id", demandHandler.GetDemand)
		demands.GET("/:id/tracking", demandHandler.GetTracking)

		demands.POST("", auth, demandHandler.RequestWater)
		demands.PATCH("/:id/on-the-way", auth, demandHandler.MarkOnTheWay)
		demands.PATCH("/:id/supplied", auth, demandHandler.MarkSupplied)
	}

	suppliers := rg.Group(PathSuppliers)
	{
		suppliers.GET("/approved", supplierHandler.ListApprovedSuppliers)
		suppliers.POST("/applications", auth, supplierHandler.Apply)
		suppliers.GET("/applications/me", auth, supplierHandler.GetMyApplication)

		// Admin review actions.
		admin := suppliers.Group("", auth, middleware.AdminOnly())
		admin.GET("/applications", supplierHandler.ListApplications)
		admin.PATCH("/applications/:id/approve", supplierHandler.ApproveApplication)
		admin.PATCH("/applications/:id/suspend", supplierHandler.SuspendApplication)
	}

	tracking := rg.Group(PathTracking)
	{
		tracking.GET("/suppliers", trackingHandler.ListLiveSuppliers)
		tracking.GET("/map", trackingHandler.GetMapView)

		tracking.PUT("/position", auth, trackingHandler.UpdateLivePosition)
		tracking.DELETE("/position", auth, trackingHandler.ClearLivePosition)
	}
}

// seedDemands loads the initial demand clusters shown before any real
// request comes in.
func seedDemands(repo interfaces.IDemandRepository) {
	seeds := []struct {
		lat, lng float64
		area     string
		requests int
		urgency  entities.Urgency
	}{
		{4.848, 31.598, "Gudele Block 7", 12, entities.UrgencyHigh},
		{4.862, 31.592, "Munuki West", 8, entities.UrgencyMedium},
		{4.855, 31.618, "Kator Market Area", 15, entities.UrgencyHigh},
		{4.838, 31.632, "Jebel Kujur", 5, entities.UrgencyLow},
		{4.872, 31.605, "Hai Referendum", 9, entities.UrgencyMedium},
	}

	now := time.Now().UTC()
	for _, s := range seeds {
		loc := geo.Coordinate{Lat: s.lat, Lng: s.lng}
		_, err := repo.Create(context.Background(), entities.DemandPoint{
			ID:        uuid.NewString(),
			Location:  loc,
			Area:      s.area,
			Requests:  s.requests,
			Urgency:   s.urgency,
			Distance:  geo.FormatDistance(geo.Distance(loc, geo.JubaCenter)),
			Status:    entities.DemandStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			log.Printf("[routes] failed to seed demand area=%q: %v", s.area, err)
		}
	}
}
