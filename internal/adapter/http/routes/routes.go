package routes

import (
	"context"
	"log"
	_ "moyo_dispatch/docs" // This will be auto-generated
	"moyo_dispatch/internal/adapter/http/handlers"
	"moyo_dispatch/internal/adapter/http/middleware"
	repository2 "moyo_dispatch/internal/adapter/persistence/repository"
	"moyo_dispatch/internal/infrastructure/database"
	"moyo_dispatch/internal/infrastructure/identity"
	"moyo_dispatch/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	applicationRepo := repository2.NewSupplierApplicationDynamoRepository(ddb)
	demandRepo := repository2.NewDemandMemoryRepository()
	positionRepo := repository2.NewLivePositionMemoryRepository()
	seedDemands(demandRepo)

	demandUseCase := usecase.NewDemandUseCase(demandRepo, positionRepo)
	supplierUseCase := usecase.NewSupplierUseCase(applicationRepo)
	trackingUseCase := usecase.NewTrackingUseCase(positionRepo, demandRepo)

	simulator := usecase.NewDispatchSimulator(demandUseCase, positionRepo, usecase.DispatchConfigFromEnv())
	demandUseCase.SetScheduler(simulator)
	trackingUseCase.StartDrift(usecase.SeedDriftIntervalFromEnv())

	authClient, err := identity.InitFirebaseAuth(context.Background())
	if err != nil {
		log.Fatalf("Firebase auth not configured: %v", err)
	}

	demandHandler := handlers.NewDemandHandler(demandUseCase, supplierUseCase)
	supplierHandler := handlers.NewSupplierHandler(supplierUseCase)
	trackingHandler := handlers.NewTrackingHandler(trackingUseCase, supplierUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMoyoRoutes(v1, middleware.Auth(authClient), demandHandler, supplierHandler, trackingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
