package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "moto_garage/docs" // This will be auto-generated
	"moto_garage/internal/adapter/http/handlers"
	repository2 "moto_garage/internal/adapter/persistence/repository"
	"moto_garage/internal/infrastructure/config"
	"moto_garage/internal/infrastructure/database"
	"moto_garage/internal/infrastructure/notifications"
	"moto_garage/internal/infrastructure/payments"
	"moto_garage/internal/usecase"
	"moto_garage/internal/usecase/interfaces"

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
	ddb := database.MustConnect(context.Background())

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	updateRepo := repository2.NewServiceUpdateDynamoRepository(ddb)
	paymentRequestRepo := repository2.NewPaymentRequestDynamoRepository(ddb)
	orderRequestRepo := repository2.NewOrderRequestDynamoRepository(ddb)
	mechanicRepo := repository2.NewMechanicDynamoRepository(ddb)

	flow, err := config.LoadStatusFlow()
	if err != nil {
		log.Fatalf("Failed to load status flow: %v", err)
	}

	dispatcher := notifications.NewDispatcherFromEnv()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, flow, dispatcher, paymentGateway)
	authorizationUseCase := usecase.NewAuthorizationUseCase(orderRepo, updateRepo, dispatcher)
	settlementUseCase := usecase.NewSettlementUseCase(orderRepo, paymentRequestRepo, mechanicRepo, dispatcher)
	orderRequestUseCase := usecase.NewOrderRequestUseCase(orderRequestRepo, orderUseCase, orderRepo, mechanicRepo, dispatcher)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	authorizationHandler := handlers.NewAuthorizationHandler(authorizationUseCase)
	settlementHandler := handlers.NewSettlementHandler(settlementUseCase)
	orderRequestHandler := handlers.NewOrderRequestHandler(orderRequestUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, orderHandler, authorizationHandler, settlementHandler, orderRequestHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
