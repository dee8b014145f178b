package routes

import (
	"log"
	"os"
	"strconv"

	_ "gestion_flota/docs" // This will be auto-generated
	"gestion_flota/internal/adapter/http/handlers"
	repository2 "gestion_flota/internal/adapter/persistence/repository"
	"gestion_flota/internal/infrastructure/database"
	"gestion_flota/internal/infrastructure/storage"
	"gestion_flota/internal/usecase"
	"gestion_flota/internal/usecase/interfaces"

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

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)
	expenseRepo := repository2.NewExpenseDynamoRepository(ddb)
	annualBudgetRepo := repository2.NewAnnualBudgetDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	fleetRefRepo := repository2.NewFleetReferenceDynamoRepository(ddb)

	var attachments interfaces.IAttachmentStorage
	store, err := storage.NewS3AttachmentStore(storage.ConnectS3(), os.Getenv("ATTACHMENTS_BUCKET"))
	if err != nil {
		log.Printf("Attachment store not configured: %v", err)
	} else {
		attachments = store
	}

	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, notificationUseCase)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, orderRepo, notificationUseCase)
	expenseUseCase := usecase.NewExpenseUseCase(expenseRepo)
	annualBudgetUseCase := usecase.NewAnnualBudgetUseCase(annualBudgetRepo, expenseRepo)
	reportUseCase := usecase.NewReportUseCase(orderRepo, expenseRepo, annualBudgetUseCase, fleetRefRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	expenseHandler := handlers.NewExpenseHandler(expenseUseCase, annualBudgetUseCase, attachments)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	api := router.Group("/api")
	addPingRoutes(router.Group(""))
	addFleetRoutes(api, orderHandler, budgetHandler, expenseHandler, notificationHandler, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
