package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "quotely/docs" // This will be auto-generated
	"quotely/internal/adapter/http/handlers"
	"quotely/internal/adapter/persistence/repository"
	"quotely/internal/infrastructure/database"
	"quotely/internal/store"
	"quotely/internal/store/interfaces"

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
	s := store.New(context.Background(), newSnapshotStore())

	quoteHandler := handlers.NewQuoteHandler(s)
	templateHandler := handlers.NewTemplateHandler(s)
	catalogHandler := handlers.NewCatalogHandler(s)
	shareHandler := handlers.NewShareHandler(s)
	searchHandler := handlers.NewSearchHandler(s)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotelyRoutes(v1, quoteHandler, templateHandler, catalogHandler, shareHandler, searchHandler)
}

// newSnapshotStore picks the persistence backend. SNAPSHOT_BACKEND=memory
// keeps everything in process, handy for local runs without DynamoDB.
func newSnapshotStore() interfaces.ISnapshotStore {
	if os.Getenv("SNAPSHOT_BACKEND") == "memory" {
		log.Printf("Using in-memory snapshot store; data will not survive restarts")
		return repository.NewSnapshotMemoryRepository()
	}
	return repository.NewSnapshotDynamoRepository(database.ConnectDynamoDB())
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
