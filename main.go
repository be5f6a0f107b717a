package main

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/cliento-portal/api/v1"
	"github.com/cliento-portal/config"
	"github.com/cliento-portal/database"
	"github.com/cliento-portal/lib/logger"
	"github.com/cliento-portal/lib/metrics"
	"github.com/cliento-portal/lib/storage"
)

func main() {
	config.LoadEnv()

	log := logger.Init()
	defer log.Sync()

	db, err := database.Connect()
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	blobs := openBlobStore(log)

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(metrics.Middleware())
	router.GET("/metrics", metrics.Handler())

	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1, db, blobs)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("cliento portal starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

// openBlobStore picks S3 when configured and falls back to the in-memory
// store, which does not survive restarts.
func openBlobStore(log *zap.Logger) storage.BlobStore {
	if os.Getenv("BLOB_S3_BUCKET") == "" {
		log.Warn("BLOB_S3_BUCKET not set, using in-memory blob store")
		return storage.NewMemoryStore()
	}
	s3Store, err := storage.OpenS3FromEnv(context.Background())
	if err != nil {
		log.Fatal("failed to open S3 blob store", zap.Error(err))
	}
	return s3Store
}
