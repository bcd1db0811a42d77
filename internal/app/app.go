package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"commune/internal/catalog"
	communeHTTP "commune/internal/controller/http"
	"commune/internal/repo/persistent"
	"commune/internal/scheduler"
	"commune/internal/usecase"
	"commune/pkg/config"
	"commune/pkg/logger"
	"commune/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "commune/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	// Initialize repositories
	feedRepo := persistent.NewFeedRepository(db)
	archiveRepo := persistent.NewArchiveRepository(db)
	pickRepo := persistent.NewPickRepository(db)
	saveRepo := persistent.NewSaveRepository(db)
	memberRepo := persistent.NewMemberRepository(db)

	// Initialize use cases
	feedUseCase := usecase.NewFeedUseCase(feedRepo, log, cfg.VisibilityWindow, cfg.QuotaWindow, cfg.DailyPostLimit)
	archiveUseCase := usecase.NewArchiveUseCase(feedRepo, archiveRepo, log, cfg.VisibilityWindow)
	pickUseCase := usecase.NewPickUseCase(pickRepo, archiveRepo, redisClient, log, cfg.PicksMin, cfg.PicksMax, cfg.PicksPoolSize)
	saveUseCase := usecase.NewSaveUseCase(saveRepo, log)
	memberUseCase := usecase.NewMemberUseCase(memberRepo)

	// Upstream catalog clients
	spotifyClient := catalog.NewSpotifyClient(cfg.SpotifyClientID, cfg.SpotifyClientSecret, log)
	booksClient := catalog.NewBooksClient(cfg.NLAPIKey, log)
	placesClient := catalog.NewPlacesClient(cfg.GooglePlacesKey, log)

	// Initialize HTTP handlers
	feedHandler := communeHTTP.NewFeedHandler(feedUseCase, log)
	archiveHandler := communeHTTP.NewArchiveHandler(archiveUseCase, log)
	clubHandler := communeHTTP.NewClubHandler(pickUseCase, log)
	saveHandler := communeHTTP.NewSaveHandler(saveUseCase, log)
	memberHandler := communeHTTP.NewMemberHandler(memberUseCase, log)
	catalogHandler := communeHTTP.NewCatalogHandler(spotifyClient, booksClient, placesClient, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.GET("/posts", feedHandler.ListPosts)
		api.POST("/posts", feedHandler.CreatePost)
		api.GET("/posts/count", feedHandler.DailyCount)
		api.POST("/posts/:id/reactions", feedHandler.React)
		api.DELETE("/posts/:id", feedHandler.DeletePost)
		api.DELETE("/reactions/:id", feedHandler.RemoveReaction)

		api.GET("/archive", archiveHandler.ListArchive)
		api.GET("/archive/overlap", archiveHandler.Overlap)

		api.GET("/club/picks", clubHandler.ListPicks)

		api.POST("/saves", saveHandler.Save)
		api.GET("/saves", saveHandler.ListSaves)
		api.DELETE("/saves/:id", saveHandler.Unsave)

		api.GET("/members", memberHandler.ListMembers)

		api.GET("/catalog/spotify/search", catalogHandler.SpotifySearch)
		api.GET("/catalog/books/search", catalogHandler.BookSearch)
		api.GET("/catalog/places/search", catalogHandler.PlacesSearch)
		api.GET("/catalog/places/autocomplete", catalogHandler.PlacesAutocomplete)

		api.POST("/admin/cleanup", archiveHandler.Cleanup)
		api.POST("/admin/picks", clubHandler.GeneratePicks)
	}

	// Background jobs: hourly retention sweep, weekly pick synthesis
	jobCtx, stopJobs := context.WithCancel(context.Background())
	jobs := scheduler.New(archiveUseCase, pickUseCase, log, cfg.SweepInterval, cfg.PicksInterval)
	jobs.Start(jobCtx)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Commune starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	stopJobs()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Commune exited")
}
