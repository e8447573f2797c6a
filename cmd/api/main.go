package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobtrail/jobtrail/internal/backend"
	"github.com/jobtrail/jobtrail/internal/coach"
	"github.com/jobtrail/jobtrail/internal/config"
	"github.com/jobtrail/jobtrail/internal/handlers"
	"github.com/jobtrail/jobtrail/internal/logger"
	"github.com/jobtrail/jobtrail/internal/services"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 2. Logger
	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zlog.Sync()

	// 3. Backend client and core services
	client := backend.NewClient(cfg.Backend, zlog)
	reviews := services.NewReviewManager(client, cfg.Review.PollInterval(), cfg.Review.MaxAttempts, zlog)
	defer reviews.Shutdown()

	intake := services.NewIntakeService(client, reviews, zlog)
	lists := services.NewListService(client, cfg.Cache.TTLDuration(), cfg.Cache.CleanupDuration(), zlog)

	// 4. Coaching service. Optional: without an API key the gateway still
	// serves the board, only the coach endpoints go dark.
	var coachSvc handlers.Coach
	if svc, err := coach.NewService(context.Background(), cfg.Coach, zlog); err != nil {
		zlog.Warn("coach disabled", zap.Error(err))
	} else {
		coachSvc = svc
	}

	// 5. Handlers
	intakeHandler := handlers.NewIntakeHandler(intake, reviews)
	boardHandler := handlers.NewBoardHandler(lists)
	coachHandler := handlers.NewCoachHandler(coachSvc)

	// 6. Router & CORS
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestLogger(zlog))

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Server.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	// 7. Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/jobs/track", intakeHandler.TrackJob)
		api.GET("/reviews/:id", intakeHandler.ReviewStatus)
		api.DELETE("/reviews/:id", intakeHandler.CancelReview)

		api.GET("/applications", boardHandler.ListApplications)
		api.POST("/applications", boardHandler.CreateApplication)
		api.PUT("/applications/:id", boardHandler.UpdateApplication)
		api.DELETE("/applications/:id", boardHandler.DeleteApplication)

		api.GET("/contacts", boardHandler.ListContacts)
		api.POST("/contacts", boardHandler.CreateContact)
		api.PUT("/contacts/:id", boardHandler.UpdateContact)
		api.DELETE("/contacts/:id", boardHandler.DeleteContact)

		api.GET("/resumes", boardHandler.ListResumes)
		api.POST("/resumes", boardHandler.CreateResume)
		api.DELETE("/resumes/:id", boardHandler.DeleteResume)

		api.GET("/narratives", boardHandler.ListNarratives)
		api.POST("/narratives", boardHandler.CreateNarrative)

		api.GET("/offers", boardHandler.ListOffers)
		api.POST("/offers", boardHandler.CreateOffer)
		api.PUT("/offers/:id", boardHandler.UpdateOffer)

		api.GET("/leaderboard", boardHandler.Leaderboard)

		api.POST("/coach/keywords", coachHandler.Keywords)
		api.POST("/coach/guidance", coachHandler.Guidance)
		api.POST("/coach/quantify", coachHandler.Quantify)
		api.POST("/coach/expand-role", coachHandler.ExpandRole)
	}

	zlog.Info("server starting", zap.String("addr", cfg.Server.Addr()))
	if err := r.Run(cfg.Server.Addr()); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}
