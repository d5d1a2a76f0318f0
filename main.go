package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/EXROSE/VaricoCare/controllers"
	"github.com/EXROSE/VaricoCare/database"
	"github.com/EXROSE/VaricoCare/gemini"
	"github.com/EXROSE/VaricoCare/logger"
	"github.com/EXROSE/VaricoCare/models"
	"github.com/EXROSE/VaricoCare/payment"
	"github.com/EXROSE/VaricoCare/routes"
	"github.com/EXROSE/VaricoCare/services"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Initialize("development")
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Initialize(cfg.Env)
	defer zap.L().Sync()
	log := zap.L()

	// --- 1. Storage ---

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to Postgres", zap.Error(err))
	}

	kv := database.NewRedisKV(redisClient, 0)
	productsCol := database.NewCollection(kv, database.KeyProducts,
		func(p models.Product) string { return p.ID }, database.DefaultProducts)
	exercisesCol := database.NewCollection(kv, database.KeyExercises,
		func(e models.Exercise) string { return e.ID }, database.DefaultExercises)
	tipsCol := database.NewCollection(kv, database.KeyDietTips,
		func(t models.DietTip) string { return t.ID }, database.DefaultDietTips)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelSeed()
	for name, init := range map[string]func(context.Context) error{
		"products":  productsCol.Init,
		"exercises": exercisesCol.Init,
		"diet_tips": tipsCol.Init,
	} {
		if err := init(seedCtx); err != nil {
			log.Fatal("Failed to seed collection", zap.String("collection", name), zap.Error(err))
		}
	}

	cartRepo := database.NewCartRepository(redisClient, cfg.CartTTL)
	checkoutRepo := database.NewCheckoutRepository(redisClient, cfg.CheckoutTTL)
	sessionRepo := database.NewSessionRepository(redisClient, cfg.SessionTTL)
	progressRepo := database.NewProgressRepository(redisClient)
	orderRepo := database.NewGormOrderRepository(db)
	userRepo := database.NewGormUserRepository(db)

	// --- 2. Services ---

	aiClient := gemini.NewClient(cfg.GeminiAPIKey, "", cfg.GeminiModel, cfg.AITimeout, log)
	processor := payment.NewSimulatedProcessor(cfg.PaymentDelay, log)

	catalogService := services.NewCatalogService(productsCol, log)
	cartService := services.NewCartService(cartRepo, log)
	checkoutService := services.NewCheckoutService(checkoutRepo, cartRepo, orderRepo, processor, log)
	orderService := services.NewOrderService(orderRepo, log)
	exerciseService := services.NewExerciseService(exercisesCol, progressRepo, log)
	dietService := services.NewDietService(tipsCol, aiClient, log)
	analysisService := services.NewAnalysisService(aiClient, log)
	authService := services.NewAuthService(userRepo, sessionRepo, log)

	// --- 3. HTTP server ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.Register(r, routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		Products: controllers.NewProductController(catalogService),
		Cart:     controllers.NewCartController(cartService, catalogService),
		Checkout: controllers.NewCheckoutController(checkoutService),
		Orders:   controllers.NewOrderController(orderService),
		Exercise: controllers.NewExerciseController(exerciseService),
		Diet:     controllers.NewDietController(dietService),
		Analysis: controllers.NewAnalysisController(analysisService),
		Admin:    controllers.NewAdminController(catalogService, exerciseService, dietService, orderService),
	}, sessionRepo)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// --- 4. Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("VaricoCare API starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down VaricoCare API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("VaricoCare API stopped gracefully")
}
