package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	_ "gifttax/api/swagger" // swagger docs
	"gifttax/internal/config"
	"gifttax/internal/database"
	"gifttax/internal/handler"
	"gifttax/internal/lawtable"
	"gifttax/internal/logger"
	"gifttax/internal/middleware"
	"gifttax/internal/repository"
	"gifttax/internal/service"
	"gifttax/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Gift Tax API
// @version         1.0
// @description     Korean gift tax computation against a versioned law table.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load("configs/.env")
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	appLog := logger.New(cfg.LogLevel)
	slog.SetDefault(appLog)
	gin.SetMode(cfg.GinMode)

	// The law table is loaded once here and only replaced by an explicit reload
	laws := lawtable.NewStore(cfg.LawTablePath)
	service.LogLawContext(appLog, "law table loaded", laws.Current())

	var auditRepo repository.AuditRepository
	if cfg.AuditEnabled() {
		db, err := database.NewConnection(cfg.DatabaseURL)
		if err != nil {
			appLog.Error("audit database unavailable", "error", err)
			os.Exit(1)
		}
		auditRepo = repository.NewAuditRepository(db)
		appLog.Info("audit trail enabled")
	} else {
		appLog.Info("DATABASE_URL not set, audit trail disabled")
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(appLog)
	go wsHub.Run(context.Background())

	// Set up dependencies (Repository -> Service -> Handler)
	jwtSecret := []byte(cfg.JWTSecret)
	giftTaxService := service.NewGiftTaxService(laws, auditRepo, wsHub, appLog)
	lawTableService := service.NewLawTableService(laws, auditRepo, wsHub, appLog)
	auditService := service.NewAuditService(auditRepo)

	giftTaxHandler := handler.NewGiftTaxHandler(giftTaxService, jwtSecret)
	lawTableHandler := handler.NewLawTableHandler(lawTableService, jwtSecret)
	auditHandler := handler.NewAuditHandler(auditService, jwtSecret)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{middleware.HeaderRequestID}
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RequestLogger(appLog))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK", "law_configured": laws.Current().Usable()})
	})

	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, jwtSecret)
	})

	giftTaxHandler.RegisterRoutes(router.Group(""))
	lawTableHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))

	appLog.Info("server listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		appLog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
