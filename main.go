package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/didip/tollbooth"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/lumenkb/lumen-server/docs"
	"github.com/lumenkb/lumen-server/internal/authentication"
	"github.com/lumenkb/lumen-server/internal/catalog"
	"github.com/lumenkb/lumen-server/internal/knowledge"
	"github.com/lumenkb/lumen-server/internal/ragindex"
	"github.com/lumenkb/lumen-server/internal/snowflake"
	"github.com/lumenkb/lumen-server/internal/user"
	"github.com/lumenkb/lumen-server/internal/utils"
)

// @title           Lumen Server API
// @version         1.0
// @description     Multi-tenant knowledge-base backend: user accounts, token issuance and the model catalog.
//
// @host      localhost:8080
// @BasePath  /api
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load config
	cfg, err := utils.LoadConfig(".env")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// load options file
	opts, err := utils.LoadOptions(cfg.Options.Path)
	if err != nil {
		panic("Failed to load options: " + err.Error())
	}

	// init database
	db, err := utils.InitDatabase(cfg.Database.DSN())
	if err != nil {
		panic("Failed to connect to the database: " + err.Error())
	}
	if err := db.AutoMigrate(
		&user.User{},
		&authentication.RefreshTokenRecord{},
		&knowledge.Knowledge{},
	); err != nil {
		panic("Failed to migrate database: " + err.Error())
	}

	// init logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	// init id generator
	var generatorOpts []snowflake.Option
	if cfg.Snowflake.WorkerID >= 0 {
		generatorOpts = append(generatorOpts, snowflake.WithWorkerID(cfg.Snowflake.WorkerID))
	}
	generatorOpts = append(generatorOpts, snowflake.WithDatacenterID(cfg.Snowflake.DatacenterID))
	ids, err := snowflake.New(generatorOpts...)
	if err != nil {
		panic("Failed to initialize id generator: " + err.Error())
	}

	// init index provider
	indexProvider, err := ragindex.New(opts.RagIndex)
	if err != nil {
		panic("Failed to initialize index provider: " + err.Error())
	}

	// init Gin router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	//
	// SWAGGER (protected by Basic Auth, not JWT)
	//
	swaggerGroup := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
		cfg.Admin.Username: cfg.Admin.Password,
	}))
	swaggerGroup.GET("", ginSwagger.WrapHandler(swaggerFiles.Handler))
	swaggerGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	//
	// WIRE UP SERVICES
	//
	recordRepo := authentication.NewRecordRepository(db)
	tokenService := authentication.NewTokenService(recordRepo, ids, logger, cfg.Token)

	userRepo := user.NewUserRepository(db)
	userService := user.NewUserService(userRepo, tokenService, ids, logger)

	catalogService := catalog.NewCatalogService(opts.Models)

	knowledgeRepo := knowledge.NewKnowledgeRepository(db)
	knowledgeService := knowledge.NewKnowledgeService(
		knowledgeRepo,
		indexProvider,
		ids,
		logger,
		opts.Knowledge,
		opts.RagIndex,
	)

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// public auth endpoints are rate limited per IP
	limiter := tollbooth.NewLimiter(cfg.Server.RateLimitRPS, nil)
	limiter.SetIPLookups([]string{"X-Forwarded-For", "RemoteAddr", "X-Real-IP"})

	public := api.Group("/")
	public.Use(tollbooth_gin.LimitHandler(limiter))

	protected := api.Group("/")
	protected.Use(authentication.AuthMiddleware(cfg.Token, logger))

	user.NewUserHandler(public, protected, userService, logger)
	catalog.NewCatalogHandler(protected, catalogService, logger)
	knowledge.NewKnowledgeHandler(protected, knowledgeService, logger)

	//
	// START SERVER
	//
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}
	go func() {
		logger.Info("starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped gracefully")
	}
}
