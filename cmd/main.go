package main

import (
	stdlog "log"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gopher0727/RaidLedger/config"
	"github.com/Gopher0727/RaidLedger/internal/api"
	"github.com/Gopher0727/RaidLedger/internal/handler"
	"github.com/Gopher0727/RaidLedger/internal/repository"
	"github.com/Gopher0727/RaidLedger/internal/service"
	"github.com/Gopher0727/RaidLedger/internal/storage"
	"github.com/Gopher0727/RaidLedger/middleware/jwt"
	logger "github.com/Gopher0727/RaidLedger/middleware/log"
)

func main() {
	cfg, err := config.LoadConfig("./config.toml")
	if err != nil {
		stdlog.Fatalf("failed to load config: %v", err)
	}

	log, err := logger.NewLogger(&cfg.Logging)
	if err != nil {
		stdlog.Fatalf("failed to init logger: %v", err)
	}
	defer log.Close()

	dsn := storage.BuildDSN(cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.DBName)
	db, err := storage.InitPostgres(dsn, cfg.Postgres.MaxIdleConns, cfg.Postgres.MaxOpenConns)
	if err != nil {
		log.Fatal("failed to init postgres", zap.Error(err))
	}
	if err := storage.SeedJobs(db); err != nil {
		log.Fatal("failed to seed jobs", zap.Error(err))
	}

	redisClient, err := storage.InitRedis(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize, cfg.Redis.MinIdleConns)
	if err != nil {
		log.Fatal("failed to init redis", zap.Error(err))
	}
	defer redisClient.Close()

	tokenManager := jwt.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpireHours, cfg.JWT.RefreshHours)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	raidRepo := repository.NewRaidRepository(db)
	groupRepo := repository.NewRaidGroupRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	itemRepo := repository.NewItemRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	distRepo := repository.NewDistributionRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, tokenManager)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(raidRepo, itemRepo)
	rosterService := service.NewRosterService(groupRepo, playerRepo, raidRepo, itemRepo, userRepo)
	gearingService := service.NewGearingService(equipmentRepo, playerRepo, groupRepo, itemRepo)
	equipmentService := service.NewEquipmentService(equipmentRepo, playerRepo, itemRepo)
	distributionService := service.NewDistributionService(distRepo, groupRepo, playerRepo, itemRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, groupRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	groupHandler := handler.NewGroupHandler(rosterService, gearingService)
	playerHandler := handler.NewPlayerHandler(gearingService)
	equipmentHandler := handler.NewEquipmentHandler(equipmentService, gearingService)
	distributionHandler := handler.NewDistributionHandler(distributionService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)

	mw := api.NewMiddlewareManager(tokenManager, redisClient, log, &cfg.RateLimit)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()

	api.RegisterRoutes(r, mw,
		authHandler,
		userHandler,
		catalogHandler,
		groupHandler,
		playerHandler,
		equipmentHandler,
		distributionHandler,
		scheduleHandler,
	)

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	log.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
