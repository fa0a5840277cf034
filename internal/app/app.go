package app

import (
	"github.com/sohan418/leave-management-backend/internal/config"
	"github.com/sohan418/leave-management-backend/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure, runs migrations and registers every module
// on the router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}
	logger.Info("schema migrated")

	return registerModules(router, sqlDB, gormDB, rdb, cfg, logger)
}
