package app

import (
	"database/sql"
	"net/http"

	"github.com/sohan418/leave-management-backend/internal/auth"
	"github.com/sohan418/leave-management-backend/internal/authz"
	"github.com/sohan418/leave-management-backend/internal/config"
	"github.com/sohan418/leave-management-backend/internal/employee"
	"github.com/sohan418/leave-management-backend/internal/leave"
	"github.com/sohan418/leave-management-backend/internal/messaging/kafka"
	"github.com/sohan418/leave-management-backend/internal/middleware"
	"github.com/sohan418/leave-management-backend/internal/notification"
	"github.com/sohan418/leave-management-backend/internal/shared/counter"
	"github.com/sohan418/leave-management-backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	leaveTypeRepo := leave.NewLeaveTypeRepository(gormDB)
	holidayRepo := leave.NewHolidayRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Authorization ---
	authzService, err := authz.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(userRepo, employeeRepo, cfg.Auth, logger)
	employeeService := employee.NewService(db, employeeRepo, userRepo, counterRepo, logger)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, leaveTypeRepo, holidayRepo, outboxRepo, logger)
	leaveTypeService := leave.NewLeaveTypeService(leaveTypeRepo, rdb, logger)
	holidayService := leave.NewHolidayService(holidayRepo, logger)
	notificationService := notification.NewService(notificationRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leave.NewHandler(leaveService, rdb, logger)
	catalogHandler := leave.NewCatalogHandler(leaveTypeService, holidayService, logger)
	notificationHandler := notification.NewHandler(notificationService, logger)

	// --- Routes ---
	router.Use(middleware.RequestID())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	secret := cfg.Auth.JWTSecret
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authzService, secret, authService, logger)
		employee.RegisterRoutes(api, employeeHandler, authzService, secret, authService, logger)
		leave.RegisterRoutes(api, leaveHandler, catalogHandler, authzService, secret, authService, rdb, logger)
		notification.RegisterRoutes(api, notificationHandler, authzService, secret, authService, logger)
	}

	return nil
}
