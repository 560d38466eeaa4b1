package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Thato402/employee-attendance-tracker/internal/attendance"
	"github.com/Thato402/employee-attendance-tracker/internal/auth"
	"github.com/Thato402/employee-attendance-tracker/internal/config"
	"github.com/Thato402/employee-attendance-tracker/internal/middleware"
	"github.com/Thato402/employee-attendance-tracker/internal/token"
	"github.com/Thato402/employee-attendance-tracker/internal/user"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
) {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)

	// --- Services ---
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := auth.NewService(authRepo, tokens)
	userService := user.NewService(userRepo)
	attendanceService := attendance.NewService(attendanceRepo, userRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	attendanceHandler := attendance.NewHandlerWithRedis(attendanceService, rdb)

	// --- Routes ---
	authMW := middleware.AuthMiddleware(tokens)
	idempotencyMW := middleware.Idempotency(rdb)

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler, authMW)
		attendance.RegisterRoutes(api, attendanceHandler, authMW, idempotencyMW)
	}
}
