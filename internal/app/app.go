package app

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Thato402/employee-attendance-tracker/internal/attendance"
	"github.com/Thato402/employee-attendance-tracker/internal/auth"
	"github.com/Thato402/employee-attendance-tracker/internal/config"
	"github.com/Thato402/employee-attendance-tracker/internal/middleware"
	"github.com/Thato402/employee-attendance-tracker/internal/shared/connection"
	"github.com/Thato402/employee-attendance-tracker/internal/shared/response"
)

// BuildApp opens the stores, migrates the schema and wires every module
// onto the router. The returned cleanup closes the store handles; lifecycle
// is open -> serve -> close, nothing lives in package-level state.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	// User first: attendance declares the FK back to users.
	if err := gormDB.AutoMigrate(&auth.User{}, &attendance.Attendance{}); err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return nil, err
	}

	router.Use(cors.New(corsConfig()))
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	registerModules(router, gormDB, rdb, cfg)
	registerHealth(router, sqlDB, rdb)

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Endpoint not found.")
	})

	cleanup := func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	}
	return cleanup, nil
}

func corsConfig() cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "Idempotency-Key"}
	corsCfg.MaxAge = 12 * time.Hour
	return corsCfg
}

// registerHealth reports store connectivity. A failing database probe is a
// 500; Redis state is informational only since the API still works without
// the idempotency cache.
func registerHealth(router *gin.Engine, sqlDB *sql.DB, rdb *redis.Client) {
	router.GET("/api/health", func(c *gin.Context) {
		if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":   "error",
				"database": "disconnected",
			})
			return
		}

		redisStatus := "connected"
		if err := rdb.Ping(c.Request.Context()).Err(); err != nil {
			redisStatus = "disconnected"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "success",
			"message":  "Employee Attendance Tracker API is running",
			"database": "connected",
			"redis":    redisStatus,
		})
	})
}
