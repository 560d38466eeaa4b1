package attendance

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Thato402/employee-attendance-tracker/internal/shared/apperror"
	"github.com/Thato402/employee-attendance-tracker/internal/shared/contextutil"
	"github.com/Thato402/employee-attendance-tracker/internal/shared/response"
)

const idempotencyCacheTTL = 24 * time.Hour

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// NewHandlerWithRedis additionally caches successful submissions for
// Idempotency-Key replays.
func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		contextutil.GetLogger(c.Request.Context(), zap.L()).Error("attendance request failed", zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	records, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, response.Body{
		"message": "success",
		"data":    records,
		"count":   len(records),
	})
}

func (h *Handler) Create(c *gin.Context) {
	// Release the idempotency lock set by the middleware regardless of
	// outcome; the cached response is only written on success.
	lockKey := c.GetString("idempotency_lock_key")
	cacheKey := c.GetString("idempotency_cache_key")
	if h.rdb != nil && lockKey != "" {
		defer h.rdb.Del(c.Request.Context(), lockKey)
	}

	userID := c.GetString("user_id")

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	record, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if h.rdb != nil && cacheKey != "" {
		if payload, err := json.Marshal(record); err == nil {
			h.rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyCacheTTL)
		}
	}

	response.Success(c, http.StatusOK, response.Body{
		"message": "Attendance recorded successfully!",
		"data":    record,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	recordID := c.Param("id")

	deletedID, err := h.service.Delete(c.Request.Context(), userID, recordID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, response.Body{
		"message":   "Attendance record deleted successfully",
		"deletedId": deletedID,
	})
}
