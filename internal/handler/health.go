package handler

import (
	"context"
	"net/http"
	"time"

	"duka/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports readiness of the two stores behind the shop API. The db
// probe counts catalog items rather than just pinging, so a healthy response
// also confirms the schema migrated; the count is handy on a dashboard.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		body := gin.H{"db": "connected", "redis": "connected"}
		healthy := true

		var items int64
		if err := db.WithContext(ctx).Model(&model.Item{}).Count(&items).Error; err != nil {
			body["db"] = "error"
			healthy = false
		} else {
			body["items"] = items
		}

		if err := rdb.Ping(ctx).Err(); err != nil {
			body["redis"] = "error"
			healthy = false
		}

		body["ok"] = healthy
		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, body)
	}
}
