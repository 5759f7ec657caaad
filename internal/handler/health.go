package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports whether Postgres and Redis answer. It sits outside the JWT
// chain so orchestrators and uptime checks can poll it without a token, and
// it reports status words only, never connection details.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		postgres := "conectado"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			postgres = "error"
		}

		redisEstado := "conectado"
		if rdb.Ping(ctx).Err() != nil {
			redisEstado = "error"
		}

		estado, status := "ok", http.StatusOK
		if postgres != "conectado" || redisEstado != "conectado" {
			estado, status = "degradado", http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"estado":   estado,
			"postgres": postgres,
			"redis":    redisEstado,
		})
	}
}
