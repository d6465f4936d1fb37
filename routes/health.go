package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reminder-app/reminder/database"
)

// RegisterHealthRoutes adds the liveness probe and the favicon stub.
func RegisterHealthRoutes(router *gin.Engine, db *database.Database) {
	router.GET("/healthz", func(c *gin.Context) { Health(c, db) })
	router.GET("/favicon.ico", func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func Health(c *gin.Context, db *database.Database) {
	if err := db.Ping(); err != nil {
		c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unavailable",
			"database": err.Error(),
			"time":     time.Now(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": db.Driver,
		"time":     time.Now(),
	})
}
