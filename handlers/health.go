package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Check reports whether one dependency is usable.
type Check func(ctx context.Context) error

// Dependency is a named readiness check. Optional dependencies are reported
// but never make the service unready.
type Dependency struct {
	Name     string
	Check    Check
	Optional bool
}

// RegisterHealth mounts /health (liveness) and /ready (dependency checks).
func RegisterHealth(r *gin.Engine, started time.Time, deps ...Dependency) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		ready := true
		status := map[string]bool{}
		for _, d := range deps {
			ok := d.Check == nil || d.Check(ctx) == nil
			status[d.Name] = ok
			if !ok && !d.Optional {
				ready = false
			}
		}

		uptime := time.Since(started).Round(time.Second).String()
		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": status, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": status, "uptime": uptime})
	})
}
