// api/controller/health_controller.go
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/EivorRrz/restro/api/logging"
)

// Pinger is anything the health check can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthController struct {
	checks         map[string]Pinger
	metricsHandler http.Handler
}

func NewHealthController(checks map[string]Pinger, metricsHandler http.Handler) *HealthController {
	return &HealthController{checks: checks, metricsHandler: metricsHandler}
}

func (hc *HealthController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", hc.Health)
	if hc.metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(hc.metricsHandler))
	}
}

// Health reports 503 when any dependency fails its ping.
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(gin.H, len(hc.checks))
	for name, check := range hc.checks {
		if err := check.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			results[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}
	c.JSON(status, gin.H{"success": status == http.StatusOK, "checks": results})
}
