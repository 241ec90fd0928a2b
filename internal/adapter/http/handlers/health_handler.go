package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	response "claims_processor/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheck reports whether one dependency is usable.
type HealthCheck func(ctx context.Context) error

// HealthHandler serves GET /health. Any failing check turns the response into a 503.
type HealthHandler struct {
	checks map[string]HealthCheck
	log    *zap.Logger
	now    func() time.Time
}

func NewHealthHandler(checks map[string]HealthCheck, log *zap.Logger) *HealthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &HealthHandler{checks: checks, log: log, now: time.Now}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	res := response.HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Checks:    make(map[string]response.HealthCheck, len(names)),
	}
	status := http.StatusOK
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.log.Warn("health check failed", zap.String("check", name), zap.Error(err))
			res.Checks[name] = response.HealthCheck{Status: "unhealthy", Detail: err.Error()}
			res.Status = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		res.Checks[name] = response.HealthCheck{Status: "healthy"}
	}

	c.JSON(status, res)
}
