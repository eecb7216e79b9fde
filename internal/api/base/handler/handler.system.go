package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"ladle_passport/internal/common"
	"ladle_passport/internal/global"
	"ladle_passport/internal/logger"
)

// SystemHandler обслуживает служебные эндпоинты (health-check).
type SystemHandler struct{}

// NewSystemHandler создаёт новый SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleHealth проверяет доступность сервиса и базы данных.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	dbStatus := "up"

	if global.MongoDB_Session == nil {
		dbStatus = "down"
		status = "degraded"
	} else if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
		logger.WithRequest(c).WithError(err).Warn("Health-check: база данных недоступна")
		dbStatus = "down"
		status = "degraded"
	}

	body := fiber.Map{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UnixMilli(),
	}

	if status != "healthy" {
		return JSONResponse(c, common.StatusServiceUnavailable, body)
	}
	return JSONResponse(c, common.StatusOK, body)
}
