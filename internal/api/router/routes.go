// Package router — регистрация маршрутов API.
package router

import (
	"github.com/gofiber/fiber/v3"

	"ladle_passport/internal/logger"
)

// RoutePrefix хранит базовые префиксы API.
type RoutePrefix struct {
	Base string
	V1   string
}

// NewRoutePrefix возвращает стандартные префиксы.
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{
		Base: "/api",
		V1:   "/api/v1",
	}
}

// RegisterFunc регистрирует маршруты одного доменного модуля.
type RegisterFunc func(v1 fiber.Router, prefix RoutePrefix) error

// RegisterRouteWithMiddleware регистрирует маршрут с набором middleware.
// В Fiber v3 middleware передаются после обработчика и применяются
// только к этому маршруту; группа с Use() здесь не подходит — её
// middleware срабатывали бы для всех методов с тем же префиксом.
func RegisterRouteWithMiddleware(router fiber.Router, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	switch method {
	case fiber.MethodGet:
		router.Get(path, handler, middlewares...)
	case fiber.MethodPost:
		router.Post(path, handler, middlewares...)
	case fiber.MethodPut:
		router.Put(path, handler, middlewares...)
	case fiber.MethodDelete:
		router.Delete(path, handler, middlewares...)
	case fiber.MethodPatch:
		router.Patch(path, handler, middlewares...)
	default:
		logger.GetAppLogger().Warnf("Неизвестный HTTP-метод при регистрации маршрута: %s %s", method, path)
	}
}

// SetupRoutes подключает все доменные модули к приложению.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)

	for _, register := range regs {
		if err := register(v1, prefix); err != nil {
			return err
		}
	}

	logger.GetAppLogger().Info("Маршруты API зарегистрированы")
	return nil
}
