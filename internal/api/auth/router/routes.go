// Package authrouter — маршруты модуля аутентификации.
package authrouter

import (
	"github.com/gofiber/fiber/v3"

	authhdl "ladle_passport/internal/api/auth/handler"
	authsvc "ladle_passport/internal/api/auth/service"
	basehdl "ladle_passport/internal/api/base/handler"
	"ladle_passport/internal/api/middleware"
	"ladle_passport/internal/api/router"
)

// Register подключает маршруты аутентификации и служебные эндпоинты.
func Register(v1 fiber.Router, prefix router.RoutePrefix) error {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return err
	}
	userHandler := authhdl.NewUserHandler(userService)
	systemHandler := basehdl.NewSystemHandler()

	auth := middleware.AuthMiddleware(userService)

	// Публичные маршруты
	v1.Post("/auth/register", userHandler.HandleRegister)
	v1.Post("/auth/login", userHandler.HandleLogin)
	v1.Get("/system/health", systemHandler.HandleHealth)

	// Маршруты, требующие аутентификации
	router.RegisterRouteWithMiddleware(v1, fiber.MethodGet, "/auth/profile", []fiber.Handler{auth}, userHandler.HandleGetProfile)
	router.RegisterRouteWithMiddleware(v1, fiber.MethodPost, "/auth/logout", []fiber.Handler{auth}, userHandler.HandleLogout)

	return nil
}
