// Package optrouter — маршруты справочников.
package optrouter

import (
	"github.com/gofiber/fiber/v3"

	authsvc "ladle_passport/internal/api/auth/service"
	opthdl "ladle_passport/internal/api/options/handler"
	optsvc "ladle_passport/internal/api/options/service"
	"ladle_passport/internal/api/middleware"
	"ladle_passport/internal/api/router"
)

// Register подключает маршруты справочников (все требуют аутентификации).
func Register(v1 fiber.Router, prefix router.RoutePrefix) error {
	optionService, err := optsvc.NewOptionService()
	if err != nil {
		return err
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return err
	}

	optionHandler := opthdl.NewOptionHandler(optionService)
	auth := middleware.AuthMiddleware(userService)

	router.RegisterRouteWithMiddleware(v1, fiber.MethodGet, "/options/mixtures", []fiber.Handler{auth}, optionHandler.HandleMixtures)
	router.RegisterRouteWithMiddleware(v1, fiber.MethodGet, "/options/doser-cup-types", []fiber.Handler{auth}, optionHandler.HandleDoserCupTypes)
	router.RegisterRouteWithMiddleware(v1, fiber.MethodGet, "/options/stopper-monoblock-types", []fiber.Handler{auth}, optionHandler.HandleStopperMonoblockTypes)
	router.RegisterRouteWithMiddleware(v1, fiber.MethodGet, "/options/ladle-passports", []fiber.Handler{auth}, optionHandler.HandleLadlePassports)

	return nil
}
