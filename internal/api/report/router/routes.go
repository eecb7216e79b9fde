// Package reportrouter — маршруты модуля отчётов.
package reportrouter

import (
	"github.com/gofiber/fiber/v3"

	authmodels "ladle_passport/internal/api/auth/models"
	authsvc "ladle_passport/internal/api/auth/service"
	"ladle_passport/internal/api/middleware"
	reporthdl "ladle_passport/internal/api/report/handler"
	reportsvc "ladle_passport/internal/api/report/service"
	"ladle_passport/internal/api/router"
	"ladle_passport/internal/global"
	"ladle_passport/internal/render"
)

// Register подключает маршруты отчётов.
// Чтение доступно всем аутентифицированным, создание и удаление —
// только роли REPORTER.
func Register(v1 fiber.Router, prefix router.RoutePrefix) error {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return err
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return err
	}

	engine := render.Default(render.Config{
		BrowserBin: global.MongoDB_ServerConfig.BrowserBin,
		DebugURL:   global.MongoDB_ServerConfig.BrowserDebugURL,
	})
	reportHandler := reporthdl.NewReportHandler(reportService, engine)

	auth := middleware.AuthMiddleware(userService)
	requireReporter := func(message string) fiber.Handler {
		return middleware.RequireRole(authmodels.RoleReporter, message)
	}

	router.RegisterRouteWithMiddleware(v1, fiber.MethodGet, "/reports", []fiber.Handler{auth}, reportHandler.HandleList)
	router.RegisterRouteWithMiddleware(v1, fiber.MethodPost, "/reports", []fiber.Handler{
		auth,
		requireReporter("Недостаточно прав для создания отчета. Только Репортеры могут добавлять отчеты."),
	}, reportHandler.HandleCreate)
	router.RegisterRouteWithMiddleware(v1, fiber.MethodGet, "/reports/:id", []fiber.Handler{auth}, reportHandler.HandleGetByID)
	router.RegisterRouteWithMiddleware(v1, fiber.MethodDelete, "/reports/:id", []fiber.Handler{
		auth,
		requireReporter("Доступ запрещен. Требуется роль REPORTER."),
	}, reportHandler.HandleDelete)
	router.RegisterRouteWithMiddleware(v1, fiber.MethodGet, "/reports/:id/pdf", []fiber.Handler{auth}, reportHandler.HandleExportPDF)

	return nil
}
