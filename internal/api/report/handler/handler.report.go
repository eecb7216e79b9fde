// Package reporthdl — HTTP-обработчики модуля отчётов.
package reporthdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "ladle_passport/internal/api/base/handler"
	reportdto "ladle_passport/internal/api/report/dto"
	reportsvc "ladle_passport/internal/api/report/service"
	"ladle_passport/internal/common"
	"ladle_passport/internal/logger"
)

// ReportHandler обслуживает эндпоинты отчётов по промковшам.
type ReportHandler struct {
	reportService *reportsvc.ReportService
	renderer      reportsvc.PDFRenderer
}

// NewReportHandler создаёт новый ReportHandler.
func NewReportHandler(reportService *reportsvc.ReportService, renderer reportsvc.PDFRenderer) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		renderer:      renderer,
	}
}

// parseReportID разбирает целочисленный номер отчёта из параметра пути.
func parseReportID(c fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	reportID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, common.NewError(
			common.ErrCodeValidationInput,
			"Некорректный номер отчёта",
			common.StatusBadRequest,
			raw,
		)
	}
	return reportID, nil
}

// HandleCreate создаёт новый отчёт.
// POST /api/v1/reports
func (h *ReportHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input reportdto.ReportCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		var authorID primitive.ObjectID
		if userIDHex, ok := c.Locals("user_id").(string); ok {
			if id, err := primitive.ObjectIDFromHex(userIDHex); err == nil {
				authorID = id
			}
		}

		report, err := h.reportService.Create(c.Context(), &input, authorID)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Ошибка создания отчёта")
			return basehdl.ErrorResponse(c, err)
		}

		logger.WithRequest(c).WithField("report_id", report.ReportID).Info("Отчёт создан")
		return basehdl.HandleCreatedResponse(c, "Отчёт создан успешно", report, nil)
	})
}

// HandleList возвращает страницу отчётов с поиском, фильтром и сортировкой.
// GET /api/v1/reports
//
// Ответ намеренно без общего конверта: {reports, totalReports} —
// контракт таблицы списка на фронтенде.
func (h *ReportHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		params, err := reportsvc.ParseListParams(c)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		summaries, total, err := h.reportService.List(c.Context(), params)
		if err != nil {
			logger.WithRequest(c).WithError(err).Error("Ошибка выборки отчётов")
			return basehdl.ErrorResponse(c, err)
		}

		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"reports":      summaries,
			"totalReports": total,
		})
	})
}

// HandleGetByID возвращает отчёт по номеру.
// GET /api/v1/reports/:id
func (h *ReportHandler) HandleGetByID(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		reportID, err := parseReportID(c)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		report, err := h.reportService.FindByReportID(c.Context(), reportID)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		return basehdl.HandleResponse(c, report, nil)
	})
}

// HandleDelete удаляет отчёт по номеру.
// DELETE /api/v1/reports/:id
func (h *ReportHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		reportID, err := parseReportID(c)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		deleted, err := h.reportService.DeleteByReportID(c.Context(), reportID)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		logger.WithRequest(c).WithFields(map[string]interface{}{
			"report_id":             reportID,
			"ladle_passport_number": deleted.LadlePassportNumber,
		}).Info("Отчёт удалён")
		return basehdl.HandleResponse(c, fiber.Map{"id": reportID}, nil)
	})
}

// HandleExportPDF печатает паспорт промковша в PDF.
// GET /api/v1/reports/:id/pdf
func (h *ReportHandler) HandleExportPDF(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		reportID, err := parseReportID(c)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		data, filename, err := h.reportService.ExportPDF(c.Context(), reportID, h.renderer)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		c.Set("Content-Type", "application/pdf")
		c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		return c.Status(common.StatusOK).Send(data)
	})
}
