// Package opthdl — HTTP-обработчики справочников.
//
// Эндпоинты возвращают «голые» JSON-массивы имён, без общего конверта:
// фронтенд подставляет их напрямую в выпадающие списки формы.
package opthdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "ladle_passport/internal/api/base/handler"
	optmodels "ladle_passport/internal/api/options/models"
	optsvc "ladle_passport/internal/api/options/service"
	"ladle_passport/internal/common"
)

// OptionHandler обслуживает эндпоинты справочников.
type OptionHandler struct {
	optionService *optsvc.OptionService
}

// NewOptionHandler создаёт новый OptionHandler.
func NewOptionHandler(optionService *optsvc.OptionService) *OptionHandler {
	return &OptionHandler{optionService: optionService}
}

func (h *OptionHandler) listByType(c fiber.Ctx, typeID int) error {
	return basehdl.SafeHandler(c, func() error {
		names, err := h.optionService.ListNamesByType(c.Context(), typeID)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.JSONResponse(c, common.StatusOK, names)
	})
}

// HandleMixtures возвращает имена торкрет-масс и смесей.
// GET /api/v1/options/mixtures
func (h *OptionHandler) HandleMixtures(c fiber.Ctx) error {
	return h.listByType(c, optmodels.TypeMixture)
}

// HandleDoserCupTypes возвращает типы стаканов-дозаторов.
// GET /api/v1/options/doser-cup-types
func (h *OptionHandler) HandleDoserCupTypes(c fiber.Ctx) error {
	return h.listByType(c, optmodels.TypeDoserCup)
}

// HandleStopperMonoblockTypes возвращает типы стопоров-моноблоков.
// GET /api/v1/options/stopper-monoblock-types
func (h *OptionHandler) HandleStopperMonoblockTypes(c fiber.Ctx) error {
	return h.listByType(c, optmodels.TypeStopperMonoblock)
}

// HandleLadlePassports возвращает номера паспортов промковшей.
// GET /api/v1/options/ladle-passports
func (h *OptionHandler) HandleLadlePassports(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		numbers, err := h.optionService.ListPassportNumbers(c.Context())
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.JSONResponse(c, common.StatusOK, numbers)
	})
}
