// Package basehdl — базовый слой HTTP-обработчиков: разбор запросов,
// валидация и единый формат ответов.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"ladle_passport/internal/common"
	"ladle_passport/internal/global"
)

// ParseRequestBody разбирает тело запроса в структуру и валидирует её.
// Использует UseNumber, чтобы не терять точность числовых полей.
func ParseRequestBody(c fiber.Ctx, out interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()

	if err := decoder.Decode(out); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			"Не удалось разобрать тело запроса",
			common.StatusBadRequest,
			err.Error(),
		)
	}

	return validateInput(out)
}

// validateInput запускает глобальный валидатор и собирает детали по полям.
func validateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}

	if err := global.Validate.Struct(input); err != nil {
		details := map[string]string{"validation": err.Error()}
		return common.NewError(
			common.ErrCodeValidationInput,
			common.MsgValidationError,
			common.StatusBadRequest,
			details,
		)
	}

	return nil
}

// SafeHandler оборачивает обработчик, перехватывая паники.
func SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			err := common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				fmt.Sprintf("%v", r),
			)
			_ = HandleResponse(c, nil, err)
		}
	}()

	return handler()
}
