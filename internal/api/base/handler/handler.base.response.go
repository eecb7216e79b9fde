package basehdl

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"ladle_passport/internal/common"
	"ladle_passport/internal/logger"
)

// ResponseEnvelope — единый формат ответа API.
type ResponseEnvelope struct {
	Code    interface{} `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
	Status  string      `json:"status"`
}

// JSONResponse отправляет JSON-ответ с заданным статусом.
func JSONResponse(c fiber.Ctx, status int, body interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(status).JSON(body)
}

// SuccessResponse отправляет успешный ответ в едином формате.
func SuccessResponse(c fiber.Ctx, status int, message string, data interface{}) error {
	if message == "" {
		message = common.MsgSuccess
	}
	return JSONResponse(c, status, ResponseEnvelope{
		Code:    status,
		Message: message,
		Data:    data,
		Status:  "success",
	})
}

// ErrorResponse отправляет ответ с ошибкой в едином формате.
// Клиенту уходят только ошибки валидации с подробностями по полям;
// внутренние подробности (драйвер БД, движок рендеринга) остаются
// в логе сервера.
func ErrorResponse(c fiber.Ctx, err error) error {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		details := appErr.Details
		if appErr.Code.Category != common.ErrCodeValidationInput.Category {
			if details != nil {
				logger.WithRequest(c).WithFields(map[string]interface{}{
					"errorCode": appErr.Code.Code,
					"details":   details,
				}).Warn("Подробности ошибки скрыты от клиента")
			}
			details = nil
		}
		return JSONResponse(c, appErr.StatusCode, ResponseEnvelope{
			Code:    appErr.Code.Code,
			Message: appErr.Message,
			Details: details,
			Status:  "error",
		})
	}

	return JSONResponse(c, common.StatusInternalServerError, ResponseEnvelope{
		Code:    common.ErrCodeInternalServer.Code,
		Message: common.MsgInternalError,
		Status:  "error",
	})
}

// HandleResponse выбирает формат ответа по наличию ошибки.
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return ErrorResponse(c, err)
	}
	return SuccessResponse(c, common.StatusOK, common.MsgSuccess, data)
}

// HandleCreatedResponse — ответ на успешное создание ресурса.
func HandleCreatedResponse(c fiber.Ctx, message string, data interface{}, err error) error {
	if err != nil {
		return ErrorResponse(c, err)
	}
	if message == "" {
		message = common.MsgCreated
	}
	return SuccessResponse(c, common.StatusCreated, message, data)
}
