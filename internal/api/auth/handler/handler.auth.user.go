// Package authhdl — HTTP-обработчики модуля аутентификации.
package authhdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ladle_passport/internal/api/auth/dto"
	"ladle_passport/internal/api/auth/models"
	authsvc "ladle_passport/internal/api/auth/service"
	basehdl "ladle_passport/internal/api/base/handler"
	"ladle_passport/internal/common"
	"ladle_passport/internal/logger"
)

// UserHandler обслуживает эндпоинты пользователей.
type UserHandler struct {
	userService *authsvc.UserService
}

// NewUserHandler создаёт новый UserHandler.
func NewUserHandler(userService *authsvc.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// HandleRegister регистрирует нового пользователя.
// POST /api/v1/auth/register
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.UserRegisterInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		user, err := h.userService.Register(c.Context(), &input)
		if err != nil {
			logger.WithRequest(c).WithError(err).Warn("Регистрация пользователя не удалась")
			return basehdl.ErrorResponse(c, err)
		}

		logger.WithRequest(c).WithField("user_id", user.ID.Hex()).Info("Пользователь зарегистрирован")
		return basehdl.HandleCreatedResponse(c, "Пользователь создан успешно", user, nil)
	})
}

// HandleLogin выполняет вход и выдаёт токен.
// POST /api/v1/auth/login
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		user, token, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			logger.WithRequest(c).WithField("email", input.Email).Warn("Неудачная попытка входа")
			return basehdl.ErrorResponse(c, err)
		}

		logger.WithRequest(c).WithField("user_id", user.ID.Hex()).Info("Пользователь вошёл в систему")
		return basehdl.HandleResponse(c, fiber.Map{
			"token": token,
			"user":  user,
		}, nil)
	})
}

// HandleGetProfile возвращает профиль текущего пользователя.
// GET /api/v1/auth/profile
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		user, ok := c.Locals("user").(authmodels.User)
		if !ok {
			return basehdl.ErrorResponse(c, common.ErrTokenMissing)
		}
		return basehdl.HandleResponse(c, user, nil)
	})
}

// HandleLogout завершает сессию текущего пользователя.
// POST /api/v1/auth/logout
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		userIDHex, ok := c.Locals("user_id").(string)
		if !ok {
			return basehdl.ErrorResponse(c, common.ErrTokenMissing)
		}

		userID, err := primitive.ObjectIDFromHex(userIDHex)
		if err != nil {
			return basehdl.ErrorResponse(c, common.ErrTokenInvalid)
		}

		if err := h.userService.Logout(c.Context(), userID); err != nil {
			return basehdl.ErrorResponse(c, err)
		}

		logger.WithRequest(c).WithField("user_id", userIDHex).Info("Пользователь вышел из системы")
		return basehdl.HandleResponse(c, nil, nil)
	})
}
