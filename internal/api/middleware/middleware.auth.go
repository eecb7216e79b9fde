// Package middleware — промежуточные обработчики HTTP-запросов.
package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"

	authmodels "ladle_passport/internal/api/auth/models"
	basehdl "ladle_passport/internal/api/base/handler"
	"ladle_passport/internal/common"
	"ladle_passport/internal/global"
	"ladle_passport/internal/utility"
)

// UserFinder ищет пользователя по сохранённому токену.
// Реализуется сервисом пользователей.
type UserFinder interface {
	FindByToken(ctx context.Context, token string) (authmodels.User, error)
}

// AuthMiddleware проверяет Bearer-токен и кладёт пользователя в Locals.
func AuthMiddleware(users UserFinder) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return basehdl.ErrorResponse(c, common.ErrTokenMissing)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return basehdl.ErrorResponse(c, common.ErrTokenInvalid)
		}

		// Подпись проверяется до обращения к базе: подделанный токен
		// отклоняется без поиска пользователя
		if _, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, parts[1]); err != nil {
			return basehdl.ErrorResponse(c, common.ErrTokenInvalid)
		}

		user, err := users.FindByToken(c.Context(), parts[1])
		if err != nil {
			return basehdl.ErrorResponse(c, common.ErrTokenInvalid)
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		return c.Next()
	}
}

// RequireRole пропускает запрос только при совпадении роли пользователя.
func RequireRole(role string, message string) fiber.Handler {
	return func(c fiber.Ctx) error {
		userValue := c.Locals("user")
		user, ok := userValue.(authmodels.User)
		if !ok {
			return basehdl.ErrorResponse(c, common.ErrTokenMissing)
		}

		if user.Role != role {
			if message == "" {
				message = "Недостаточно прав для выполнения операции"
			}
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				message,
				common.StatusForbidden,
				nil,
			))
		}

		return c.Next()
	}
}
