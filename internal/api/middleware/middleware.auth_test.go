package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ladle_passport/config"
	authmodels "ladle_passport/internal/api/auth/models"
	"ladle_passport/internal/global"
	"ladle_passport/internal/utility"
)

// stubUserFinder подменяет сервис пользователей в тестах middleware.
type stubUserFinder struct {
	user     authmodels.User
	err      error
	called   bool
	gotToken string
}

func (s *stubUserFinder) FindByToken(_ context.Context, token string) (authmodels.User, error) {
	s.called = true
	s.gotToken = token
	if s.err != nil {
		return authmodels.User{}, s.err
	}
	return s.user, nil
}

func authTestApp(finder *stubUserFinder) *fiber.App {
	app := fiber.New()
	app.Get("/protected", func(c fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		return c.SendString(userID)
	}, AuthMiddleware(finder))
	return app
}

func mintToken(t *testing.T, secret string, userID string) string {
	t.Helper()
	tokenMap, err := utility.CreateToken(secret, userID, "18f2a9c4", "42")
	if err != nil {
		t.Fatalf("Не удалось создать токен: %v", err)
	}
	return tokenMap["token"]
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	global.MongoDB_ServerConfig = &config.Configuration{JwtSecret: "test-secret"}

	userID := primitive.NewObjectID()
	finder := &stubUserFinder{user: authmodels.User{ID: userID, Role: authmodels.RoleUser}}
	app := authTestApp(finder)

	token := mintToken(t, "test-secret", userID.Hex())
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Ошибка выполнения запроса: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Ожидался статус 200, получен %d", resp.StatusCode)
	}
	if !finder.called {
		t.Error("Ожидался поиск пользователя по токену")
	}
	if finder.gotToken != token {
		t.Errorf("В поиск передан неверный токен: %q", finder.gotToken)
	}
}

func TestAuthMiddlewareForgedToken(t *testing.T) {
	global.MongoDB_ServerConfig = &config.Configuration{JwtSecret: "test-secret"}

	finder := &stubUserFinder{}
	app := authTestApp(finder)

	// Токен подписан чужим секретом: подпись не проходит проверку
	forged := mintToken(t, "other-secret", primitive.NewObjectID().Hex())
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forged)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Ошибка выполнения запроса: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("Ожидался статус 401, получен %d", resp.StatusCode)
	}
	if finder.called {
		t.Error("Поддельный токен не должен доходить до поиска пользователя")
	}
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	global.MongoDB_ServerConfig = &config.Configuration{JwtSecret: "test-secret"}

	finder := &stubUserFinder{}
	app := authTestApp(finder)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer не-jwt-вовсе")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Ошибка выполнения запроса: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("Ожидался статус 401, получен %d", resp.StatusCode)
	}
	if finder.called {
		t.Error("Некорректный токен не должен доходить до поиска пользователя")
	}
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	global.MongoDB_ServerConfig = &config.Configuration{JwtSecret: "test-secret"}

	finder := &stubUserFinder{}
	app := authTestApp(finder)

	req := httptest.NewRequest("GET", "/protected", nil)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Ошибка выполнения запроса: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("Ожидался статус 401, получен %d", resp.StatusCode)
	}
	if finder.called {
		t.Error("Без заголовка Authorization поиск пользователя не выполняется")
	}
}
