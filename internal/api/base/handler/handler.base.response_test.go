package basehdl

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"

	"ladle_passport/internal/common"
)

// respondWith прогоняет ошибку через реальный маршрут Fiber
// и возвращает статус и тело ответа.
func respondWith(t *testing.T, err error) (int, string) {
	t.Helper()

	app := fiber.New()
	app.Get("/fail", func(c fiber.Ctx) error {
		return ErrorResponse(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest("GET", "/fail", nil))
	if reqErr != nil {
		t.Fatalf("запрос не выполнился: %v", reqErr)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		t.Fatalf("тело ответа не прочиталось: %v", readErr)
	}

	return resp.StatusCode, string(body)
}

func TestErrorResponseHidesDatabaseInternals(t *testing.T) {
	driverErr := mongo.CommandError{
		Name:    "HostUnreachable",
		Message: "внутренняя-топология-кластера",
	}

	status, body := respondWith(t, common.ConvertMongoError(driverErr))

	if status != common.StatusInternalServerError {
		t.Errorf("ожидался статус 500, получен %d", status)
	}
	if !strings.Contains(body, common.ErrCodeDatabaseQuery.Code) {
		t.Errorf("в ответе должен быть код категории ошибки: %s", body)
	}
	if strings.Contains(body, "внутренняя-топология-кластера") {
		t.Errorf("подробности драйвера БД не должны уходить клиенту: %s", body)
	}
	if strings.Contains(body, "HostUnreachable") {
		t.Errorf("имя ошибки драйвера не должно уходить клиенту: %s", body)
	}
}

func TestErrorResponseHidesRenderInternals(t *testing.T) {
	renderErr := common.NewError(
		common.ErrCodeRender,
		"Не удалось сформировать PDF-документ",
		common.StatusInternalServerError,
		"devtools websocket: connection refused 127.0.0.1:9222",
	)

	_, body := respondWith(t, renderErr)

	if strings.Contains(body, "9222") || strings.Contains(body, "websocket") {
		t.Errorf("подробности движка рендеринга не должны уходить клиенту: %s", body)
	}
	if !strings.Contains(body, "Не удалось сформировать PDF-документ") {
		t.Errorf("клиенту должно уходить категоризированное сообщение: %s", body)
	}
}

func TestErrorResponseKeepsValidationDetails(t *testing.T) {
	valErr := common.NewError(
		common.ErrCodeValidationInput,
		common.MsgValidationError,
		common.StatusBadRequest,
		map[string]string{"validation": "Email: обязательное поле"},
	)

	status, body := respondWith(t, valErr)

	if status != common.StatusBadRequest {
		t.Errorf("ожидался статус 400, получен %d", status)
	}
	if !strings.Contains(body, "обязательное поле") {
		t.Errorf("подробности валидации должны уходить клиенту: %s", body)
	}
}

func TestErrorResponseUnknownError(t *testing.T) {
	status, body := respondWith(t, io.ErrUnexpectedEOF)

	if status != common.StatusInternalServerError {
		t.Errorf("ожидался статус 500, получен %d", status)
	}
	if strings.Contains(body, "unexpected EOF") {
		t.Errorf("текст неизвестной ошибки не должен уходить клиенту: %s", body)
	}
	if !strings.Contains(body, common.MsgInternalError) {
		t.Errorf("клиенту должно уходить общее сообщение: %s", body)
	}
}
