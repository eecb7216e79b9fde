package reportsvc

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"ladle_passport/internal/common"
)

// parseParamsVia прогоняет query-строку через реальный маршрут Fiber
// и возвращает результат разбора.
func parseParamsVia(t *testing.T, query string) (ListParams, error) {
	t.Helper()

	var params ListParams
	var parseErr error

	app := fiber.New()
	app.Get("/reports", func(c fiber.Ctx) error {
		params, parseErr = ParseListParams(c)
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/reports"+query, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("запрос не выполнился: %v", err)
	}
	defer resp.Body.Close()

	return params, parseErr
}

func TestParseListParamsDefaults(t *testing.T) {
	params, err := parseParamsVia(t, "")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if params.Limit != DefaultLimit {
		t.Errorf("limit по умолчанию: ожидалось %d, получено %d", DefaultLimit, params.Limit)
	}
	if params.Offset != DefaultOffset {
		t.Errorf("offset по умолчанию: ожидалось %d, получено %d", DefaultOffset, params.Offset)
	}
	if params.Filter != "all" {
		t.Errorf("filter по умолчанию: ожидалось all, получено %q", params.Filter)
	}
	if params.SortBy != "arrivalDate" {
		t.Errorf("sortBy по умолчанию: ожидалось arrivalDate, получено %q", params.SortBy)
	}
	if params.SortOrder != "desc" {
		t.Errorf("sortOrder по умолчанию: ожидалось desc, получено %q", params.SortOrder)
	}
}

func TestParseListParamsInvalidLimit(t *testing.T) {
	// limit=0 драйвер трактует как «без ограничения» — страница
	// нулевого размера не должна превращаться во всю коллекцию
	cases := []string{"?limit=-1", "?limit=0", "?limit=abc", "?offset=-5", "?offset=xyz"}
	for _, query := range cases {
		_, err := parseParamsVia(t, query)
		if err == nil {
			t.Errorf("%s: ожидалась ошибка валидации, её нет", query)
			continue
		}
		var appErr *common.Error
		if !errors.As(err, &appErr) {
			t.Errorf("%s: ожидалась ошибка приложения, получено %T", query, err)
			continue
		}
		if appErr.StatusCode != common.StatusBadRequest {
			t.Errorf("%s: ожидался статус 400, получен %d", query, appErr.StatusCode)
		}
	}
}

func TestParseListParamsUnknownValuesFallBack(t *testing.T) {
	params, err := parseParamsVia(t, "?filter=yesterday&sortBy=password&sortOrder=sideways")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if params.Filter != "all" {
		t.Errorf("неизвестный filter должен заменяться на all, получено %q", params.Filter)
	}
	if params.SortBy != "arrivalDate" {
		t.Errorf("неразрешённое поле сортировки должно заменяться на arrivalDate, получено %q", params.SortBy)
	}
	if params.SortOrder != "desc" {
		t.Errorf("неизвестный sortOrder должен заменяться на desc, получено %q", params.SortOrder)
	}
}

func TestParseListParamsAcceptsSummaryColumns(t *testing.T) {
	params, err := parseParamsVia(t, "?sortBy=meltNumber&sortOrder=asc&limit=20&offset=40")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if params.SortBy != "meltNumber" {
		t.Errorf("ожидалась сортировка по meltNumber, получено %q", params.SortBy)
	}
	if params.sortValue() != 1 {
		t.Errorf("asc должен давать 1, получено %d", params.sortValue())
	}
	if params.Limit != 20 || params.Offset != 40 {
		t.Errorf("ожидались limit=20 offset=40, получено limit=%d offset=%d", params.Limit, params.Offset)
	}
}

func TestBuildSearchPredicatesText(t *testing.T) {
	predicates := buildSearchPredicates("№ 9 - 55")

	if len(predicates) != 1 {
		t.Fatalf("для нечисловой строки ожидалось 1 условие, получено %d", len(predicates))
	}

	regex := predicates[0]["ladlePassportNumber"].(bson.M)
	if regex["$options"] != "i" {
		t.Errorf("поиск должен быть без учёта регистра")
	}
	// Спецсимволы строки поиска не должны работать как regex
	if regex["$regex"] == "№ 9 - 55" {
		// QuoteMeta экранирует пробельный контекст не всегда, но дефис и прочее — да
		t.Logf("строка без спецсимволов regex осталась как есть: %v", regex["$regex"])
	}
}

func TestBuildSearchPredicatesQuotesRegexMeta(t *testing.T) {
	predicates := buildSearchPredicates("55(Тн)")
	regex := predicates[0]["ladlePassportNumber"].(bson.M)
	want := `55\(Тн\)`
	if regex["$regex"] != want {
		t.Errorf("спецсимволы должны экранироваться: ожидалось %q, получено %q", want, regex["$regex"])
	}
}

func TestBuildSearchPredicatesNumeric(t *testing.T) {
	predicates := buildSearchPredicates("1234")

	if len(predicates) != 2 {
		t.Fatalf("для числовой строки ожидалось 2 условия, получено %d", len(predicates))
	}
	if predicates[1]["meltNumber"] != 1234 {
		t.Errorf("числовой поиск должен сравнивать номер плавки: %v", predicates[1])
	}
}

func TestBuildFilterEmpty(t *testing.T) {
	filter := BuildFilter(ListParams{Filter: "all"}, time.Now())
	if len(filter) != 0 {
		t.Errorf("без поиска и окна фильтр должен быть пустым, получено %v", filter)
	}
}

func TestBuildFilterSearchAndWindow(t *testing.T) {
	now := time.Date(2026, time.August, 12, 15, 30, 0, 0, time.UTC)
	filter := BuildFilter(ListParams{Search: "27", Filter: "today"}, now)

	and, ok := filter["$and"].([]bson.M)
	if !ok {
		t.Fatalf("поиск вместе с окном должны объединяться через $and: %v", filter)
	}
	if len(and) != 2 {
		t.Fatalf("ожидалось 2 условия, получено %d", len(and))
	}
	if _, ok := and[0]["$or"]; !ok {
		t.Errorf("первое условие должно быть поиском ($or): %v", and[0])
	}
	if _, ok := and[1]["arrivalDate"]; !ok {
		t.Errorf("второе условие должно быть окном по arrivalDate: %v", and[1])
	}
}

func TestWindowForToday(t *testing.T) {
	now := time.Date(2026, time.August, 12, 15, 30, 45, 0, time.UTC)
	start, end, ok := windowFor("today", now)
	if !ok {
		t.Fatal("окно для today должно существовать")
	}

	wantStart := time.Date(2026, time.August, 12, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("начало дня: ожидалось %v, получено %v", wantStart, start)
	}
	if !end.Equal(wantStart.AddDate(0, 0, 1)) {
		t.Errorf("конец окна должен быть следующей полночью, получено %v", end)
	}
}

func TestWindowForWeekStartsMonday(t *testing.T) {
	// Среда 12.08.2026 — неделя должна начинаться в понедельник 10.08
	now := time.Date(2026, time.August, 12, 10, 0, 0, 0, time.UTC)
	start, end, ok := windowFor("week", now)
	if !ok {
		t.Fatal("окно для week должно существовать")
	}

	wantStart := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("начало недели: ожидался понедельник %v, получено %v", wantStart, start)
	}
	if !end.Equal(wantStart.AddDate(0, 0, 7)) {
		t.Errorf("окно недели должно длиться 7 дней, получено %v", end)
	}
}

func TestWindowForWeekOnSunday(t *testing.T) {
	// Воскресенье 16.08.2026 относится к неделе с понедельника 10.08
	now := time.Date(2026, time.August, 16, 23, 0, 0, 0, time.UTC)
	start, _, ok := windowFor("week", now)
	if !ok {
		t.Fatal("окно для week должно существовать")
	}

	wantStart := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("воскресенье должно попадать в неделю с %v, получено %v", wantStart, start)
	}
}

func TestWindowForMonth(t *testing.T) {
	now := time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC)
	start, end, ok := windowFor("month", now)
	if !ok {
		t.Fatal("окно для month должно существовать")
	}

	wantStart := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("начало месяца: ожидалось %v, получено %v", wantStart, start)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("конец окна должен переходить через границу года, получено %v", end)
	}
}

func TestWindowForUnknownFilter(t *testing.T) {
	_, _, ok := windowFor("quarter", time.Now())
	if ok {
		t.Error("для неизвестного фильтра окна быть не должно")
	}
}
