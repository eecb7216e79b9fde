package reportsvc

import (
	"regexp"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"ladle_passport/internal/common"
)

// Значения по умолчанию для параметров списка.
const (
	DefaultLimit     = 5
	DefaultOffset    = 0
	DefaultFilter    = "all"
	DefaultSortBy    = "arrivalDate"
	DefaultSortOrder = "desc"
)

// ListParams — параметры выборки списка отчётов.
type ListParams struct {
	Limit     int64
	Offset    int64
	Search    string
	Filter    string
	SortBy    string
	SortOrder string
}

// Поля, по которым разрешена сортировка (колонки списка).
var sortableFields = map[string]bool{
	"reportId":                true,
	"ladlePassportNumber":     true,
	"arrivalDate":             true,
	"pouringHandoverDateTime": true,
	"operatorName":            true,
	"meltNumber":              true,
	"meltUnrs":                true,
	"meltStartDateTime":       true,
	"meltLadleStability":      true,
}

// ParseListParams разбирает query-параметры списка отчётов.
// Некорректные limit/offset отклоняются, неизвестные filter/sortBy/sortOrder
// заменяются значениями по умолчанию.
func ParseListParams(c fiber.Ctx) (ListParams, error) {
	params := ListParams{
		Limit:     DefaultLimit,
		Offset:    DefaultOffset,
		Search:    c.Query("search", ""),
		Filter:    c.Query("filter", DefaultFilter),
		SortBy:    c.Query("sortBy", DefaultSortBy),
		SortOrder: c.Query("sortOrder", DefaultSortOrder),
	}

	if raw := c.Query("limit", ""); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		// limit=0 для драйвера MongoDB означает «без ограничения»,
		// поэтому нулевой размер страницы тоже отклоняется
		if err != nil || limit < 1 {
			return params, common.NewError(
				common.ErrCodeValidationInput,
				"Некорректное значение параметра limit",
				common.StatusBadRequest,
				raw,
			)
		}
		params.Limit = limit
	}

	if raw := c.Query("offset", ""); raw != "" {
		offset, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || offset < 0 {
			return params, common.NewError(
				common.ErrCodeValidationInput,
				"Некорректное значение параметра offset",
				common.StatusBadRequest,
				raw,
			)
		}
		params.Offset = offset
	}

	switch params.Filter {
	case "all", "today", "week", "month":
	default:
		params.Filter = DefaultFilter
	}

	if !sortableFields[params.SortBy] {
		params.SortBy = DefaultSortBy
	}

	if params.SortOrder != "asc" && params.SortOrder != "desc" {
		params.SortOrder = DefaultSortOrder
	}

	return params, nil
}

// sortValue переводит порядок сортировки в значение MongoDB.
func (p ListParams) sortValue() int {
	if p.SortOrder == "asc" {
		return 1
	}
	return -1
}

// BuildFilter строит фильтр MongoDB из параметров списка.
// Условия поиска и временного окна объединяются через $and.
func BuildFilter(params ListParams, now time.Time) bson.M {
	conditions := []bson.M{}

	if params.Search != "" {
		conditions = append(conditions, bson.M{"$or": buildSearchPredicates(params.Search)})
	}

	if params.Filter != "" && params.Filter != "all" {
		start, end, ok := windowFor(params.Filter, now)
		if ok {
			conditions = append(conditions, bson.M{
				"arrivalDate": bson.M{
					"$gte": start,
					"$lt":  end,
				},
			})
		}
	}

	switch len(conditions) {
	case 0:
		return bson.M{}
	case 1:
		return conditions[0]
	default:
		return bson.M{"$and": conditions}
	}
}

// buildSearchPredicates строит условия поиска: вхождение в номер паспорта
// без учёта регистра, плюс равенство номеру плавки, если строка — число.
func buildSearchPredicates(search string) []bson.M {
	predicates := []bson.M{
		{"ladlePassportNumber": bson.M{
			"$regex":   regexp.QuoteMeta(search),
			"$options": "i",
		}},
	}

	if n, err := strconv.Atoi(search); err == nil {
		predicates = append(predicates, bson.M{"meltNumber": n})
	}

	return predicates
}

// windowFor возвращает полуоткрытое окно [start, end) для фильтра по дате
// прибытия. Неделя начинается с понедельника.
func windowFor(filter string, now time.Time) (time.Time, time.Time, bool) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch filter {
	case "today":
		return midnight, midnight.AddDate(0, 0, 1), true
	case "week":
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		start := midnight.AddDate(0, 0, -daysSinceMonday)
		return start, start.AddDate(0, 0, 7), true
	case "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}
