package utility

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ToMap конвертирует структуру в map через BSON-маршалинг,
// сохраняя bson-теги полей.
func ToMap(data interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return result, nil
}
