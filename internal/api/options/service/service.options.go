// Package optsvc — бизнес-логика справочников.
package optsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "ladle_passport/internal/api/base/service"
	optmodels "ladle_passport/internal/api/options/models"
	"ladle_passport/internal/common"
	"ladle_passport/internal/global"
)

// OptionService — сервис справочников.
type OptionService struct {
	items     *basesvc.BaseServiceMongoImpl[optmodels.OptionItem]
	passports *basesvc.BaseServiceMongoImpl[optmodels.LadlePassportNumber]
}

// NewOptionService создаёт новый OptionService.
func NewOptionService() (*OptionService, error) {
	itemsCol, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.OptionItems)
	if !exists {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Коллекция справочника не зарегистрирована",
			common.StatusInternalServerError,
			nil,
		)
	}
	passportsCol, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.LadlePassportNumbers)
	if !exists {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Коллекция паспортов промковшей не зарегистрирована",
			common.StatusInternalServerError,
			nil,
		)
	}

	return &OptionService{
		items:     basesvc.NewBaseServiceMongo[optmodels.OptionItem](itemsCol),
		passports: basesvc.NewBaseServiceMongo[optmodels.LadlePassportNumber](passportsCol),
	}, nil
}

// Items возвращает базовый сервис позиций справочника (для наполнения данными).
func (s *OptionService) Items() *basesvc.BaseServiceMongoImpl[optmodels.OptionItem] {
	return s.items
}

// Passports возвращает базовый сервис номеров паспортов (для наполнения данными).
func (s *OptionService) Passports() *basesvc.BaseServiceMongoImpl[optmodels.LadlePassportNumber] {
	return s.passports
}

// ListNamesByType возвращает отсортированные имена позиций заданного типа.
func (s *OptionService) ListNamesByType(ctx context.Context, typeID int) ([]string, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	items, err := s.items.Find(ctx, bson.M{"typeId": typeID}, opts)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names, nil
}

// ListPassportNumbers возвращает отсортированные номера паспортов промковшей.
func (s *OptionService) ListPassportNumbers(ctx context.Context) ([]string, error) {
	opts := options.Find().SetSort(bson.D{{Key: "number", Value: 1}})
	passports, err := s.passports.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	numbers := make([]string, 0, len(passports))
	for _, p := range passports {
		numbers = append(numbers, p.Number)
	}
	return numbers, nil
}
