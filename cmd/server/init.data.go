package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	optmodels "ladle_passport/internal/api/options/models"
	optsvc "ladle_passport/internal/api/options/service"
	"ladle_passport/internal/logger"
)

// Стартовые позиции справочников: стаканы-дозаторы (1),
// стопоры-моноблоки (2), торкрет-массы и смеси (3).
var defaultOptionItems = []optmodels.OptionItem{
	{ItemID: 32, Name: "Синореф", TypeID: optmodels.TypeDoserCup},
	{ItemID: 22, Name: "Пуянг", TypeID: optmodels.TypeDoserCup},

	{ItemID: 23, Name: "Long", TypeID: optmodels.TypeStopperMonoblock},
	{ItemID: 50, Name: "IFGL", TypeID: optmodels.TypeStopperMonoblock},
	{ItemID: 5, Name: "Пуянг", TypeID: optmodels.TypeStopperMonoblock},
	{ItemID: 43, Name: "плиты пуянг", TypeID: optmodels.TypeStopperMonoblock},

	{ItemID: 12, Name: "Dalgun", TypeID: optmodels.TypeMixture},
	{ItemID: 14, Name: "РиокастМаг1", TypeID: optmodels.TypeMixture},
	{ItemID: 52, Name: "Refro Gun-M90", TypeID: optmodels.TypeMixture},
	{ItemID: 8, Name: "TUN80", TypeID: optmodels.TypeMixture},
	{ItemID: 29, Name: "Маг-70", TypeID: optmodels.TypeMixture},
	{ItemID: 30, Name: "M10CC", TypeID: optmodels.TypeMixture},
}

// Номера паспортов промковшей участка.
var defaultLadlePassportNumbers = []string{
	"№ 9 - 55 Тн",
	"№ 12 - 27 Тн",
	"№ 2 - 55 Тн",
	"№ 5 - 55 Тн",
	"№ 7 - 55 Тн",
	"№ 12 - 50 Тн",
	"№ 14 - 50 Тн",
	"№ 5 - 27 Тн",
	"№ 13 - 27 Тн",
	"№ 16 - 27 Тн",
	"№ 20 - 27 Тн",
	"№ 21 - 27 Тн",
	"№ 25 - 27 Тн",
	"№ 27 - 27 Тн",
	"№ 29 - 27 Тн",
	"№ 3 - 55 Тн",
	"№ 6 - 55 Тн",
	"№ 3 - 27 Тн",
	"№ 6 - 27 Тн",
	"№ 28 - 27 Тн",
	"№ 1 - 55 Тн",
	"№ 10 - 27 Тн",
	"№ 17 - 27 Тн",
	"№ 26 - 27 Тн",
	"№ 4 - 55 Тн",
	"№ 8 - 55 Тн",
	"№ 3 - 50 Тн",
	"№ 6 - 50 Тн",
	"№ 10 - 50 Тн",
	"№ 2 - 27 Тн",
	"№ 7 - 27 Тн",
	"№ 8 - 27 Тн",
	"№ 9 - 27 Тн",
	"№ 15 - 27 Тн",
	"№ 22 - 27 Тн",
	"№ 13 - 50 Тн",
	"№ 15 - 50 Тн",
	"№ 1 - 27 Тн",
	"№ 4 - 27 Тн",
	"№ 11 - 27 Тн",
	"№ 19 - 27 Тн",
	"№ 1 - 50 Тн",
	"№ 8 - 50 Тн",
	"№ 14 - 27 Тн",
	"№ 23 - 27 Тн",
	"№ 9 - 50 Тн",
}

// InitDefaultData идемпотентно наполняет справочники стартовыми данными.
func InitDefaultData() error {
	log := logger.GetAppLogger()
	log.Info("Наполнение справочников начато")

	optionService, err := optsvc.NewOptionService()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, item := range defaultOptionItems {
		_, err := optionService.Items().Upsert(ctx, bson.M{"itemId": item.ItemID}, map[string]interface{}{
			"itemId": item.ItemID,
			"name":   item.Name,
			"typeId": item.TypeID,
		})
		if err != nil {
			return err
		}
	}
	log.Infof("Справочник опций: %d позиций", len(defaultOptionItems))

	for _, number := range defaultLadlePassportNumbers {
		_, err := optionService.Passports().Upsert(ctx, bson.M{"number": number}, map[string]interface{}{
			"number": number,
		})
		if err != nil {
			return err
		}
	}
	log.Infof("Справочник паспортов промковшей: %d номеров", len(defaultLadlePassportNumbers))

	log.Info("Наполнение справочников завершено")
	return nil
}
