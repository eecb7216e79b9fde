package main

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"ladle_passport/config"
	"ladle_passport/internal/database"
	"ladle_passport/internal/global"
	"ladle_passport/internal/logger"
)

// InitGlobal инициализирует глобальное состояние приложения:
// конфигурацию, имена коллекций, валидатор и подключение к MongoDB.
func InitGlobal() error {
	if err := initConfig(); err != nil {
		return err
	}
	initColNames()
	global.InitValidator()
	return initDatabaseMongoDB()
}

func initConfig() error {
	cfg := config.NewConfig()
	if cfg == nil {
		return fmt.Errorf("не удалось загрузить конфигурацию")
	}
	global.MongoDB_ServerConfig = cfg
	return nil
}

func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Reports = "reports"
	global.MongoDB_ColNames.OptionItems = "option_items"
	global.MongoDB_ColNames.LadlePassportNumbers = "ladle_passport_numbers"
	global.MongoDB_ColNames.Counters = "counters"
}

func initDatabaseMongoDB() error {
	client, err := database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		return err
	}
	global.MongoDB_Session = client
	return nil
}

// InitRegistry регистрирует коллекции в глобальном реестре
// и создаёт индексы.
func InitRegistry() error {
	if global.MongoDB_Session == nil {
		return fmt.Errorf("сессия MongoDB не инициализирована")
	}

	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)

	colNames := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Reports,
		global.MongoDB_ColNames.OptionItems,
		global.MongoDB_ColNames.LadlePassportNumbers,
		global.MongoDB_ColNames.Counters,
	}
	for _, name := range colNames {
		global.RegistryCollections.Set(name, db.Collection(name))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexSpecs := map[string][]database.IndexSpec{
		global.MongoDB_ColNames.Users: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Unique: true, Sparse: true},
			{Keys: bson.D{{Key: "token", Value: 1}}, Sparse: true},
		},
		global.MongoDB_ColNames.Reports: {
			{Keys: bson.D{{Key: "reportId", Value: 1}}, Unique: true},
			{Keys: bson.D{{Key: "arrivalDate", Value: -1}}},
			{Keys: bson.D{{Key: "ladlePassportNumber", Value: 1}}},
		},
		global.MongoDB_ColNames.OptionItems: {
			{Keys: bson.D{{Key: "itemId", Value: 1}}, Unique: true},
			{Keys: bson.D{{Key: "typeId", Value: 1}, {Key: "name", Value: 1}}},
		},
		global.MongoDB_ColNames.LadlePassportNumbers: {
			{Keys: bson.D{{Key: "number", Value: 1}}, Unique: true},
		},
	}

	for name, specs := range indexSpecs {
		collection, exists := global.RegistryCollections.Get(name)
		if !exists {
			continue
		}
		database.EnsureIndexes(ctx, collection, specs)
	}

	logger.GetAppLogger().Infof("Зарегистрировано коллекций: %d", len(colNames))
	return nil
}
