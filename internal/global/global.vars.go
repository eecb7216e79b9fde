package global

import (
	"ladle_passport/config"
	"ladle_passport/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName содержит имена коллекций в MongoDB.
type MongoDB_CollectionName struct {
	Users                string // Пользователи
	Reports              string // Отчёты (паспорта промковшей)
	OptionItems          string // Справочник опций (смеси, стаканы, стопоры)
	LadlePassportNumbers string // Справочник номеров промковшей
	Counters             string // Счётчики для целочисленных идентификаторов
}

// Глобальные переменные приложения.
var Validate *validator.Validate                                                // Валидатор входных данных
var MongoDB_Session *mongo.Client                                               // Сессия подключения к MongoDB
var MongoDB_ServerConfig *config.Configuration                                  // Конфигурация сервера
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)      // Имена коллекций

// RegistryCollections — реестр коллекций, заполняется при старте.
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
