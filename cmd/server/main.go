package main

import (
	"os"

	"ladle_passport/internal/database"
	"ladle_passport/internal/global"
	"ladle_passport/internal/logger"
)

func main() {
	// 1. Логирование — до всего остального
	if err := logger.Init(logger.DefaultConfig()); err != nil {
		os.Stderr.WriteString("Не удалось инициализировать логирование: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.GetAppLogger()

	// 2. Глобальное состояние: конфигурация, валидатор, MongoDB
	if err := InitGlobal(); err != nil {
		log.WithError(err).Fatal("Инициализация приложения не удалась")
	}
	defer func() {
		if global.MongoDB_Session != nil {
			_ = database.CloseInstance(global.MongoDB_Session)
		}
	}()

	// 3. Реестр коллекций и индексы
	if err := InitRegistry(); err != nil {
		log.WithError(err).Fatal("Инициализация коллекций не удалась")
	}

	// 4. Наполнение справочников
	if global.MongoDB_ServerConfig.SeedData {
		if err := InitDefaultData(); err != nil {
			log.WithError(err).Fatal("Наполнение справочников не удалось")
		}
	}

	// 5. HTTP-сервер
	app, err := InitFiberApp()
	if err != nil {
		log.WithError(err).Fatal("Инициализация HTTP-сервера не удалась")
	}

	address := global.MongoDB_ServerConfig.Address
	log.Infof("Сервер запускается на %s", address)
	if err := app.Listen(address); err != nil {
		log.WithError(err).Fatal("Сервер завершился с ошибкой")
	}
}
