package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration содержит статическую конфигурацию, необходимую для запуска приложения.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Адрес сервера
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Секрет для подписи JWT
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URI подключения к MongoDB
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Имя базы данных
	TimeZone              string `env:"TIMEZONE" envDefault:""`                    // Часовой пояс для дат в отчётах (пусто = локальный)
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Разрешённые origins (через запятую, * = все)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Разрешить передачу credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Максимум запросов в окне (0 = отключено)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Длительность окна (секунды)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Включить/выключить rate limiting
	// Конфигурация headless-браузера для генерации PDF
	BrowserBin      string `env:"BROWSER_BIN"`                 // Путь к бинарнику Chrome/Chromium (пусто = автозагрузка go-rod)
	BrowserDebugURL string `env:"BROWSER_DEBUG_URL"`           // WebSocket URL уже запущенного браузера (пусто = запуск нового)
	SeedData        bool   `env:"SEED_DATA" envDefault:"true"` // Засеять справочники при старте
}

// getEnvPath возвращает путь к env-файлу в зависимости от окружения.
func getEnvPath() string {
	// По умолчанию используется окружение development
	envName := os.Getenv("GO_ENV")
	if envName == "" {
		envName = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// fmt.Printf, так как логгер ещё может быть не инициализирован
		fmt.Printf("Не удалось получить текущую директорию: %v\n", err)
		return ""
	}

	// Ищем директорию config/env, поднимаясь вверх по дереву
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", envName))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig читает конфигурацию из env-файла и переменных окружения.
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("Директория config/env не найдена\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Не удалось загрузить env-файл %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Ошибка разбора конфигурации: %+v\n", err)
		return nil
	}

	return &cfg
}
