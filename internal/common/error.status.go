package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Успех
	StatusCreated   = 201 // Создано
	StatusNoContent = 204 // Успех без содержимого

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // Некорректный запрос
	StatusUnauthorized    = 401 // Не аутентифицирован
	StatusForbidden       = 403 // Нет прав доступа
	StatusNotFound        = 404 // Ресурс не найден
	StatusConflict        = 409 // Конфликт данных
	StatusTooManyRequests = 429 // Слишком много запросов

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Внутренняя ошибка сервера
	StatusServiceUnavailable  = 503 // Сервис недоступен
)

// Response Messages
const (
	// Success Messages
	MsgSuccess = "Операция выполнена успешно"
	MsgCreated = "Создано успешно"

	// Error Messages
	MsgBadRequest    = "Некорректный запрос"
	MsgUnauthorized  = "Требуется вход в систему"
	MsgForbidden     = "Нет прав доступа"
	MsgNotFound      = "Ресурс не найден"
	MsgInternalError = "Внутренняя ошибка сервера"

	// Token Messages
	MsgTokenMissing = "Отсутствует токен аутентификации"
	MsgTokenInvalid = "Недействительный токен"
	MsgTokenExpired = "Токен истёк"

	// Validation Messages
	MsgValidationError = "Некорректные данные"
	MsgDatabaseError   = "Ошибка взаимодействия с базой данных"
	MsgInvalidFormat   = "Некорректный формат данных"
)

// ErrorCode определяет детальный код ошибки.
type ErrorCode struct {
	Code        string // Код ошибки (например, AUTH_001)
	Category    string // Категория (например, Authentication)
	SubCategory string // Подкатегория (например, Token)
	Description string // Описание
}

// Коды ошибок по иерархии категорий.
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Внутренняя системная ошибка",
	}

	ErrCodeRateLimit = ErrorCode{
		Code:        "SYS_002",
		Category:    "System",
		SubCategory: "RateLimit",
		Description: "Превышен лимит запросов",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "Общая ошибка аутентификации",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Ошибка, связанная с токеном",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Ошибка учётных данных",
	}

	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Role",
		Description: "Ошибка, связанная с ролью пользователя",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Ошибка входных данных",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Ошибка формата данных",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Общая ошибка базы данных",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Ошибка подключения к базе данных",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Ошибка запроса к базе данных",
	}

	// Render Errors (RENDER_xxx)
	ErrCodeRender = ErrorCode{
		Code:        "RENDER_001",
		Category:    "Render",
		SubCategory: "PDF",
		Description: "Ошибка генерации PDF-документа",
	}
)

// Error определяет структуру детальной ошибки.
type Error struct {
	Code       ErrorCode // Код ошибки
	Message    string    // Сообщение
	StatusCode int       // HTTP status code
	Details    any       // Дополнительные сведения
}

// Error возвращает сообщение ошибки.
func (e *Error) Error() string {
	return e.Message
}

// Is проверяет совпадение с целевой ошибкой (поддержка errors.Is).
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError создаёт новую ошибку с полной информацией.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Предопределённые ошибки.
var (
	// Authentication Errors
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Неверный логин или пароль", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, "Сессия истекла", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)
	ErrForbiddenRole      = NewError(ErrCodeAuthRole, "Недостаточно прав для выполнения операции", StatusForbidden, nil)
	ErrUserNotFound       = NewError(ErrCodeAuthCredentials, "Пользователь не найден", StatusNotFound, nil)

	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Некорректные входные данные", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)

	// Database Errors
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, "Данные не найдены", StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "Данные уже существуют", StatusConflict, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "Ошибка подключения к базе данных", StatusServiceUnavailable, nil)

	// Render Errors
	ErrRender = NewError(ErrCodeRender, "Не удалось сформировать PDF-документ", StatusInternalServerError, nil)
)

// ConvertMongoError переводит ошибки драйвера MongoDB в ошибки приложения.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// ErrNotFound не конвертируется
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return ErrConnection
	}

	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		return NewError(ErrCodeDatabaseQuery, MsgDatabaseError, StatusInternalServerError, err)
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err)
}
