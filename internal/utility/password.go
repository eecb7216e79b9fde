package utility

import (
	"ladle_passport/internal/common"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword хэширует пароль bcrypt (cost 10).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Не удалось захэшировать пароль", common.StatusInternalServerError, err)
	}
	return string(hash), nil
}

// ComparePassword сверяет пароль с bcrypt-хэшем.
func ComparePassword(hash string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}
