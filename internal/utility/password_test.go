package utility

import (
	"errors"
	"testing"

	"ladle_passport/internal/common"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Sup3r-Passw0rd")
	if err != nil {
		t.Fatalf("хэширование не удалось: %v", err)
	}
	if hash == "Sup3r-Passw0rd" {
		t.Fatal("хэш не должен совпадать с паролем")
	}

	if err := ComparePassword(hash, "Sup3r-Passw0rd"); err != nil {
		t.Errorf("верный пароль должен проходить проверку: %v", err)
	}

	err = ComparePassword(hash, "wrong-password")
	if err == nil {
		t.Fatal("неверный пароль должен отклоняться")
	}
	if !errors.Is(err, common.ErrInvalidCredentials) {
		t.Errorf("ожидалась ошибка учётных данных, получено %v", err)
	}
}
