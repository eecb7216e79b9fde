package utility

import (
	"testing"
)

func TestCreateAndParseToken(t *testing.T) {
	secret := "test-secret"

	tokenMap, err := CreateToken(secret, "64f1a2b3c4d5e6f7a8b9c0d1", "18f3a2c", "42")
	if err != nil {
		t.Fatalf("создание токена не удалось: %v", err)
	}

	token, ok := tokenMap["token"]
	if !ok || token == "" {
		t.Fatal("результат должен содержать непустой токен")
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("разбор токена не удался: %v", err)
	}

	if claims.UserID != "64f1a2b3c4d5e6f7a8b9c0d1" {
		t.Errorf("userId в claims: ожидалось 64f1a2b3c4d5e6f7a8b9c0d1, получено %q", claims.UserID)
	}
	if claims.Time != "18f3a2c" {
		t.Errorf("time в claims: ожидалось 18f3a2c, получено %q", claims.Time)
	}
	if claims.RandomNumber != "42" {
		t.Errorf("randomNumber в claims: ожидалось 42, получено %q", claims.RandomNumber)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	tokenMap, err := CreateToken("secret-one", "user", "0", "0")
	if err != nil {
		t.Fatalf("создание токена не удалось: %v", err)
	}

	if _, err := ParseToken("secret-two", tokenMap["token"]); err == nil {
		t.Error("токен с чужим секретом должен отклоняться")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("secret", "not-a-jwt"); err == nil {
		t.Error("мусорная строка не должна разбираться как токен")
	}
}
