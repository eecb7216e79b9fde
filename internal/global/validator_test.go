package global

import (
	"testing"
)

type passwordInput struct {
	Password string `validate:"strong_password"`
}

type nameInput struct {
	Name string `validate:"no_xss"`
}

func TestStrongPassword(t *testing.T) {
	InitValidator()

	valid := []string{"Abcdef12", "p@ssW0rd!", "Длинный1пароль"}
	for _, p := range valid {
		if err := Validate.Struct(passwordInput{Password: p}); err != nil {
			t.Errorf("пароль %q должен проходить проверку: %v", p, err)
		}
	}

	invalid := []string{"short1A", "alllowercase", "12345678", "ABCDEFGH"}
	for _, p := range invalid {
		if err := Validate.Struct(passwordInput{Password: p}); err == nil {
			t.Errorf("пароль %q должен отклоняться", p)
		}
	}
}

func TestNoXSS(t *testing.T) {
	InitValidator()

	if err := Validate.Struct(nameInput{Name: "Иванов Иван"}); err != nil {
		t.Errorf("обычное имя должно проходить проверку: %v", err)
	}

	dangerous := []string{"<script>alert(1)</script>", "javascript:void(0)", "x onerror=alert(1)"}
	for _, v := range dangerous {
		if err := Validate.Struct(nameInput{Name: v}); err == nil {
			t.Errorf("значение %q должно отклоняться", v)
		}
	}
}
