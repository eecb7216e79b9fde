// Package authdto — входные структуры модуля аутентификации.
package authdto

// UserRegisterInput — данные регистрации пользователя.
type UserRegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
}

// UserLoginInput — данные входа в систему.
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
