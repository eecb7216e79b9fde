// Package authmodels — модели модуля аутентификации.
package authmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Роли пользователей.
const (
	RoleUser     = "USER"
	RoleReporter = "REPORTER"
)

// User представляет пользователя системы.
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email" index:"unique;sparse"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	Token     string             `json:"-" bson:"token,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
