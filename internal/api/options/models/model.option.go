// Package optmodels — модели справочников (смеси, стаканы-дозаторы,
// стопоры-моноблоки, паспорта промковшей).
package optmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Типы справочных позиций.
const (
	TypeDoserCup         = 1 // Стакан-дозатор
	TypeStopperMonoblock = 2 // Стопор-моноблок
	TypeMixture          = 3 // Торкрет-масса / смесь
)

// OptionItem — позиция справочника оборудования и материалов.
type OptionItem struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ItemID    int                `json:"itemId" bson:"itemId" index:"unique"`
	Name      string             `json:"name" bson:"name"`
	TypeID    int                `json:"typeId" bson:"typeId"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// LadlePassportNumber — номер паспорта промковша из справочника.
type LadlePassportNumber struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Number    string             `json:"number" bson:"number" index:"unique"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
