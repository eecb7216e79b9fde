package utility

import (
	"ladle_passport/internal/common"

	"github.com/dgrijalva/jwt-go"
)

// JwtClaims содержит данные, зашитые в JWT-токен.
type JwtClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken создаёт подписанный JWT-токен (HS256) для пользователя.
func CreateToken(secret string, userID string, timeHex string, randomNumber string) (map[string]string, error) {
	claims := JwtClaims{
		UserID:       userID,
		Time:         timeHex,
		RandomNumber: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Не удалось создать токен", common.StatusInternalServerError, err)
	}

	return map[string]string{"token": tokenString}, nil
}

// ParseToken разбирает и проверяет подпись JWT-токена.
func ParseToken(secret string, tokenString string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
