// Package authsvc — бизнес-логика модуля аутентификации.
package authsvc

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ladle_passport/internal/api/auth/dto"
	"ladle_passport/internal/api/auth/models"
	basesvc "ladle_passport/internal/api/base/service"
	"ladle_passport/internal/common"
	"ladle_passport/internal/global"
	"ladle_passport/internal/utility"
)

// UserService — сервис работы с пользователями.
type UserService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewUserService создаёт новый UserService.
func NewUserService() (*UserService, error) {
	collection, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exists {
		return nil, common.NewError(
			common.ErrCodeDatabaseConnection,
			"Коллекция пользователей не зарегистрирована",
			common.StatusInternalServerError,
			nil,
		)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.User](collection),
	}, nil
}

// Register создаёт нового пользователя с ролью USER.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (authmodels.User, error) {
	var zero authmodels.User

	exists, err := s.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(
			common.ErrCodeAuthCredentials,
			"Пользователь с таким email уже существует",
			common.StatusConflict,
			nil,
		)
	}

	hash, err := utility.HashPassword(input.Password)
	if err != nil {
		return zero, err
	}

	user := authmodels.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
		Role:     authmodels.RoleUser,
	}

	return s.InsertOne(ctx, user)
}

// Login проверяет учётные данные и выдаёт новый токен сессии.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (authmodels.User, string, error) {
	var zero authmodels.User

	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		// Не раскрываем, что именно неверно
		return zero, "", common.ErrInvalidCredentials
	}

	if err := utility.ComparePassword(user.Password, input.Password); err != nil {
		return zero, "", common.ErrInvalidCredentials
	}

	timeHex := strconv.FormatInt(time.Now().Unix(), 16)
	randomNumber := strconv.Itoa(rand.Intn(100))
	tokenMap, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex(), timeHex, randomNumber)
	if err != nil {
		return zero, "", err
	}
	token := tokenMap["token"]

	updated, err := s.UpdateById(ctx, user.ID, map[string]interface{}{"token": token})
	if err != nil {
		return zero, "", err
	}

	return updated, token, nil
}

// Logout сбрасывает токен сессии пользователя.
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, userID, map[string]interface{}{"token": ""})
	return err
}

// FindByToken ищет пользователя по активному токену сессии.
func (s *UserService) FindByToken(ctx context.Context, token string) (authmodels.User, error) {
	return s.FindOne(ctx, bson.M{"token": token}, nil)
}

// FindByID ищет пользователя по идентификатору.
func (s *UserService) FindByID(ctx context.Context, id primitive.ObjectID) (authmodels.User, error) {
	return s.FindOneById(ctx, id)
}
