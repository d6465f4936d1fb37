package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"reminder-app/reminder/broker"
	"reminder-app/reminder/database"
	"reminder-app/reminder/models"
)

type UserServiceInterface interface {
	CreateUser(db *database.Database, name string) (models.User, error)
	GetUserById(db *database.Database, id uint) (models.User, error)
	GetUserByName(db *database.Database, name string) (models.User, error)
	GetUsers(db *database.Database) ([]models.User, error)
}

type UserService struct {
	producer broker.Producer
	logger   zerolog.Logger
}

func NewUserService(producer broker.Producer, logger zerolog.Logger) *UserService {
	return &UserService{producer: producer, logger: logger}
}

// CreateUser adds a user. Names are trimmed and must be unique ignoring case.
func (s *UserService) CreateUser(db *database.Database, name string) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > models.MaxUserNameLength {
		return models.User{}, ErrInvalidName
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.User{}, tx.Error
	}

	var count int64
	if err := tx.Model(&models.User{}).Where("name_key = ?", models.NormalizeName(name)).Count(&count).Error; err != nil {
		tx.Rollback()
		return models.User{}, err
	}
	if count > 0 {
		tx.Rollback()
		return models.User{}, ErrUserExists
	}

	user := models.User{Name: name}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return models.User{}, ErrUserExists
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return models.User{}, err
	}

	s.publish(broker.UserCreated, user.ID, map[string]interface{}{
		"user_id": user.ID,
		"name":    user.Name,
	})

	return user, nil
}

func (s *UserService) GetUserById(db *database.Database, id uint) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByName looks a user up ignoring case and surrounding whitespace.
func (s *UserService) GetUserByName(db *database.Database, name string) (models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "name_key = ?", models.NormalizeName(name)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) GetUsers(db *database.Database) ([]models.User, error) {
	var users []models.User
	if err := db.DB.Order("name").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) publish(eventType broker.EventType, actorID uint, data map[string]interface{}) {
	publishEvent(s.producer, s.logger, eventType, "user", actorID, data)
}

func publishEvent(producer broker.Producer, logger zerolog.Logger, eventType broker.EventType, entity string, actorID uint, data map[string]interface{}) {
	if producer == nil {
		return
	}
	event, err := models.NewEvent(string(eventType), entity, actorID, data)
	if err == nil {
		err = producer.Publish(event)
	}
	if err != nil {
		logger.Warn().Err(err).Str("event", string(eventType)).Msg("failed to publish event")
	}
}
