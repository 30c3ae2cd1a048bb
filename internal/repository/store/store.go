package store

import (
	"errors"

	"debt_reminder/internal/domain"
	"debt_reminder/internal/model"

	"gorm.io/gorm"
)

var ErrNotFound = domain.ErrNotFound

// Migrate создает или обновляет таблицы администраторов, клиентов и журнала уведомлений.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Admin{}, &model.Client{}, &model.NotificationLog{})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
