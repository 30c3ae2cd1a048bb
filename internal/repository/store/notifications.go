package store

import (
	"context"
	"time"

	"debt_reminder/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) InsertNotification(ctx context.Context, entry *model.NotificationLog) error {
	if entry.Method == "" {
		entry.Method = model.MethodEmailGateway
	}
	if entry.SentAt.IsZero() {
		entry.SentAt = time.Now()
	}
	// sqlite сравнивает время как строки, поэтому все храним в UTC
	entry.SentAt = entry.SentAt.UTC()
	return r.DB.WithContext(ctx).Create(entry).Error
}

func (r *NotificationRepository) NotificationStats(ctx context.Context, adminID uint, since time.Time) (model.NotificationStats, error) {
	var stats model.NotificationStats

	base := r.DB.WithContext(ctx).Model(&model.NotificationLog{}).
		Joins("JOIN clients ON clients.id = notification_logs.client_id").
		Where("clients.admin_id = ?", adminID).
		Session(&gorm.Session{})

	if err := base.Count(&stats.Total).Error; err != nil {
		return stats, err
	}
	if err := base.Where("notification_logs.sent_at >= ?", since.UTC()).Count(&stats.SentToday).Error; err != nil {
		return stats, err
	}

	var last []model.NotificationLog
	if err := base.Order("notification_logs.sent_at DESC").Limit(1).Find(&last).Error; err != nil {
		return stats, err
	}
	if len(last) > 0 {
		sentAt := last[0].SentAt
		stats.LastSentAt = &sentAt
	}
	return stats, nil
}
