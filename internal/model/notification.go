package model

import "time"

// MethodEmailGateway метка способа доставки по умолчанию.
const MethodEmailGateway = "email_gateway"

// NotificationLog запись журнала отправленных напоминаний. Только добавляется.
type NotificationLog struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	ClientID uint      `json:"client_id" gorm:"not null;index"`
	Method   string    `json:"method" gorm:"type:varchar(50);not null;default:email_gateway"`
	SentAt   time.Time `json:"sent_at" gorm:"not null"`
}

type NotificationStats struct {
	Total      int64      `json:"total"`
	SentToday  int64      `json:"sent_today"`
	LastSentAt *time.Time `json:"last_sent_at"`
}
