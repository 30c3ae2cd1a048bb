package domain

import (
	"context"

	"debt_reminder/internal/model"
)

// Sender отправляет письмо через внешнего провайдера. Только успех или ошибка,
// подтверждения доставки нет.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NotificationMirror дублирует записи журнала во внешнее хранилище (таблица).
type NotificationMirror interface {
	AppendNotification(ctx context.Context, entry model.NotificationLog, client model.Client) error
}

// ChatNotifier отправляет короткие сводки в чат администраторов.
type ChatNotifier interface {
	Notify(text string) error
}
