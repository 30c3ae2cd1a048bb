package domain

import (
	"context"
	"time"

	"debt_reminder/internal/model"
)

type ClientRepo interface {
	// Создание клиента
	CreateClient(ctx context.Context, client *model.Client) error

	// Получение клиента по id в пределах администратора
	GetClient(ctx context.Context, id, adminID uint) (*model.Client, error)

	// Обновление полей клиента (id и admin_id берутся из самой записи)
	UpdateClient(ctx context.Context, client *model.Client) error

	// Удаление клиента вместе с журналом уведомлений
	DeleteClient(ctx context.Context, id, adminID uint) error

	// Обнуление остатка
	MarkAsPaid(ctx context.Context, id, adminID uint) error

	// Все клиенты администратора, новые первыми
	ListClients(ctx context.Context, adminID uint) ([]model.Client, error)

	// Клиенты с телефоном и положительным остатком
	ListEligibleClients(ctx context.Context, adminID uint) ([]model.Client, error)
	CountEligibleClients(ctx context.Context, adminID uint) (int64, error)

	// Последние полностью оплатившие клиенты
	ListRecentPaidClients(ctx context.Context, adminID uint, limit int) ([]model.Client, error)

	// Должники с датой платежа из списка (YYYY-MM-DD), упорядочены по дате
	ListClientsDueOn(ctx context.Context, adminID uint, dates ...string) ([]model.Client, error)
}

type AdminRepo interface {
	CreateAdmin(ctx context.Context, admin *model.Admin) error
	GetAdmin(ctx context.Context, id uint) (*model.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListAdmins(ctx context.Context) ([]model.Admin, error)
}

type NotificationRepo interface {
	InsertNotification(ctx context.Context, entry *model.NotificationLog) error

	// Статистика по клиентам администратора; since начало текущих суток
	NotificationStats(ctx context.Context, adminID uint, since time.Time) (model.NotificationStats, error)
}
