package store

import (
	"context"

	"debt_reminder/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ClientRepository struct {
	DB *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

// Вставка клиента
func (r *ClientRepository) CreateClient(ctx context.Context, client *model.Client) error {
	return r.DB.WithContext(ctx).Create(client).Error
}

func (r *ClientRepository) GetClient(ctx context.Context, id, adminID uint) (*model.Client, error) {
	var client model.Client
	err := r.DB.WithContext(ctx).Where("id = ? AND admin_id = ?", id, adminID).First(&client).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &client, nil
}

func (r *ClientRepository) UpdateClient(ctx context.Context, client *model.Client) error {
	res := r.DB.WithContext(ctx).Model(&model.Client{}).
		Where("id = ? AND admin_id = ?", client.ID, client.AdminID).
		Select("name", "phone", "products", "total_amount", "remaining_balance", "due_date").
		Updates(client)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Удаление клиента. Журнал удаляется в той же транзакции, чтобы каскад
// не зависел от настроек внешних ключей конкретной СУБД.
func (r *ClientRepository) DeleteClient(ctx context.Context, id, adminID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var client model.Client
		if err := tx.Where("id = ? AND admin_id = ?", id, adminID).First(&client).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Where("client_id = ?", client.ID).Delete(&model.NotificationLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&client).Error
	})
}

func (r *ClientRepository) MarkAsPaid(ctx context.Context, id, adminID uint) error {
	res := r.DB.WithContext(ctx).Model(&model.Client{}).
		Where("id = ? AND admin_id = ?", id, adminID).
		Update("remaining_balance", decimal.Zero)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ClientRepository) ListClients(ctx context.Context, adminID uint) ([]model.Client, error) {
	var clients []model.Client
	err := r.DB.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("created_at DESC").Order("id DESC").
		Find(&clients).Error
	return clients, err
}

func (r *ClientRepository) eligible(ctx context.Context, adminID uint) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&model.Client{}).
		Where("admin_id = ?", adminID).
		Where("phone IS NOT NULL AND TRIM(phone) <> ''").
		Where("remaining_balance > 0")
}

func (r *ClientRepository) ListEligibleClients(ctx context.Context, adminID uint) ([]model.Client, error) {
	var clients []model.Client
	err := r.eligible(ctx, adminID).Order("id").Find(&clients).Error
	return clients, err
}

func (r *ClientRepository) CountEligibleClients(ctx context.Context, adminID uint) (int64, error) {
	var count int64
	err := r.eligible(ctx, adminID).Count(&count).Error
	return count, err
}

func (r *ClientRepository) ListRecentPaidClients(ctx context.Context, adminID uint, limit int) ([]model.Client, error) {
	var clients []model.Client
	err := r.DB.WithContext(ctx).
		Where("admin_id = ? AND remaining_balance <= 0", adminID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&clients).Error
	return clients, err
}

func (r *ClientRepository) ListClientsDueOn(ctx context.Context, adminID uint, dates ...string) ([]model.Client, error) {
	var clients []model.Client
	if len(dates) == 0 {
		return clients, nil
	}
	err := r.DB.WithContext(ctx).
		Where("admin_id = ? AND due_date IN ? AND remaining_balance > 0", adminID, dates).
		Order("due_date").Order("id").
		Find(&clients).Error
	return clients, err
}
