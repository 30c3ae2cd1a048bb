package store

import (
	"context"
	"strings"

	"debt_reminder/internal/model"

	"gorm.io/gorm"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) CreateAdmin(ctx context.Context, admin *model.Admin) error {
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	return r.DB.WithContext(ctx).Create(admin).Error
}

func (r *AdminRepository) GetAdmin(ctx context.Context, id uint) (*model.Admin, error) {
	var admin model.Admin
	if err := r.DB.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &admin, nil
}

func (r *AdminRepository) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	err := r.DB.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&admin).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &admin, nil
}

// Проверка занятости email
func (r *AdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Admin{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	return count > 0, err
}

func (r *AdminRepository) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	err := r.DB.WithContext(ctx).Order("id").Find(&admins).Error
	return admins, err
}
