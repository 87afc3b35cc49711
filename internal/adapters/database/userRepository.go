package database

import (
	"context"
	"errors"

	"github.com/Mikielai/crudblog/internal/config"
	"github.com/Mikielai/crudblog/internal/core/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepositoryDatabase struct{}

func NewUserRepositoryDatabase() *UserRepositoryDatabase {
	return &UserRepositoryDatabase{}
}

// Upsert writes the row in a single statement so out-of-order webhook
// deliveries cannot interleave a read with a write.
func (repo *UserRepositoryDatabase) Upsert(ctx context.Context, u *user.User) (*user.User, error) {
	err := config.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "profile_image", "updated_at"}),
	}).Create(u).Error
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if err := config.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User
	err := config.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := config.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete is idempotent: removing an absent row is not an error.
func (repo *UserRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return config.DB.WithContext(ctx).Where("id = ?", id).Delete(&user.User{}).Error
}
