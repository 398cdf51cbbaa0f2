package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"rentora/internal/domain/user"
	"rentora/internal/infrastructure/persistence/mappers"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/db"
	"rentora/internal/shared/errors"
	"rentora/internal/shared/logger"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(database *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepositoryImpl{
		db:     database,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepositoryImpl) Save(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("a user with this email already exists")
		}
		r.logger.Errorw("failed to create user", "error", err, "email", u.Email())
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.UserModel{}).
		Where("id = ? AND version = ?", u.ID(), u.Version()-1).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "error", result.Error, "user_id", u.ID())
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("user was modified concurrently")
	}

	return nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete user", "error", result.Error, "user_id", id)
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}

	return nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		r.logger.Errorw("failed to find user", "error", err, "user_id", id)
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("email = ?", strings.ToLower(email)).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		r.logger.Errorw("failed to find user by email", "error", err)
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepositoryImpl) FindByRole(ctx context.Context, role authorization.Role) ([]*user.User, error) {
	var userModels []*models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("role = ?", role.String()).Order("id").Find(&userModels).Error; err != nil {
		r.logger.Errorw("failed to list users by role", "error", err, "role", role.String())
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	users := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		u, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map user %d: %w", model.ID, err)
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.UserModel{}).Where("email = ?", strings.ToLower(email)).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check email existence", "error", err)
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepositoryImpl) CountByRole(ctx context.Context, role authorization.Role) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.UserModel{}).Where("role = ?", role.String()).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count users by role", "error", err, "role", role.String())
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}
	return count, nil
}
