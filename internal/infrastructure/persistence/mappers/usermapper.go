package mappers

import (
	"encoding/json"
	"fmt"

	"rentora/internal/domain/user"
	"rentora/internal/infrastructure/persistence/models"
	"rentora/internal/shared/authorization"
)

// UserMapper handles conversion between the User domain entity and its model.
type UserMapper interface {
	ToModel(u *user.User) (*models.UserModel, error)
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) (*models.UserModel, error) {
	roster, err := json.Marshal(u.AssignedPropertyIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal assigned property IDs: %w", err)
	}

	return &models.UserModel{
		ID:                  u.ID(),
		Name:                u.Name(),
		Email:               u.Email(),
		PasswordHash:        u.PasswordHash(),
		Role:                u.Role().String(),
		Phone:               u.Phone(),
		StaffCode:           u.StaffCode(),
		AssignedPropertyIDs: string(roster),
		Active:              u.IsActive(),
		Version:             u.Version(),
		CreatedAt:           u.CreatedAt(),
		UpdatedAt:           u.UpdatedAt(),
	}, nil
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	var roster []uint
	if model.AssignedPropertyIDs != "" {
		if err := json.Unmarshal([]byte(model.AssignedPropertyIDs), &roster); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assigned property IDs: %w", err)
		}
	}

	return user.ReconstructUser(
		model.ID,
		model.Name, model.Email, model.PasswordHash,
		authorization.Role(model.Role),
		model.Phone, model.StaffCode,
		roster,
		model.Active,
		model.Version,
		model.CreatedAt, model.UpdatedAt,
	)
}
