package auth

import "rentora/internal/application/auth/usecases"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Phone    string `json:"phone" binding:"omitempty,max=30"`
	Role     string `json:"role" binding:"required,oneof=tenant owner"`
}

func (r *RegisterRequest) ToCommand() usecases.RegisterCommand {
	return usecases.RegisterCommand{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
		Role:     r.Role,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
