package staff

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/staff/usecases"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
)

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Phone    string `json:"phone" binding:"omitempty,max=30"`
}

func (r *CreateStaffRequest) ToCommand(principal authorization.Principal) usecases.CreateStaffCommand {
	return usecases.CreateStaffCommand{
		Principal: principal,
		Name:      r.Name,
		Email:     r.Email,
		Password:  r.Password,
		Phone:     r.Phone,
	}
}

func parseStaffID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid staff id")
	}
	return uint(id), nil
}
