package property

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/property/usecases"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
)

type CreatePropertyRequest struct {
	Title         string  `json:"title" binding:"required,max=200"`
	Address       string  `json:"address" binding:"required,max=500"`
	PricePerMonth float64 `json:"price_per_month" binding:"required,gt=0"`
	AdvanceAmount float64 `json:"advance_amount" binding:"gte=0"`
}

func (r *CreatePropertyRequest) ToCommand(principal authorization.Principal) usecases.CreatePropertyCommand {
	return usecases.CreatePropertyCommand{
		Principal:     principal,
		Title:         r.Title,
		Address:       r.Address,
		PricePerMonth: r.PricePerMonth,
		AdvanceAmount: r.AdvanceAmount,
	}
}

type TransferOwnershipRequest struct {
	NewOwnerID uint `json:"new_owner_id" binding:"required"`
}

func parsePropertyID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid property id")
	}
	return uint(id), nil
}
