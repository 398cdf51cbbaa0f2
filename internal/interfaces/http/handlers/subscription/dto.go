package subscription

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/subscription/usecases"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
)

type CreateSubscriptionRequest struct {
	PropertyID    uint   `json:"property_id" binding:"required"`
	Tier          string `json:"tier" binding:"required,oneof=basic premium enterprise"`
	PaymentMethod string `json:"payment_method" binding:"required,max=30"`
	TransactionID string `json:"transaction_id" binding:"required,max=100"`
}

func (r *CreateSubscriptionRequest) ToCommand(principal authorization.Principal) usecases.CreateSubscriptionCommand {
	return usecases.CreateSubscriptionCommand{
		Principal:     principal,
		PropertyID:    r.PropertyID,
		Tier:          r.Tier,
		PaymentMethod: r.PaymentMethod,
		TransactionID: r.TransactionID,
	}
}

func parseSubscriptionID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid subscription id")
	}
	return uint(id), nil
}
