package booking

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/booking/usecases"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
)

type CreateBookingRequest struct {
	PropertyID    uint      `json:"property_id" binding:"required"`
	ContactName   string    `json:"contact_name" binding:"required,max=100"`
	ContactEmail  string    `json:"contact_email" binding:"required,email,max=255"`
	ContactPhone  string    `json:"contact_phone" binding:"required,max=30"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	Message       string    `json:"message" binding:"omitempty,max=1000"`
	TermsAccepted bool      `json:"terms_accepted"`
}

func (r *CreateBookingRequest) ToCommand(principal authorization.Principal) usecases.CreateBookingCommand {
	return usecases.CreateBookingCommand{
		Principal:     principal,
		PropertyID:    r.PropertyID,
		ContactName:   r.ContactName,
		ContactEmail:  r.ContactEmail,
		ContactPhone:  r.ContactPhone,
		StartDate:     r.StartDate,
		Message:       r.Message,
		TermsAccepted: r.TermsAccepted,
	}
}

type CompletePaymentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,max=30"`
	TransactionID string `json:"transaction_id" binding:"required,max=100"`
}

type AddSupportTicketRequest struct {
	Kind        string `json:"kind" binding:"required"`
	Description string `json:"description" binding:"required,max=2000"`
}

func parseBookingID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid booking id")
	}
	return uint(id), nil
}

func parseTicketIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, errors.NewValidationError("invalid ticket index")
	}
	return index, nil
}
