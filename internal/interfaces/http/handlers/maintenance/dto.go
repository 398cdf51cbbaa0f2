package maintenance

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/maintenance/usecases"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
)

type CreateTicketRequest struct {
	PropertyID    uint       `json:"property_id" binding:"required"`
	Kind          string     `json:"kind" binding:"required"`
	Priority      string     `json:"priority" binding:"required"`
	Title         string     `json:"title" binding:"required,max=200"`
	Description   string     `json:"description" binding:"required,max=2000"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	EstimatedCost float64    `json:"estimated_cost" binding:"gte=0"`
}

func (r *CreateTicketRequest) ToCommand(principal authorization.Principal) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Principal:     principal,
		PropertyID:    r.PropertyID,
		Kind:          r.Kind,
		Priority:      r.Priority,
		Title:         r.Title,
		Description:   r.Description,
		ScheduledDate: r.ScheduledDate,
		EstimatedCost: r.EstimatedCost,
	}
}

type AssignTicketStaffRequest struct {
	StaffID uint `json:"staff_id" binding:"required"`
}

type CompleteTicketRequest struct {
	CompletionNotes string  `json:"completion_notes" binding:"omitempty,max=2000"`
	ActualCost      float64 `json:"actual_cost" binding:"gte=0"`
}

type AddFeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required,max=1000"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid ticket id")
	}
	return uint(id), nil
}
