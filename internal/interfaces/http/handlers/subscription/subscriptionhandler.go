package subscription

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/subscription/usecases"
	"rentora/internal/interfaces/http/middleware"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type SubscriptionHandler struct {
	createSubscriptionUC *usecases.CreateSubscriptionUseCase
	cancelSubscriptionUC *usecases.CancelSubscriptionUseCase
	listPlansUC          *usecases.ListPlansUseCase
	listSubscriptionsUC  *usecases.ListSubscriptionsUseCase
	getSubscriptionUC    *usecases.GetSubscriptionUseCase
	logger               logger.Interface
}

func NewSubscriptionHandler(
	createSubscriptionUC *usecases.CreateSubscriptionUseCase,
	cancelSubscriptionUC *usecases.CancelSubscriptionUseCase,
	listPlansUC *usecases.ListPlansUseCase,
	listSubscriptionsUC *usecases.ListSubscriptionsUseCase,
	getSubscriptionUC *usecases.GetSubscriptionUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createSubscriptionUC: createSubscriptionUC,
		cancelSubscriptionUC: cancelSubscriptionUC,
		listPlansUC:          listPlansUC,
		listSubscriptionsUC:  listSubscriptionsUC,
		getSubscriptionUC:    getSubscriptionUC,
		logger:               logger,
	}
}

// ListPlans handles GET /subscriptions/plans
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans := h.listPlansUC.Execute(c.Request.Context())
	utils.SuccessResponse(c, http.StatusOK, "", plans)
}

// CreateSubscription handles POST /subscriptions
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create subscription request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.createSubscriptionUC.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "subscription activated")
}

// CancelSubscription handles POST /subscriptions/:id/cancel
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	subscriptionID, err := parseSubscriptionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.cancelSubscriptionUC.Execute(c.Request.Context(), usecases.CancelSubscriptionCommand{
		Principal:      principal,
		SubscriptionID: subscriptionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription cancelled", result)
}

// ListSubscriptions handles GET /subscriptions
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	principal, _ := middleware.PrincipalFromContext(c)

	var ownerID uint
	if raw := c.Query("owner_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid owner_id")
			return
		}
		ownerID = uint(parsed)
	}

	result, err := h.listSubscriptionsUC.Execute(c.Request.Context(), usecases.ListSubscriptionsCommand{
		Principal: principal,
		OwnerID:   ownerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetSubscription handles GET /subscriptions/:id
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	subscriptionID, err := parseSubscriptionID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.getSubscriptionUC.Execute(c.Request.Context(), usecases.GetSubscriptionCommand{
		Principal:      principal,
		SubscriptionID: subscriptionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
