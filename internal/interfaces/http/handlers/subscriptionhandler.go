package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumelift/resumelift/internal/application/subscription/usecases"
	"github.com/resumelift/resumelift/internal/shared/logger"
	"github.com/resumelift/resumelift/internal/shared/utils"
)

type SubscriptionHandler struct {
	subscribeUC      subscribeUseCase
	changePlanUC     changePlanUseCase
	cancelUC         cancelSubscriptionUseCase
	getEntitlementUC getEntitlementUseCase
	logger           logger.Interface
}

func NewSubscriptionHandler(
	subscribeUC subscribeUseCase,
	changePlanUC changePlanUseCase,
	cancelUC cancelSubscriptionUseCase,
	getEntitlementUC getEntitlementUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscribeUC:      subscribeUC,
		changePlanUC:     changePlanUC,
		cancelUC:         cancelUC,
		getEntitlementUC: getEntitlementUC,
		logger:           logger,
	}
}

type SubscribeRequest struct {
	Tier        string `json:"tier" binding:"required,tier"`
	ExternalRef string `json:"external_ref"`
}

type ChangePlanRequest struct {
	Tier string `json:"tier" binding:"required,tier"`
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid subscribe request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ent, err := h.subscribeUC.Execute(c.Request.Context(), usecases.SubscribeCommand{
		UserID:      userID,
		Tier:        req.Tier,
		ExternalRef: req.ExternalRef,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"entitlement": ent}, "subscription activated")
}

func (h *SubscriptionHandler) Upgrade(c *gin.Context) {
	h.changePlan(c, usecases.ChangeTypeUpgrade)
}

func (h *SubscriptionHandler) Downgrade(c *gin.Context) {
	h.changePlan(c, usecases.ChangeTypeDowngrade)
}

func (h *SubscriptionHandler) changePlan(c *gin.Context, changeType usecases.ChangeType) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid change plan request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ent, err := h.changePlanUC.Execute(c.Request.Context(), usecases.ChangePlanCommand{
		UserID:     userID,
		Tier:       req.Tier,
		ChangeType: changeType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"entitlement": ent})
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	ent, err := h.cancelUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"entitlement": ent}, "subscription canceled")
}

func (h *SubscriptionHandler) GetEntitlement(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	ent, err := h.getEntitlementUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"entitlement": ent})
}
