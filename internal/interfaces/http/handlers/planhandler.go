package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/resumelift/resumelift/internal/shared/utils"
)

// PlanHandler serves the public plan catalog.
type PlanHandler struct {
	listPlansUC listPlansUseCase
}

func NewPlanHandler(listPlansUC listPlansUseCase) *PlanHandler {
	return &PlanHandler{listPlansUC: listPlansUC}
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans := h.listPlansUC.Execute(c.Request.Context())
	utils.OKResponse(c, gin.H{"plans": plans})
}
