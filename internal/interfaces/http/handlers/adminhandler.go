package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/resumelift/resumelift/internal/shared/logger"
	"github.com/resumelift/resumelift/internal/shared/utils"
)

// AdminHandler serves support endpoints; routes carrying it sit behind the
// admin role middleware.
type AdminHandler struct {
	entitlementLookupUC userEntitlementLookupUseCase
	logger              logger.Interface
}

func NewAdminHandler(entitlementLookupUC userEntitlementLookupUseCase, logger logger.Interface) *AdminHandler {
	return &AdminHandler{
		entitlementLookupUC: entitlementLookupUC,
		logger:              logger,
	}
}

// GetUserEntitlement returns another user's entitlement, looked up by the
// user's public identifier.
func (h *AdminHandler) GetUserEntitlement(c *gin.Context) {
	ent, err := h.entitlementLookupUC.ExecuteBySID(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"entitlement": ent})
}
