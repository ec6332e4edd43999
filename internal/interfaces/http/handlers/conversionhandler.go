package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/resumelift/resumelift/internal/application/conversion/usecases"
	"github.com/resumelift/resumelift/internal/shared/logger"
	"github.com/resumelift/resumelift/internal/shared/utils"
)

type ConversionHandler struct {
	createUC createConversionUseCase
	getUC    getConversionUseCase
	listUC   listConversionsUseCase
	logger   logger.Interface
}

func NewConversionHandler(
	createUC createConversionUseCase,
	getUC getConversionUseCase,
	listUC listConversionsUseCase,
	logger logger.Interface,
) *ConversionHandler {
	return &ConversionHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

type CreateConversionRequest struct {
	TargetRole string `json:"target_role" binding:"required,max=255"`
	SourceText string `json:"source_text" binding:"required"`
}

func (h *ConversionHandler) CreateConversion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req CreateConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create conversion request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateConversionCommand{
		UserID:     userID,
		TargetRole: req.TargetRole,
		SourceText: req.SourceText,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"conversion":  result.Conversion,
		"entitlement": result.Entitlement,
	}, "conversion created")
}

func (h *ConversionHandler) GetConversion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	dto, err := h.getUC.Execute(c.Request.Context(), usecases.GetConversionQuery{
		SID:         c.Param("sid"),
		RequesterID: userID,
		Role:        currentRole(c),
		RenderHTML:  c.Query("format") == "html",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"conversion": dto})
}

func (h *ConversionHandler) ListConversions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		limit = parsed
	}

	items, err := h.listUC.Execute(c.Request.Context(), userID, limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"conversions": items, "count": len(items)})
}
