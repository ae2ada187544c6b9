// internal/handlers/order.go
package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/seedinglabs/seeding-backend/internal/i18n"
	"github.com/seedinglabs/seeding-backend/internal/services"
	"github.com/seedinglabs/seeding-backend/internal/utils"
)

type OrderHandler struct {
	orderService  *services.OrderService
	exportService *services.ExportService
}

type ExportOrdersRequest struct {
	OrderIDs []string `json:"order_ids,omitempty"`
}

func NewOrderHandler(orderService *services.OrderService, exportService *services.ExportService) *OrderHandler {
	return &OrderHandler{
		orderService:  orderService,
		exportService: exportService,
	}
}

// POST /collection/orders (influencer, scoped by the session's collection)
func (h *OrderHandler) Submit(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	collectionID, ok := utils.GetCollectionIDFromContext(c)
	if !ok {
		utils.ForbiddenResponse(c, "")
		return
	}

	id, err := uuid.Parse(collectionID)
	if err != nil {
		utils.ForbiddenResponse(c, "")
		return
	}

	var req services.SubmitOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if !req.Agreed {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderTermsRequired), nil)
		return
	}

	// The session quota caps how many items one submission may carry
	limit := utils.GetSessionLimitFromContext(c)
	if limit > 0 && len(req.Lines) > limit {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderLimitExceeded, limit), nil)
		return
	}

	orders, err := h.orderService.SubmitOrders(id, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderSubmitted),
		"orders":  orders,
	})
}

// GET /admin/collections/:id/orders
func (h *OrderHandler) List(c *gin.Context) {
	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrders(id)
	if err != nil {
		utils.NotFoundResponse(c, "collection")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"orders": orders,
		"total":  len(orders),
	})
}

// PATCH /admin/collections/:id/orders/:orderId
func (h *OrderHandler) UpdateField(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	var req services.UpdateOrderFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.orderService.UpdateOrderField(id, c.Param("orderId"), &req); err != nil {
		utils.NotFoundResponse(c, "collection")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderUpdated),
	})
}

// POST /admin/collections/:id/orders/bulk-status
func (h *OrderHandler) BulkStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	var req services.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.orderService.BulkStatus(id, &req); err != nil {
		utils.NotFoundResponse(c, "collection")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderStatusUpdated),
	})
}

// POST /admin/collections/:id/orders/:orderId/duplicate
func (h *OrderHandler) Duplicate(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	duplicate, err := h.orderService.Duplicate(id, c.Param("orderId"))
	if err != nil {
		utils.NotFoundResponse(c, "order")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderDuplicated),
		"order":   duplicate,
	})
}

// DELETE /admin/collections/:id/orders/:orderId
func (h *OrderHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	if err := h.orderService.Remove(id, c.Param("orderId")); err != nil {
		utils.NotFoundResponse(c, "collection")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderDeleted),
	})
}

// POST /admin/collections/:id/orders/export
func (h *OrderHandler) Export(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	// The ids filter is optional; an empty body exports everything
	var req ExportOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	filename, content, err := h.exportService.ExportShipping(id, req.OrderIDs)
	if err != nil {
		utils.NotFoundResponse(c, "collection")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}
