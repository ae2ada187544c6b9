// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/seedinglabs/seeding-backend/internal/i18n"
	"github.com/seedinglabs/seeding-backend/internal/services"
	"github.com/seedinglabs/seeding-backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
	storageService *services.StorageService
}

type ImportCatalogRequest struct {
	RawText string `json:"raw_text" validate:"required"`
}

func NewProductHandler(catalogService *services.CatalogService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		storageService: storageService,
	}
}

// POST /admin/collections/:id/products/import
func (h *ProductHandler) Import(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	var req ImportCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	imported, err := h.catalogService.ImportProducts(id, req.RawText)
	if err != nil {
		utils.NotFoundResponse(c, "collection")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyCatalogImported, imported),
		"imported": imported,
	})
}

// PUT /admin/collections/:id/products/:productId
func (h *ProductHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalogService.UpdateProduct(id, c.Param("productId"), &req)
	if err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

// DELETE /admin/collections/:id/products/:productId
func (h *ProductHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	if err := h.catalogService.RemoveProduct(id, c.Param("productId")); err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}

// POST /admin/collections/:id/products/:productId/images
func (h *ProductHandler) UploadImages(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "files"), nil)
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "files"), nil)
		return
	}

	urls := make([]string, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
			return
		}

		result, err := h.storageService.UploadImage(file, header, id, "products")
		file.Close()
		if err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
			return
		}
		urls = append(urls, result.URL)
	}

	product, err := h.catalogService.AddProductImages(id, c.Param("productId"), urls)
	if err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"product": product,
	})
}
