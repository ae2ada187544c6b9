// internal/handlers/collection.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/seedinglabs/seeding-backend/internal/i18n"
	"github.com/seedinglabs/seeding-backend/internal/services"
	"github.com/seedinglabs/seeding-backend/internal/utils"
)

type CollectionHandler struct {
	collectionService *services.CollectionService
	storageService    *services.StorageService
}

func NewCollectionHandler(collectionService *services.CollectionService, storageService *services.StorageService) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
		storageService:    storageService,
	}
}

func parseCollectionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "invalid collection id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// GET /admin/collections
func (h *CollectionHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	collections, total, err := h.collectionService.ListCollections(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(collections, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /admin/collections
func (h *CollectionHandler) Create(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	collection, err := h.collectionService.CreateCollection(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyCollectionCreated),
		"collection": collection,
	})
}

// GET /admin/collections/:id
func (h *CollectionHandler) Get(c *gin.Context) {
	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	collection, err := h.collectionService.GetCollection(id)
	if err != nil {
		utils.NotFoundResponse(c, "collection")
		return
	}

	utils.SuccessResponse(c, collection)
}

// PUT /admin/collections/:id
func (h *CollectionHandler) Update(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	var req services.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	collection, err := h.collectionService.UpdateCollection(id, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyCollectionUpdated),
		"collection": collection,
	})
}

// DELETE /admin/collections/:id
func (h *CollectionHandler) Delete(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	if err := h.collectionService.DeleteCollection(id); err != nil {
		utils.NotFoundResponse(c, "collection")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCollectionDeleted),
	})
}

// POST /admin/collections/:id/logo
func (h *CollectionHandler) UploadLogo(c *gin.Context) {
	h.uploadImage(c, "logo")
}

// POST /admin/collections/:id/lookbook/images
func (h *CollectionHandler) UploadLookbookImage(c *gin.Context) {
	h.uploadImage(c, "lookbook")
}

func (h *CollectionHandler) uploadImage(c *gin.Context, folder string) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseCollectionID(c)
	if !ok {
		return
	}

	// Ensure the collection exists before accepting the upload
	if _, err := h.collectionService.GetCollection(id); err != nil {
		utils.NotFoundResponse(c, "collection")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "file"), nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadImage(file, header, id, folder)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"upload":  result,
	})
}

// GET /collection (influencer view, scoped by the session's collection)
func (h *CollectionHandler) PublicCollection(c *gin.Context) {
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

	collection, err := h.collectionService.GetCollection(id)
	if err != nil {
		utils.NotFoundResponse(c, "collection")
		return
	}

	utils.SuccessResponse(c, services.PublicView(collection))
}
