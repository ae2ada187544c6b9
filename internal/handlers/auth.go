// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/seedinglabs/seeding-backend/internal/i18n"
	"github.com/seedinglabs/seeding-backend/internal/services"
	"github.com/seedinglabs/seeding-backend/internal/utils"
)

type AuthHandler struct {
	accessService *services.AccessService
}

func NewAuthHandler(accessService *services.AccessService) *AuthHandler {
	return &AuthHandler{
		accessService: accessService,
	}
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	loginResponse, err := h.accessService.Login(&req)
	if err != nil {
		// Every failed login gets the same message; no probing
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCode))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyAuthLoginSuccess),
		"session":    loginResponse.Session,
		"token":      loginResponse.Token,
		"token_type": loginResponse.TokenType,
		"expires_in": loginResponse.ExpiresIn,
	})
}

// POST /auth/recover
func (h *AuthHandler) Recover(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RecoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	reset, err := h.accessService.RecoverPassword(&req)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	if !reset {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRecoverFailed))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthPasswordReset),
	})
}

// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	role, _ := utils.GetRoleFromContext(c)
	collectionID, _ := utils.GetCollectionIDFromContext(c)

	session := gin.H{
		"role": role,
	}
	if collectionID != "" {
		session["collection_id"] = collectionID
		if code, exists := c.Get("access_code"); exists {
			session["access_code"] = code
		}
		session["limit"] = utils.GetSessionLimitFromContext(c)
	}

	utils.SuccessResponse(c, session)
}

// PUT /admin/credentials
func (h *AuthHandler) UpdateCredentials(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpdateCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.accessService.UpdateCredentials(&req); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAdminCredentialsUpdated),
	})
}
