// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired      = "auth.required"
	KeyAuthInvalidToken  = "auth.invalid_token"
	KeyAuthTokenExpired  = "auth.token_expired"
	KeyAuthInvalidCode   = "auth.invalid_code"
	KeyAuthLoginSuccess  = "auth.login_success"
	KeyAuthRecoverFailed = "auth.recover_failed"
	KeyAuthPasswordReset = "auth.password_reset"

	// Admin
	KeyAdminAccessDenied       = "admin.access_denied"
	KeyAdminCredentialsUpdated = "admin.credentials_updated"

	// Collections
	KeyCollectionCreated       = "collection.created"
	KeyCollectionUpdated       = "collection.updated"
	KeyCollectionDeleted       = "collection.deleted"
	KeyCollectionNotFound      = "collection.not_found"
	KeyCollectionDuplicateCode = "collection.duplicate_code"

	// Products / catalog import
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"
	KeyCatalogImported = "catalog.imported"

	// Orders
	KeyOrderSubmitted     = "order.submitted"
	KeyOrderUpdated       = "order.updated"
	KeyOrderDuplicated    = "order.duplicated"
	KeyOrderDeleted       = "order.deleted"
	KeyOrderNotFound      = "order.not_found"
	KeyOrderLimitExceeded = "order.limit_exceeded"
	KeyOrderTermsRequired = "order.terms_required"
	KeyOrderStatusUpdated = "order.status_updated"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileInvalidType   = "file.invalid_type"
	KeyFileTooLarge      = "file.too_large"
)
