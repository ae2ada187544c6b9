// internal/models/admin.go
package models

import "github.com/google/uuid"

// DefaultAdminPassword is what the recovery flow resets the password to,
// and what a fresh install seeds.
const DefaultAdminPassword = "ADMIN"

const DefaultRecoveryPhrase = "nuuanu"

// AdminConfig holds the single admin credential record. The password and
// recovery phrase are shared secrets matched case-insensitively after
// trimming, so they are stored as entered rather than hashed.
type AdminConfig struct {
	BaseModel
	Password       string `json:"-" gorm:"size:255;not null"`
	RecoveryPhrase string `json:"-" gorm:"size:255;not null"`
}

func (AdminConfig) TableName() string {
	return "admin_config"
}

type AuditLog struct {
	BaseModel
	Actor        string     `json:"actor" gorm:"size:100;index"`
	Action       string     `json:"action" gorm:"size:100;not null;index"`
	ResourceType string     `json:"resource_type" gorm:"size:50;not null;index"`
	ResourceID   *uuid.UUID `json:"resource_id" gorm:"type:uuid;index"`
	NewValues    JSONB      `json:"new_values" gorm:"type:jsonb"`
	IPAddress    string     `json:"ip_address" gorm:"size:45"`
	UserAgent    string     `json:"user_agent" gorm:"type:text"`
}
