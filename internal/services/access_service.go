// internal/services/access_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/seedinglabs/seeding-backend/internal/config"
	"github.com/seedinglabs/seeding-backend/internal/models"
	"github.com/seedinglabs/seeding-backend/internal/utils"
)

// ErrInvalidAccessCode is the single rejection for every failed login.
// Callers must not learn whether the input resembled a real code.
var ErrInvalidAccessCode = errors.New("invalid code")

type AccessService struct {
	db  *gorm.DB
	cfg *config.Config
}

// Session is the resolved identity derived from a submitted code. It is
// never persisted; downstream calls carry it in a signed token.
type Session struct {
	Role         models.SessionRole `json:"role"`
	CollectionID string             `json:"collection_id,omitempty"`
	AccessCode   string             `json:"access_code,omitempty"`
	Limit        int                `json:"limit,omitempty"`
}

type LoginRequest struct {
	Code string `json:"code" validate:"required"`
}

type RecoverRequest struct {
	Phrase string `json:"phrase" validate:"required"`
}

type UpdateCredentialsRequest struct {
	Password       string `json:"password,omitempty" validate:"omitempty,min=4,max=64"`
	RecoveryPhrase string `json:"recovery_phrase,omitempty" validate:"omitempty,min=4,max=64"`
}

type LoginResponse struct {
	Session   *Session `json:"session"`
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	ExpiresIn int      `json:"expires_in"` // in seconds
}

func NewAccessService(db *gorm.DB, cfg *config.Config) *AccessService {
	return &AccessService{
		db:  db,
		cfg: cfg,
	}
}

// ResolveAccessCode matches a submitted code against the admin password and
// every collection's access codes. The admin password wins outright, even
// when a collection defines an identical code. Otherwise the first matching
// code in stored collection order wins; a duplicate code in a later
// collection is silently shadowed. Returns nil when nothing matches.
func ResolveAccessCode(code string, adminConfig *models.AdminConfig, collections []models.Collection) *Session {
	normalized := strings.TrimSpace(code)

	if strings.EqualFold(normalized, adminConfig.Password) {
		return &Session{Role: models.SessionRoleAdmin}
	}

	for i := range collections {
		for _, ac := range collections[i].AccessCodes {
			if strings.EqualFold(normalized, ac.Code) {
				return &Session{
					Role:         models.SessionRoleInfluencer,
					CollectionID: collections[i].ID.String(),
					AccessCode:   ac.Code,
					Limit:        ac.Limit,
				}
			}
		}
	}

	return nil
}

// ResetAdminPassword restores the fixed default password when the phrase
// matches the recovery phrase (trimmed, case-insensitive). The config is
// untouched on mismatch; there is no lockout or attempt tracking.
func ResetAdminPassword(phrase string, adminConfig *models.AdminConfig) bool {
	if !strings.EqualFold(strings.TrimSpace(phrase), adminConfig.RecoveryPhrase) {
		return false
	}

	adminConfig.Password = models.DefaultAdminPassword
	return true
}

func (s *AccessService) Login(req *LoginRequest) (*LoginResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ErrInvalidAccessCode
	}

	adminConfig, err := s.loadAdminConfig()
	if err != nil {
		return nil, err
	}

	// Collections resolve in stored order; first match wins
	var collections []models.Collection
	if err := s.db.Order("created_at ASC").Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("failed to load collections: %w", err)
	}

	session := ResolveAccessCode(req.Code, adminConfig, collections)
	if session == nil {
		return nil, ErrInvalidAccessCode
	}

	token, err := utils.GenerateSessionToken(
		string(session.Role),
		session.CollectionID,
		session.AccessCode,
		session.Limit,
		s.cfg.JWT.SessionTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"role":          session.Role,
		"collection_id": session.CollectionID,
	}).Info("Session resolved")

	return &LoginResponse{
		Session:   session,
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: s.cfg.JWT.SessionTokenTTL * 3600,
	}, nil
}

// RecoverPassword returns false for any mismatch with no side effect; the
// handler surfaces the same generic failure either way.
func (s *AccessService) RecoverPassword(req *RecoverRequest) (bool, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return false, nil
	}

	adminConfig, err := s.loadAdminConfig()
	if err != nil {
		return false, err
	}

	if !ResetAdminPassword(req.Phrase, adminConfig) {
		return false, nil
	}

	if err := s.db.Save(adminConfig).Error; err != nil {
		return false, fmt.Errorf("failed to save admin config: %w", err)
	}

	logrus.Info("Admin password reset via recovery phrase")
	return true, nil
}

func (s *AccessService) UpdateCredentials(req *UpdateCredentialsRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if req.Password == "" && req.RecoveryPhrase == "" {
		return errors.New("nothing to update")
	}

	adminConfig, err := s.loadAdminConfig()
	if err != nil {
		return err
	}

	if req.Password != "" {
		adminConfig.Password = req.Password
	}
	if req.RecoveryPhrase != "" {
		adminConfig.RecoveryPhrase = req.RecoveryPhrase
	}

	if err := s.db.Save(adminConfig).Error; err != nil {
		return fmt.Errorf("failed to save admin config: %w", err)
	}

	return nil
}

func (s *AccessService) loadAdminConfig() (*models.AdminConfig, error) {
	var adminConfig models.AdminConfig
	if err := s.db.First(&adminConfig).Error; err != nil {
		return nil, fmt.Errorf("failed to load admin config: %w", err)
	}
	return &adminConfig, nil
}
