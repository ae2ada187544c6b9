// internal/models/collection.go
package models

import "database/sql/driver"

// Collection is one independently managed catalog plus its order ledger,
// reachable through its own access codes. The ordered sequences live in
// JSONB document columns; the row is saved back as a whole (last write
// wins on the full record).
type Collection struct {
	BaseModel
	Name             string         `json:"name" gorm:"size:255;not null;index"`
	LogoURL          string         `json:"logo_url,omitempty" gorm:"type:text"`
	DescriptionTitle string         `json:"description_title" gorm:"type:text"`
	DescriptionBody  string         `json:"description_body" gorm:"type:text"`
	AccessCodes      AccessCodeList `json:"access_codes" gorm:"type:jsonb;default:'[]'"`
	Lookbook         LookbookList   `json:"lookbook" gorm:"type:jsonb;default:'[]'"`
	Products         ProductList    `json:"products" gorm:"type:jsonb;default:'[]'"`
	Orders           OrderList      `json:"orders" gorm:"type:jsonb;default:'[]'"`
}

// AccessCodeConfig is a shared secret that authenticates an influencer and
// bounds how many items that code may order. Codes match case-insensitively.
type AccessCodeConfig struct {
	Code  string `json:"code"`
	Limit int    `json:"limit"`
}

type AccessCodeList []AccessCodeConfig

func (l AccessCodeList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *AccessCodeList) Scan(value interface{}) error { return jsonbScan(l, value) }

// LookbookItem is an opaque display asset; the core only carries it through.
type LookbookItem struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

type LookbookList []LookbookItem

func (l LookbookList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *LookbookList) Scan(value interface{}) error { return jsonbScan(l, value) }

// FindAccessCode returns the config for an exact (case-sensitive) code
// string, used by write-time duplicate checks.
func (c *Collection) FindAccessCode(code string) *AccessCodeConfig {
	for i := range c.AccessCodes {
		if c.AccessCodes[i].Code == code {
			return &c.AccessCodes[i]
		}
	}
	return nil
}
