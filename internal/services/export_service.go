// internal/services/export_service.go
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/seedinglabs/seeding-backend/internal/models"
)

// ShippingExportHeader is the fixed column line the fulfillment spreadsheet
// expects. Column order and labels must not change.
const ShippingExportHeader = "instagram ID,이름,전화번호,받는분기타연락처,받는분우편번호,주소,제품명,사이즈,수량,배송메세지1"

const utf8BOM = "\uFEFF"

type ExportService struct {
	db *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{db: db}
}

// EncodeShipping renders orders into the fulfillment upload format: a UTF-8
// BOM, the fixed header, then one comma-joined line per order. Secondary
// contact and postal code are always empty and quantity is always 1. Fields
// are not quoted, so an embedded comma still shifts columns in that row;
// the consuming template tolerates neither quoting nor escaping. Embedded
// newlines are folded to spaces so a free-text field cannot break row
// framing.
func EncodeShipping(orders []models.Order, includeHeader bool) string {
	var b strings.Builder
	b.WriteString(utf8BOM)

	if includeHeader {
		b.WriteString(ShippingExportHeader)
		b.WriteString("\n")
	}

	for i, o := range orders {
		fields := []string{
			flatten(o.InstagramID),
			flatten(o.Name),
			flatten(o.Phone),
			"", // secondary contact
			"", // postal code
			flatten(o.Address),
			flatten(o.ProductName),
			flatten(o.Size),
			"1",
			flatten(o.Message),
		}
		b.WriteString(strings.Join(fields, ","))
		if i < len(orders)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ShippingFileName renders the suggested download name,
// shipping_{collectionName}_{ISO-date}.csv.
func ShippingFileName(collectionName string, t time.Time) string {
	return fmt.Sprintf("shipping_%s_%s.csv", collectionName, t.Format("2006-01-02"))
}

// ExportShipping encodes a collection's orders, optionally restricted to a
// selected id subset. Selection happens here; the encoder itself is
// selection-agnostic.
func (s *ExportService) ExportShipping(collectionID uuid.UUID, orderIDs []string) (string, string, error) {
	collection, err := loadCollection(s.db, collectionID)
	if err != nil {
		return "", "", err
	}

	orders := []models.Order(collection.Orders)
	if len(orderIDs) > 0 {
		selected := make(map[string]bool, len(orderIDs))
		for _, id := range orderIDs {
			selected[id] = true
		}

		filtered := make([]models.Order, 0, len(orderIDs))
		for _, o := range orders {
			if selected[o.ID] {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	filename := ShippingFileName(collection.Name, time.Now())
	return filename, EncodeShipping(orders, true), nil
}
