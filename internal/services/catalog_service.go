// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/seedinglabs/seeding-backend/internal/models"
	"github.com/seedinglabs/seeding-backend/internal/utils"
)

// catalogHeaderName is the name-column header of the raw spreadsheet
// export; a row carrying it is skipped so files can be imported unedited.
const catalogHeaderName = "상품"

var (
	// Rows split on tab or comma alike; a line mixing both conventions
	// fragments. Known limitation of the source format, kept as is.
	fieldDelimiter = regexp.MustCompile(`[\t,]`)
	optionsSpec    = regexp.MustCompile(`size\{(.*)\}`)
)

type CatalogService struct {
	db *gorm.DB
}

type UpdateProductRequest struct {
	Name    *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Price   *int64   `json:"price,omitempty" validate:"omitempty,min=0"`
	Summary *string  `json:"summary,omitempty"`
	Options []string `json:"options,omitempty"`
	Images  []string `json:"images,omitempty"`
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// catalogRow is the validated intermediate between a raw split line and a
// Product, so field access is by name rather than raw index.
type catalogRow struct {
	name        string
	price       string
	optionsSpec string
	summary     string
}

func newCatalogRow(fields []string) catalogRow {
	row := catalogRow{}
	if len(fields) > 0 {
		row.name = fields[0]
	}
	if len(fields) > 1 {
		row.price = fields[1]
	}
	if len(fields) > 2 {
		row.optionsSpec = fields[2]
	}
	// Any additional fields beyond the summary are ignored
	if len(fields) > 3 {
		row.summary = fields[3]
	}
	return row
}

func (r catalogRow) skip() bool {
	return r.name == "" || r.name == catalogHeaderName
}

// ParseCatalog turns raw delimited text into products. Rows without a name
// (and the header row) are skipped silently, unparseable prices fall back
// to zero, and an options field is only honored when it matches the
// size{a|b|c} pattern. Each product gets a fresh id and an empty image
// list; the result is meant to be appended to an existing catalog.
func ParseCatalog(rawText string) []models.Product {
	var products []models.Product

	for _, line := range splitLines(rawText) {
		row := newCatalogRow(fieldDelimiter.Split(line, -1))
		if row.skip() {
			continue
		}

		price, err := strconv.ParseInt(strings.TrimSpace(row.price), 10, 64)
		if err != nil {
			price = 0
		}

		options := []string{}
		if m := optionsSpec.FindStringSubmatch(row.optionsSpec); m != nil {
			options = strings.Split(m[1], "|")
		}

		products = append(products, models.Product{
			ID:      utils.NewDocumentID(),
			Name:    row.name,
			Price:   price,
			Options: options,
			Summary: row.summary,
			Images:  []string{},
		})
	}

	return products
}

func splitLines(rawText string) []string {
	lines := strings.Split(rawText, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ImportProducts parses the raw text and appends the result to the
// collection's catalog. Returns how many rows imported; skipped rows are
// not reported individually.
func (s *CatalogService) ImportProducts(collectionID uuid.UUID, rawText string) (int, error) {
	collection, err := loadCollection(s.db, collectionID)
	if err != nil {
		return 0, err
	}

	imported := ParseCatalog(rawText)
	collection.Products = append(collection.Products, imported...)

	if err := s.db.Save(collection).Error; err != nil {
		return 0, fmt.Errorf("failed to save collection: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"collection_id": collectionID,
		"imported":      len(imported),
	}).Info("Catalog imported")

	return len(imported), nil
}

func (s *CatalogService) UpdateProduct(collectionID uuid.UUID, productID string, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	collection, err := loadCollection(s.db, collectionID)
	if err != nil {
		return nil, err
	}

	var updated *models.Product
	for i := range collection.Products {
		if collection.Products[i].ID != productID {
			continue
		}

		if req.Name != nil {
			collection.Products[i].Name = *req.Name
		}
		if req.Price != nil {
			collection.Products[i].Price = *req.Price
		}
		if req.Summary != nil {
			collection.Products[i].Summary = *req.Summary
		}
		if req.Options != nil {
			collection.Products[i].Options = req.Options
		}
		if req.Images != nil {
			collection.Products[i].Images = req.Images
		}

		updated = &collection.Products[i]
		break
	}

	if updated == nil {
		return nil, errors.New("product not found")
	}

	if err := s.db.Save(collection).Error; err != nil {
		return nil, fmt.Errorf("failed to save collection: %w", err)
	}

	return updated, nil
}

func (s *CatalogService) RemoveProduct(collectionID uuid.UUID, productID string) error {
	collection, err := loadCollection(s.db, collectionID)
	if err != nil {
		return err
	}

	kept := make(models.ProductList, 0, len(collection.Products))
	for _, p := range collection.Products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}

	if len(kept) == len(collection.Products) {
		return errors.New("product not found")
	}

	collection.Products = kept
	if err := s.db.Save(collection).Error; err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}

	return nil
}

func (s *CatalogService) AddProductImages(collectionID uuid.UUID, productID string, urls []string) (*models.Product, error) {
	collection, err := loadCollection(s.db, collectionID)
	if err != nil {
		return nil, err
	}

	var updated *models.Product
	for i := range collection.Products {
		if collection.Products[i].ID == productID {
			collection.Products[i].Images = append(collection.Products[i].Images, urls...)
			updated = &collection.Products[i]
			break
		}
	}

	if updated == nil {
		return nil, errors.New("product not found")
	}

	if err := s.db.Save(collection).Error; err != nil {
		return nil, fmt.Errorf("failed to save collection: %w", err)
	}

	return updated, nil
}
