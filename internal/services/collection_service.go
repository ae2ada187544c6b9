// internal/services/collection_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/seedinglabs/seeding-backend/internal/models"
	"github.com/seedinglabs/seeding-backend/internal/utils"
)

type CollectionService struct {
	db *gorm.DB
}

type CreateCollectionRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type AccessCodeRequest struct {
	Code  string `json:"code" validate:"required,access_code"`
	Limit int    `json:"limit" validate:"required,min=1"`
}

type LookbookItemRequest struct {
	ID    string `json:"id,omitempty"`
	URL   string `json:"url" validate:"required,url"`
	Order int    `json:"order" validate:"min=0"`
}

type UpdateCollectionRequest struct {
	Name             *string               `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	LogoURL          *string               `json:"logo_url,omitempty"`
	DescriptionTitle *string               `json:"description_title,omitempty"`
	DescriptionBody  *string               `json:"description_body,omitempty"`
	AccessCodes      []AccessCodeRequest   `json:"access_codes,omitempty" validate:"omitempty,dive"`
	Lookbook         []LookbookItemRequest `json:"lookbook,omitempty" validate:"omitempty,dive"`
}

// PublicCollection is what an influencer session sees: no orders, no
// access codes.
type PublicCollection struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	LogoURL          string                `json:"logo_url,omitempty"`
	DescriptionTitle string                `json:"description_title"`
	DescriptionBody  string                `json:"description_body"`
	Lookbook         []models.LookbookItem `json:"lookbook"`
	Products         []models.Product      `json:"products"`
}

func NewCollectionService(db *gorm.DB) *CollectionService {
	return &CollectionService{db: db}
}

func loadCollection(db *gorm.DB, id uuid.UUID) (*models.Collection, error) {
	var collection models.Collection
	if err := db.First(&collection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("collection not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &collection, nil
}

func loadCollectionForUpdate(db *gorm.DB, id uuid.UUID) (*models.Collection, error) {
	var collection models.Collection
	if err := db.Set("gorm:query_option", "FOR UPDATE").
		First(&collection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("collection not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &collection, nil
}

func (s *CollectionService) ListCollections(params utils.PaginationParams) ([]models.Collection, int64, error) {
	query := s.db.Model(&models.Collection{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count collections: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "name"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var collections []models.Collection
	if err := query.Find(&collections).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch collections: %w", err)
	}

	return collections, total, nil
}

func (s *CollectionService) CreateCollection(req *CreateCollectionRequest) (*models.Collection, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	collection := &models.Collection{
		Name:        req.Name,
		AccessCodes: models.AccessCodeList{},
		Lookbook:    models.LookbookList{},
		Products:    models.ProductList{},
		Orders:      models.OrderList{},
	}

	if err := s.db.Create(collection).Error; err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	return collection, nil
}

func (s *CollectionService) GetCollection(id uuid.UUID) (*models.Collection, error) {
	return loadCollection(s.db, id)
}

// UpdateCollection applies the settings tab in one write: name, logo,
// description, access codes, and lookbook. Duplicate codes within the
// collection are rejected at write time; a code that also exists in
// another collection is allowed but logged, because login resolution will
// silently shadow one of them.
func (s *CollectionService) UpdateCollection(id uuid.UUID, req *UpdateCollectionRequest) (*models.Collection, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	collection, err := loadCollection(s.db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		collection.Name = *req.Name
	}
	if req.LogoURL != nil {
		collection.LogoURL = *req.LogoURL
	}
	if req.DescriptionTitle != nil {
		collection.DescriptionTitle = *req.DescriptionTitle
	}
	if req.DescriptionBody != nil {
		collection.DescriptionBody = *req.DescriptionBody
	}

	if req.AccessCodes != nil {
		codes, err := s.buildAccessCodes(id, req.AccessCodes)
		if err != nil {
			return nil, err
		}
		collection.AccessCodes = codes
	}

	if req.Lookbook != nil {
		lookbook := make(models.LookbookList, 0, len(req.Lookbook))
		for _, item := range req.Lookbook {
			if item.ID == "" {
				item.ID = utils.NewDocumentID()
			}
			lookbook = append(lookbook, models.LookbookItem{
				ID:    item.ID,
				URL:   item.URL,
				Order: item.Order,
			})
		}
		collection.Lookbook = lookbook
	}

	if err := s.db.Save(collection).Error; err != nil {
		return nil, fmt.Errorf("failed to save collection: %w", err)
	}

	return collection, nil
}

func (s *CollectionService) buildAccessCodes(id uuid.UUID, reqs []AccessCodeRequest) (models.AccessCodeList, error) {
	codes := make(models.AccessCodeList, 0, len(reqs))
	seen := make(map[string]bool, len(reqs))

	for _, r := range reqs {
		key := strings.ToUpper(strings.TrimSpace(r.Code))
		if seen[key] {
			return nil, fmt.Errorf("duplicate access code %q", r.Code)
		}
		seen[key] = true
		codes = append(codes, models.AccessCodeConfig{Code: r.Code, Limit: r.Limit})
	}

	// Cross-collection duplicates are legal but shadowed at login:
	// resolution stops at the first collection that defines the code.
	var others []models.Collection
	if err := s.db.Where("id <> ?", id).Find(&others).Error; err == nil {
		for _, other := range others {
			for _, ac := range other.AccessCodes {
				if seen[strings.ToUpper(strings.TrimSpace(ac.Code))] {
					logrus.WithFields(logrus.Fields{
						"code":                ac.Code,
						"other_collection_id": other.ID,
					}).Warn("Access code exists in another collection; login resolves first match only")
				}
			}
		}
	}

	return codes, nil
}

func (s *CollectionService) DeleteCollection(id uuid.UUID) error {
	collection, err := loadCollection(s.db, id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(collection).Error; err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	return nil
}

// PublicView strips the fields an influencer must not see.
func PublicView(collection *models.Collection) *PublicCollection {
	lookbook := collection.Lookbook
	if lookbook == nil {
		lookbook = models.LookbookList{}
	}
	products := collection.Products
	if products == nil {
		products = models.ProductList{}
	}

	return &PublicCollection{
		ID:               collection.ID.String(),
		Name:             collection.Name,
		LogoURL:          collection.LogoURL,
		DescriptionTitle: collection.DescriptionTitle,
		DescriptionBody:  collection.DescriptionBody,
		Lookbook:         lookbook,
		Products:         products,
	}
}
