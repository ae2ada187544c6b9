// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/seedinglabs/seeding-backend/internal/database"
	"github.com/seedinglabs/seeding-backend/internal/models"
	"github.com/seedinglabs/seeding-backend/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

type OrderLineRequest struct {
	ProductName string `json:"product_name" validate:"required"`
	Size        string `json:"size"`
}

type SubmitOrdersRequest struct {
	Lines             []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
	InstagramID       string             `json:"instagram_id" validate:"required"`
	Name              string             `json:"name" validate:"required"`
	Phone             string             `json:"phone" validate:"required"`
	Address           string             `json:"address" validate:"required"`
	Message           string             `json:"message,omitempty"`
	AdditionalRequest string             `json:"additional_request,omitempty"`
	Agreed            bool               `json:"agreed"`
}

type UpdateOrderFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type BulkStatusRequest struct {
	OrderIDs []string           `json:"order_ids" validate:"required,min=1"`
	Status   models.OrderStatus `json:"status" validate:"required,oneof=Preparing Shipped"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// The ledger operations below are pure: they take an order sequence and
// return a new one, leaving the input untouched. Persisting the result back
// onto the owning collection is the caller's job.

// AddOrders appends a batch of pre-built orders. No deduplication.
func AddOrders(orders []models.Order, batch []models.Order) []models.Order {
	next := make([]models.Order, 0, len(orders)+len(batch))
	next = append(next, orders...)
	next = append(next, batch...)
	return next
}

// UpdateOrderField sets a single field by its JSON key on the order with the
// matching id. Setting status to Shipped also stamps shippedDate; setting it
// back to Preparing through this path does NOT clear shippedDate, only the
// bulk path is symmetric. Missing ids and unknown fields change nothing.
func UpdateOrderField(orders []models.Order, orderID, field, value string, now time.Time) []models.Order {
	next := make([]models.Order, len(orders))
	copy(next, orders)

	for i := range next {
		if next[i].ID != orderID {
			continue
		}

		switch field {
		case "status":
			next[i].Status = models.OrderStatus(value)
			if models.OrderStatus(value) == models.OrderStatusShipped {
				next[i].ShippedDate = models.FormatOrderDate(now)
			}
		case "date":
			next[i].Date = value
		case "instagramId":
			next[i].InstagramID = value
		case "name":
			next[i].Name = value
		case "phone":
			next[i].Phone = value
		case "address":
			next[i].Address = value
		case "message":
			next[i].Message = value
		case "additionalRequest":
			next[i].AdditionalRequest = value
		case "productName":
			next[i].ProductName = value
		case "size":
			next[i].Size = value
		case "adminMemo":
			next[i].AdminMemo = value
		case "shippedDate":
			next[i].ShippedDate = value
		}
		break
	}

	return next
}

// BulkOrderStatus sets the status on every order whose id is in the set.
// Shipped stamps all of them with the same date string; Preparing clears
// shippedDate on all of them.
func BulkOrderStatus(orders []models.Order, orderIDs []string, status models.OrderStatus, now time.Time) []models.Order {
	selected := make(map[string]bool, len(orderIDs))
	for _, id := range orderIDs {
		selected[id] = true
	}

	stamp := ""
	if status == models.OrderStatusShipped {
		stamp = models.FormatOrderDate(now)
	}

	next := make([]models.Order, len(orders))
	copy(next, orders)

	for i := range next {
		if !selected[next[i].ID] {
			continue
		}
		next[i].Status = status
		next[i].ShippedDate = stamp
	}

	return next
}

// DuplicateOrder prepends a copy of the order with a fresh id, the manual
// entry marker in place of its date, and productName/size cleared for
// re-entry. Customer and delivery fields are copied verbatim. Returns the
// input unchanged (and nil) when the id is absent.
func DuplicateOrder(orders []models.Order, orderID string) ([]models.Order, *models.Order) {
	for _, o := range orders {
		if o.ID != orderID {
			continue
		}

		duplicate := o
		duplicate.ID = utils.NewDocumentID()
		duplicate.Date = models.ManualEntryDate
		duplicate.ProductName = ""
		duplicate.Size = ""

		next := make([]models.Order, 0, len(orders)+1)
		next = append(next, duplicate)
		next = append(next, orders...)
		return next, &duplicate
	}

	return orders, nil
}

// RemoveOrder deletes the order with the matching id; no-op when absent.
func RemoveOrder(orders []models.Order, orderID string) []models.Order {
	next := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.ID != orderID {
			next = append(next, o)
		}
	}
	return next
}

// BuildOrderBatch turns a submission into one order per cart line, all
// sharing the delivery info, each with a fresh id, Preparing status, and
// the same creation date string.
func BuildOrderBatch(req *SubmitOrdersRequest, now time.Time) []models.Order {
	batch := make([]models.Order, 0, len(req.Lines))
	date := models.FormatOrderDate(now)

	for _, line := range req.Lines {
		batch = append(batch, models.Order{
			ID:                utils.NewDocumentID(),
			Status:            models.OrderStatusPreparing,
			Date:              date,
			InstagramID:       req.InstagramID,
			Name:              req.Name,
			Phone:             req.Phone,
			Address:           req.Address,
			Message:           req.Message,
			AdditionalRequest: req.AdditionalRequest,
			ProductName:       line.ProductName,
			Size:              line.Size,
		})
	}

	return batch
}

func (s *OrderService) ListOrders(collectionID uuid.UUID) ([]models.Order, error) {
	collection, err := loadCollection(s.db, collectionID)
	if err != nil {
		return nil, err
	}
	return collection.Orders, nil
}

// SubmitOrders appends a submission batch to the collection's ledger inside
// a transaction so the read-modify-write of the document column is atomic.
func (s *OrderService) SubmitOrders(collectionID uuid.UUID, req *SubmitOrdersRequest) ([]models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.Agreed {
		return nil, errors.New("terms not agreed")
	}

	batch := BuildOrderBatch(req, time.Now())

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		collection, err := loadCollectionForUpdate(tx, collectionID)
		if err != nil {
			return err
		}

		collection.Orders = AddOrders(collection.Orders, batch)
		if err := tx.Save(collection).Error; err != nil {
			return fmt.Errorf("failed to save collection: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"collection_id": collectionID,
		"orders":        len(batch),
	}).Info("Order batch submitted")

	return batch, nil
}

func (s *OrderService) UpdateOrderField(collectionID uuid.UUID, orderID string, req *UpdateOrderFieldRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	collection, err := loadCollection(s.db, collectionID)
	if err != nil {
		return err
	}

	collection.Orders = UpdateOrderField(collection.Orders, orderID, req.Field, req.Value, time.Now())
	if err := s.db.Save(collection).Error; err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}

	return nil
}

func (s *OrderService) BulkStatus(collectionID uuid.UUID, req *BulkStatusRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	collection, err := loadCollection(s.db, collectionID)
	if err != nil {
		return err
	}

	collection.Orders = BulkOrderStatus(collection.Orders, req.OrderIDs, req.Status, time.Now())
	if err := s.db.Save(collection).Error; err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}

	return nil
}

func (s *OrderService) Duplicate(collectionID uuid.UUID, orderID string) (*models.Order, error) {
	collection, err := loadCollection(s.db, collectionID)
	if err != nil {
		return nil, err
	}

	next, duplicate := DuplicateOrder(collection.Orders, orderID)
	if duplicate == nil {
		return nil, errors.New("order not found")
	}

	collection.Orders = next
	if err := s.db.Save(collection).Error; err != nil {
		return nil, fmt.Errorf("failed to save collection: %w", err)
	}

	return duplicate, nil
}

func (s *OrderService) Remove(collectionID uuid.UUID, orderID string) error {
	collection, err := loadCollection(s.db, collectionID)
	if err != nil {
		return err
	}

	collection.Orders = RemoveOrder(collection.Orders, orderID)
	if err := s.db.Save(collection).Error; err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}

	return nil
}
