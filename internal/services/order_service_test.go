// internal/services/order_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedinglabs/seeding-backend/internal/models"
)

var testNow = time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)

func testOrders() []models.Order {
	return []models.Order{
		{ID: "ord1", Status: models.OrderStatusPreparing, Date: "2025. 11. 1.", InstagramID: "@mina", Name: "Mina", Phone: "010-1111-2222", Address: "Seoul", ProductName: "Wool Coat", Size: "M"},
		{ID: "ord2", Status: models.OrderStatusPreparing, Date: "2025. 11. 2.", InstagramID: "@joon", Name: "Joon", Phone: "010-3333-4444", Address: "Busan", ProductName: "Knit Beanie", Size: "FREE"},
	}
}

func TestBuildOrderBatch(t *testing.T) {
	req := &SubmitOrdersRequest{
		Lines: []OrderLineRequest{
			{ProductName: "Wool Coat", Size: "M"},
			{ProductName: "Knit Beanie", Size: "FREE"},
		},
		InstagramID: "@mina",
		Name:        "Mina",
		Phone:       "010-1111-2222",
		Address:     "Seoul",
		Message:     "leave at door",
		Agreed:      true,
	}

	batch := BuildOrderBatch(req, testNow)

	require.Len(t, batch, 2)
	assert.NotEqual(t, batch[0].ID, batch[1].ID)
	for _, o := range batch {
		assert.Equal(t, models.OrderStatusPreparing, o.Status)
		assert.Equal(t, "2025. 11. 3.", o.Date)
		assert.Equal(t, "@mina", o.InstagramID)
		assert.Equal(t, "leave at door", o.Message)
		assert.Empty(t, o.ShippedDate)
	}
	assert.Equal(t, "Wool Coat", batch[0].ProductName)
	assert.Equal(t, "FREE", batch[1].Size)
}

func TestAddOrdersLeavesInputUntouched(t *testing.T) {
	orders := testOrders()
	batch := []models.Order{{ID: "ord3", ProductName: "Tote Bag"}}

	next := AddOrders(orders, batch)

	assert.Len(t, next, 3)
	assert.Len(t, orders, 2)
	assert.Equal(t, "ord3", next[2].ID)
}

func TestUpdateOrderFieldStatusShippedStampsDate(t *testing.T) {
	next := UpdateOrderField(testOrders(), "ord1", "status", "Shipped", testNow)

	assert.Equal(t, models.OrderStatusShipped, next[0].Status)
	assert.Equal(t, "2025. 11. 3.", next[0].ShippedDate)
	assert.Equal(t, models.OrderStatusPreparing, next[1].Status)
}

func TestUpdateOrderFieldStatusPreparingKeepsShippedDate(t *testing.T) {
	orders := testOrders()
	orders[0].Status = models.OrderStatusShipped
	orders[0].ShippedDate = "2025. 11. 2."

	next := UpdateOrderField(orders, "ord1", "status", "Preparing", testNow)

	assert.Equal(t, models.OrderStatusPreparing, next[0].Status)
	assert.Equal(t, "2025. 11. 2.", next[0].ShippedDate)
}

func TestUpdateOrderFieldPlainFields(t *testing.T) {
	next := UpdateOrderField(testOrders(), "ord2", "adminMemo", "call first", testNow)
	assert.Equal(t, "call first", next[1].AdminMemo)

	next = UpdateOrderField(next, "ord2", "size", "L", testNow)
	assert.Equal(t, "L", next[1].Size)
}

func TestUpdateOrderFieldMissingIDOrUnknownFieldIsNoop(t *testing.T) {
	orders := testOrders()

	assert.Equal(t, orders, UpdateOrderField(orders, "missing", "name", "X", testNow))
	assert.Equal(t, orders, UpdateOrderField(orders, "ord1", "nonsense", "X", testNow))
}

func TestBulkOrderStatusShippedAndBack(t *testing.T) {
	next := BulkOrderStatus(testOrders(), []string{"ord1", "ord2"}, models.OrderStatusShipped, testNow)

	for _, o := range next {
		assert.Equal(t, models.OrderStatusShipped, o.Status)
		assert.Equal(t, "2025. 11. 3.", o.ShippedDate)
	}

	// The bulk path is symmetric: reverting clears the stamp
	next = BulkOrderStatus(next, []string{"ord1", "ord2"}, models.OrderStatusPreparing, testNow)

	for _, o := range next {
		assert.Equal(t, models.OrderStatusPreparing, o.Status)
		assert.Empty(t, o.ShippedDate)
	}
}

func TestBulkOrderStatusIgnoresUnknownIDs(t *testing.T) {
	next := BulkOrderStatus(testOrders(), []string{"ord1", "ghost"}, models.OrderStatusShipped, testNow)

	assert.Equal(t, models.OrderStatusShipped, next[0].Status)
	assert.Equal(t, models.OrderStatusPreparing, next[1].Status)
}

func TestDuplicateOrder(t *testing.T) {
	next, dup := DuplicateOrder(testOrders(), "ord2")

	require.NotNil(t, dup)
	require.Len(t, next, 3)

	// The copy goes to the front with a fresh id and a manual entry marker
	assert.Equal(t, dup.ID, next[0].ID)
	assert.NotEqual(t, "ord2", dup.ID)
	assert.Equal(t, models.ManualEntryDate, dup.Date)
	assert.Empty(t, dup.ProductName)
	assert.Empty(t, dup.Size)

	// Customer and delivery fields carry over
	assert.Equal(t, "@joon", dup.InstagramID)
	assert.Equal(t, "Busan", dup.Address)

	// The source row is untouched
	assert.Equal(t, "Knit Beanie", next[2].ProductName)
}

func TestDuplicateOrderMissingID(t *testing.T) {
	orders := testOrders()
	next, dup := DuplicateOrder(orders, "ghost")

	assert.Nil(t, dup)
	assert.Equal(t, orders, next)
}

func TestRemoveOrder(t *testing.T) {
	next := RemoveOrder(testOrders(), "ord1")

	require.Len(t, next, 1)
	assert.Equal(t, "ord2", next[0].ID)

	// Missing id is a no-op
	assert.Len(t, RemoveOrder(next, "ghost"), 1)
}
