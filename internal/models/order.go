// internal/models/order.go
package models

import (
	"database/sql/driver"
	"time"
)

// OrderDateLayout renders creation and shipping dates the way the Korean
// storefront did (ko-KR locale short date).
const OrderDateLayout = "2006. 1. 2."

// ManualEntryDate marks an order row that was duplicated by an admin for
// manual re-entry instead of being created by a submission.
const ManualEntryDate = "추가 제품"

// Order is a single submitted line item. Date and ShippedDate are plain
// display strings; ShippedDate empty means not shipped. JSON keys stay
// camelCase for compatibility with data exported from the legacy
// storefront.
type Order struct {
	ID                string      `json:"id"`
	Status            OrderStatus `json:"status"`
	Date              string      `json:"date"`
	InstagramID       string      `json:"instagramId"`
	Name              string      `json:"name"`
	Phone             string      `json:"phone"`
	Address           string      `json:"address"`
	Message           string      `json:"message,omitempty"`
	AdditionalRequest string      `json:"additionalRequest,omitempty"`
	ProductName       string      `json:"productName"`
	Size              string      `json:"size"`
	AdminMemo         string      `json:"adminMemo,omitempty"`
	ShippedDate       string      `json:"shippedDate,omitempty"`
}

type OrderList []Order

func (l OrderList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *OrderList) Scan(value interface{}) error { return jsonbScan(l, value) }

func FormatOrderDate(t time.Time) string {
	return t.Format(OrderDateLayout)
}
