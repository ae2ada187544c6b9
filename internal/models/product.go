// internal/models/product.go
package models

import "database/sql/driver"

// Product is a catalog entry inside a collection document. Prices are kept
// in the smallest currency unit (KRW has no subunit, so the integer is the
// sticker price). JSON keys stay camelCase for compatibility with data
// exported from the legacy storefront.
type Product struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Price   int64    `json:"price"`
	Options []string `json:"options"`
	Summary string   `json:"summary"`
	Images  []string `json:"images"`
}

type ProductList []Product

func (l ProductList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *ProductList) Scan(value interface{}) error { return jsonbScan(l, value) }
