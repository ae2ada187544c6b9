// internal/services/report_service.go
package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/seedinglabs/seeding-backend/internal/models"
)

// unknownProductLabel replaces an empty product name in distribution
// reports so manually added rows still aggregate somewhere visible.
const unknownProductLabel = "Unknown"

const skuRankingLimit = 10

type ReportService struct {
	db *gorm.DB
}

type ReportEntry struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type CollectionReport struct {
	TotalOrders         int           `json:"total_orders"`
	ProductDistribution []ReportEntry `json:"product_distribution"`
	SKURanking          []ReportEntry `json:"sku_ranking"`
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// ProductDistribution groups orders by product name and ranks them by
// count. Percentages are over the full order count (denominator clamped to
// 1 for an empty set) rounded to one decimal. Ties keep first-seen order.
func ProductDistribution(orders []models.Order) []ReportEntry {
	entries := aggregate(orders, func(o models.Order) string {
		return o.ProductName
	})

	for i := range entries {
		if entries[i].Name == "" {
			entries[i].Name = unknownProductLabel
		}
	}

	return entries
}

// SKURanking groups orders by the product-and-size combination and returns
// the top 10 by count.
func SKURanking(orders []models.Order) []ReportEntry {
	entries := aggregate(orders, func(o models.Order) string {
		return fmt.Sprintf("%s (%s)", o.ProductName, o.Size)
	})

	if len(entries) > skuRankingLimit {
		entries = entries[:skuRankingLimit]
	}

	return entries
}

func aggregate(orders []models.Order, key func(models.Order) string) []ReportEntry {
	counts := make(map[string]int)
	var seen []string

	for _, o := range orders {
		k := key(o)
		if _, ok := counts[k]; !ok {
			seen = append(seen, k)
		}
		counts[k]++
	}

	denominator := len(orders)
	if denominator == 0 {
		denominator = 1
	}

	entries := make([]ReportEntry, 0, len(seen))
	for _, k := range seen {
		count := counts[k]
		entries = append(entries, ReportEntry{
			Name:       k,
			Count:      count,
			Percentage: roundPercentage(100 * float64(count) / float64(denominator)),
		})
	}

	// Stable keeps first-seen order among equal counts
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	return entries
}

func roundPercentage(p float64) float64 {
	return math.Round(p*10) / 10
}

func (s *ReportService) CollectionReport(collectionID uuid.UUID) (*CollectionReport, error) {
	collection, err := loadCollection(s.db, collectionID)
	if err != nil {
		return nil, err
	}

	return &CollectionReport{
		TotalOrders:         len(collection.Orders),
		ProductDistribution: ProductDistribution(collection.Orders),
		SKURanking:          SKURanking(collection.Orders),
	}, nil
}
