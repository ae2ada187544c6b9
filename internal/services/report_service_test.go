// internal/services/report_service_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedinglabs/seeding-backend/internal/models"
)

func reportOrders() []models.Order {
	return []models.Order{
		{ID: "1", ProductName: "Wool Coat", Size: "M"},
		{ID: "2", ProductName: "Wool Coat", Size: "M"},
		{ID: "3", ProductName: "Wool Coat", Size: "L"},
		{ID: "4", ProductName: "Knit Beanie", Size: "FREE"},
		{ID: "5", ProductName: "", Size: ""},
	}
}

func TestProductDistribution(t *testing.T) {
	entries := ProductDistribution(reportOrders())

	require.Len(t, entries, 3)
	assert.Equal(t, "Wool Coat", entries[0].Name)
	assert.Equal(t, 3, entries[0].Count)
	assert.Equal(t, 60.0, entries[0].Percentage)

	// An empty product name shows up as Unknown
	names := []string{entries[0].Name, entries[1].Name, entries[2].Name}
	assert.Contains(t, names, "Unknown")
}

func TestProductDistributionPercentagesRounded(t *testing.T) {
	orders := []models.Order{
		{ID: "1", ProductName: "A"},
		{ID: "2", ProductName: "B"},
		{ID: "3", ProductName: "C"},
	}

	entries := ProductDistribution(orders)

	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, 33.3, e.Percentage)
	}
}

func TestProductDistributionEmpty(t *testing.T) {
	assert.Empty(t, ProductDistribution(nil))
}

func TestProductDistributionTieKeepsFirstSeenOrder(t *testing.T) {
	orders := []models.Order{
		{ID: "1", ProductName: "B"},
		{ID: "2", ProductName: "A"},
	}

	entries := ProductDistribution(orders)

	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].Name)
	assert.Equal(t, "A", entries[1].Name)
}

func TestSKURankingKeyAndOrder(t *testing.T) {
	entries := SKURanking(reportOrders())

	require.NotEmpty(t, entries)
	assert.Equal(t, "Wool Coat (M)", entries[0].Name)
	assert.Equal(t, 2, entries[0].Count)
	assert.Equal(t, 40.0, entries[0].Percentage)
}

func TestSKURankingTruncatesToTopTen(t *testing.T) {
	var orders []models.Order
	for i := 0; i < 15; i++ {
		orders = append(orders, models.Order{
			ID:          fmt.Sprintf("o%d", i),
			ProductName: fmt.Sprintf("Item %d", i),
			Size:        "M",
		})
	}

	entries := SKURanking(orders)

	assert.Len(t, entries, 10)
}
