// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogTabDelimited(t *testing.T) {
	products := ParseCatalog("Wool Coat\t189000\tsize{S|M|L}\tOversized fit")

	require.Len(t, products, 1)
	assert.Equal(t, "Wool Coat", products[0].Name)
	assert.Equal(t, int64(189000), products[0].Price)
	assert.Equal(t, []string{"S", "M", "L"}, products[0].Options)
	assert.Equal(t, "Oversized fit", products[0].Summary)
	assert.NotEmpty(t, products[0].ID)
	assert.Equal(t, []string{}, products[0].Images)
}

func TestParseCatalogCommaDelimited(t *testing.T) {
	products := ParseCatalog("Knit Beanie,25000,size{FREE},Ribbed")

	require.Len(t, products, 1)
	assert.Equal(t, "Knit Beanie", products[0].Name)
	assert.Equal(t, int64(25000), products[0].Price)
	assert.Equal(t, []string{"FREE"}, products[0].Options)
}

func TestParseCatalogSkipsHeaderAndBlankRows(t *testing.T) {
	raw := "상품\t가격\t옵션\t설명\n" +
		"\n" +
		"Wool Coat\t189000\n" +
		"\t5000\n"

	products := ParseCatalog(raw)

	require.Len(t, products, 1)
	assert.Equal(t, "Wool Coat", products[0].Name)
}

func TestParseCatalogUnparseablePriceFallsBackToZero(t *testing.T) {
	products := ParseCatalog("Tote Bag\tTBD\tsize{ONE}")

	require.Len(t, products, 1)
	assert.Equal(t, int64(0), products[0].Price)
}

func TestParseCatalogPriceWhitespace(t *testing.T) {
	products := ParseCatalog("Tote Bag\t 45000 ")

	require.Len(t, products, 1)
	assert.Equal(t, int64(45000), products[0].Price)
}

func TestParseCatalogMalformedOptionsIgnored(t *testing.T) {
	products := ParseCatalog("Socks\t8000\tS|M|L")

	require.Len(t, products, 1)
	assert.Equal(t, []string{}, products[0].Options)
}

func TestParseCatalogCRLFAndFreshIDs(t *testing.T) {
	products := ParseCatalog("Coat\t10000\r\nPants\t20000\r\n")

	require.Len(t, products, 2)
	assert.Equal(t, "Coat", products[0].Name)
	assert.Equal(t, "Pants", products[1].Name)
	assert.NotEqual(t, products[0].ID, products[1].ID)
}

func TestParseCatalogEmptyInput(t *testing.T) {
	assert.Empty(t, ParseCatalog(""))
	assert.Empty(t, ParseCatalog("\n\n\n"))
}
