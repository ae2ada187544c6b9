// internal/services/export_service_test.go
package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedinglabs/seeding-backend/internal/models"
)

func TestEncodeShippingLayout(t *testing.T) {
	orders := []models.Order{
		{ID: "ord1", InstagramID: "@mina", Name: "Mina", Phone: "010-1111-2222", Address: "Seoul Mapo-gu", ProductName: "Wool Coat", Size: "M", Message: "leave at door"},
	}

	out := EncodeShipping(orders, true)

	require.True(t, strings.HasPrefix(out, "\uFEFF"))

	lines := strings.Split(strings.TrimPrefix(out, "\uFEFF"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, ShippingExportHeader, lines[0])
	assert.Equal(t, "@mina,Mina,010-1111-2222,,,Seoul Mapo-gu,Wool Coat,M,1,leave at door", lines[1])
}

func TestEncodeShippingQuantityAlwaysOne(t *testing.T) {
	orders := []models.Order{
		{ID: "a", ProductName: "Coat"},
		{ID: "b", ProductName: "Coat"},
	}

	out := EncodeShipping(orders, false)

	for _, line := range strings.Split(strings.TrimPrefix(out, "\uFEFF"), "\n") {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 10)
		assert.Equal(t, "1", fields[8])
		assert.Empty(t, fields[3])
		assert.Empty(t, fields[4])
	}
}

func TestEncodeShippingFoldsNewlines(t *testing.T) {
	orders := []models.Order{
		{ID: "a", Name: "Mina", Message: "first floor\r\nring twice"},
	}

	out := EncodeShipping(orders, false)

	lines := strings.Split(strings.TrimPrefix(out, "\uFEFF"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "first floor ring twice")
}

func TestEncodeShippingNoTrailingNewline(t *testing.T) {
	orders := []models.Order{{ID: "a"}, {ID: "b"}}

	out := EncodeShipping(orders, true)

	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestEncodeShippingEmpty(t *testing.T) {
	assert.Equal(t, "\uFEFF"+ShippingExportHeader+"\n", EncodeShipping(nil, true))
	assert.Equal(t, "\uFEFF", EncodeShipping(nil, false))
}

func TestShippingFileName(t *testing.T) {
	name := ShippingFileName("25FW", time.Date(2025, 11, 3, 15, 4, 5, 0, time.UTC))
	assert.Equal(t, "shipping_25FW_2025-11-03.csv", name)
}
