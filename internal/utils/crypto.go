// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"math/big"
)

func GenerateRandomString(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

// NewDocumentID returns a 9-character base-36 id for document entries
// (products, orders, lookbook items). Row-level records use UUID primary
// keys; documents keep the short opaque shape of the data they were
// migrated from.
func NewDocumentID() string {
	id, err := GenerateRandomString(9)
	if err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; there is no useful recovery at a call site.
		panic(err)
	}
	return id
}
