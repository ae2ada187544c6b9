// internal/services/access_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedinglabs/seeding-backend/internal/models"
)

func testAdminConfig() *models.AdminConfig {
	return &models.AdminConfig{
		Password:       "SECRET9",
		RecoveryPhrase: "nuuanu",
	}
}

func testCollection(name string, codes ...models.AccessCodeConfig) models.Collection {
	return models.Collection{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        name,
		AccessCodes: models.AccessCodeList(codes),
	}
}

func TestResolveAccessCodeAdmin(t *testing.T) {
	session := ResolveAccessCode("SECRET9", testAdminConfig(), nil)
	require.NotNil(t, session)
	assert.Equal(t, models.SessionRoleAdmin, session.Role)
	assert.Empty(t, session.CollectionID)
	assert.Zero(t, session.Limit)
}

func TestResolveAccessCodeNormalizesInput(t *testing.T) {
	collections := []models.Collection{
		testCollection("25FW", models.AccessCodeConfig{Code: "VIP25", Limit: 3}),
	}

	for _, input := range []string{"vip25", "  VIP25  ", "Vip25", "\tvip25\n"} {
		session := ResolveAccessCode(input, testAdminConfig(), collections)
		require.NotNil(t, session, "input %q should resolve", input)
		assert.Equal(t, models.SessionRoleInfluencer, session.Role)
		assert.Equal(t, "VIP25", session.AccessCode)
		assert.Equal(t, 3, session.Limit)
	}
}

func TestResolveAccessCodeAdminPrecedence(t *testing.T) {
	// A collection code identical to the admin password never wins
	collections := []models.Collection{
		testCollection("25FW", models.AccessCodeConfig{Code: "SECRET9", Limit: 5}),
	}

	session := ResolveAccessCode("secret9", testAdminConfig(), collections)
	require.NotNil(t, session)
	assert.Equal(t, models.SessionRoleAdmin, session.Role)
	assert.Empty(t, session.CollectionID)
}

func TestResolveAccessCodeFirstMatchWins(t *testing.T) {
	first := testCollection("25FW", models.AccessCodeConfig{Code: "SHARED", Limit: 2})
	second := testCollection("26SS", models.AccessCodeConfig{Code: "SHARED", Limit: 9})

	session := ResolveAccessCode("shared", testAdminConfig(), []models.Collection{first, second})
	require.NotNil(t, session)
	assert.Equal(t, first.ID.String(), session.CollectionID)
	assert.Equal(t, 2, session.Limit)
}

func TestResolveAccessCodeNoMatch(t *testing.T) {
	collections := []models.Collection{
		testCollection("25FW", models.AccessCodeConfig{Code: "VIP25", Limit: 3}),
	}

	assert.Nil(t, ResolveAccessCode("NOPE", testAdminConfig(), collections))
	assert.Nil(t, ResolveAccessCode("", testAdminConfig(), collections))
}

func TestResetAdminPassword(t *testing.T) {
	cfg := testAdminConfig()

	assert.False(t, ResetAdminPassword("wrong", cfg))
	assert.Equal(t, "SECRET9", cfg.Password)

	assert.True(t, ResetAdminPassword("  NUUANU ", cfg))
	assert.Equal(t, models.DefaultAdminPassword, cfg.Password)
}
