// internal/tests/session_test.go
package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/seedinglabs/seeding-backend/internal/middleware"
	"github.com/seedinglabs/seeding-backend/internal/models"
	"github.com/seedinglabs/seeding-backend/internal/utils"
)

type SessionTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *SessionTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret")

	suite.router = gin.New()

	protected := suite.router.Group("/protected")
	protected.Use(middleware.AuthRequired())
	{
		protected.GET("/any", func(c *gin.Context) {
			role, _ := utils.GetRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"role": role})
		})
		protected.GET("/admin", middleware.AdminRequired(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		protected.GET("/collection", middleware.InfluencerRequired(), func(c *gin.Context) {
			collectionID, _ := utils.GetCollectionIDFromContext(c)
			c.JSON(http.StatusOK, gin.H{
				"collection_id": collectionID,
				"limit":         utils.GetSessionLimitFromContext(c),
			})
		})
	}
}

func (suite *SessionTestSuite) request(path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SessionTestSuite) adminToken() string {
	token, err := utils.GenerateSessionToken(string(models.SessionRoleAdmin), "", "", 0, 1)
	suite.Require().NoError(err)
	return token
}

func (suite *SessionTestSuite) influencerToken() string {
	token, err := utils.GenerateSessionToken(
		string(models.SessionRoleInfluencer),
		"7f9c2ba4-e88f-4a1a-9c1b-000000000001",
		"VIP25",
		3,
		1,
	)
	suite.Require().NoError(err)
	return token
}

func (suite *SessionTestSuite) TestMissingToken() {
	w := suite.request("/protected/any", "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *SessionTestSuite) TestMalformedToken() {
	w := suite.request("/protected/any", "not-a-jwt")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *SessionTestSuite) TestAdminTokenPassesAdminGuard() {
	w := suite.request("/protected/admin", suite.adminToken())
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SessionTestSuite) TestInfluencerTokenFailsAdminGuard() {
	w := suite.request("/protected/admin", suite.influencerToken())
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *SessionTestSuite) TestAdminTokenFailsInfluencerGuard() {
	w := suite.request("/protected/collection", suite.adminToken())
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *SessionTestSuite) TestInfluencerTokenCarriesScope() {
	w := suite.request("/protected/collection", suite.influencerToken())
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "7f9c2ba4-e88f-4a1a-9c1b-000000000001")
	assert.Contains(suite.T(), w.Body.String(), `"limit":3`)
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}
