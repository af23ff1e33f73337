package token

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("unit-test-secret")

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	tokenString, err := GenerateToken(userID, "Ada Lovelace", "ada@example.com", "volunteer", testSecret, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := ValidateToken(tokenString, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "Ada Lovelace", claims.Name)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "volunteer", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tokenString, err := GenerateToken(uuid.New(), "Ada", "ada@example.com", "donor", testSecret, time.Hour)
	assert.NoError(t, err)

	_, err = ValidateToken(tokenString, []byte("a-different-secret"))
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	tokenString, err := GenerateToken(uuid.New(), "Ada", "ada@example.com", "donor", testSecret, -time.Minute)
	assert.NoError(t, err)

	_, err = ValidateToken(tokenString, testSecret)
	assert.Error(t, err)
}

func TestExtractToken_FromHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer some-token")

	token, err := ExtractToken(c)
	assert.NoError(t, err)
	assert.Equal(t, "some-token", token)
}

func TestExtractToken_FromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodGet, "/?token=query-token", nil)

	token, err := ExtractToken(c)
	assert.NoError(t, err)
	assert.Equal(t, "query-token", token)
}

func TestExtractToken_MissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)

	_, err := ExtractToken(c)
	assert.ErrorIs(t, err, ErrAuthHeaderMissing)
}

func TestExtractToken_BadScheme(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	_, err := ExtractToken(c)
	assert.ErrorIs(t, err, ErrInvalidAuthFormat)
}
