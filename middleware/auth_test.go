// api/middleware/auth_test.go
package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	logger "github.com/muralehq/murale/api/logging"
)

func signedTestToken(t *testing.T, key *rsa.PrivateKey, kid, subject string) string {
	t.Helper()
	claims := BackendClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email: "shopper@example.com",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid

	signed, err := token.SignedString(key)
	assert.NoError(t, err)
	return signed
}

func jwksServer(t *testing.T, key *rsa.PrivateKey, kid string) *httptest.Server {
	t.Helper()
	n := base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes())
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"keys":[{"kty":"RSA","use":"sig","alg":"RS256","kid":"%s","n":"%s","e":"AQAB"}]}`, kid, n)
	}))
}

func TestAuthMiddleware(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.NoError(t, err)

	server := jwksServer(t, key, "test-kid")
	defer server.Close()

	viper.Set("auth.jwksURL", server.URL)
	viper.Set("auth.issuer", "")
	viper.Set("auth.audience", "")
	defer func() {
		jwksMu.Lock()
		jwksKeys = nil
		jwksFetchedAt = time.Time{}
		jwksMu.Unlock()
	}()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware())

	var userID, requestingUserID string
	router.GET("/ping", func(c *gin.Context) {
		userID = c.GetString("userID")
		// The services and DAO audit hooks read the subject through
		// ctx.Value, so the middleware must publish it under this key too.
		requestingUserID, _ = c.Value("requestingUserID").(string)
		c.Status(http.StatusOK)
	})

	t.Run("ValidToken_SetsAuditIdentity", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+signedTestToken(t, key, "test-kid", "user-42"))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-42", userID)
		assert.Equal(t, "user-42", requestingUserID)
	})

	t.Run("MissingToken_Rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("UnknownKid_Rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+signedTestToken(t, key, "other-kid", "user-42"))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
