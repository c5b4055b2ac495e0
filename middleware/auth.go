// api/middleware/auth.go

package middleware

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/muralehq/murale/api/config"
	logger "github.com/muralehq/murale/api/logging"
)

type JSONWebKey struct {
	Kty string `json:"kty"`
	E   string `json:"e"`
	Use string `json:"use"`
	Kid string `json:"kid"`
	Alg string `json:"alg"`
	N   string `json:"n"`
}

type Jwks struct {
	Keys []JSONWebKey `json:"keys"`
}

// BackendClaims are the claims issued by the managed backend's auth service.
type BackendClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

var (
	jwksMu        sync.RWMutex
	jwksKeys      map[string]*rsa.PublicKey
	jwksFetchedAt time.Time
)

const jwksCacheTTL = time.Hour

// getBackendPublicKey fetches (and caches) the managed backend's JWKS and
// returns the key matching kid.
func getBackendPublicKey(kid string) (*rsa.PublicKey, error) {
	jwksMu.RLock()
	if time.Since(jwksFetchedAt) < jwksCacheTTL {
		if key, ok := jwksKeys[kid]; ok {
			jwksMu.RUnlock()
			return key, nil
		}
	}
	jwksMu.RUnlock()

	jwksURL := config.GetString("auth.jwksURL")
	resp, err := http.Get(jwksURL)
	if err != nil {
		logger.Error("Failed to fetch JWKS", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("Received non-OK HTTP status from JWKS endpoint", zap.Int("statusCode", resp.StatusCode))
		return nil, fmt.Errorf("received non-OK HTTP status from JWKS endpoint: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("Failed to read JWKS response body", zap.Error(err))
		return nil, err
	}

	var jwks Jwks
	if err := json.Unmarshal(body, &jwks); err != nil {
		logger.Error("Failed to unmarshal JWKS JSON", zap.Error(err))
		return nil, err
	}

	if len(jwks.Keys) == 0 {
		logger.Error("No keys found in JWKS")
		return nil, fmt.Errorf("no keys found in JWKS")
	}

	keys := make(map[string]*rsa.PublicKey, len(jwks.Keys))
	for _, key := range jwks.Keys {
		nBytes, err := base64.RawURLEncoding.DecodeString(key.N)
		if err != nil {
			logger.Error("Failed to decode modulus", zap.Error(err), zap.String("kid", key.Kid))
			continue
		}
		eBytes, err := base64.RawURLEncoding.DecodeString(key.E)
		if err != nil {
			logger.Error("Failed to decode exponent", zap.Error(err), zap.String("kid", key.Kid))
			continue
		}
		keys[key.Kid] = &rsa.PublicKey{
			N: new(big.Int).SetBytes(nBytes),
			E: int(new(big.Int).SetBytes(eBytes).Int64()),
		}
	}

	jwksMu.Lock()
	jwksKeys = keys
	jwksFetchedAt = time.Now()
	jwksMu.Unlock()

	key, ok := keys[kid]
	if !ok {
		return nil, fmt.Errorf("no JWKS key matching kid %q", kid)
	}
	return key, nil
}

// AuthMiddleware validates the managed backend's bearer token and puts the
// authenticated user ID on the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			logger.Warn("No Authorization token provided")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := parseBackendToken(tokenString)
		if err != nil {
			logger.Error("Error parsing token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set("userID", claims.Subject)
		// Audit hooks read the subject from the request context under this key.
		c.Set("requestingUserID", claims.Subject)
		if claims.Email != "" {
			c.Set("userEmail", claims.Email)
		}

		c.Next()
	}
}

func parseBackendToken(tokenString string) (*BackendClaims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256"}),
	}
	if issuer := config.GetString("auth.issuer"); issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(issuer))
	}
	if audience := config.GetString("auth.audience"); audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &BackendClaims{}, func(token *jwt.Token) (interface{}, error) {
		kid, _ := token.Header["kid"].(string)
		return getBackendPublicKey(kid)
	}, parserOpts...)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*BackendClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token or wrong claims type")
	}
	return claims, nil
}
