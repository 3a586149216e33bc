package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the user id plus issue time in epoch millis.
type Claims struct {
	UserID    string `json:"userId"`
	Timestamp int64  `json:"timestamp"`
	jwt.RegisteredClaims
}

// GenerateToken issues a bearer token for a user id. The token is deliberately
// unsigned: it is a reversible session placeholder, not a security boundary.
func GenerateToken(userID string) (string, error) {
	claims := Claims{
		UserID:    userID,
		Timestamp: time.Now().UnixMilli(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	return token.SignedString(jwt.UnsafeAllowNoneSignatureType)
}

// VerifyToken decodes a token and returns the embedded user id.
func VerifyToken(tokenStr string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return jwt.UnsafeAllowNoneSignatureType, nil
	}, jwt.WithValidMethods([]string{"none"}))
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

// AuthRequired validates the bearer token and injects the user id into context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := VerifyToken(tokenStr)
		if err != nil || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

// GetUserID extracts the caller's user id from context.
func GetUserID(c *gin.Context) string {
	val, _ := c.Get("userID")
	id, _ := val.(string)
	return id
}
