package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/FAMH/Collection-Gateway/src/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var secretKey string

func SetSecretKey(key string) {
	secretKey = key
}

func GetSecretKey() string {
	return secretKey
}

// authContextKey is where AuthMiddleware stores the decoded identity.
const authContextKey = "authContext"

// Auth returns the identity AuthMiddleware stored on the request context.
func Auth(ctx *gin.Context) models.AuthContext {
	if value, ok := ctx.Get(authContextKey); ok {
		if auth, ok := value.(models.AuthContext); ok {
			return auth
		}
	}
	return models.AuthContext{}
}

func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Gets the authorization header
		authHeader := strings.TrimSpace(ctx.GetHeader("Authorization"))
		if authHeader == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			ctx.Abort()
			return
		}

		// Divides the header into Bearer and Token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			ctx.Abort()
			return
		}

		// Verifies the JWT token
		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		})

		// Checks if the token is valid
		if err != nil || !token.Valid {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			ctx.Abort()
			return
		}

		// Adds expiration validation for the token
		if exp, ok := claims["exp"].(float64); ok {
			if time.Now().Unix() > int64(exp) {
				ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
				ctx.Abort()
				return
			}
		}

		auth := models.AuthContext{}
		if id, ok := claims["id"].(float64); ok {
			auth.UserID = int(id)
		}
		if username, ok := claims["username"].(string); ok {
			auth.Username = username
		}
		if role, ok := claims["role"].(string); ok {
			auth.Role = role
		}

		ctx.Set(authContextKey, auth)
		ctx.Next()
	}
}

// RequireRoles rejects requests whose identity carries none of the given
// roles. Use after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		auth := Auth(ctx)
		for _, role := range roles {
			if auth.Role == role {
				ctx.Next()
				return
			}
		}
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		ctx.Abort()
	}
}
