// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse type for swagger docs
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ExtractClaims extracts the verified token claims from Gin context.
// It does not abort the request; it returns an error when missing/invalid.
func ExtractClaims(c *gin.Context) (jwt.MapClaims, error) {
	raw, _ := c.Get("claims")
	if raw == nil {
		return nil, errors.New("Token claims not provided")
	}

	claims, ok := raw.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("Failed to assert type")
	}
	return claims, nil
}

// ObjectIDParam parses the named path parameter as an ObjectId. Malformed
// identifiers are rejected with a 400 response here, before any handler
// logic runs; the handler must return immediately when ok is false.
func ObjectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("Invalid %s parameter: %s", name, err.Error()),
		})
		return primitive.NilObjectID, false
	}
	return oid, true
}

// EnvBool reads a boolean environment variable, falling back when unset or
// unparsable.
func EnvBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
