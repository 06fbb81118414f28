// Package middleware contain utilities middleware code
package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/niloyahmadramjan/JobBasket-crud/internal/auth"
	"github.com/niloyahmadramjan/JobBasket-crud/internal/utilities"
)

// VerifyToken is a middleware that reads the portal token cookie, verifies
// it, and attaches the decoded claims to the request context. Requests
// without a cookie or with an invalid/expired token are rejected with 401.
func VerifyToken() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := ctx.Cookie(auth.TokenCookieName)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "unauthorized access",
			})
			return
		}

		token, err := auth.ValidatedToken(tokenString)

		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
					Error: "Access token expired",
				})
				return
			}

			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to validate token: %s", err.Error()),
			})
			return
		}

		if !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Invalid access token",
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{
				Error: "Invalid token claims",
			})
			return
		}

		ctx.Set("claims", claims)
		ctx.Next()
	}
}
