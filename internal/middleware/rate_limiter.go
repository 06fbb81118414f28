package middleware

import (
	"os"
	"strconv"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/niloyahmadramjan/JobBasket-crud/internal/utilities"
)

func keyFunc(c *gin.Context) string {
	claims, err := utilities.ExtractClaims(c)
	if err != nil {
		return "ip: " + c.ClientIP()
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		return "email: " + email
	}
	return "ip: " + c.ClientIP()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.AbortWithStatusJSON(429, utilities.ErrorResponse{
		Error: "Too many requests. Please try again later.",
	})
}

// RateLimiterMiddleware limits each caller to reqPerSec requests per second,
// keyed on the verified token email when present, the client IP otherwise.
func RateLimiterMiddleware(reqPerSec uint) gin.HandlerFunc {

	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: reqPerSec,
	})

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		KeyFunc:      keyFunc,
		ErrorHandler: errorHandler,
	})
}

// EnvRateLimitMiddleware builds the rate limiter from
// RATE_LIMIT_REQUESTS_PER_SECOND, defaulting to 5.
func EnvRateLimitMiddleware() gin.HandlerFunc {

	rateLimitString := os.Getenv("RATE_LIMIT_REQUESTS_PER_SECOND")
	rateLimitInt, err := strconv.Atoi(rateLimitString)

	if err != nil {
		rateLimitInt = 5
	}

	if rateLimitInt <= 0 {
		rateLimitInt = 5
	}

	return RateLimiterMiddleware(uint(rateLimitInt))
}
