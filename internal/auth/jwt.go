// Package auth implements token issuance and verification for the portal.
package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// TokenCookieName is the cookie that carries the portal access token.
const TokenCookieName = "tokenJobPortal"

const tokenValidity = time.Hour

func secretKey() []byte {
	return []byte(os.Getenv("JWT_ACCESS_SECRET"))
}

// IssueToken signs the caller-supplied payload as token claims. The validity
// window is fixed to one hour; exp and iat always come from the server clock
// regardless of what the payload contains.
func IssueToken(payload map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	now := time.Now()
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(now.Add(tokenValidity))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(secretKey())
	if err != nil {
		return "", fmt.Errorf("Failed to sign token: %s", err)
	}

	return signedToken, nil
}

// ValidatedToken parses the encoded token and verifies its signature.
func ValidatedToken(encodeToken string) (*jwt.Token, error) {
	return jwt.Parse(encodeToken, func(token *jwt.Token) (interface{}, error) {
		if _, isvalid := token.Method.(*jwt.SigningMethodHMAC); !isvalid {
			return nil, fmt.Errorf("Invalid token")
		}
		return secretKey(), nil
	})
}
