package auth

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/niloyahmadramjan/JobBasket-crud/internal/utilities"
)

// IssueTokenHandler signs the request body as token claims and delivers the
// token in an HTTP-only cookie.
// @Summary Issue an access token from the given claims payload
// @Description The whole JSON body becomes the token claims; expiry is fixed to one hour
// @Tags Auth
// @Accept json
// @Produce json
// @Param Claims body object true "Arbitrary claims payload"
// @Success 200 {object} utilities.SuccessResponse "Token cookie set"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 500 {object} utilities.ErrorResponse "Token signing failed"
// @Router /jwt [post]
func IssueTokenHandler(c *gin.Context) {
	payload := map[string]interface{}{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	token, err := IssueToken(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to issue token: %s", err.Error()),
		})
		return
	}

	// Session cookie, HTTP-only. Secure stays false so local frontends on
	// plain HTTP keep working.
	c.SetCookie(TokenCookieName, token, 0, "/", "", false, true)

	c.JSON(http.StatusOK, utilities.SuccessResponse{Success: true})
}
