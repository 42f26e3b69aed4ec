package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mushafhub/mushaf-backend/internal/apierr"
)

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError translates the two error kinds the services produce:
// validation failures become 422 with the field-message map, apierr statuses
// pass through, anything else is a 500.
func RespondServiceError(c *gin.Context, err error) {
	var validation *apierr.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validation.Fields})
		return
	}
	var apiError *apierr.Error
	if errors.As(err, &apiError) {
		c.JSON(apiError.Status, gin.H{"error": apiError.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
