package handlers

import (
	"errors"
	"net/http"

	"github.com/getmentor/readme-generator/internal/models"
	apperrors "github.com/getmentor/readme-generator/pkg/errors"
	"github.com/gin-gonic/gin"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin context
// so the observability middleware can include the reason in the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondErrorWithDetails sends an error response with an additional details field.
func respondErrorWithDetails(c *gin.Context, status int, message string, details any, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message, "details": details})
}

// bindStatus maps a request decoding error to the status to answer with
func bindStatus(err error) (int, string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, "Request body too large"
	}
	return http.StatusBadRequest, "Invalid request"
}

// validationError summarizes rejected fields for the request log
func validationError(fieldErrors []models.FieldError) error {
	if len(fieldErrors) == 0 {
		return nil
	}
	return apperrors.InvalidInputError(fieldErrors[0].Field, fieldErrors[0].Message)
}
