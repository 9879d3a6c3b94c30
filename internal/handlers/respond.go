package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connecthire/connecthire-server/internal/models"
)

// ok writes the shared success envelope: {"success":true, ...payload}.
func ok(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// failErr maps domain conflicts to 400 and everything else (storage, mail,
// unexpected) to 500.
func failErr(c *gin.Context, err error) {
	fail(c, statusFor(err), err.Error())
}

func statusFor(err error) int {
	for _, domain := range []error{
		models.ErrInvalidCode,
		models.ErrOTPExpired,
		models.ErrUserNotFound,
		models.ErrAlreadyApplied,
		models.ErrInvalidEmployer,
		models.ErrInvalidPurpose,
		models.ErrInvalidStatus,
	} {
		if errors.Is(err, domain) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
