package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondData mengirim payload sukses dalam amplop {"data": ...}
func RespondData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"data": data})
}

// RespondError memetakan error ke {"error": "..."} sesuai taksonomi.
// Error selain *APIError dianggap tak terduga: detail dicatat di log,
// klien hanya menerima pesan generik.
func RespondError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
		return
	}

	ErrorLogger.Printf("Unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
}
