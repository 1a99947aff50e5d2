// Package response writes the uniform JSON envelope every endpoint answers with:
// {success, message, <payload key>} on success and {success:false, message, error} on failure.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Payload keys used by the endpoints
const (
	KeyData   = "data"
	KeyOrder  = "order"
	KeyOrders = "orders"
	KeyTables = "tables"
)

// Success writes a success envelope with the payload under "data".
// An empty message or a nil payload is left out.
func Success(c *gin.Context, statusCode int, message string, data any) {
	With(c, statusCode, message, KeyData, data)
}

// With writes a success envelope with the payload under key
func With(c *gin.Context, statusCode int, message, key string, payload any) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if payload != nil {
		body[key] = payload
	}
	c.JSON(statusCode, body)
}

// Error writes a failure envelope. err is exposed as the diagnostic "error"
// field when non-nil.
func Error(c *gin.Context, statusCode int, message string, err error) {
	c.JSON(statusCode, errorBody(statusCode, message, err))
}

// Abort is Error for middleware: it also stops the handler chain
func Abort(c *gin.Context, statusCode int, message string, err error) {
	c.AbortWithStatusJSON(statusCode, errorBody(statusCode, message, err))
}

func errorBody(statusCode int, message string, err error) gin.H {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	body := gin.H{"success": false, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return body
}
