package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"marketplace/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindJSON decodes the request body into req and checks its `validate` tags.
// An empty body decodes to the zero value, so it fails with missingMessage
// rather than as malformed JSON.
func bindJSON(c *gin.Context, req any, missingMessage string) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	if err := validate.Struct(req); err != nil {
		response.Error(c, http.StatusBadRequest, missingMessage, nil)
		return false
	}
	return true
}

// parseID reads a numeric path parameter
func parseID(c *gin.Context, param, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, message, nil)
		return 0, false
	}
	return id, true
}
