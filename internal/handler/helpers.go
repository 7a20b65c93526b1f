package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stemsi/school-api/internal/repository"
	"github.com/stemsi/school-api/internal/response"
	"github.com/stemsi/school-api/internal/validator"
)

// Default page sizes per list endpoint when ?limit is absent.
const (
	defaultDepartmentLimit int64 = 50
	defaultFacultyLimit    int64 = 100
	defaultEventLimit      int64 = 20
	defaultNoticeLimit     int64 = 20
)

// queryLimit reads ?limit. Zero or negative values mean no limit.
func queryLimit(c *gin.Context, fallback int64) (int64, bool) {
	raw, ok := c.GetQuery("limit")
	if !ok || raw == "" {
		return fallback, true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"limit": "limit must be an integer"})
		return 0, false
	}
	return n, true
}

// queryBool reads a boolean query parameter, falling back when absent.
func queryBool(c *gin.Context, name string, fallback bool) (bool, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback, true
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{name: name + " must be a boolean"})
		return false, false
	}
	return b, true
}

// failFromError maps service errors onto the response envelope.
func failFromError(c *gin.Context, err error) {
	var ve *validator.ValidationError
	switch {
	case errors.As(err, &ve):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, ve.Fields)
	case repository.IsUnavailable(err):
		response.Fail(c, http.StatusServiceUnavailable, response.ErrStorageUnavailable)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
