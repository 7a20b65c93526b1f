package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stemsi/school-api/internal/model"
	"github.com/stemsi/school-api/internal/response"
	"github.com/stemsi/school-api/internal/service"
	"github.com/stemsi/school-api/internal/validator"
)

type ContactHandler struct {
	contentService service.ContentService
}

func NewContactHandler(contentService service.ContentService) *ContactHandler {
	return &ContactHandler{contentService: contentService}
}

// Submit godoc
// POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.ContactMessage
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	id, err := h.contentService.SubmitContact(c.Request.Context(), &req)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Received", "inserted_id": id})
}
